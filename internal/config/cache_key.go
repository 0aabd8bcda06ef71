package config

import "fmt"

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// SessionKey returns the Redis key holding a user's active session JTI.
func (r *CacheKeyStruct) SessionKey(userID int) string {
	return fmt.Sprintf("session:%d", userID)
}

// NoticeBoardKey returns the cache key for the rendered notice board list.
func (r *CacheKeyStruct) NoticeBoardKey(department string) string {
	return fmt.Sprintf("notices:%s", department)
}

var CacheKey = NewCacheKeyStruct()
