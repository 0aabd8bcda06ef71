package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/campushub/portal-backend/internal/config"
	"github.com/campushub/portal-backend/internal/model"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const noticeBoardLimit = 50

// noticeStore is the data access the board needs.
type noticeStore interface {
	ListByDepartment(ctx context.Context, department string, limit int) ([]model.Notice, error)
	Create(ctx context.Context, n *model.Notice) error
	DeleteExpired(ctx context.Context) (int64, error)
}

// boardCache fronts the notice board. A miss is signalled with
// redis.Nil regardless of the backing implementation.
type boardCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// RedisBoardCache is the production boardCache over a Redis client.
type RedisBoardCache struct {
	rdb *redis.Client
}

// NewRedisBoardCache creates a new RedisBoardCache.
func NewRedisBoardCache(rdb *redis.Client) *RedisBoardCache {
	return &RedisBoardCache{rdb: rdb}
}

func (c *RedisBoardCache) Get(ctx context.Context, key string) (string, error) {
	return c.rdb.Get(ctx, key).Result()
}

func (c *RedisBoardCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.rdb.Set(ctx, key, value, ttl).Err()
}

func (c *RedisBoardCache) Del(ctx context.Context, key string) error {
	return c.rdb.Del(ctx, key).Err()
}

// NoticeService handles the notice board with a short-TTL cache in
// front of PostgreSQL. The cache is invalidated on every post.
type NoticeService struct {
	repo  noticeStore
	cache boardCache
	cfg   *config.Config
	log   zerolog.Logger
}

// NewNoticeService creates a new NoticeService.
func NewNoticeService(repo noticeStore, cache boardCache, cfg *config.Config, log zerolog.Logger) *NoticeService {
	return &NoticeService{
		repo:  repo,
		cache: cache,
		cfg:   cfg,
		log:   log.With().Str("component", "notice_service").Logger(),
	}
}

// List returns the current notice board for a department, newest first.
// Cache failures fall through to the database.
func (s *NoticeService) List(ctx context.Context, department string) ([]model.Notice, error) {
	cacheKey := config.CacheKey.NoticeBoardKey(department)

	cached, err := s.cache.Get(ctx, cacheKey)
	if err == nil {
		var notices []model.Notice
		if err := json.Unmarshal([]byte(cached), &notices); err == nil {
			return notices, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		s.log.Warn().Err(err).Msg("notice cache read failed")
	}

	notices, err := s.repo.ListByDepartment(ctx, department, noticeBoardLimit)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(notices); err == nil {
		if err := s.cache.Set(ctx, cacheKey, string(payload), s.cfg.NoticeCacheTTL); err != nil {
			s.log.Warn().Err(err).Msg("notice cache write failed")
		}
	}

	return notices, nil
}

// Create posts a notice and invalidates the department's board cache.
func (s *NoticeService) Create(ctx context.Context, n *model.Notice) error {
	if err := s.repo.Create(ctx, n); err != nil {
		return err
	}

	if err := s.cache.Del(ctx, config.CacheKey.NoticeBoardKey(n.Department)); err != nil {
		s.log.Warn().Err(err).Str("department", n.Department).Msg("notice cache invalidation failed")
	}
	return nil
}

// PurgeExpired removes notices past their expiry. Used by the maintenance worker.
func (s *NoticeService) PurgeExpired(ctx context.Context) (int64, error) {
	return s.repo.DeleteExpired(ctx)
}
