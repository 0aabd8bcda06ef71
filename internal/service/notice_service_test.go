package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/campushub/portal-backend/internal/config"
	"github.com/campushub/portal-backend/internal/model"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

type fakeNoticeStore struct {
	notices   []model.Notice
	listCalls int
	listErr   error
}

func (f *fakeNoticeStore) ListByDepartment(_ context.Context, _ string, _ int) ([]model.Notice, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.notices, nil
}

func (f *fakeNoticeStore) Create(_ context.Context, n *model.Notice) error {
	n.ID = len(f.notices) + 1
	f.notices = append(f.notices, *n)
	return nil
}

func (f *fakeNoticeStore) DeleteExpired(context.Context) (int64, error) {
	return 0, nil
}

type fakeBoardCache struct {
	entries map[string]string
	getErr  error
}

func newFakeBoardCache() *fakeBoardCache {
	return &fakeBoardCache{entries: map[string]string{}}
}

func (f *fakeBoardCache) Get(_ context.Context, key string) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	v, ok := f.entries[key]
	if !ok {
		return "", redis.Nil
	}
	return v, nil
}

func (f *fakeBoardCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	f.entries[key] = value
	return nil
}

func (f *fakeBoardCache) Del(_ context.Context, key string) error {
	delete(f.entries, key)
	return nil
}

func noticeTestConfig() *config.Config {
	return &config.Config{NoticeCacheTTL: time.Minute}
}

func TestNoticeListCacheMiss(t *testing.T) {
	store := &fakeNoticeStore{notices: []model.Notice{{ID: 1, Title: "Exam schedule"}}}
	cache := newFakeBoardCache()
	s := NewNoticeService(store, cache, noticeTestConfig(), zerolog.Nop())

	notices, err := s.List(context.Background(), "CS")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(notices) != 1 || notices[0].Title != "Exam schedule" {
		t.Fatalf("notices = %+v, want the stored notice", notices)
	}
	if store.listCalls != 1 {
		t.Errorf("store queried %d times, want 1", store.listCalls)
	}

	// The miss populates the cache for the department key.
	cached, ok := cache.entries[config.CacheKey.NoticeBoardKey("CS")]
	if !ok {
		t.Fatal("board not cached after miss")
	}
	var fromCache []model.Notice
	if err := json.Unmarshal([]byte(cached), &fromCache); err != nil {
		t.Fatalf("cached payload not JSON: %v", err)
	}
	if len(fromCache) != 1 || fromCache[0].ID != 1 {
		t.Errorf("cached payload = %+v, want the listed notice", fromCache)
	}
}

func TestNoticeListCacheHit(t *testing.T) {
	store := &fakeNoticeStore{listErr: errors.New("db down")}
	cache := newFakeBoardCache()
	payload, _ := json.Marshal([]model.Notice{{ID: 3, Title: "Holiday"}})
	cache.entries[config.CacheKey.NoticeBoardKey("CS")] = string(payload)

	s := NewNoticeService(store, cache, noticeTestConfig(), zerolog.Nop())

	notices, err := s.List(context.Background(), "CS")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(notices) != 1 || notices[0].ID != 3 {
		t.Fatalf("notices = %+v, want the cached notice", notices)
	}
	if store.listCalls != 0 {
		t.Errorf("store queried %d times on a cache hit, want 0", store.listCalls)
	}
}

// A cache read failure is not a board failure.
func TestNoticeListCacheReadFailure(t *testing.T) {
	store := &fakeNoticeStore{notices: []model.Notice{{ID: 1}}}
	cache := newFakeBoardCache()
	cache.getErr = errors.New("redis down")

	s := NewNoticeService(store, cache, noticeTestConfig(), zerolog.Nop())

	notices, err := s.List(context.Background(), "CS")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(notices) != 1 {
		t.Fatalf("notices = %+v, want the stored notice", notices)
	}
	if store.listCalls != 1 {
		t.Errorf("store queried %d times, want 1", store.listCalls)
	}
}

func TestNoticeCreateInvalidatesCache(t *testing.T) {
	store := &fakeNoticeStore{}
	cache := newFakeBoardCache()
	key := config.CacheKey.NoticeBoardKey("CS")
	cache.entries[key] = `[{"id":1}]`

	s := NewNoticeService(store, cache, noticeTestConfig(), zerolog.Nop())

	err := s.Create(context.Background(), &model.Notice{
		Title:      "Room change",
		Content:    "Databases moves to A-102.",
		Category:   "general",
		Priority:   model.NoticePriorityNormal,
		AuthorID:   2,
		Department: "CS",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, ok := cache.entries[key]; ok {
		t.Error("board cache still populated after create")
	}
}
