package cache

import (
	"context"
	"sync"
	"time"
)

type memoryItem struct {
	value  string
	expiry time.Time
}

func (i *memoryItem) expired(now time.Time) bool {
	return !i.expiry.IsZero() && !now.Before(i.expiry)
}

// MemoryStore is an in-process Store with per-key expiry. It is used when no
// Redis is configured (local development) and in tests.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]*memoryItem
	now   func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: make(map[string]*memoryItem),
		now:   time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	item, ok := s.items[key]
	s.mu.RUnlock()

	if !ok {
		return "", ErrCacheMiss
	}
	if item.expired(s.now()) {
		s.mu.Lock()
		if cur, ok := s.items[key]; ok && cur == item {
			delete(s.items, key)
		}
		s.mu.Unlock()
		return "", ErrCacheMiss
	}
	return item.value, nil
}

// Set stores value without expiry, replacing any existing TTL like Redis SET.
func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[key] = &memoryItem{value: value}
	return nil
}

func (s *MemoryStore) Expire(_ context.Context, key string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[key]
	if !ok {
		return ErrCacheMiss
	}
	item.expiry = s.now().Add(ttl)
	return nil
}

// TTL reports the remaining lifetime of key, or false if it has none.
func (s *MemoryStore) TTL(key string) (time.Duration, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[key]
	if !ok || item.expiry.IsZero() {
		return 0, false
	}
	return item.expiry.Sub(s.now()), true
}

func (s *MemoryStore) Close() error {
	return nil
}
