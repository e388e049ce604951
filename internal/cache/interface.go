package cache

import (
	"context"
	"errors"
	"time"
)

var ErrCacheMiss = errors.New("cache miss")

// Store is the key-value store the GIF cache sits on. Values are opaque strings;
// Get returns ErrCacheMiss when the key is absent or expired.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Expire(ctx context.Context, key string, ttl time.Duration) error
	Close() error
}
