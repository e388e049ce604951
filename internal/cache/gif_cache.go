package cache

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/weiawesome/wes-io-live/gif-service/internal/domain"
	"github.com/weiawesome/wes-io-live/gif-service/pkg/log"
)

const (
	DefaultPrefix = "gif:search"
	DefaultTTL    = time.Hour
)

// GifCache stores normalized search results per query. Caching is
// best-effort: no method returns an error.
type GifCache struct {
	store  Store
	prefix string
	ttl    time.Duration
}

// NewGifCache creates the cache adapter. Empty prefix and non-positive ttl
// fall back to DefaultPrefix and DefaultTTL.
func NewGifCache(store Store, prefix string, ttl time.Duration) *GifCache {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &GifCache{
		store:  store,
		prefix: prefix,
		ttl:    ttl,
	}
}

// BuildKey derives the cache key: lower-cased, trimmed, percent-encoded query
// under the namespace prefix.
func (c *GifCache) BuildKey(query string) string {
	normalized := strings.ToLower(strings.TrimSpace(query))
	return c.prefix + ":" + encodeComponent(normalized)
}

// Lookup returns the cached results for query. Misses, store errors and
// undecodable entries all report false.
func (c *GifCache) Lookup(ctx context.Context, query string) ([]domain.GifResult, bool) {
	key := c.BuildKey(query)
	l := log.Ctx(ctx)

	raw, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrCacheMiss) {
			l.Warn().Err(err).Str("key", key).Msg("cache get error")
		}
		return nil, false
	}

	var results []domain.GifResult
	if err := json.Unmarshal([]byte(raw), &results); err != nil {
		l.Warn().Err(err).Str("key", key).Msg("cache entry undecodable, ignoring")
		return nil, false
	}
	if results == nil {
		return nil, false
	}

	return results, true
}

// Store writes results under the query's key and sets the TTL.
func (c *GifCache) Store(ctx context.Context, query string, results []domain.GifResult) {
	key := c.BuildKey(query)
	l := log.Ctx(ctx)

	if results == nil {
		results = []domain.GifResult{}
	}
	data, err := json.Marshal(results)
	if err != nil {
		l.Warn().Err(err).Str("key", key).Msg("failed to marshal cache data")
		return
	}

	if err := c.store.Set(ctx, key, string(data)); err != nil {
		l.Warn().Err(err).Str("key", key).Msg("cache set error")
		return
	}
	if err := c.store.Expire(ctx, key, c.ttl); err != nil {
		l.Warn().Err(err).Str("key", key).Msg("cache expire error")
	}
}

// encodeComponent percent-encodes s with URI component rules (space as %20).
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
