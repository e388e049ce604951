package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	store := NewRedisStoreFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { store.Close() })
	return store, mr
}

func TestRedisStore_GetMiss(t *testing.T) {
	store, _ := newTestRedisStore(t)

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisStore_SetExpire(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestRedisStore(t)

	require.NoError(t, store.Set(ctx, "gif:search:cats", `[]`))
	assert.Zero(t, mr.TTL("gif:search:cats"))

	require.NoError(t, store.Expire(ctx, "gif:search:cats", time.Hour))
	assert.Equal(t, time.Hour, mr.TTL("gif:search:cats"))

	v, err := store.Get(ctx, "gif:search:cats")
	require.NoError(t, err)
	assert.Equal(t, `[]`, v)

	mr.FastForward(time.Hour)
	_, err = store.Get(ctx, "gif:search:cats")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisStore_ExpireMissingKey(t *testing.T) {
	store, _ := newTestRedisStore(t)

	assert.Error(t, store.Expire(context.Background(), "missing", time.Hour))
}

func TestRedisStore_ClosedConnection(t *testing.T) {
	store, mr := newTestRedisStore(t)
	mr.Close()

	_, err := store.Get(context.Background(), "k")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)
}

func TestGifCache_OverRedis(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestRedisStore(t)
	c := NewGifCache(store, "gif:search", time.Hour)

	c.Store(ctx, "Cats", sampleResults())

	assert.Equal(t, 3600*time.Second, mr.TTL("gif:search:cats"))
	got, ok := c.Lookup(ctx, "cats")
	require.True(t, ok)
	assert.Equal(t, sampleResults(), got)
}
