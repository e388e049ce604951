package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	require.NoError(t, s.Set(ctx, "k", "v"))
	_, ok := s.TTL("k")
	assert.False(t, ok)

	require.NoError(t, s.Expire(ctx, "k", time.Minute))

	now = now.Add(59 * time.Second)
	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)

	now = now.Add(time.Second)
	_, err = s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryStore_SetClearsTTL(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.Set(ctx, "k", "v1"))
	require.NoError(t, s.Expire(ctx, "k", time.Minute))
	require.NoError(t, s.Set(ctx, "k", "v2"))

	_, ok := s.TTL("k")
	assert.False(t, ok)
}

func TestMemoryStore_ExpireMissingKey(t *testing.T) {
	err := NewMemoryStore().Expire(context.Background(), "missing", time.Minute)
	assert.ErrorIs(t, err, ErrCacheMiss)
}
