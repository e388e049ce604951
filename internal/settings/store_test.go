package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weiawesome/wes-io-live/gif-service/pkg/database"
)

type errStore struct{ err error }

func (s errStore) Get(context.Context, string) (string, error) { return "", s.err }

func newTestGormStore(t *testing.T) *GormStore {
	t.Helper()
	db, err := database.New(&database.Config{
		Driver:       "sqlite",
		FilePath:     ":memory:",
		MaxOpenConns: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	store := NewGormStore(db)
	require.NoError(t, store.Migrate())
	return store
}

func TestStaticStore(t *testing.T) {
	ctx := context.Background()
	s := NewStaticStore(map[string]string{KeyTenorAPIKey: "abc", "blank": ""})

	v, err := s.Get(ctx, KeyTenorAPIKey)
	require.NoError(t, err)
	assert.Equal(t, "abc", v)

	_, err = s.Get(ctx, "blank")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGormStore_GetSet(t *testing.T) {
	ctx := context.Background()
	s := newTestGormStore(t)

	_, err := s.Get(ctx, KeyTenorAPIKey)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, KeyTenorAPIKey, "first"))
	v, err := s.Get(ctx, KeyTenorAPIKey)
	require.NoError(t, err)
	assert.Equal(t, "first", v)

	require.NoError(t, s.Set(ctx, KeyTenorAPIKey, "second"))
	v, err = s.Get(ctx, KeyTenorAPIKey)
	require.NoError(t, err)
	assert.Equal(t, "second", v)
}

func TestChainStore(t *testing.T) {
	ctx := context.Background()
	db := newTestGormStore(t)
	static := NewStaticStore(map[string]string{KeyTenorAPIKey: "from-config"})
	chain := NewChainStore(db, static)

	v, err := chain.Get(ctx, KeyTenorAPIKey)
	require.NoError(t, err)
	assert.Equal(t, "from-config", v)

	require.NoError(t, db.Set(ctx, KeyTenorAPIKey, "from-db"))
	v, err = chain.Get(ctx, KeyTenorAPIKey)
	require.NoError(t, err)
	assert.Equal(t, "from-db", v)

	_, err = chain.Get(ctx, "other")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestChainStore_PropagatesBackendErrors(t *testing.T) {
	boom := errors.New("db down")
	chain := NewChainStore(errStore{err: boom}, NewStaticStore(map[string]string{KeyTenorAPIKey: "x"}))

	_, err := chain.Get(context.Background(), KeyTenorAPIKey)
	assert.ErrorIs(t, err, boom)
}
