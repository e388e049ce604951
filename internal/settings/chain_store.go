package settings

import (
	"context"
	"errors"
)

// ChainStore asks each store in order and returns the first value found.
type ChainStore struct {
	stores []Store
}

func NewChainStore(stores ...Store) *ChainStore {
	return &ChainStore{stores: stores}
}

func (c *ChainStore) Get(ctx context.Context, key string) (string, error) {
	for _, s := range c.stores {
		v, err := s.Get(ctx, key)
		if err == nil {
			return v, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return "", err
		}
	}
	return "", ErrNotFound
}
