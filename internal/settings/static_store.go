package settings

import "context"

// StaticStore serves settings fixed at startup, typically from config/env.
type StaticStore struct {
	values map[string]string
}

// NewStaticStore copies values; empty values are dropped so they read as absent.
func NewStaticStore(values map[string]string) *StaticStore {
	m := make(map[string]string, len(values))
	for k, v := range values {
		if v != "" {
			m[k] = v
		}
	}
	return &StaticStore{values: m}
}

func (s *StaticStore) Get(_ context.Context, key string) (string, error) {
	v, ok := s.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}
