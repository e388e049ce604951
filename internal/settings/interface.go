package settings

import (
	"context"
	"errors"
)

// KeyTenorAPIKey names the provider credential.
const KeyTenorAPIKey = "tenor_api_key"

var ErrNotFound = errors.New("setting not found")

// Store yields configuration values such as provider credentials.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
}
