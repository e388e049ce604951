package provider

import (
	"context"

	"github.com/weiawesome/wes-io-live/gif-service/internal/domain"
)

// GifProvider searches an upstream GIF provider and returns normalized results.
type GifProvider interface {
	Search(ctx context.Context, apiKey, query string, limit int) ([]domain.GifResult, error)
}
