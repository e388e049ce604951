package service

import (
	"context"

	"github.com/weiawesome/wes-io-live/gif-service/internal/domain"
)

// GifService defines the interface for GIF search. Search never fails: it
// returns cached, live or synthetic results for any non-blank query.
type GifService interface {
	Search(ctx context.Context, query string, limit int) *domain.SearchResponse
	// Close waits for in-flight event publishes. Call it before closing the publisher.
	Close() error
}
