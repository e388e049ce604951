package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/weiawesome/wes-io-live/gif-service/internal/audit"
	"github.com/weiawesome/wes-io-live/gif-service/internal/cache"
	"github.com/weiawesome/wes-io-live/gif-service/internal/domain"
	"github.com/weiawesome/wes-io-live/gif-service/internal/fallback"
	"github.com/weiawesome/wes-io-live/gif-service/internal/provider"
	"github.com/weiawesome/wes-io-live/gif-service/internal/settings"
	"github.com/weiawesome/wes-io-live/gif-service/pkg/log"
	"github.com/weiawesome/wes-io-live/gif-service/pkg/pubsub"
)

const (
	DefaultLimit = 8
	MaxLimit     = 50
)

var ErrNoCredential = errors.New("provider credential not configured")

type gifServiceImpl struct {
	cache     *cache.GifCache
	settings  settings.Store
	provider  provider.GifProvider
	fallback  *fallback.Generator
	publisher pubsub.Publisher
	inflight  sync.WaitGroup
}

// NewGifService creates a new GIF search service. A nil publisher disables events.
func NewGifService(
	gifCache *cache.GifCache,
	settingsStore settings.Store,
	gifProvider provider.GifProvider,
	generator *fallback.Generator,
	publisher pubsub.Publisher,
) GifService {
	if publisher == nil {
		publisher = pubsub.NoopPublisher{}
	}
	return &gifServiceImpl{
		cache:     gifCache,
		settings:  settingsStore,
		provider:  gifProvider,
		fallback:  generator,
		publisher: publisher,
	}
}

func (s *gifServiceImpl) Search(ctx context.Context, query string, limit int) *domain.SearchResponse {
	if strings.TrimSpace(query) == "" {
		return &domain.SearchResponse{
			Query:   query,
			Source:  domain.SourceEmpty,
			Results: []domain.GifResult{},
		}
	}
	limit = normalizeLimit(limit)

	resp := &domain.SearchResponse{Query: query}

	if cached, ok := s.cache.Lookup(ctx, query); ok {
		resp.Source = domain.SourceCache
		resp.Results = cached
	} else if results, err := s.fetchLive(ctx, query, limit); err != nil {
		audit.LogWithDetail(ctx, audit.ActionSearchFallback, query, err.Error(), "serving fallback gifs")
		resp.Source = domain.SourceFallback
		resp.Results = s.fallback.Synthesize(query)
	} else {
		s.cache.Store(ctx, query, results)
		resp.Source = domain.SourceLive
		resp.Results = results
	}

	l := log.Ctx(ctx)
	l.Debug().Str("query", query).Str("source", string(resp.Source)).Int("count", len(resp.Results)).Msg("gif search served")

	s.asyncPublish(query, resp)
	return resp
}

// fetchLive runs the credential lookup and provider call. Every failure,
// including a panic, comes back as an error so the caller has one fallback path.
func (s *gifServiceImpl) fetchLive(ctx context.Context, query string, limit int) (results []domain.GifResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			results, err = nil, fmt.Errorf("live search panicked: %v", r)
		}
	}()

	apiKey, err := s.settings.Get(ctx, settings.KeyTenorAPIKey)
	if err != nil {
		if errors.Is(err, settings.ErrNotFound) {
			return nil, ErrNoCredential
		}
		return nil, fmt.Errorf("failed to read credential: %w", err)
	}
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, ErrNoCredential
	}

	results, err = s.provider.Search(ctx, apiKey, query, limit)
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (s *gifServiceImpl) asyncPublish(query string, resp *domain.SearchResponse) {
	event, err := pubsub.NewEvent(pubsub.EventGifSearchServed, strings.ToLower(strings.TrimSpace(query)), pubsub.GifSearchServedPayload{
		Query:  query,
		Source: string(resp.Source),
		Count:  len(resp.Results),
	})
	if err != nil {
		l := log.L()
		l.Warn().Err(err).Msg("failed to build search event")
		return
	}

	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := s.publisher.Publish(ctx, pubsub.ChannelGifSearchServed, event); err != nil {
			l := log.L()
			l.Warn().Err(err).Str("channel", pubsub.ChannelGifSearchServed).Msg("event publish error")
		}
	}()
}

func (s *gifServiceImpl) Close() error {
	s.inflight.Wait()
	return nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
