package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weiawesome/wes-io-live/gif-service/internal/domain"
	"github.com/weiawesome/wes-io-live/gif-service/pkg/log"
)

type stubService struct {
	query string
	limit int
}

func (s *stubService) Search(_ context.Context, query string, limit int) *domain.SearchResponse {
	s.query, s.limit = query, limit
	return &domain.SearchResponse{
		Query:   query,
		Source:  domain.SourceLive,
		Results: []domain.GifResult{{ID: "1", Title: query}},
	}
}

func (s *stubService) Close() error { return nil }

type envelope struct {
	Success bool                   `json:"success"`
	Data    *domain.SearchResponse `json:"data"`
	Error   *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func newTestRouter(svc *stubService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(log.GinMiddleware(log.L()))
	NewHandler(svc).RegisterRoutes(r)
	return r
}

func TestSearch_OK(t *testing.T) {
	svc := &stubService{}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/gifs/search?q=happy+dance&limit=12", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, "happy dance", svc.query)
	assert.Equal(t, 12, svc.limit)

	var body envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.NotNil(t, body.Data)
	assert.Equal(t, domain.SourceLive, body.Data.Source)
	assert.Len(t, body.Data.Results, 1)
}

func TestSearch_MissingQueryAndLimit(t *testing.T) {
	svc := &stubService{}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/gifs/search", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "", svc.query)
	assert.Equal(t, 0, svc.limit)
}

func TestSearch_InvalidLimit(t *testing.T) {
	svc := &stubService{}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/gifs/search?q=cats&limit=lots", nil))

	require.Equal(t, http.StatusBadRequest, w.Code)
	var body envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "BAD_REQUEST", body.Error.Code)
	assert.Equal(t, "", svc.query)
}

func TestSearch_PropagatesRequestID(t *testing.T) {
	r := newTestRouter(&stubService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/gifs/search?q=cats", nil)
	req.Header.Set("X-Request-ID", "req-123")
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
}
