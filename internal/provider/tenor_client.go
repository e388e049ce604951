package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/weiawesome/wes-io-live/gif-service/internal/config"
	"github.com/weiawesome/wes-io-live/gif-service/internal/domain"
)

const (
	defaultBaseURL   = "https://tenor.googleapis.com/v2"
	defaultClientKey = "wes-io-live"
	defaultUserAgent = "wes-io-live-gif-service/1.0"
	contentFilter    = "high"
	maxErrorBody     = 4 << 10
)

type TenorClient struct {
	baseURL   string
	clientKey string
	userAgent string
	referer   string
	origin    string
	client    *http.Client
	now       func() time.Time
}

// NewTenorClient creates a Tenor v2 client. A nil httpClient gets a client
// with cfg.Timeout (zero means no client-side timeout).
func NewTenorClient(cfg config.ProviderConfig, httpClient *http.Client) *TenorClient {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	clientKey := cfg.ClientKey
	if clientKey == "" {
		clientKey = defaultClientKey
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &TenorClient{
		baseURL:   strings.TrimRight(baseURL, "/"),
		clientKey: clientKey,
		userAgent: userAgent,
		referer:   cfg.Referer,
		origin:    cfg.Origin,
		client:    httpClient,
		now:       time.Now,
	}
}

// BuildURL returns the search endpoint for query.
func (c *TenorClient) BuildURL(apiKey, query string, limit int) (string, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base url: %w", err)
	}
	endpoint.Path = strings.TrimRight(endpoint.Path, "/") + "/search"

	params := url.Values{}
	params.Set("q", query)
	params.Set("key", apiKey)
	params.Set("client_key", c.clientKey)
	params.Set("media_filter", domain.MediaFilter)
	params.Set("contentfilter", contentFilter)
	params.Set("limit", strconv.Itoa(limit))
	endpoint.RawQuery = params.Encode()

	return endpoint.String(), nil
}

func (c *TenorClient) Search(ctx context.Context, apiKey, query string, limit int) ([]domain.GifResult, error) {
	endpoint, err := c.BuildURL(apiKey, query, limit)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.referer != "" {
		req.Header.Set("Referer", c.referer)
	}
	if c.origin != "" {
		req.Header.Set("Origin", c.origin)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tenor request failed: %w", c.redact(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var payload rawSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if payload.Results == nil {
		return nil, fmt.Errorf("%w: missing results", ErrMalformedResponse)
	}

	now := c.now()
	results := make([]domain.GifResult, 0, len(payload.Results))
	for _, raw := range payload.Results {
		results = append(results, Normalize(raw, now))
	}

	return results, nil
}

// redact drops the query string, which carries the api key, from transport errors.
func (c *TenorClient) redact(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = c.baseURL + "/search"
	}
	return err
}
