package domain

// Source identifies which tier produced a search response.
type Source string

const (
	SourceEmpty    Source = "empty"
	SourceCache    Source = "cache"
	SourceLive     Source = "live"
	SourceFallback Source = "fallback"
)

// SearchRequest is the GIF search query string.
type SearchRequest struct {
	Query string `form:"q"`
	Limit int    `form:"limit"`
}

// SearchResponse is returned by every search, whichever tier served it.
type SearchResponse struct {
	Query   string      `json:"query"`
	Source  Source      `json:"source"`
	Results []GifResult `json:"results"`
}
