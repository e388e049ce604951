package pubsub

// Channels published by the gif service.
const (
	ChannelGifSearchServed = "gif:search:served"
)

// Event types.
const (
	EventGifSearchServed = "gif_search_served"
)

// GifSearchServedPayload is published after every non-empty search.
type GifSearchServedPayload struct {
	Query  string `json:"query"`
	Source string `json:"source"` // "cache", "live", "fallback"
	Count  int    `json:"count"`
}
