package provider

import (
	"math"
	"time"

	"github.com/weiawesome/wes-io-live/gif-service/internal/domain"
)

// rawSearchResponse is the Tenor v2 search payload. Results stays nil when the
// field is absent or null.
type rawSearchResponse struct {
	Results []RawResult `json:"results"`
	Next    string      `json:"next"`
}

// RawResult is one upstream result. Every field is optional.
type RawResult struct {
	ID                 string                `json:"id"`
	Title              *string               `json:"title"`
	MediaFormats       map[string]RawVariant `json:"media_formats"`
	ContentDescription *string               `json:"content_description"`
	Created            *float64              `json:"created"`
	HasAudio           *bool                 `json:"hasaudio"`
	URL                *string               `json:"url"`
}

// RawVariant is one upstream media rendition.
type RawVariant struct {
	URL      string  `json:"url"`
	Dims     []int   `json:"dims"`
	Duration float64 `json:"duration"`
	Preview  string  `json:"preview"`
	Size     int64   `json:"size"`
}

// Normalize maps a partial upstream result to a complete GifResult. Missing
// variants become the zero-valued placeholder; now stands in for a missing
// creation time.
func Normalize(raw RawResult, now time.Time) domain.GifResult {
	title := deref(raw.Title)

	description := deref(raw.ContentDescription)
	if description == "" {
		description = title
	}

	created := now.Unix()
	if raw.Created != nil && validTimestamp(*raw.Created) {
		created = int64(*raw.Created)
	}

	hasAudio := false
	if raw.HasAudio != nil {
		hasAudio = *raw.HasAudio
	}

	return domain.GifResult{
		ID:    raw.ID,
		Title: title,
		MediaFormats: domain.MediaFormats{
			Gif:       variant(raw.MediaFormats, domain.FormatGif),
			TinyGif:   variant(raw.MediaFormats, domain.FormatTinyGif),
			MediumGif: variant(raw.MediaFormats, domain.FormatMediumGif),
			NanoGif:   variant(raw.MediaFormats, domain.FormatNanoGif),
		},
		ContentDescription: description,
		Created:            created,
		HasAudio:           hasAudio,
		URL:                deref(raw.URL),
	}
}

func variant(formats map[string]RawVariant, key string) domain.GifFormatVariant {
	raw, ok := formats[key]
	if !ok {
		return domain.GifFormatVariant{}
	}

	var dims [2]int
	copy(dims[:], raw.Dims)

	return domain.GifFormatVariant{
		URL:      raw.URL,
		Dims:     dims,
		Duration: max(raw.Duration, 0),
		Preview:  raw.Preview,
		Size:     max(raw.Size, 0),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// validTimestamp rejects NaN, infinities, negatives and values beyond int64.
func validTimestamp(f float64) bool {
	return !math.IsNaN(f) && f >= 0 && f < math.MaxInt64
}
