// Package fallback builds placeholder GIF results for when the provider cannot
// be used. Output is schema-identical to live results.
package fallback

import (
	"fmt"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/weiawesome/wes-io-live/gif-service/internal/domain"
)

// Count is the number of synthetic results, regardless of the requested limit.
const Count = 8

const placeholderBase = "https://media.tenor.com/placeholder"

type tier struct {
	name   string
	width  int
	height int
	size   int64
}

var (
	tierGif       = tier{domain.FormatGif, 498, 280, 2_000_000}
	tierMediumGif = tier{domain.FormatMediumGif, 320, 180, 600_000}
	tierTinyGif   = tier{domain.FormatTinyGif, 220, 124, 180_000}
	tierNanoGif   = tier{domain.FormatNanoGif, 90, 50, 40_000}
)

// batch makes ids unique between calls that read the same clock tick.
var batch atomic.Uint64

type Generator struct {
	now func() time.Time
}

func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// NewGeneratorWithClock is NewGenerator with an injected clock.
func NewGeneratorWithClock(now func() time.Time) *Generator {
	return &Generator{now: now}
}

// Synthesize returns Count placeholder results for query. It never fails and
// performs no I/O.
func (g *Generator) Synthesize(query string) []domain.GifResult {
	ts := g.now()
	seq := batch.Add(1)
	page := "https://tenor.com/search/" + url.PathEscape(query) + "-gifs"

	results := make([]domain.GifResult, Count)
	for i := range results {
		results[i] = domain.GifResult{
			ID:    fmt.Sprintf("fallback-%d-%d-%d", ts.UnixNano(), seq, i),
			Title: fmt.Sprintf("%s #%d", query, i+1),
			MediaFormats: domain.MediaFormats{
				Gif:       tierGif.variant(),
				TinyGif:   tierTinyGif.variant(),
				MediumGif: tierMediumGif.variant(),
				NanoGif:   tierNanoGif.variant(),
			},
			ContentDescription: fmt.Sprintf("Placeholder GIF %d for %q", i+1, query),
			Created:            ts.Unix(),
			HasAudio:           false,
			URL:                page,
		}
	}
	return results
}

func (t tier) variant() domain.GifFormatVariant {
	return domain.GifFormatVariant{
		URL:      placeholderBase + "/" + t.name + ".gif",
		Dims:     [2]int{t.width, t.height},
		Duration: 0,
		Preview:  placeholderBase + "/" + t.name + ".png",
		Size:     t.size,
	}
}
