package domain

// Media format keys requested from the provider. Every GifResult carries all four.
const (
	FormatGif       = "gif"
	FormatTinyGif   = "tinygif"
	FormatMediumGif = "mediumgif"
	FormatNanoGif   = "nanogif"
)

// MediaFilter is the media_filter value sent upstream.
const MediaFilter = FormatGif + "," + FormatTinyGif + "," + FormatMediumGif + "," + FormatNanoGif

// GifFormatVariant is one rendition of a GIF. The zero value is the placeholder
// used when the provider omits a variant.
type GifFormatVariant struct {
	URL      string  `json:"url"`
	Dims     [2]int  `json:"dims"`
	Duration float64 `json:"duration"`
	Preview  string  `json:"preview"`
	Size     int64   `json:"size"`
}

// MediaFormats holds the four renditions every result is guaranteed to have.
type MediaFormats struct {
	Gif       GifFormatVariant `json:"gif"`
	TinyGif   GifFormatVariant `json:"tinygif"`
	MediumGif GifFormatVariant `json:"mediumgif"`
	NanoGif   GifFormatVariant `json:"nanogif"`
}

// GifResult is the canonical search-result record.
type GifResult struct {
	ID                 string       `json:"id"`
	Title              string       `json:"title"`
	MediaFormats       MediaFormats `json:"media_formats"`
	ContentDescription string       `json:"content_description"`
	Created            int64        `json:"created"`
	HasAudio           bool         `json:"hasaudio"`
	URL                string       `json:"url"`
}
