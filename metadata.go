package pinmark

import "context"

// Metadata is the field set returned by a headless metadata fetch.
// It carries the same limits as ExtractionResult.
type Metadata struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Thumbnail    string   `json:"thumbnail"`
	URL          string   `json:"url"`
	Platform     string   `json:"platform"`
	PlatformIcon string   `json:"platformIcon"`
	SiteName     string   `json:"siteName"`
	AutoTags     []string `json:"autoTags"`
}

// Result converts the metadata into an ExtractionResult.
func (m *Metadata) Result() *ExtractionResult {
	return NewExtractionResult(Draft{
		Title:        m.Title,
		Description:  m.Description,
		Thumbnail:    m.Thumbnail,
		URL:          m.URL,
		Platform:     m.Platform,
		PlatformIcon: m.PlatformIcon,
		Tags:         m.AutoTags,
	})
}

// MetadataFetcher fetches a URL without a live page and parses its metadata.
type MetadataFetcher interface {
	// FetchMetadata fetches rawURL and returns its metadata.
	// Returns EINVALID for malformed URLs before any network call,
	// EUPSTREAM for non-2xx responses and network failures and
	// ETIMEOUT when the request deadline passes.
	FetchMetadata(ctx context.Context, rawURL string) (*Metadata, error)
}
