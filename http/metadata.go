package http

import (
	"context"

	"github.com/fwojciec/pinmark"
)

// Ensure MetadataFetcher implements pinmark.MetadataFetcher at compile time.
var _ pinmark.MetadataFetcher = (*MetadataFetcher)(nil)

// MetadataFetcher fetches a URL and parses its metadata without a browser.
type MetadataFetcher struct {
	fetcher pinmark.Fetcher
}

// NewMetadataFetcher creates a MetadataFetcher on top of fetcher.
func NewMetadataFetcher(fetcher pinmark.Fetcher) *MetadataFetcher {
	return &MetadataFetcher{fetcher: fetcher}
}

// FetchMetadata validates rawURL, fetches it and parses the response.
// Validation failures are reported before any network I/O.
func (m *MetadataFetcher) FetchMetadata(ctx context.Context, rawURL string) (*pinmark.Metadata, error) {
	u, err := pinmark.ValidateURL(rawURL)
	if err != nil {
		return nil, err
	}

	html, err := m.fetcher.Fetch(ctx, u.String())
	if err != nil {
		return nil, err
	}

	return ParseMetadata(html, u.String()), nil
}

// FetchMetadataOrEmpty is FetchMetadata for clients that cannot handle
// errors: any failure yields empty metadata carrying only the requested URL.
func (m *MetadataFetcher) FetchMetadataOrEmpty(ctx context.Context, rawURL string) *pinmark.Metadata {
	md, err := m.FetchMetadata(ctx, rawURL)
	if err != nil {
		return &pinmark.Metadata{URL: rawURL, AutoTags: []string{}}
	}
	return md
}
