package mock

import (
	"context"

	"github.com/fwojciec/pinmark"
)

// Compile-time interface verification.
var (
	_ pinmark.Fetcher         = (*Fetcher)(nil)
	_ pinmark.MetadataFetcher = (*MetadataFetcher)(nil)
	_ pinmark.PageParser      = (*PageParser)(nil)
)

// Fetcher is a mock implementation of pinmark.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

// MetadataFetcher is a mock implementation of pinmark.MetadataFetcher.
type MetadataFetcher struct {
	FetchMetadataFn func(ctx context.Context, rawURL string) (*pinmark.Metadata, error)
}

func (f *MetadataFetcher) FetchMetadata(ctx context.Context, rawURL string) (*pinmark.Metadata, error) {
	return f.FetchMetadataFn(ctx, rawURL)
}

// PageParser is a mock implementation of pinmark.PageParser.
type PageParser struct {
	ParsePageFn func(html string, pageURL string) (pinmark.PageContext, error)
}

func (p *PageParser) ParsePage(html string, pageURL string) (pinmark.PageContext, error) {
	return p.ParsePageFn(html, pageURL)
}
