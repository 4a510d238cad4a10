package mock

import (
	"context"

	"github.com/fwojciec/pinmark"
)

// Compile-time interface verification.
var (
	_ pinmark.ArticleExtractor = (*ArticleExtractor)(nil)
	_ pinmark.Converter        = (*Converter)(nil)
	_ pinmark.ArchiveStore     = (*ArchiveStore)(nil)
)

// ArticleExtractor is a mock implementation of pinmark.ArticleExtractor.
type ArticleExtractor struct {
	ExtractFn func(html string, pageURL string) (*pinmark.Article, error)
}

func (e *ArticleExtractor) Extract(html string, pageURL string) (*pinmark.Article, error) {
	return e.ExtractFn(html, pageURL)
}

// Converter is a mock implementation of pinmark.Converter.
type Converter struct {
	ConvertFn func(html string, baseURL string) (string, error)
}

func (c *Converter) Convert(html string, baseURL string) (string, error) {
	return c.ConvertFn(html, baseURL)
}

// ArchiveStore is a mock implementation of pinmark.ArchiveStore.
type ArchiveStore struct {
	SaveFn func(ctx context.Context, result *pinmark.ExtractionResult, markdown string) (string, error)
}

func (s *ArchiveStore) Save(ctx context.Context, result *pinmark.ExtractionResult, markdown string) (string, error) {
	return s.SaveFn(ctx, result, markdown)
}
