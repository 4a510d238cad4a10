package pinmark

import "context"

// Article holds the readable content of a page.
type Article struct {
	// Title is the page title extracted from metadata.
	Title string

	// Byline is the author line, if any.
	Byline string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// ArticleExtractor extracts main content from HTML pages, removing boilerplate.
type ArticleExtractor interface {
	// Extract processes raw HTML fetched from pageURL and returns the main
	// content. Relative links resolve against pageURL.
	// Returns EINVALID for empty input.
	Extract(html string, pageURL string) (*Article, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms clean HTML (e.g., from an ArticleExtractor) into
	// Markdown. Relative links and images resolve against baseURL when it
	// is non-empty.
	Convert(html string, baseURL string) (string, error)
}

// ArchiveStore keeps offline snapshots of bookmarked pages.
type ArchiveStore interface {
	// Save writes the snapshot for result and returns its location.
	Save(ctx context.Context, result *ExtractionResult, markdown string) (string, error)
}
