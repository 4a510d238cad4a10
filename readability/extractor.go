// Package readability extracts readable article content using
// go-readability. It is the lighter alternative to the trafilatura package.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/pinmark"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements pinmark.ArticleExtractor at compile time.
var _ pinmark.ArticleExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string, pageURL string) (*pinmark.Article, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, pinmark.Errorf(pinmark.EINVALID, "empty HTML input")
	}

	var base *url.URL
	if u, err := url.Parse(pageURL); err == nil && u.Host != "" {
		base = u
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), base)
	if err != nil {
		return nil, err
	}

	return &pinmark.Article{
		Title:       pinmark.CollapseSpace(article.Title),
		Byline:      pinmark.CollapseSpace(article.Byline),
		ContentHTML: article.Content,
	}, nil
}
