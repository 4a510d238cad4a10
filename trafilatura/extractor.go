// Package trafilatura extracts readable article content for archive
// snapshots using go-trafilatura.
package trafilatura

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/fwojciec/pinmark"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements pinmark.ArticleExtractor at compile time.
var _ pinmark.ArticleExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct {
	// Fallback enables the readability and dom-distiller fallbacks, which
	// help on short social posts at some cost in speed.
	Fallback bool
}

// NewExtractor creates a new Extractor with fallbacks enabled.
func NewExtractor() *Extractor {
	return &Extractor{Fallback: true}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string, pageURL string) (*pinmark.Article, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, pinmark.Errorf(pinmark.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: e.Fallback,
		IncludeImages:  true,
		IncludeLinks:   true,
	}
	if u, err := url.Parse(pageURL); err == nil && u.Host != "" {
		opts.OriginalURL = u
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &pinmark.Article{
		Title:       pinmark.CollapseSpace(result.Metadata.Title),
		Byline:      pinmark.CollapseSpace(result.Metadata.Author),
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
