package platform

import (
	"strings"

	"github.com/fwojciec/pinmark"
)

var _ pinmark.Strategy = (*Docs)(nil)

// Docs extracts pages of hosted documents and knowledge bases.
type Docs struct {
	family
}

// NewDocs creates a new Docs strategy.
func NewDocs() *Docs {
	return &Docs{family{
		name:  "docs",
		label: "Docs",
		icon:  "📄",
		sites: []site{
			{match: "notion.so", name: "Notion", tag: "notion", icon: "📝"},
			{match: "notion.site", name: "Notion", tag: "notion", icon: "📝"},
			{match: "docs.google.com", name: "Google Docs", tag: "google-docs", icon: "📄"},
			{match: "atlassian.net", name: "Confluence", tag: "confluence", icon: "📘"},
			{match: "gitbook.io", name: "GitBook", tag: "gitbook", icon: "📚"},
			{match: "readthedocs.io", name: "Read the Docs", tag: "readthedocs", icon: "📖"},
		},
	}}
}

// Extract returns the document with its kind as a tag.
func (s *Docs) Extract(page pinmark.PageContext) *pinmark.ExtractionResult {
	d := s.baseline(page)
	d.Title = firstNonEmpty(d.Title, page.Find("h1").Text())
	d.Title = trimSuffixes(d.Title,
		" - Google Docs", " - Google Sheets", " - Google Slides", " - Google Forms",
		" - Confluence", " | Notion", " - GitBook", " — Read the Docs documentation",
	)
	d.Tags = append(d.Tags, "docs")
	if kind := documentKind(page.Path()); kind != "" {
		d.Tags = append(d.Tags, kind)
	}
	return pinmark.NewExtractionResult(d)
}

// documentKind names the kind of a Google Workspace document by its path.
func documentKind(path string) string {
	for prefix, kind := range map[string]string{
		"/document/":     "doc",
		"/spreadsheets/": "sheet",
		"/presentation/": "slides",
		"/forms/":        "form",
	} {
		if strings.HasPrefix(path, prefix) {
			return kind
		}
	}
	return ""
}
