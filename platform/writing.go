package platform

import (
	"github.com/fwojciec/pinmark"
)

var _ pinmark.Strategy = (*Writing)(nil)

// Writing extracts long-form articles of blogging platforms.
type Writing struct {
	family
}

// NewWriting creates a new Writing strategy.
func NewWriting() *Writing {
	return &Writing{family{
		name:  "writing",
		label: "Article",
		icon:  "✍️",
		sites: []site{
			{match: "medium.com", name: "Medium", tag: "medium", icon: "✍️"},
			{match: "substack.com", name: "Substack", tag: "substack", icon: "📰"},
			{match: "dev.to", name: "DEV", tag: "devto", icon: "👩‍💻"},
			{match: "hashnode.dev", name: "Hashnode", tag: "hashnode", icon: "📝"},
			{match: "hashnode.com", name: "Hashnode", tag: "hashnode", icon: "📝"},
			{match: "mirror.xyz", name: "Mirror", tag: "mirror", icon: "🪞"},
		},
	}}
}

// Extract returns the article with its author and publication tags.
func (s *Writing) Extract(page pinmark.PageContext) *pinmark.ExtractionResult {
	d := s.baseline(page)
	d.Title = trimSuffixes(d.Title, " | Medium", " - DEV Community", " | Hashnode")

	author := firstNonEmpty(
		page.Meta("author"),
		firstText(page, `a[rel="author"]`, `[data-testid="authorName"]`, ".author-name", ".crayons-story__secondary"),
	)
	topics := metaAll(page, `meta[property="article:tag"]`)
	if len(topics) == 0 {
		topics = elementTexts(page, `a[rel="tag"], a[href*="/tag/"], a[href*="/tags/"], a[href^="/t/"]`)
	}

	d.Tags = append(d.Tags, "article")
	if tag := TagOf(author); tag != "" {
		d.Tags = append(d.Tags, tag)
	}
	d.Tags = append(d.Tags, tagsOf(topics, 4)...)
	return pinmark.NewExtractionResult(d)
}
