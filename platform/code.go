package platform

import (
	"strings"

	"github.com/fwojciec/pinmark"
)

var _ pinmark.Strategy = (*Code)(nil)

// Code extracts repositories, issues and pull requests of code hosts.
type Code struct {
	family
}

// NewCode creates a new Code strategy.
func NewCode() *Code {
	return &Code{family{
		name:  "code",
		label: "Code",
		icon:  "💻",
		sites: []site{
			{match: "github.com", name: "GitHub", tag: "github", icon: "🐙"},
			{match: "gitlab.com", name: "GitLab", tag: "gitlab", icon: "🦊"},
			{match: "bitbucket.org", name: "Bitbucket", tag: "bitbucket", icon: "🪣"},
			{match: "codeberg.org", name: "Codeberg", tag: "codeberg", icon: "🏔️"},
		},
	}}
}

// Extract returns the repository, issue or pull request with its language
// and topics as tags.
func (s *Code) Extract(page pinmark.PageContext) *pinmark.ExtractionResult {
	d := s.baseline(page)
	d.Title = trimPrefixes(d.Title, "GitHub - ")
	d.Title = trimSuffixes(d.Title, " · GitHub", " · GitLab", " — Bitbucket", " - Codeberg.org")

	language := firstText(page,
		`[itemprop="programmingLanguage"]`,
		`.BorderGrid a[href*="search?l="] span.text-bold`,
		".repository-language",
	)
	topics := elementTexts(page, "a.topic-tag, a.gl-badge.topic, .topics a")

	d.Tags = append(d.Tags, codeKind(page.Path()))
	if tag := TagOf(language); tag != "" {
		d.Tags = append(d.Tags, tag)
	}
	d.Tags = append(d.Tags, tagsOf(topics, 4)...)
	return pinmark.NewExtractionResult(d)
}

// codeKind discriminates repositories, issues and pull requests by path.
func codeKind(path string) string {
	switch {
	case strings.Contains(path, "/pull/"),
		strings.Contains(path, "/pulls/"),
		strings.Contains(path, "/merge_requests/"),
		strings.Contains(path, "/pull-requests/"):
		return "pull-request"
	case strings.Contains(path, "/issues/"):
		return "issue"
	default:
		return "repo"
	}
}
