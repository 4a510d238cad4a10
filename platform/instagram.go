package platform

import (
	"regexp"
	"strings"

	"github.com/fwojciec/pinmark"
)

var _ pinmark.FeedStrategy = (*Instagram)(nil)

// Instagram extracts image posts and reels, on their own page or from the
// home feed.
type Instagram struct {
	feed
}

// NewInstagram creates a new Instagram strategy.
func NewInstagram() *Instagram {
	return &Instagram{feed{
		family: family{
			name:  "instagram",
			label: "Instagram",
			icon:  "📷",
			sites: []site{{match: "instagram.com", name: "Instagram", tag: "instagram", icon: "📷"}},
		},
		postSelector: `article[role="presentation"], main article, div[data-testid="post"]`,
		authors:      []string{`header a[role="link"]`, "header a", "span._aap6 a"},
		texts:        []string{"h1", "div._a9zs span", `span[dir="auto"]`},
		images:       []string{"div._aagv img", "img[srcset]", "img"},
		permalinks: []*regexp.Regexp{
			regexp.MustCompile(`instagram\.com/(?:[\w.]+/)?p/[\w-]+`),
			regexp.MustCompile(`instagram\.com/(?:[\w.]+/)?reels?/[\w-]+`),
		},
		excluded: []string{"/explore/", "/accounts/", "/followers", "/following", "/stories/"},
		actions:  []string{"section", `div[role="button"]`},
	}}
}

// Extract returns the post or reel of a permalink page.
func (s *Instagram) Extract(page pinmark.PageContext) *pinmark.ExtractionResult {
	d := s.baseline(page)
	d.Title = trimSuffixes(d.Title, " • Instagram", " | Instagram")
	d.Tags = append(d.Tags, instagramKind(d.URL))
	d.Tags = append(d.Tags, hashtags(d.Description, 5)...)
	return pinmark.NewExtractionResult(d)
}

// ExtractFromPost returns a single post of the feed.
func (s *Instagram) ExtractFromPost(page pinmark.PageContext, post pinmark.Element) *pinmark.ExtractionResult {
	d, _, text := s.post(page, post)
	d.Tags = append(d.Tags, instagramKind(d.URL))
	d.Tags = append(d.Tags, hashtags(text, MaxPostHashtags)...)
	return pinmark.NewExtractionResult(d)
}

func instagramKind(u string) string {
	if strings.Contains(u, "/reel/") || strings.Contains(u, "/reels/") {
		return "reel"
	}
	return "post"
}
