package platform

import (
	"regexp"
	"strings"

	"github.com/fwojciec/pinmark"
)

var _ pinmark.FeedStrategy = (*Social)(nil)

var mastodon = site{match: "mastodon.social", name: "Mastodon", tag: "mastodon", icon: "🐘"}

// Social extracts posts of microblogging networks, including any Mastodon
// instance identified by its application-name meta.
type Social struct {
	feed
}

// NewSocial creates a new Social strategy.
func NewSocial() *Social {
	return &Social{feed{
		family: family{
			name:  "social",
			label: "Social",
			icon:  "💬",
			sites: []site{
				{match: "x.com", name: "X", tag: "x", icon: "𝕏"},
				{match: "twitter.com", name: "X", tag: "x", icon: "𝕏"},
				{match: "threads.net", name: "Threads", tag: "threads", icon: "🧵"},
				{match: "bsky.app", name: "Bluesky", tag: "bluesky", icon: "🦋"},
				{match: "facebook.com", name: "Facebook", tag: "facebook", icon: "📘"},
				mastodon,
				{match: "mstdn.", name: "Mastodon", tag: "mastodon", icon: "🐘"},
				{match: "fosstodon.org", name: "Mastodon", tag: "mastodon", icon: "🐘"},
			},
			fallback: &mastodon,
		},
		postSelector: strings.Join([]string{
			`article[data-testid="tweet"]`,
			"article.status",
			"div.status",
			`div[data-pressable-container="true"]`,
			`div[data-testid^="feedItem-by-"]`,
			`div[role="article"]`,
		}, ", "),
		authors: []string{
			`[data-testid="User-Name"] span`,
			".display-name__html",
			".display-name",
			`a[href^="/@"] span`,
			"h2 strong",
		},
		texts: []string{
			`[data-testid="tweetText"]`,
			".status__content",
			".e-content",
			`[data-testid="postText"]`,
			`div[data-ad-preview="message"]`,
			`span[dir="auto"]`,
		},
		images: []string{`[data-testid="tweetPhoto"] img`, ".media-gallery img", `img[draggable="true"]`},
		permalinks: []*regexp.Regexp{
			regexp.MustCompile(`/status(?:es)?/\d+`),
			regexp.MustCompile(`/post/\w+`),
			regexp.MustCompile(`/posts/\w+`),
			regexp.MustCompile(`/@[\w.]+/\d+`),
		},
		excluded: []string{"/followers", "/following", "/intent/", "/analytics"},
		actions:  []string{`[role="group"]`, ".status__action-bar", "footer"},
	}}
}

// CanHandle matches the known hosts and any Mastodon instance.
func (s *Social) CanHandle(page pinmark.PageContext) bool {
	return s.family.CanHandle(page) || isMastodon(page)
}

func isMastodon(page pinmark.PageContext) bool {
	return strings.EqualFold(page.Meta("application-name"), "Mastodon")
}

// Extract returns the post of a status page.
func (s *Social) Extract(page pinmark.PageContext) *pinmark.ExtractionResult {
	d := s.baseline(page)
	d.Title = trimSuffixes(d.Title, " / X", " on X", " / Twitter", " • Threads", " | Facebook")
	d.Tags = append(d.Tags, hashtags(d.Description, 5)...)
	return pinmark.NewExtractionResult(d)
}

// ExtractFromPost returns a single post of a timeline.
func (s *Social) ExtractFromPost(page pinmark.PageContext, post pinmark.Element) *pinmark.ExtractionResult {
	d, _, text := s.post(page, post)
	d.Tags = append(d.Tags, hashtags(text, MaxPostHashtags)...)
	return pinmark.NewExtractionResult(d)
}
