package platform

import (
	"regexp"

	"github.com/fwojciec/pinmark"
)

var _ pinmark.FeedStrategy = (*Reddit)(nil)

var (
	subredditPath   = regexp.MustCompile(`(?:^|/)r/(\w+)`)
	subredditSuffix = regexp.MustCompile(`\s*:\s*r/\w+$`)
)

// Reddit extracts link-aggregator posts, on their comments page or from a
// listing.
type Reddit struct {
	feed
}

// NewReddit creates a new Reddit strategy.
func NewReddit() *Reddit {
	return &Reddit{feed{
		family: family{
			name:  "reddit",
			label: "Reddit",
			icon:  "👽",
			sites: []site{{match: "reddit.com", name: "Reddit", tag: "reddit", icon: "👽"}},
		},
		postSelector: `shreddit-post, div[data-testid="post-container"], div.thing.link`,
		authors:      []string{`[slot="authorName"]`, `a[data-testid="post_author_link"]`, "a.author"},
		texts:        []string{`[slot="title"]`, "h3", "a.title"},
		images:       []string{`img[alt="Post image"]`, "img.media-lightbox-img", "a.thumbnail img"},
		permalinks:   []*regexp.Regexp{regexp.MustCompile(`/comments/\w+`)},
		excluded:     []string{"/user/", "/u/"},
		actions:      []string{`[slot="share-button"]`, "ul.flat-list.buttons"},
	}}
}

// Extract returns the post of a comments page.
func (s *Reddit) Extract(page pinmark.PageContext) *pinmark.ExtractionResult {
	d := s.baseline(page)
	d.Title = trimSuffixes(subredditSuffix.ReplaceAllString(d.Title, ""), " - Reddit", " : Reddit")
	d.Tags = append(d.Tags, subredditTag(d.URL))
	return pinmark.NewExtractionResult(d)
}

// ExtractFromPost returns a single post of a listing. Post elements carrying
// their own title and permalink attributes take precedence over scraped text.
func (s *Reddit) ExtractFromPost(page pinmark.PageContext, post pinmark.Element) *pinmark.ExtractionResult {
	d, author, text := s.post(page, post)
	if title := firstNonEmpty(post.Attr("post-title"), text); title != "" {
		d.Title = title
	}
	if u := pinmark.ResolveURL(page.URL(), post.Attr("permalink")); u != "" {
		d.URL = pinmark.StripTrackingParams(u)
	}
	d.Description = ""
	if author = firstNonEmpty(author, post.Attr("author")); author != "" {
		d.Description = "Posted by u/" + author
	}

	tag := subredditTag(post.Attr("subreddit-prefixed-name"))
	if tag == "" {
		tag = subredditTag(d.URL)
	}
	if tag == "" {
		tag = subredditTag(page.URL())
	}
	d.Tags = append(d.Tags, tag)
	return pinmark.NewExtractionResult(d)
}

func subredditTag(u string) string {
	if m := subredditPath.FindStringSubmatch(u); m != nil {
		return TagOf(m[1])
	}
	return ""
}
