package platform

import (
	"regexp"

	"github.com/fwojciec/pinmark"
)

var _ pinmark.Strategy = (*TikTok)(nil)

var (
	tiktokVideoURL = regexp.MustCompile(`^https?://(?:[\w-]+\.)*tiktok\.com/@[\w.-]+/video/\d+`)
	tiktokHandle   = regexp.MustCompile(`/@([\w.-]+)`)
)

// TikTok extracts short-video pages.
type TikTok struct {
	family
}

// NewTikTok creates a new TikTok strategy.
func NewTikTok() *TikTok {
	return &TikTok{family{
		name:  "tiktok",
		label: "TikTok",
		icon:  "🎵",
		sites: []site{{match: "tiktok.com", name: "TikTok", tag: "tiktok", icon: "🎵"}},
	}}
}

// Extract returns the video with its permalink recovered from the canonical
// link, og:url or the first video link on the page.
func (s *TikTok) Extract(page pinmark.PageContext) *pinmark.ExtractionResult {
	d := s.baseline(page)
	d.Title = trimSuffixes(d.Title, " | TikTok")
	d.URL = tiktokPermalink(page)

	d.Tags = append(d.Tags, "video")
	if m := tiktokHandle.FindStringSubmatch(d.URL); m != nil {
		d.Tags = append(d.Tags, TagOf(m[1]))
	}
	d.Tags = append(d.Tags, hashtags(d.Description, 5)...)
	return pinmark.NewExtractionResult(d)
}

func tiktokPermalink(page pinmark.PageContext) string {
	candidates := []string{
		page.Find(`link[rel="canonical"]`).Attr("href"),
		page.Meta("og:url"),
		page.URL(),
	}
	for _, a := range page.FindAll(`a[href*="/video/"]`) {
		candidates = append(candidates, a.Attr("href"))
	}
	for _, c := range candidates {
		if u := pinmark.ResolveURL(page.URL(), c); tiktokVideoURL.MatchString(u) {
			return tiktokVideoURL.FindString(u)
		}
	}
	return canonicalURL(page)
}
