package platform

import (
	"net/url"
	"strings"

	"github.com/fwojciec/pinmark"
)

var _ pinmark.Strategy = (*Video)(nil)

// Video extracts video pages of the major video hosts.
type Video struct {
	family
}

// NewVideo creates a new Video strategy.
func NewVideo() *Video {
	return &Video{family{
		name:  "video",
		label: "Video",
		icon:  "🎬",
		sites: []site{
			{match: "youtube.com", name: "YouTube", tag: "youtube", icon: "▶️"},
			{match: "youtu.be", name: "YouTube", tag: "youtube", icon: "▶️"},
			{match: "vimeo.com", name: "Vimeo", tag: "vimeo", icon: "🎬"},
			{match: "twitch.tv", name: "Twitch", tag: "twitch", icon: "🎮"},
			{match: "dailymotion.com", name: "Dailymotion", tag: "dailymotion", icon: "🎬"},
		},
	}}
}

// Extract returns the video's title, channel and thumbnail.
func (v *Video) Extract(page pinmark.PageContext) *pinmark.ExtractionResult {
	d := v.baseline(page)
	d.Title = trimSuffixes(d.Title, " - YouTube", " on Vimeo", " - Twitch", " - Dailymotion", " - video Dailymotion")

	if d.Thumbnail == "" {
		if id := youTubeID(page.URL()); id != "" {
			d.Thumbnail = "https://i.ytimg.com/vi/" + id + "/hqdefault.jpg"
		}
	}

	channel := firstNonEmpty(
		page.Find(`[itemprop="author"] [itemprop="name"]`).Attr("content"),
		firstText(page, "ytd-channel-name a", "#owner-name a", ".channel-name", `[data-a-target="stream-title"] + a`),
		page.Meta("author"),
	)
	d.Tags = append(d.Tags, "video")
	if tag := TagOf(channel); tag != "" {
		d.Tags = append(d.Tags, tag)
	}
	d.Tags = append(d.Tags, tagsOf(metaAll(page, `meta[property="og:video:tag"]`), 3)...)
	return pinmark.NewExtractionResult(d)
}

// youTubeID returns the video id of a watch, short or youtu.be URL.
func youTubeID(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	switch {
	case host == "youtu.be":
		return strings.Trim(u.Path, "/")
	case strings.HasSuffix(host, "youtube.com"):
		if id := u.Query().Get("v"); id != "" {
			return id
		}
		if id, ok := strings.CutPrefix(u.Path, "/shorts/"); ok {
			return strings.Trim(id, "/")
		}
	}
	return ""
}
