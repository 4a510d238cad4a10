package platform_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fwojciec/pinmark"
	"github.com/fwojciec/pinmark/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hostStrategy handles a single hostname.
type hostStrategy struct {
	host string
}

func (s hostStrategy) Name() string     { return "custom" }
func (s hostStrategy) Platform() string { return "Custom" }
func (s hostStrategy) Icon() string     { return "*" }
func (s hostStrategy) CanHandle(page pinmark.PageContext) bool {
	return page.Hostname() == s.host
}
func (s hostStrategy) Extract(page pinmark.PageContext) *pinmark.ExtractionResult {
	return pinmark.NewExtractionResult(pinmark.Draft{Title: "custom", URL: page.URL()})
}

func TestNewRouter(t *testing.T) {
	t.Parallel()

	t.Run("appends generic fallback", func(t *testing.T) {
		t.Parallel()

		r := platform.NewRouter(platform.NewVideo())

		names := strategyNames(r.Strategies())
		assert.Equal(t, []string{"video", "generic"}, names)
	})

	t.Run("does not duplicate generic fallback", func(t *testing.T) {
		t.Parallel()

		r := platform.NewRouter(platform.NewCode(), platform.NewGeneric())

		assert.Equal(t, []string{"code", "generic"}, strategyNames(r.Strategies()))
	})

	t.Run("empty router still selects a strategy", func(t *testing.T) {
		t.Parallel()

		r := platform.NewRouter()
		page := newPage(t, "https://example.com/", "")

		require.NotNil(t, r.SelectStrategy(page))
		assert.Equal(t, "generic", r.SelectStrategy(page).Name())
	})

	t.Run("earlier strategy wins", func(t *testing.T) {
		t.Parallel()

		r := platform.NewRouter(append([]pinmark.Strategy{hostStrategy{host: "github.com"}}, platform.DefaultStrategies()...)...)
		page := newPage(t, "https://github.com/a/b", "")

		assert.Equal(t, "custom", r.SelectStrategy(page).Name())
		assert.Equal(t, "custom", r.ExtractPage(page).Title)
	})
}

func TestDefaultStrategies(t *testing.T) {
	t.Parallel()

	names := strategyNames(platform.DefaultStrategies())

	assert.Equal(t, []string{
		"video", "instagram", "tiktok", "reddit", "linkedin", "social",
		"code", "writing", "commerce", "travel", "jobs", "docs", "generic",
	}, names)
}

func TestRouter_SelectStrategy(t *testing.T) {
	t.Parallel()

	r := platform.NewDefaultRouter()
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.youtube.com/watch?v=1", "video"},
		{"https://youtu.be/abc", "video"},
		{"https://vimeo.com/123", "video"},
		{"https://www.instagram.com/p/abc/", "instagram"},
		{"https://www.tiktok.com/@a/video/1", "tiktok"},
		{"https://old.reddit.com/r/golang/", "reddit"},
		{"https://www.linkedin.com/feed/", "linkedin"},
		{"https://x.com/a/status/1", "social"},
		{"https://mobile.twitter.com/a", "social"},
		{"https://bsky.app/profile/a", "social"},
		{"https://github.com/a/b", "code"},
		{"https://gitlab.com/a/b", "code"},
		{"https://medium.com/@a/b", "writing"},
		{"https://someone.substack.com/p/x", "writing"},
		{"https://www.amazon.co.uk/dp/B000000000", "commerce"},
		{"https://www.ebay.de/itm/1", "commerce"},
		{"https://www.airbnb.fr/rooms/1", "travel"},
		{"https://boards.greenhouse.io/acme/jobs/1", "jobs"},
		{"https://acme.atlassian.net/wiki/x", "docs"},
		{"https://docs.google.com/document/d/1", "docs"},
		{"https://www.netflix.com/title/1", "generic"},
		{"https://example.com/", "generic"},
		{"https://example.com/youtube.com/watch", "generic"},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			t.Parallel()

			page := newPage(t, tt.url, "")

			assert.Equal(t, tt.want, r.SelectStrategy(page).Name())
		})
	}
}

func TestRouter_CommerceBeforeTravel(t *testing.T) {
	t.Parallel()

	page := newPage(t, "https://amazon.booking.com/item", "")
	require.True(t, platform.NewTravel().CanHandle(page))
	require.True(t, platform.NewCommerce().CanHandle(page))

	got := platform.NewDefaultRouter().SelectStrategy(page)

	assert.Equal(t, "commerce", got.Name())
}

func TestRouter_ExtractPage(t *testing.T) {
	t.Parallel()

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()

		r := platform.NewDefaultRouter()
		html := `<html><head><meta property="og:title" content="Same"><meta name="keywords" content="a,b,c"></head></html>`

		first := r.ExtractPage(newPage(t, "https://example.com/x", html))
		second := r.ExtractPage(newPage(t, "https://example.com/x", html))

		assert.Equal(t, first, second)
	})

	t.Run("bounded fields", func(t *testing.T) {
		t.Parallel()

		keywords := make([]string, 12)
		for i := range keywords {
			keywords[i] = "k" + strings.Repeat("x", i)
		}
		html := `<html><head>
			<meta property="og:site_name" content="Site">
			<meta property="og:title" content="` + strings.Repeat("t", 300) + `">
			<meta property="og:description" content="` + strings.Repeat("d", 1500) + `">
			<meta property="og:image" content="/cover.jpg">
			<meta name="keywords" content="` + strings.Join(keywords, ",") + `">
		</head></html>`

		got := platform.NewDefaultRouter().ExtractPage(newPage(t, "https://example.com/x", html))

		assert.Equal(t, pinmark.MaxTitleLength, utf8.RuneCountInString(got.Title))
		assert.Equal(t, pinmark.MaxDescriptionLength, utf8.RuneCountInString(got.Description))
		assert.LessOrEqual(t, len(got.AutoTags), pinmark.MaxAutoTags)
		assert.Equal(t, []pinmark.Attachment{
			{Kind: pinmark.AttachmentLink, URL: "https://example.com/x"},
			{Kind: pinmark.AttachmentImage, URL: "https://example.com/cover.jpg"},
		}, got.Attachments)
	})
}

func TestRouter_Feed(t *testing.T) {
	t.Parallel()

	r := platform.NewDefaultRouter()

	t.Run("feed page exposes post selector", func(t *testing.T) {
		t.Parallel()

		page := newPage(t, "https://www.reddit.com/", "")

		assert.True(t, r.IsFeedPage(page))
		assert.NotEmpty(t, r.PostSelector(page))
	})

	t.Run("non-feed page", func(t *testing.T) {
		t.Parallel()

		page := newPage(t, "https://github.com/a/b", `<html><body><div role="article"><a aria-label="Like"></a></div></body></html>`)
		post := page.Find(`div[role="article"]`)

		assert.False(t, r.IsFeedPage(page))
		assert.Empty(t, r.PostSelector(page))
		assert.Nil(t, r.ButtonAnchor(page, post))
		assert.Equal(t, r.ExtractPage(page), r.ExtractPost(page, post))
	})

	t.Run("missing post degrades to page extraction", func(t *testing.T) {
		t.Parallel()

		page := newPage(t, "https://x.com/a/status/1", `<html><head><meta property="og:title" content="Post"></head></html>`)
		post := page.Find(r.PostSelector(page))

		assert.False(t, post.Exists())
		assert.Equal(t, r.ExtractPage(page), r.ExtractPost(page, post))
		assert.Equal(t, r.ExtractPage(page), r.ExtractPost(page, nil))
	})

	t.Run("feed post", func(t *testing.T) {
		t.Parallel()

		page := newPage(t, "https://x.com/home", `<html><body>
			<article data-testid="tweet">
				<a href="/alice"><span>Alice</span></a>
				<div data-testid="tweetText">Hello #golang</div>
				<div role="group"><button aria-label="Reply"></button></div>
				<a href="/alice/status/1790000000000?s=20&amp;t=abc">1h</a>
			</article>
		</body></html>`)
		post := page.Find(r.PostSelector(page))

		got := r.ExtractPost(page, post)

		assert.Equal(t, "https://x.com/alice/status/1790000000000?s=20&t=abc", got.URL)
		assert.Equal(t, []string{"x", "golang"}, got.AutoTags)
		anchor := r.ButtonAnchor(page, post)
		require.NotNil(t, anchor)
		assert.Equal(t, "group", anchor.Attr("role"))
	})
}

func strategyNames(strategies []pinmark.Strategy) []string {
	names := make([]string, 0, len(strategies))
	for _, s := range strategies {
		names = append(names, s.Name())
	}
	return names
}
