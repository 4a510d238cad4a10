package platform

import (
	"regexp"
	"strings"

	"github.com/fwojciec/pinmark"
)

// MaxExcerptLength bounds the post text used as a feed post description.
const MaxExcerptLength = 280

// MaxPostHashtags is the number of hashtags a feed post contributes as tags.
const MaxPostHashtags = 3

// site maps a hostname fragment to a display name, tag and icon.
type site struct {
	match string
	name  string
	tag   string
	icon  string
}

// family is the shared base of the host-matched strategies.
type family struct {
	name  string
	label string
	icon  string
	sites []site
	// fallback identity for pages accepted without a host match.
	fallback *site
}

// Name returns the strategy's identifier.
func (f *family) Name() string { return f.name }

// Platform returns the family's display label.
func (f *family) Platform() string { return f.label }

// Icon returns the family's icon.
func (f *family) Icon() string { return f.icon }

// CanHandle reports whether the page's hostname contains one of the
// family's host fragments.
func (f *family) CanHandle(page pinmark.PageContext) bool {
	_, ok := f.siteFor(page.Hostname())
	return ok
}

func (f *family) siteFor(host string) (site, bool) {
	host = strings.ToLower(host)
	for _, s := range f.sites {
		if hostContains(host, s.match) {
			return s, true
		}
	}
	return site{}, false
}

// hostContains reports whether fragment occurs in host starting at a label
// boundary, so "x.com" matches "mobile.x.com" but not "netflix.com".
func hostContains(host, fragment string) bool {
	for i := 0; i+len(fragment) <= len(host); {
		j := strings.Index(host[i:], fragment)
		if j < 0 {
			return false
		}
		if at := i + j; at == 0 || host[at-1] == '.' {
			return true
		}
		i += j + 1
	}
	return false
}

// baseline builds a draft from Open Graph and Twitter Card metadata with the
// matched site's identity.
func (f *family) baseline(page pinmark.PageContext) pinmark.Draft {
	s, ok := f.siteFor(page.Hostname())
	if !ok && f.fallback != nil {
		s, ok = *f.fallback, true
	}
	if !ok {
		s = site{name: f.label, icon: f.icon}
	}
	d := pinmark.Draft{
		Title:        firstNonEmpty(metaFirst(page, "og:title", "twitter:title"), page.Title()),
		Description:  metaFirst(page, "og:description", "twitter:description", "description"),
		Thumbnail:    metaFirst(page, "og:image", "og:image:url", "twitter:image", "twitter:image:src"),
		URL:          canonicalURL(page),
		Platform:     s.name,
		PlatformIcon: firstNonEmpty(s.icon, f.icon),
		BaseURL:      page.URL(),
	}
	if s.tag != "" {
		d.Tags = []string{s.tag}
	}
	return d
}

// feed is the shared base of strategies that can extract single posts out of
// an infinite-scroll feed.
type feed struct {
	family

	postSelector string
	authors      []string
	texts        []string
	images       []string
	permalinks   []*regexp.Regexp
	// excluded link fragments, e.g. profile and follow links.
	excluded []string
	// structural fallback for the action bar when no label matches.
	actions []string
}

// PostSelector returns the selector matching a single post in the feed.
func (f *feed) PostSelector() string { return f.postSelector }

// actionLabels are the accessible names of the like, comment and share
// controls in English, German, French, Spanish, Portuguese and Polish.
var actionLabels = []string{
	"Like", "Gefällt mir", "J’aime", "J'aime", "Me gusta", "Curtir", "Lubię to",
	"Comment", "Kommentieren", "Commenter", "Comentar", "Skomentuj",
	"Share", "Teilen", "Partager", "Compartir", "Compartilhar", "Udostępnij",
}

// ButtonAnchor returns the element the capture button is attached next to,
// or nil when the post has no recognizable action bar.
func (f *feed) ButtonAnchor(post pinmark.Element) pinmark.Element {
	if post == nil || !post.Exists() {
		return nil
	}
	for _, label := range actionLabels {
		sel := `[aria-label^="` + label + `"]`
		if el := post.Find(sel); el.Exists() {
			return el
		}
	}
	for _, sel := range f.actions {
		if el := post.Find(sel); el.Exists() {
			return el
		}
	}
	return nil
}

// post extracts the fields common to all feed posts. Tags hold only the
// site tag; callers append their discriminators and the post's hashtags.
func (f *feed) post(page pinmark.PageContext, post pinmark.Element) (d pinmark.Draft, author, text string) {
	d = f.baseline(page)
	author = firstText(post, f.authors...)
	text = firstText(post, f.texts...)

	image := ""
	for _, sel := range f.images {
		if image = firstNonEmpty(post.Find(sel).Attr("src"), post.Find(sel).Attr("data-src")); image != "" {
			break
		}
	}

	d.Title = firstNonEmpty(postTitle(author, d.Platform), pinmark.Truncate(text, 100), d.Title)
	d.Description = pinmark.Truncate(text, MaxExcerptLength)
	d.Thumbnail = image
	d.URL = recoverPermalink(page, post, f.permalinks, f.excluded)
	return d, author, text
}

func postTitle(author, platform string) string {
	if author == "" {
		return ""
	}
	return joinNonEmpty(" on ", author, platform)
}

var longNumericID = regexp.MustCompile(`\d{6,}`)

// recoverPermalink finds the URL of a single post: a link matching one of
// the permalink patterns, then any link carrying a long numeric id, then the
// page URL.
func recoverPermalink(page pinmark.PageContext, post pinmark.Element, patterns []*regexp.Regexp, excluded []string) string {
	var links []string
	if post != nil {
		for _, a := range post.FindAll("a[href]") {
			u := pinmark.ResolveURL(page.URL(), a.Attr("href"))
			if u == "" || containsAny(u, excluded) {
				continue
			}
			links = append(links, u)
		}
	}

	for _, u := range links {
		for _, p := range patterns {
			if p.MatchString(u) {
				return pinmark.StripTrackingParams(u)
			}
		}
	}
	for _, u := range links {
		if longNumericID.MatchString(u) {
			return pinmark.StripTrackingParams(u)
		}
	}
	return pinmark.StripTrackingParams(page.URL())
}

func containsAny(s string, fragments []string) bool {
	for _, f := range fragments {
		if strings.Contains(s, f) {
			return true
		}
	}
	return false
}
