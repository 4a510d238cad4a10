package platform

import (
	"strconv"
	"strings"

	"github.com/fwojciec/pinmark"
)

// MaxKeywordTags is the number of keywords a cascade contributes as tags.
const MaxKeywordTags = 5

// MinImageWidth is the smallest declared width accepted for a DOM image.
const MinImageWidth = 100

// Signals are the raw inputs of the metadata cascade. Both the DOM-backed
// generic strategy and the headless parser fill them, so field precedence is
// identical on both paths.
type Signals struct {
	// PageURL is the absolute URL the document was loaded from.
	PageURL string

	// JSONLD holds the raw text of every structured-data block.
	JSONLD []string

	// Meta looks up a meta tag by property, name or itemprop.
	Meta func(key string) string

	// Canonical is the href of the canonical link, if any.
	Canonical string

	// Title is the document title.
	Title string

	// DOM heuristics.
	Heading   string
	Paragraph string
	Image     string
}

// Fields is the outcome of the cascade.
type Fields struct {
	Title       string
	Description string
	Image       string
	SiteName    string
	URL         string
	Keywords    []string
}

// Cascade resolves each field from the first source that yields it:
// structured data, Open Graph, Twitter Card, standard meta and title, and
// finally DOM heuristics.
func Cascade(s Signals) Fields {
	meta := s.Meta
	if meta == nil {
		meta = func(string) string { return "" }
	}

	var ld map[string]any
	for _, e := range JSONLDEntries(s.JSONLD) {
		if jsonText(e["name"]) != "" || jsonText(e["headline"]) != "" {
			ld = e
			break
		}
	}

	f := Fields{
		Title: firstNonEmpty(
			jsonText(ld["name"]),
			jsonText(ld["headline"]),
			meta("og:title"),
			meta("twitter:title"),
			s.Title,
			s.Heading,
		),
		Description: firstNonEmpty(
			jsonText(ld["description"]),
			meta("og:description"),
			meta("twitter:description"),
			meta("description"),
			s.Paragraph,
		),
		Image: firstNonEmpty(
			jsonImage(ld["image"]),
			meta("og:image"),
			meta("og:image:url"),
			meta("twitter:image"),
			meta("twitter:image:src"),
			s.Image,
		),
		SiteName: meta("og:site_name"),
	}

	f.Keywords = jsonStrings(ld["keywords"])
	if len(f.Keywords) == 0 {
		f.Keywords = jsonStrings(meta("keywords"))
	}

	f.URL = s.PageURL
	for _, candidate := range []string{s.Canonical, meta("og:url")} {
		if u := pinmark.ResolveURL(s.PageURL, candidate); u != "" {
			f.URL = u
			break
		}
	}
	return f
}

// Tags returns the tags a cascade contributes: the site name, up to
// MaxKeywordTags keywords and the registrable domain label.
func (f Fields) Tags() []string {
	var tags []string
	if tag := TagOf(f.SiteName); tag != "" {
		tags = append(tags, tag)
	}
	tags = append(tags, tagsOf(f.Keywords, MaxKeywordTags)...)
	if label := SecondLevelLabel(pinmark.Hostname(f.URL)); label != "" {
		tags = append(tags, label)
	}
	return tags
}

// Draft converts the fields into a result draft for the page at pageURL.
func (f Fields) Draft(pageURL string) pinmark.Draft {
	return pinmark.Draft{
		Title:       f.Title,
		Description: f.Description,
		Thumbnail:   f.Image,
		URL:         f.URL,
		Platform:    f.SiteName,
		Tags:        f.Tags(),
		BaseURL:     pageURL,
	}
}

// acceptImageWidth reports whether a declared width attribute is large
// enough. Images without a parseable width are accepted.
func acceptImageWidth(width string) bool {
	width = strings.TrimSuffix(strings.TrimSpace(width), "px")
	if width == "" {
		return true
	}
	n, err := strconv.Atoi(width)
	if err != nil {
		return true
	}
	return n >= MinImageWidth
}
