package platform

import (
	"github.com/fwojciec/pinmark"
)

var _ pinmark.Strategy = (*Generic)(nil)

// contentContainers are searched, in order, for the first paragraph and image.
var contentContainers = []string{
	"main", "article", "[role=main]", ".content", ".post", ".entry-content",
}

// Generic extracts any page through the metadata cascade. It handles every
// page and is always last in the router.
type Generic struct{}

// NewGeneric creates a new Generic strategy.
func NewGeneric() *Generic {
	return &Generic{}
}

// Name returns the strategy's identifier.
func (g *Generic) Name() string { return "generic" }

// Platform returns an empty label; the site name or hostname is used instead.
func (g *Generic) Platform() string { return "" }

// Icon returns the default icon.
func (g *Generic) Icon() string { return pinmark.DefaultPlatformIcon }

// CanHandle always returns true.
func (g *Generic) CanHandle(pinmark.PageContext) bool { return true }

// Extract runs the cascade over the page.
func (g *Generic) Extract(page pinmark.PageContext) *pinmark.ExtractionResult {
	return pinmark.NewExtractionResult(Cascade(SignalsOf(page)).Draft(page.URL()))
}

// SignalsOf collects cascade inputs from a parsed page.
func SignalsOf(page pinmark.PageContext) Signals {
	return Signals{
		PageURL:   page.URL(),
		JSONLD:    jsonLDBlocks(page),
		Meta:      page.Meta,
		Canonical: page.Find(`link[rel="canonical"]`).Attr("href"),
		Title:     page.Title(),
		Heading:   page.Find("h1").Text(),
		Paragraph: firstParagraph(page),
		Image:     firstImage(page),
	}
}

func firstParagraph(page pinmark.PageContext) string {
	for _, container := range contentContainers {
		for _, p := range page.FindAll(container + " p") {
			if t := p.Text(); t != "" {
				return t
			}
		}
	}
	return ""
}

func firstImage(page pinmark.PageContext) string {
	for _, container := range contentContainers {
		for _, img := range page.FindAll(container + " img") {
			src := firstNonEmpty(img.Attr("src"), img.Attr("data-src"))
			if src == "" || !acceptImageWidth(img.Attr("width")) {
				continue
			}
			return src
		}
	}
	return ""
}
