// Package goquery implements pinmark.PageContext over a parsed HTML document.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pinmark"
)

// Ensure types implement the pinmark interfaces at compile time.
var (
	_ pinmark.PageContext = (*Page)(nil)
	_ pinmark.Element     = (*Element)(nil)
	_ pinmark.PageParser  = (*Parser)(nil)
)

// Page is a capture context backed by a goquery document.
type Page struct {
	doc *goquery.Document
	url *url.URL
}

// NewPage parses html and binds it to pageURL.
// Returns EINVALID if pageURL is not an absolute http(s) URL.
func NewPage(html string, pageURL string) (*Page, error) {
	u, err := pinmark.ValidateURL(pageURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, pinmark.Errorf(pinmark.EINVALID, "failed to parse HTML: %v", err)
	}

	return &Page{doc: doc, url: u}, nil
}

// URL returns the absolute URL of the page.
func (p *Page) URL() string {
	return p.url.String()
}

// Hostname returns the lowercase host of the page URL.
func (p *Page) Hostname() string {
	return strings.ToLower(p.url.Hostname())
}

// Path returns the path component of the page URL.
func (p *Page) Path() string {
	return p.url.Path
}

// Title returns the document title.
func (p *Page) Title() string {
	return pinmark.CollapseSpace(p.doc.Find("title").First().Text())
}

// Meta returns the content of the first non-empty meta tag whose property,
// name or itemprop attribute equals key.
func (p *Page) Meta(key string) string {
	var content string
	p.doc.Find("meta").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if !metaMatches(s, key) {
			return true
		}
		if v := strings.TrimSpace(s.AttrOr("content", "")); v != "" {
			content = v
			return false
		}
		return true
	})
	return content
}

// metaMatches checks the attributes a meta tag can be keyed by.
// Open Graph tags are keyed by property, Twitter Cards and standard meta by
// name, microdata by itemprop; some sites mix them up.
func metaMatches(s *goquery.Selection, key string) bool {
	for _, attr := range []string{"property", "name", "itemprop"} {
		if v, ok := s.Attr(attr); ok && strings.EqualFold(strings.TrimSpace(v), key) {
			return true
		}
	}
	return false
}

// Find returns the first element matching selector.
func (p *Page) Find(selector string) pinmark.Element {
	return &Element{sel: p.doc.Find(selector).First()}
}

// FindAll returns all elements matching selector.
func (p *Page) FindAll(selector string) []pinmark.Element {
	return wrapAll(p.doc.Find(selector))
}

// Element wraps a goquery selection of at most one node.
type Element struct {
	sel *goquery.Selection
}

// Exists reports whether the element is present.
func (e *Element) Exists() bool {
	return e.sel != nil && e.sel.Length() > 0
}

// Attr returns the trimmed value of the named attribute.
func (e *Element) Attr(name string) string {
	if !e.Exists() {
		return ""
	}
	return strings.TrimSpace(e.sel.AttrOr(name, ""))
}

// Text returns the element's text with whitespace collapsed.
func (e *Element) Text() string {
	if !e.Exists() {
		return ""
	}
	return pinmark.CollapseSpace(e.sel.Text())
}

// Find returns the first descendant matching selector.
func (e *Element) Find(selector string) pinmark.Element {
	if !e.Exists() {
		return &Element{}
	}
	return &Element{sel: e.sel.Find(selector).First()}
}

// FindAll returns all descendants matching selector.
func (e *Element) FindAll(selector string) []pinmark.Element {
	if !e.Exists() {
		return nil
	}
	return wrapAll(e.sel.Find(selector))
}

func wrapAll(s *goquery.Selection) []pinmark.Element {
	elements := make([]pinmark.Element, 0, s.Length())
	s.Each(func(_ int, item *goquery.Selection) {
		elements = append(elements, &Element{sel: item})
	})
	return elements
}

// Parser builds goquery pages from fetched HTML.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParsePage parses html into a pinmark.PageContext bound to pageURL.
func (p *Parser) ParsePage(html string, pageURL string) (pinmark.PageContext, error) {
	return NewPage(html, pageURL)
}
