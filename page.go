package pinmark

import "context"

// PageContext is the capture context a strategy reads from: the page URL,
// its meta tags, its title and a queryable document tree.
//
// Implementations never fail on missing data. Lookups that find nothing
// return empty strings or empty elements.
type PageContext interface {
	// URL returns the absolute URL of the page.
	URL() string

	// Hostname returns the lowercase host of the page URL.
	Hostname() string

	// Path returns the path component of the page URL.
	Path() string

	// Title returns the trimmed text of the document title.
	Title() string

	// Meta returns the trimmed content of the first meta tag whose
	// property, name or itemprop attribute equals key.
	Meta(key string) string

	// Find returns the first element matching the CSS selector.
	Find(selector string) Element

	// FindAll returns all elements matching the CSS selector in document order.
	FindAll(selector string) []Element
}

// Element is a node in the page's document tree. A missing element is an
// empty Element: Exists reports false and every accessor returns zero values.
type Element interface {
	// Exists reports whether the element is present in the document.
	Exists() bool

	// Attr returns the trimmed value of the named attribute.
	Attr(name string) string

	// Text returns the element's text content with whitespace collapsed.
	Text() string

	// Find returns the first descendant matching the CSS selector.
	Find(selector string) Element

	// FindAll returns all descendants matching the CSS selector.
	FindAll(selector string) []Element
}

// PageParser builds a PageContext from fetched HTML.
type PageParser interface {
	ParsePage(html string, pageURL string) (PageContext, error)
}

// Fetcher retrieves HTML from URLs.
// Implementations may use browser automation to handle JavaScript-rendered content.
type Fetcher interface {
	// Fetch retrieves the URL and returns its HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}
