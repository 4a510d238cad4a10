// Package rod renders pages and hosts clipboard capture sessions in Chrome
// through go-rod.
package rod

import (
	"context"
	"time"

	"github.com/fwojciec/pinmark"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Fetcher implements pinmark.Fetcher at compile time.
var _ pinmark.Fetcher = (*Fetcher)(nil)

// DefaultFetchTimeout bounds a single rendered fetch.
const DefaultFetchTimeout = 30 * time.Second

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser   *Browser
	owned     bool
	timeout   time.Duration
	userAgent string
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithFetchTimeout sets the per-fetch timeout.
func WithFetchTimeout(d time.Duration) FetcherOption {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the browser user agent for fetched pages.
func WithUserAgent(ua string) FetcherOption {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithBrowser makes the Fetcher share an existing Browser. The Fetcher does
// not close a shared browser.
func WithBrowser(b *Browser) FetcherOption {
	return func(f *Fetcher) {
		f.browser = b
	}
}

// NewFetcher creates a new Fetcher, launching a headless browser unless one
// is supplied with WithBrowser. Close must be called when the Fetcher is no
// longer needed.
func NewFetcher(opts ...FetcherOption) (*Fetcher, error) {
	f := &Fetcher{timeout: DefaultFetchTimeout}
	for _, opt := range opts {
		opt(f)
	}

	if f.browser == nil {
		b, err := NewBrowser()
		if err != nil {
			return nil, err
		}
		f.browser = b
		f.owned = true
	}

	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := pinmark.ValidateURL(url); err != nil {
		return "", err
	}

	page, err := f.browser.newPage()
	if err != nil {
		return "", err
	}
	defer page.Close()

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()
	page = page.Context(ctx)

	if f.userAgent != "" {
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: f.userAgent}); err != nil {
			return "", err
		}
	}

	if err := page.Navigate(url); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	return page.HTML()
}

// LauncherPID returns the process ID of the underlying browser launcher.
func (f *Fetcher) LauncherPID() int {
	return f.browser.LauncherPID()
}

// Close releases browser resources owned by the Fetcher.
func (f *Fetcher) Close() error {
	if !f.owned {
		return nil
	}
	return f.browser.Close()
}
