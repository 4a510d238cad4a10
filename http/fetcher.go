// Package http provides the network side of pinmark: a plain HTTP fetcher,
// the headless metadata fetcher built on it and the JSON route serving it.
package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/pinmark"
)

const (
	// DefaultFetchTimeout bounds a single fetch including redirects.
	DefaultFetchTimeout = 8 * time.Second

	// DefaultUserAgent identifies pinmark to the sites it fetches.
	DefaultUserAgent = "pinmark/1.0 (+https://github.com/fwojciec/pinmark)"

	// MaxRedirects is the number of redirects followed before giving up.
	MaxRedirects = 10

	// MaxBodySize caps the number of bytes read from a response.
	MaxBodySize = 2 << 20
)

// Ensure Fetcher implements pinmark.Fetcher at compile time.
var _ pinmark.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP requests.
// Unlike rod.Fetcher, this does not execute JavaScript.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithClient sets the underlying HTTP client. Its redirect policy is
// replaced by the fetcher's own.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	client := &http.Client{}
	if f.client != nil {
		c := *f.client
		client = &c
	}
	client.CheckRedirect = checkRedirect
	f.client = client

	return f
}

func checkRedirect(req *http.Request, via []*http.Request) error {
	if len(via) >= MaxRedirects {
		return fmt.Errorf("stopped after %d redirects", MaxRedirects)
	}
	if req.URL.Scheme != "http" && req.URL.Scheme != "https" {
		return fmt.Errorf("redirect to unsupported scheme %q", req.URL.Scheme)
	}
	return nil
}

// Fetch retrieves the HTML content from the given URL.
// Returns EINVALID for URLs that are not absolute http(s) URLs, ETIMEOUT when
// the timeout elapses and EUPSTREAM for network failures and non-2xx
// responses.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if _, err := pinmark.ValidateURL(url); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", pinmark.Errorf(pinmark.EINVALID, "invalid request for %s: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", classify(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", pinmark.Errorf(pinmark.EUPSTREAM, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize))
	if err != nil {
		return "", classify(url, err)
	}

	return string(body), nil
}

// classify maps transport errors to application errors.
func classify(url string, err error) error {
	var ne net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
		return pinmark.Errorf(pinmark.ETIMEOUT, "timed out fetching %s", url)
	}
	return pinmark.Errorf(pinmark.EUPSTREAM, "failed to fetch %s: %v", url, err)
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
