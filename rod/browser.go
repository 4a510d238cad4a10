package rod

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/fwojciec/pinmark"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultMaxPages is the default number of pages before browser recycling.
const DefaultMaxPages = 75

// Browser owns a Chrome process and hands out pages. The process is
// recycled after maxPages pages since Chrome's baseline memory keeps
// growing over long feed scans.
//
// Browser is safe for concurrent use.
type Browser struct {
	browser   *rod.Browser
	launcher  *launcher.Launcher
	pageCount int64
	maxPages  int64
	headless  bool
	mu        sync.Mutex
	closed    atomic.Bool
}

// BrowserOption configures a Browser.
type BrowserOption func(*Browser)

// WithMaxPages sets the maximum number of pages before the browser is recycled.
func WithMaxPages(n int64) BrowserOption {
	return func(b *Browser) {
		b.maxPages = n
	}
}

// WithHeadless controls whether Chrome runs without a window. Interactive
// clipboard sessions need a visible window.
func WithHeadless(headless bool) BrowserOption {
	return func(b *Browser) {
		b.headless = headless
	}
}

// NewBrowser launches Chrome. Close must be called when the Browser is no
// longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewBrowser(opts ...BrowserOption) (*Browser, error) {
	b := &Browser{
		maxPages: DefaultMaxPages,
		headless: true,
	}
	for _, opt := range opts {
		opt(b)
	}

	if err := b.launch(); err != nil {
		return nil, err
	}

	return b, nil
}

// newPage opens a blank page, recycling the browser first when the page
// budget is spent.
func (b *Browser) newPage() (*rod.Page, error) {
	if b.closed.Load() {
		return nil, pinmark.Errorf(pinmark.EINVALID, "browser closed")
	}

	b.mu.Lock()
	if atomic.LoadInt64(&b.pageCount) >= b.maxPages {
		b.recycle()
	}
	browser := b.browser
	b.mu.Unlock()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("creating page: %w", err)
	}
	atomic.AddInt64(&b.pageCount, 1)
	return page, nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (b *Browser) Close() error {
	if !b.closed.CompareAndSwap(false, true) {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	return b.shutdown()
}

// LauncherPID returns the process ID of the browser launcher.
func (b *Browser) LauncherPID() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.launcher == nil {
		return 0
	}
	return b.launcher.PID()
}

func (b *Browser) launch() error {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(b.headless)

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return fmt.Errorf("connecting to browser: %w", err)
	}

	b.browser = browser
	b.launcher = l
	return nil
}

// Must be called with mu held.
func (b *Browser) shutdown() error {
	var err error
	if b.browser != nil {
		err = b.browser.Close()
		b.browser = nil
	}
	if b.launcher != nil {
		b.launcher.Kill()
		b.launcher = nil
	}
	return err
}

// recycle keeps the old browser when a fresh one fails to launch.
// Must be called with mu held.
func (b *Browser) recycle() {
	oldBrowser, oldLauncher := b.browser, b.launcher
	b.browser, b.launcher = nil, nil

	if err := b.launch(); err != nil {
		b.browser, b.launcher = oldBrowser, oldLauncher
		return
	}

	if oldBrowser != nil {
		_ = oldBrowser.Close()
	}
	if oldLauncher != nil {
		oldLauncher.Kill()
	}
	atomic.StoreInt64(&b.pageCount, 0)
}
