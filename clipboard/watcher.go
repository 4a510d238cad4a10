// Package clipboard detects URLs copied to the clipboard and reports each
// distinct URL once per cooldown window.
package clipboard

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/pinmark"
)

const (
	// DefaultCooldown is the window in which a repeated URL is suppressed.
	DefaultCooldown = 5000 * time.Millisecond

	// DefaultSettleDelay is the wait between a native copy and reading the
	// clipboard back.
	DefaultSettleDelay = 100 * time.Millisecond
)

// DefaultOwnDomains are hosts on which the watcher stays disabled.
var DefaultOwnDomains = []string{"localhost", "127.0.0.1"}

// Handler receives captured URLs. It runs on the detecting goroutine and
// must not block.
type Handler func(pinmark.CaptureEvent)

// Watcher turns clipboard writes and native copies into capture events.
// A URL identical to the last reported one is suppressed until the cooldown
// has elapsed. Suppressed signals do not extend the cooldown.
type Watcher struct {
	handler Handler
	reader  pinmark.ClipboardReader
	prefs   pinmark.PreferenceService
	logger  *slog.Logger

	now        func() time.Time
	cooldown   time.Duration
	settle     time.Duration
	ownDomains []string
	enabled    bool

	mu      sync.Mutex
	lastURL string
	lastAt  time.Time
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithClock sets the time source used for the cooldown.
func WithClock(now func() time.Time) Option {
	return func(w *Watcher) {
		w.now = now
	}
}

// WithCooldown sets the suppression window for repeated URLs.
func WithCooldown(d time.Duration) Option {
	return func(w *Watcher) {
		w.cooldown = d
	}
}

// WithSettleDelay sets the wait before reading the clipboard after a native copy.
func WithSettleDelay(d time.Duration) Option {
	return func(w *Watcher) {
		w.settle = d
	}
}

// WithOwnDomains replaces the hosts on which the watcher stays disabled.
// Subdomains of the given hosts are included.
func WithOwnDomains(domains ...string) Option {
	return func(w *Watcher) {
		w.ownDomains = domains
	}
}

// WithReader sets the clipboard used by NativeCopy.
func WithReader(r pinmark.ClipboardReader) Option {
	return func(w *Watcher) {
		w.reader = r
	}
}

// WithPreferences sets the store holding the user's opt-out.
func WithPreferences(p pinmark.PreferenceService) Option {
	return func(w *Watcher) {
		w.prefs = p
	}
}

// WithLogger sets the logger for diagnostics such as denied clipboard reads.
func WithLogger(l *slog.Logger) Option {
	return func(w *Watcher) {
		w.logger = l
	}
}

// NewWatcher creates a watcher for a page on host. The watcher is disabled
// on the product's own domains and when the user turned the preference off.
// The preference is read once, here.
func NewWatcher(ctx context.Context, host string, handler Handler, opts ...Option) *Watcher {
	w := &Watcher{
		handler:    handler,
		logger:     slog.New(slog.DiscardHandler),
		now:        time.Now,
		cooldown:   DefaultCooldown,
		settle:     DefaultSettleDelay,
		ownDomains: DefaultOwnDomains,
	}
	for _, opt := range opts {
		opt(w)
	}

	w.enabled = !w.isOwnDomain(host) && w.preference(ctx)
	return w
}

func (w *Watcher) isOwnDomain(host string) bool {
	host = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(host)), ".")
	for _, d := range w.ownDomains {
		d = strings.ToLower(d)
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}

// preference reads the opt-out. Read failures keep the watcher enabled.
func (w *Watcher) preference(ctx context.Context) bool {
	if w.prefs == nil {
		return true
	}
	on, err := w.prefs.BoolPreference(ctx, pinmark.PrefClipboardWatch, true)
	if err != nil {
		w.logger.Debug("clipboard preference unavailable", "err", err)
		return true
	}
	return on
}

// Enabled reports whether the watcher reports captures at all.
func (w *Watcher) Enabled() bool {
	return w.enabled
}

// Intercept observes a value written to the clipboard by the page.
// It reports whether a capture event was emitted.
func (w *Watcher) Intercept(value string) bool {
	return w.observe(value, pinmark.SourceClipboardAPI)
}

// NativeCopy observes a user copy: it waits for the clipboard to settle and
// reads it back. Read failures are logged and otherwise ignored.
// It reports whether a capture event was emitted.
func (w *Watcher) NativeCopy(ctx context.Context) bool {
	if !w.enabled || w.reader == nil {
		return false
	}

	if w.settle > 0 {
		timer := time.NewTimer(w.settle)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return false
		case <-timer.C:
		}
	}

	text, err := w.reader.ReadText(ctx)
	if err != nil {
		w.logger.Debug("clipboard read failed", "err", err)
		return false
	}
	return w.observe(text, pinmark.SourceNativeCopy)
}

func (w *Watcher) observe(value string, source pinmark.CaptureSource) bool {
	if !w.enabled || !IsURL(value) {
		return false
	}
	u := strings.TrimSpace(value)

	w.mu.Lock()
	now := w.now()
	if u == w.lastURL && now.Sub(w.lastAt) < w.cooldown {
		w.mu.Unlock()
		return false
	}
	w.lastURL, w.lastAt = u, now
	w.mu.Unlock()

	if w.handler != nil {
		w.handler(pinmark.CaptureEvent{URL: u, Source: source})
	}
	return true
}
