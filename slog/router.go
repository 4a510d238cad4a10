package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pinmark"
)

// Ensure LoggingRouter implements pinmark.Router.
var _ pinmark.Router = (*LoggingRouter)(nil)

// LoggingRouter wraps a Router with debug logging for strategy selection.
type LoggingRouter struct {
	next   pinmark.Router
	logger *slog.Logger
}

// NewLoggingRouter creates a new LoggingRouter.
func NewLoggingRouter(next pinmark.Router, logger *slog.Logger) *LoggingRouter {
	return &LoggingRouter{next: next, logger: logger}
}

// SelectStrategy delegates to the wrapped router and logs the selection.
func (r *LoggingRouter) SelectStrategy(page pinmark.PageContext) pinmark.Strategy {
	begin := time.Now()
	s := r.next.SelectStrategy(page)
	r.logger.Debug("strategy selection",
		"url", page.URL(),
		"strategy", s.Name(),
		"duration", time.Since(begin),
	)
	return s
}

// ExtractPage delegates to the wrapped router and logs the result.
func (r *LoggingRouter) ExtractPage(page pinmark.PageContext) (result *pinmark.ExtractionResult) {
	defer func(begin time.Time) {
		r.logResult("extract page", page.URL(), result, time.Since(begin))
	}(time.Now())
	return r.next.ExtractPage(page)
}

// ExtractPost delegates to the wrapped router and logs the result.
func (r *LoggingRouter) ExtractPost(page pinmark.PageContext, post pinmark.Element) (result *pinmark.ExtractionResult) {
	defer func(begin time.Time) {
		r.logResult("extract post", page.URL(), result, time.Since(begin))
	}(time.Now())
	return r.next.ExtractPost(page, post)
}

func (r *LoggingRouter) logResult(msg, pageURL string, result *pinmark.ExtractionResult, d time.Duration) {
	var url, platform string
	var tags int
	if result != nil {
		url, platform, tags = result.URL, result.Platform, len(result.AutoTags)
	}
	r.logger.Info(msg,
		"page", pageURL,
		"url", url,
		"platform", platform,
		"tags", tags,
		"duration", d,
	)
}

// IsFeedPage delegates to the wrapped router.
func (r *LoggingRouter) IsFeedPage(page pinmark.PageContext) bool {
	return r.next.IsFeedPage(page)
}

// PostSelector delegates to the wrapped router.
func (r *LoggingRouter) PostSelector(page pinmark.PageContext) string {
	return r.next.PostSelector(page)
}

// ButtonAnchor delegates to the wrapped router.
func (r *LoggingRouter) ButtonAnchor(page pinmark.PageContext, post pinmark.Element) pinmark.Element {
	return r.next.ButtonAnchor(page, post)
}
