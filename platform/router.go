package platform

import (
	"github.com/fwojciec/pinmark"
)

var _ pinmark.Router = (*Router)(nil)

// Router dispatches pages to the first strategy that can handle them.
// The strategy list is fixed at construction and always ends with a strategy
// that handles every page.
type Router struct {
	strategies []pinmark.Strategy
}

// NewRouter creates a router trying strategies in order. The Generic
// strategy is appended unless the list already ends with it.
func NewRouter(strategies ...pinmark.Strategy) *Router {
	list := make([]pinmark.Strategy, 0, len(strategies)+1)
	for _, s := range strategies {
		if s != nil {
			list = append(list, s)
		}
	}
	if n := len(list); n == 0 || !isCatchAll(list[n-1]) {
		list = append(list, NewGeneric())
	}
	return &Router{strategies: list}
}

func isCatchAll(s pinmark.Strategy) bool {
	_, ok := s.(*Generic)
	return ok
}

// DefaultStrategies returns the built-in strategies in priority order:
// specific platforms, then categories, then the generic fallback.
// Commerce precedes travel so that shop pages of hosts matching both
// are extracted as products.
func DefaultStrategies() []pinmark.Strategy {
	return []pinmark.Strategy{
		NewVideo(),
		NewInstagram(),
		NewTikTok(),
		NewReddit(),
		NewLinkedIn(),
		NewSocial(),
		NewCode(),
		NewWriting(),
		NewCommerce(),
		NewTravel(),
		NewJobs(),
		NewDocs(),
		NewGeneric(),
	}
}

// NewDefaultRouter creates a router over DefaultStrategies.
func NewDefaultRouter() *Router {
	return NewRouter(DefaultStrategies()...)
}

// Strategies returns the strategies in priority order.
func (r *Router) Strategies() []pinmark.Strategy {
	return append([]pinmark.Strategy(nil), r.strategies...)
}

// SelectStrategy returns the first strategy that can handle the page.
// It never returns nil.
func (r *Router) SelectStrategy(page pinmark.PageContext) pinmark.Strategy {
	for _, s := range r.strategies {
		if s.CanHandle(page) {
			return s
		}
	}
	return r.strategies[len(r.strategies)-1]
}

// ExtractPage extracts the whole page with the selected strategy.
func (r *Router) ExtractPage(page pinmark.PageContext) *pinmark.ExtractionResult {
	return r.SelectStrategy(page).Extract(page)
}

// ExtractPost extracts a single feed post. Strategies without feed support,
// and missing posts, fall back to extracting the whole page.
func (r *Router) ExtractPost(page pinmark.PageContext, post pinmark.Element) *pinmark.ExtractionResult {
	s := r.SelectStrategy(page)
	if fs, ok := s.(pinmark.FeedStrategy); ok && post != nil && post.Exists() {
		return fs.ExtractFromPost(page, post)
	}
	return s.Extract(page)
}

// IsFeedPage reports whether the page is handled by a feed strategy.
func (r *Router) IsFeedPage(page pinmark.PageContext) bool {
	return r.PostSelector(page) != ""
}

// PostSelector returns the selector of single posts on the page, or an
// empty string when the selected strategy has no feed support.
func (r *Router) PostSelector(page pinmark.PageContext) string {
	if fs, ok := r.SelectStrategy(page).(pinmark.FeedStrategy); ok {
		return fs.PostSelector()
	}
	return ""
}

// ButtonAnchor returns the element a capture button is attached next to, or
// nil when the selected strategy has no feed support or finds none.
func (r *Router) ButtonAnchor(page pinmark.PageContext, post pinmark.Element) pinmark.Element {
	if fs, ok := r.SelectStrategy(page).(pinmark.FeedStrategy); ok && post != nil {
		return fs.ButtonAnchor(post)
	}
	return nil
}
