package mock

import "github.com/fwojciec/pinmark"

// Compile-time interface verification.
var (
	_ pinmark.Strategy = (*Strategy)(nil)
	_ pinmark.Router   = (*Router)(nil)
)

// Strategy is a mock implementation of pinmark.Strategy.
type Strategy struct {
	NameFn      func() string
	PlatformFn  func() string
	IconFn      func() string
	CanHandleFn func(page pinmark.PageContext) bool
	ExtractFn   func(page pinmark.PageContext) *pinmark.ExtractionResult
}

func (s *Strategy) Name() string {
	return s.NameFn()
}

func (s *Strategy) Platform() string {
	return s.PlatformFn()
}

func (s *Strategy) Icon() string {
	return s.IconFn()
}

func (s *Strategy) CanHandle(page pinmark.PageContext) bool {
	return s.CanHandleFn(page)
}

func (s *Strategy) Extract(page pinmark.PageContext) *pinmark.ExtractionResult {
	return s.ExtractFn(page)
}

// Router is a mock implementation of pinmark.Router.
type Router struct {
	SelectStrategyFn func(page pinmark.PageContext) pinmark.Strategy
	ExtractPageFn    func(page pinmark.PageContext) *pinmark.ExtractionResult
	ExtractPostFn    func(page pinmark.PageContext, post pinmark.Element) *pinmark.ExtractionResult
	IsFeedPageFn     func(page pinmark.PageContext) bool
	PostSelectorFn   func(page pinmark.PageContext) string
	ButtonAnchorFn   func(page pinmark.PageContext, post pinmark.Element) pinmark.Element
}

func (r *Router) SelectStrategy(page pinmark.PageContext) pinmark.Strategy {
	return r.SelectStrategyFn(page)
}

func (r *Router) ExtractPage(page pinmark.PageContext) *pinmark.ExtractionResult {
	return r.ExtractPageFn(page)
}

func (r *Router) ExtractPost(page pinmark.PageContext, post pinmark.Element) *pinmark.ExtractionResult {
	return r.ExtractPostFn(page, post)
}

func (r *Router) IsFeedPage(page pinmark.PageContext) bool {
	return r.IsFeedPageFn(page)
}

func (r *Router) PostSelector(page pinmark.PageContext) string {
	return r.PostSelectorFn(page)
}

func (r *Router) ButtonAnchor(page pinmark.PageContext, post pinmark.Element) pinmark.Element {
	return r.ButtonAnchorFn(page, post)
}
