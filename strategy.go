package pinmark

// Strategy extracts an ExtractionResult from pages of one platform family.
// Strategies are stateless and safe for concurrent use.
type Strategy interface {
	// Name returns the strategy identifier (e.g. "reddit", "generic").
	Name() string

	// Platform returns the default human-readable platform label.
	Platform() string

	// Icon returns the default platform icon.
	Icon() string

	// CanHandle reports whether the strategy applies to the page.
	CanHandle(page PageContext) bool

	// Extract returns the result for the whole page. It never fails; missing
	// data degrades individual fields to empty values.
	Extract(page PageContext) *ExtractionResult
}

// FeedStrategy is a Strategy that can also extract single posts from an
// infinite-scroll feed where many posts share one page URL.
type FeedStrategy interface {
	Strategy

	// ExtractFromPost returns the result for one post element of the feed,
	// recovering the post's own permalink.
	ExtractFromPost(page PageContext, post Element) *ExtractionResult

	// PostSelector returns the CSS selector matching post containers.
	PostSelector() string

	// ButtonAnchor returns the element inside post where a save control
	// belongs. Returns nil when no anchor can be found.
	ButtonAnchor(post Element) Element
}

// Router selects a strategy for a page and exposes page and post extraction.
type Router interface {
	// SelectStrategy returns the first strategy that can handle the page.
	// It never returns nil.
	SelectStrategy(page PageContext) Strategy

	// ExtractPage extracts the whole page with the selected strategy.
	ExtractPage(page PageContext) *ExtractionResult

	// ExtractPost extracts a single feed post. Strategies without feed
	// support extract the whole page instead.
	ExtractPost(page PageContext, post Element) *ExtractionResult

	// IsFeedPage reports whether the selected strategy declares a post selector.
	IsFeedPage(page PageContext) bool

	// PostSelector returns the selected strategy's post selector, or an
	// empty string when the strategy has no feed support.
	PostSelector(page PageContext) string

	// ButtonAnchor returns the save-control anchor for post, or nil.
	ButtonAnchor(page PageContext, post Element) Element
}
