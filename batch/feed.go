package batch

import (
	"context"

	"github.com/fwojciec/pinmark"
)

// FeedScanner reports the posts of a feed page that were not reported by
// earlier scans.
type FeedScanner struct {
	Fetcher pinmark.Fetcher
	Parser  pinmark.PageParser
	Router  pinmark.Router

	// Seen carries permalinks across scans. When nil, duplicates are only
	// removed within a single scan.
	Seen pinmark.SeenSet
}

// Scan fetches url and returns its unseen posts in document order.
func (s *FeedScanner) Scan(ctx context.Context, url string) ([]*pinmark.ExtractionResult, error) {
	if _, err := pinmark.ValidateURL(url); err != nil {
		return nil, err
	}

	html, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	page, err := s.Parser.ParsePage(html, url)
	if err != nil {
		return nil, err
	}

	return s.ScanPage(page), nil
}

// ScanPage returns the unseen posts of an already parsed page. A page whose
// strategy has no feed support yields the whole-page result once.
func (s *FeedScanner) ScanPage(page pinmark.PageContext) []*pinmark.ExtractionResult {
	seen := s.seenFunc()

	if !s.Router.IsFeedPage(page) {
		r := s.Router.ExtractPage(page)
		if seen(r.URL) {
			return nil
		}
		return []*pinmark.ExtractionResult{r}
	}

	var results []*pinmark.ExtractionResult
	for _, post := range page.FindAll(s.Router.PostSelector(page)) {
		r := s.Router.ExtractPost(page, post)
		if seen(r.URL) {
			continue
		}
		results = append(results, r)
	}
	return results
}

func (s *FeedScanner) seenFunc() func(string) bool {
	if s.Seen != nil {
		return s.Seen.TestAndAdd
	}
	local := make(map[string]bool)
	return func(url string) bool {
		if local[url] {
			return true
		}
		local[url] = true
		return false
	}
}
