// Package batch extracts many pages concurrently and scans feeds for new
// posts.
package batch

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/fwojciec/pinmark"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of pages fetched at once.
const DefaultConcurrency = 4

// Extractor fetches pages and runs the router on each.
type Extractor struct {
	Fetcher     pinmark.Fetcher
	Parser      pinmark.PageParser
	Router      pinmark.Router
	Limiter     pinmark.HostLimiter
	Concurrency int
	RetryDelays []time.Duration
	Logger      *slog.Logger
}

// Item is the outcome for one input URL. Exactly one of Result and Err is set.
type Item struct {
	URL    string
	Result *pinmark.ExtractionResult
	Err    error
}

// ProgressEvent reports progress during a batch.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress. It is called from
// one goroutine at a time.
type ProgressFunc func(event ProgressEvent)

// Extract processes urls and returns one Item per URL in input order.
// A failing URL never stops the others; a canceled context fails the
// remaining URLs with the context error.
func (e *Extractor) Extract(ctx context.Context, urls []string, progress ProgressFunc) []Item {
	items := make([]Item, len(urls))
	if len(urls) == 0 {
		return items
	}

	concurrency := e.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(urls)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	type indexed struct {
		pos  int
		item Item
	}
	resultCh := make(chan indexed, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, url := range urls {
			g.Go(func() error {
				resultCh <- indexed{pos: i, item: e.extractOne(gctx, url)}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	var completed atomic.Int64
	for r := range resultCh {
		items[r.pos] = r.item
		n := int(completed.Add(1))
		if progress == nil {
			continue
		}
		if r.item.Err != nil {
			progress(ProgressEvent{Type: ProgressFailed, Completed: n, Total: total, URL: r.item.URL, Error: r.item.Err})
		} else {
			progress(ProgressEvent{Type: ProgressCompleted, Completed: n, Total: total, URL: r.item.URL})
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return items
}

func (e *Extractor) extractOne(ctx context.Context, url string) Item {
	item := Item{URL: url}

	if _, err := pinmark.ValidateURL(url); err != nil {
		item.Err = err
		return item
	}

	if e.Limiter != nil {
		if err := e.Limiter.Wait(ctx, pinmark.Hostname(url)); err != nil {
			item.Err = err
			return item
		}
	}

	delays := e.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetry(ctx, url, e.Fetcher.Fetch, e.Logger, delays)
	if err != nil {
		item.Err = err
		return item
	}

	page, err := e.Parser.ParsePage(html, url)
	if err != nil {
		item.Err = err
		return item
	}

	item.Result = e.Router.ExtractPage(page)
	return item
}
