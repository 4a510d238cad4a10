package batch_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/pinmark"
	"github.com/fwojciec/pinmark/batch"
	"github.com/fwojciec/pinmark/goquery"
	"github.com/fwojciec/pinmark/mock"
	"github.com/fwojciec/pinmark/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titledPage(title string) string {
	return fmt.Sprintf(`<html><head><meta property="og:title" content="%s"></head><body></body></html>`, title)
}

func newExtractor(fetch func(ctx context.Context, url string) (string, error)) *batch.Extractor {
	return &batch.Extractor{
		Fetcher:     &mock.Fetcher{FetchFn: fetch},
		Parser:      goquery.NewParser(),
		Router:      platform.NewDefaultRouter(),
		Concurrency: 3,
		RetryDelays: []time.Duration{0},
	}
}

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("returns results in input order", func(t *testing.T) {
		t.Parallel()

		urls := []string{"https://example.com/1", "https://example.com/2", "https://example.com/3", "https://example.com/4"}
		e := newExtractor(func(ctx context.Context, url string) (string, error) {
			// Earlier URLs finish last.
			if url == "https://example.com/1" {
				time.Sleep(20 * time.Millisecond)
			}
			return titledPage("Page " + url[len(url)-1:]), nil
		})

		items := e.Extract(context.Background(), urls, nil)

		require.Len(t, items, 4)
		for i, item := range items {
			require.NoError(t, item.Err)
			assert.Equal(t, urls[i], item.URL)
			assert.Equal(t, fmt.Sprintf("Page %d", i+1), item.Result.Title)
		}
	})

	t.Run("isolates failures", func(t *testing.T) {
		t.Parallel()

		e := newExtractor(func(ctx context.Context, url string) (string, error) {
			if url == "https://example.com/bad" {
				return "", pinmark.Errorf(pinmark.EUPSTREAM, "HTTP 500 for %s", url)
			}
			return titledPage("Good"), nil
		})

		items := e.Extract(context.Background(), []string{"https://example.com/bad", "https://example.com/good", "not a url"}, nil)

		require.Len(t, items, 3)
		assert.Equal(t, pinmark.EUPSTREAM, pinmark.ErrorCode(items[0].Err))
		assert.Nil(t, items[0].Result)
		require.NoError(t, items[1].Err)
		assert.Equal(t, "Good", items[1].Result.Title)
		assert.Equal(t, pinmark.EINVALID, pinmark.ErrorCode(items[2].Err))
	})

	t.Run("waits on the limiter with the page host", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		var hosts []string
		e := newExtractor(func(ctx context.Context, url string) (string, error) {
			return titledPage("x"), nil
		})
		e.Concurrency = 1
		e.Limiter = &mock.HostLimiter{
			WaitFn: func(ctx context.Context, host string) error {
				mu.Lock()
				defer mu.Unlock()
				hosts = append(hosts, host)
				return nil
			},
		}

		e.Extract(context.Background(), []string{"https://www.reddit.com/r/golang/", "https://github.com/a/b"}, nil)

		assert.ElementsMatch(t, []string{"reddit.com", "github.com"}, hosts)
	})

	t.Run("limiter error fails the item", func(t *testing.T) {
		t.Parallel()

		var fetched atomic.Bool
		e := newExtractor(func(ctx context.Context, url string) (string, error) {
			fetched.Store(true)
			return "", nil
		})
		e.Limiter = &mock.HostLimiter{
			WaitFn: func(ctx context.Context, host string) error { return errors.New("limited") },
		}

		items := e.Extract(context.Background(), []string{"https://example.com"}, nil)

		assert.EqualError(t, items[0].Err, "limited")
		assert.False(t, fetched.Load())
	})

	t.Run("reports progress", func(t *testing.T) {
		t.Parallel()

		e := newExtractor(func(ctx context.Context, url string) (string, error) {
			if url == "https://example.com/bad" {
				return "", errors.New("boom")
			}
			return titledPage("x"), nil
		})

		var events []batch.ProgressEvent
		e.Extract(context.Background(), []string{"https://example.com/ok", "https://example.com/bad"}, func(ev batch.ProgressEvent) {
			events = append(events, ev)
		})

		require.Len(t, events, 4)
		assert.Equal(t, batch.ProgressStarted, events[0].Type)
		assert.Equal(t, 2, events[0].Total)
		assert.Equal(t, batch.ProgressFinished, events[3].Type)

		var failed int
		for _, ev := range events[1:3] {
			if ev.Type == batch.ProgressFailed {
				failed++
				assert.Equal(t, "https://example.com/bad", ev.URL)
			}
		}
		assert.Equal(t, 1, failed)
	})

	t.Run("parse error fails the item", func(t *testing.T) {
		t.Parallel()

		e := newExtractor(func(ctx context.Context, url string) (string, error) {
			return "<html></html>", nil
		})
		e.Parser = &mock.PageParser{
			ParsePageFn: func(html string, pageURL string) (pinmark.PageContext, error) {
				return nil, pinmark.Errorf(pinmark.EINVALID, "unparseable")
			},
		}

		items := e.Extract(context.Background(), []string{"https://example.com/x"}, nil)

		require.Len(t, items, 1)
		assert.Nil(t, items[0].Result)
		assert.Equal(t, pinmark.EINVALID, pinmark.ErrorCode(items[0].Err))
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		e := newExtractor(nil)
		assert.Empty(t, e.Extract(context.Background(), nil, nil))
	})
}
