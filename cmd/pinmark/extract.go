package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/pinmark"
	"github.com/fwojciec/pinmark/batch"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	fetcher, closeFetcher, err := pickFetcher(deps, c.Render)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pinmark.ErrorMessage(err))
		return err
	}
	defer closeFetcher()

	rps := c.RPS
	if rps <= 0 {
		rps = batch.DefaultHostRPS
	}

	extractor := &batch.Extractor{
		Fetcher:     fetcher,
		Parser:      deps.Parser,
		Router:      deps.Router,
		Limiter:     batch.NewHostLimiter(rps),
		Concurrency: c.Concurrency,
		RetryDelays: deps.RetryDelays,
		Logger:      deps.logger(),
	}

	var progress batch.ProgressFunc
	if len(c.URLs) > 1 {
		progress = func(e batch.ProgressEvent) {
			switch e.Type {
			case batch.ProgressCompleted, batch.ProgressFailed:
				fmt.Fprintf(deps.Stderr, "[%d/%d] %s\n", e.Completed, e.Total, e.URL)
			}
		}
	}

	items := extractor.Extract(deps.Ctx, c.URLs, progress)

	enc := json.NewEncoder(deps.Stdout)
	var failed int
	for _, item := range items {
		if item.Err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", item.URL, pinmark.ErrorMessage(item.Err))
			continue
		}
		if err := enc.Encode(item.Result); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d URLs failed", failed, len(items))
	}
	return nil
}

// pickFetcher returns the browser-backed fetcher when render is set and the
// plain HTTP fetcher otherwise. The returned func releases the browser.
func pickFetcher(deps *Dependencies, render bool) (pinmark.Fetcher, func(), error) {
	if !render {
		return deps.Fetcher, func() {}, nil
	}
	f, err := deps.Render()
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}
