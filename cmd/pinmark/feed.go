package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/fwojciec/pinmark"
	"github.com/fwojciec/pinmark/batch"
	"github.com/fwojciec/pinmark/bloom"
)

// Run executes the feed command.
func (c *FeedCmd) Run(deps *Dependencies) error {
	fetcher, closeFetcher, err := pickFetcher(deps, c.Render)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pinmark.ErrorMessage(err))
		return err
	}
	defer closeFetcher()

	scanner := &batch.FeedScanner{
		Fetcher: fetcher,
		Parser:  deps.Parser,
		Router:  deps.Router,
	}

	var filter *bloom.Filter
	if c.State != "" {
		filter, err = loadFilter(c.State)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pinmark.ErrorMessage(err))
			return err
		}
		scanner.Seen = filter
	}

	results, err := scanner.Scan(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pinmark.ErrorMessage(err))
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	for _, r := range results {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}

	if filter != nil {
		if err := saveFilter(c.State, filter); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pinmark.ErrorMessage(err))
			return err
		}
	}

	if len(results) == 0 {
		fmt.Fprintln(deps.Stderr, "No new posts.")
	}
	return nil
}

// loadFilter reads the seen-set at path, or returns an empty one when the
// file does not exist yet.
func loadFilter(path string) (*bloom.Filter, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return bloom.NewFilter(bloom.DefaultCapacity, bloom.DefaultFPRate), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return bloom.ReadFilter(f)
}

func saveFilter(path string, filter *bloom.Filter) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := filter.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
