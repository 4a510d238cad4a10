package main

import (
	"fmt"

	"github.com/fwojciec/pinmark"
)

// Run executes the save command.
func (c *SaveCmd) Run(deps *Dependencies) error {
	fetcher, closeFetcher, err := pickFetcher(deps, c.Render)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pinmark.ErrorMessage(err))
		return err
	}
	defer closeFetcher()

	res, err := captureURL(deps, fetcher, c.URL, c.Tags, c.Archive)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pinmark.ErrorMessage(err))
		return err
	}

	printCapture(deps, res)
	return nil
}

func printCapture(deps *Dependencies, res *capture) {
	b := res.Bookmark
	if res.Existing {
		fmt.Fprintf(deps.Stdout, "Already saved %s  %s\n", b.ID, b.URL)
	} else {
		fmt.Fprintf(deps.Stdout, "Saved %s  %s %s  %s\n", b.ID, b.PlatformIcon, b.Platform, b.Title)
	}
	if res.Snapshot != "" {
		fmt.Fprintf(deps.Stdout, "Snapshot written to %s\n", res.Snapshot)
	}
}
