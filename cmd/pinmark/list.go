package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/pinmark"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := pinmark.BookmarkFilter{
		Limit:  c.Limit,
		Offset: c.Offset,
	}
	if c.Platform != "" {
		filter.Platform = &c.Platform
	}
	if c.Tag != "" {
		filter.Tag = &c.Tag
	}

	bookmarks, err := deps.Bookmarks.FindBookmarks(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pinmark.ErrorMessage(err))
		return err
	}

	if len(bookmarks) == 0 {
		fmt.Fprintln(deps.Stdout, "No bookmarks found. Use 'pinmark save' to add one.")
		return nil
	}

	for _, b := range bookmarks {
		fmt.Fprintf(deps.Stdout, "%s  %s %s  %s  %s\n", b.ID, b.PlatformIcon, b.Platform, b.Title, b.URL)
		if len(b.Tags) > 0 {
			fmt.Fprintf(deps.Stdout, "    #%s\n", strings.Join(b.Tags, " #"))
		}
	}

	return nil
}
