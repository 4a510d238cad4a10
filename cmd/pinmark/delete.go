package main

import (
	"fmt"

	"github.com/fwojciec/pinmark"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if err := deps.Bookmarks.DeleteBookmark(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pinmark.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted bookmark %s\n", c.ID)
	return nil
}
