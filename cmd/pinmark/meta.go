package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/pinmark"
)

// Run executes the meta command.
func (c *MetaCmd) Run(deps *Dependencies) error {
	md, err := deps.MetadataFetcher.FetchMetadata(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pinmark.ErrorMessage(err))
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(md)
}
