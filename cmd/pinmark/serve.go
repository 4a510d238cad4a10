package main

import (
	"fmt"

	"github.com/fwojciec/pinmark"
	pinmarkhttp "github.com/fwojciec/pinmark/http"
)

// Run executes the serve command. It blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	srv := pinmarkhttp.NewServer(deps.MetadataFetcher)
	srv.Addr = c.Addr

	if err := srv.Open(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pinmark.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Listening on %s\n", srv.URL())

	<-deps.Ctx.Done()

	return srv.Close()
}
