package main_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	main "github.com/fwojciec/pinmark/cmd/pinmark"
	"github.com/fwojciec/pinmark/goquery"
	"github.com/fwojciec/pinmark/mock"
	"github.com/fwojciec/pinmark/platform"
)

func titledPage(title string) string {
	return fmt.Sprintf(`<html><head><meta property="og:title" content="%s"></head><body><p>Body</p></body></html>`, title)
}

// newDeps returns dependencies backed by a fetcher that serves html for every
// URL, the real parser and the default router.
func newDeps(t *testing.T, html string) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	deps := &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		Fetcher: &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return html, nil
			},
		},
		Parser: goquery.NewParser(),
		Router: platform.NewDefaultRouter(),
	}
	return deps, stdout, stderr
}
