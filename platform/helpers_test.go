package platform_test

import (
	"testing"

	"github.com/fwojciec/pinmark"
	"github.com/fwojciec/pinmark/goquery"
	"github.com/stretchr/testify/require"
)

// newPage parses html as the document loaded from pageURL.
func newPage(t *testing.T, pageURL, html string) pinmark.PageContext {
	t.Helper()
	page, err := goquery.NewPage(html, pageURL)
	require.NoError(t, err)
	return page
}

// metaMap adapts a map to a cascade meta lookup.
func metaMap(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}
