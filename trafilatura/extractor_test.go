package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/pinmark"
	"github.com/fwojciec/pinmark/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const blogPost = `<!DOCTYPE html>
<html>
<head>
<title>Why we moved to SQLite - Example Blog</title>
<meta property="og:title" content="Why we moved to SQLite">
<meta name="author" content="Jane Doe">
</head>
<body>
<nav><a href="/">Home</a><a href="/archive">Archive Nav Link</a></nav>
<article>
<h1>Why we moved to SQLite</h1>
<p>For years our bookmark service ran on a hosted database. The bill kept growing while the data stayed small, so we tried an embedded database instead.</p>
<p>Migrating took a weekend. Reads got faster because every query became a local call, and backups turned into copying a single file to object storage.</p>
<p>Read the <a href="/posts/backups">backup notes</a> for details on how we snapshot the database every hour without locking writers.</p>
</article>
<footer>Copyright 2026 Example Blog Footer</footer>
</body>
</html>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title and main content", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(blogPost, "https://blog.example.com/posts/sqlite")

		require.NoError(t, err)
		assert.Contains(t, result.Title, "Why we moved to SQLite")
		assert.Contains(t, result.ContentHTML, "embedded database")
		assert.NotContains(t, result.ContentHTML, "Archive Nav Link")
		assert.NotContains(t, result.ContentHTML, "Example Blog Footer")
	})

	t.Run("extracts byline from author meta", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(blogPost, "https://blog.example.com/posts/sqlite")

		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", result.Byline)
	})

	t.Run("works without page url", func(t *testing.T) {
		t.Parallel()

		ext := &trafilatura.Extractor{}
		result, err := ext.Extract(blogPost, "")

		require.NoError(t, err)
		assert.NotEmpty(t, result.ContentHTML)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		_, err := ext.Extract("  \n", "https://example.com")

		require.Error(t, err)
		assert.Equal(t, pinmark.EINVALID, pinmark.ErrorCode(err))
	})
}
