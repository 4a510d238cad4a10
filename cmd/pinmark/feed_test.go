package main_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	main "github.com/fwojciec/pinmark/cmd/pinmark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const redditFeed = `<html><body>
<shreddit-post post-title="First" permalink="/r/golang/comments/aaa111/first/" author="alice" subreddit-prefixed-name="r/golang"></shreddit-post>
<shreddit-post post-title="Second" permalink="/r/golang/comments/bbb222/second/" author="bob" subreddit-prefixed-name="r/golang"></shreddit-post>
</body></html>`

func TestFeedCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints every post of the feed", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(t, redditFeed)

		cmd := &main.FeedCmd{URL: "https://www.reddit.com/"}

		require.NoError(t, cmd.Run(deps))

		lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
		require.Len(t, lines, 2)
		assert.Contains(t, lines[0], "aaa111")
		assert.Contains(t, lines[1], "bbb222")
	})

	t.Run("remembers posts across runs through the state file", func(t *testing.T) {
		t.Parallel()

		state := filepath.Join(t.TempDir(), "seen.bloom")

		deps, stdout, _ := newDeps(t, redditFeed)
		cmd := &main.FeedCmd{URL: "https://www.reddit.com/", State: state}
		require.NoError(t, cmd.Run(deps))
		assert.NotEmpty(t, stdout.String())

		_, err := os.Stat(state)
		require.NoError(t, err)

		deps, stdout, stderr := newDeps(t, redditFeed)
		require.NoError(t, cmd.Run(deps))
		assert.Empty(t, stdout.String())
		assert.Contains(t, stderr.String(), "No new posts.")
	})

	t.Run("rejects a corrupt state file", func(t *testing.T) {
		t.Parallel()

		state := filepath.Join(t.TempDir(), "seen.bloom")
		require.NoError(t, os.WriteFile(state, []byte("garbage"), 0o644))

		deps, _, stderr := newDeps(t, redditFeed)
		cmd := &main.FeedCmd{URL: "https://www.reddit.com/", State: state}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
	})

	t.Run("rejects an invalid URL", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps(t, redditFeed)
		cmd := &main.FeedCmd{URL: "not a url"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
