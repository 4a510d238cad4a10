package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/pinmark"
	"github.com/fwojciec/pinmark/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookmarkService_CreateBookmark(t *testing.T) {
	t.Parallel()

	t.Run("delegates to CreateBookmarkFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *pinmark.Bookmark
		s := &mock.BookmarkService{
			CreateBookmarkFn: func(_ context.Context, b *pinmark.Bookmark) error {
				calledWith = b
				return nil
			},
		}

		b := &pinmark.Bookmark{URL: "https://example.com/a", Title: "A"}

		err := s.CreateBookmark(context.Background(), b)

		require.NoError(t, err)
		assert.Equal(t, b, calledWith)
	})
}
