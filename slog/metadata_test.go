package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/pinmark"
	"github.com/fwojciec/pinmark/mock"
	pinmarkslog "github.com/fwojciec/pinmark/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingMetadataFetcher_FetchMetadata(t *testing.T) {
	t.Parallel()

	t.Run("logs platform and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.MetadataFetcher{
			FetchMetadataFn: func(ctx context.Context, rawURL string) (*pinmark.Metadata, error) {
				return &pinmark.Metadata{URL: rawURL, Platform: "YouTube"}, nil
			},
		}

		mf := pinmarkslog.NewLoggingMetadataFetcher(inner, logger)
		md, err := mf.FetchMetadata(context.Background(), "https://youtube.com/watch?v=abc")

		require.NoError(t, err)
		assert.Equal(t, "YouTube", md.Platform)
		output := buf.String()
		assert.Contains(t, output, "metadata fetch")
		assert.Contains(t, output, "url=https://youtube.com/watch?v=abc")
		assert.Contains(t, output, "platform=YouTube")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error code on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.MetadataFetcher{
			FetchMetadataFn: func(ctx context.Context, rawURL string) (*pinmark.Metadata, error) {
				return nil, pinmark.Errorf(pinmark.ETIMEOUT, "request timed out")
			},
		}

		mf := pinmarkslog.NewLoggingMetadataFetcher(inner, logger)
		_, err := mf.FetchMetadata(context.Background(), "https://example.com")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "code=timeout")
		assert.Contains(t, output, "err=")
	})
}
