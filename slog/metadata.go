package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pinmark"
)

// Ensure LoggingMetadataFetcher implements pinmark.MetadataFetcher.
var _ pinmark.MetadataFetcher = (*LoggingMetadataFetcher)(nil)

// LoggingMetadataFetcher wraps a MetadataFetcher with logging.
type LoggingMetadataFetcher struct {
	next   pinmark.MetadataFetcher
	logger *slog.Logger
}

// NewLoggingMetadataFetcher creates a new LoggingMetadataFetcher.
func NewLoggingMetadataFetcher(next pinmark.MetadataFetcher, logger *slog.Logger) *LoggingMetadataFetcher {
	return &LoggingMetadataFetcher{next: next, logger: logger}
}

// FetchMetadata delegates to the wrapped fetcher and logs the operation.
func (f *LoggingMetadataFetcher) FetchMetadata(ctx context.Context, rawURL string) (md *pinmark.Metadata, err error) {
	defer func(begin time.Time) {
		var platform string
		if md != nil {
			platform = md.Platform
		}
		f.logger.Info("metadata fetch",
			"url", rawURL,
			"platform", platform,
			"duration", time.Since(begin),
			"code", pinmark.ErrorCode(err),
			"err", err,
		)
	}(time.Now())
	return f.next.FetchMetadata(ctx, rawURL)
}
