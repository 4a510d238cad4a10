package mock

import (
	"context"

	"github.com/fwojciec/pinmark"
)

var _ pinmark.ClipboardReader = (*ClipboardReader)(nil)

// ClipboardReader is a mock implementation of pinmark.ClipboardReader.
type ClipboardReader struct {
	ReadTextFn func(ctx context.Context) (string, error)
}

func (r *ClipboardReader) ReadText(ctx context.Context) (string, error) {
	return r.ReadTextFn(ctx)
}
