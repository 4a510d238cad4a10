package mock

import (
	"context"

	"github.com/fwojciec/pinmark"
)

// Compile-time interface verification.
var (
	_ pinmark.SeenSet     = (*SeenSet)(nil)
	_ pinmark.HostLimiter = (*HostLimiter)(nil)
)

// SeenSet is a mock implementation of pinmark.SeenSet.
type SeenSet struct {
	TestAndAddFn func(url string) bool
}

func (s *SeenSet) TestAndAdd(url string) bool {
	return s.TestAndAddFn(url)
}

// HostLimiter is a mock implementation of pinmark.HostLimiter.
type HostLimiter struct {
	WaitFn func(ctx context.Context, host string) error
}

func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	return l.WaitFn(ctx, host)
}
