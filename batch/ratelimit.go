package batch

import (
	"context"
	"sync"

	"github.com/fwojciec/pinmark"
	"golang.org/x/time/rate"
)

var _ pinmark.HostLimiter = (*HostLimiter)(nil)

// DefaultHostRPS is the default request rate per host.
const DefaultHostRPS = 2.0

// HostLimiter throttles requests per host using token buckets, so a batch
// spanning many sites runs concurrently while each site sees a steady rate.
type HostLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewHostLimiter creates a HostLimiter allowing rps requests per second to
// each host with no bursting.
func NewHostLimiter(rps float64) *HostLimiter {
	return &HostLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the rate limit allows a request to host.
// Returns an error if the context is canceled before the wait completes.
func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	l.mu.Lock()
	limiter, ok := l.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(l.rps), 1)
		l.limiters[host] = limiter
	}
	l.mu.Unlock()

	return limiter.Wait(ctx)
}
