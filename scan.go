package pinmark

import "context"

// SeenSet remembers permalinks already reported by feed scans.
// False positives are acceptable; false negatives are not.
type SeenSet interface {
	// TestAndAdd reports whether url was seen before and records it.
	TestAndAdd(url string) bool
}

// HostLimiter throttles requests per host.
type HostLimiter interface {
	// Wait blocks until a request to host is allowed or ctx is done.
	Wait(ctx context.Context, host string) error
}
