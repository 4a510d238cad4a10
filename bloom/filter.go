// Package bloom remembers feed permalinks using Bloom filters.
package bloom

import (
	"io"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/pinmark"
)

// Ensure Filter implements pinmark.SeenSet.
var _ pinmark.SeenSet = (*Filter)(nil)

// Defaults sized for a long feed session.
const (
	DefaultCapacity = 10000
	DefaultFPRate   = 0.001
)

// Filter is a concurrency-safe set of seen permalinks. URLs are stored with
// tracking parameters removed, so share links of the same post collapse.
type Filter struct {
	mu sync.Mutex
	f  *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected items
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// TestAndAdd reports whether url might have been added before and adds it.
func (f *Filter) TestAndAdd(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.f.TestAndAddString(pinmark.StripTrackingParams(url))
}

// Test returns true if the URL might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.f.TestString(pinmark.StripTrackingParams(url))
}

// EstimatedCount returns the approximate number of items in the filter.
func (f *Filter) EstimatedCount() uint {
	f.mu.Lock()
	defer f.mu.Unlock()
	return uint(f.f.ApproximatedSize())
}

// WriteTo serializes the filter so scans can resume across runs.
func (f *Filter) WriteTo(w io.Writer) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.f.WriteTo(w)
}

// ReadFilter restores a filter written with WriteTo.
func ReadFilter(r io.Reader) (*Filter, error) {
	var bf bloom.BloomFilter
	if _, err := bf.ReadFrom(r); err != nil {
		return nil, pinmark.Errorf(pinmark.EINVALID, "invalid seen-set state: %v", err)
	}
	return &Filter{f: &bf}, nil
}
