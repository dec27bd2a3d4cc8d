// Package bloom provides seen-URL tracking using Bloom filters.
package bloom

import (
	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/askskill"
)

// Ensure Filter implements askskill.SeenFilter at compile time.
var _ askskill.SeenFilter = (*Filter)(nil)

// Filter wraps a Bloom filter to track candidate sites a session has already
// presented or attempted. A false positive skips a candidate unnecessarily;
// false negatives never occur, so an attempted site is never re-presented.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected items
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add marks a URL as seen.
func (f *Filter) Add(url string) {
	f.f.AddString(url)
}

// Seen returns true if the URL might have been seen before.
func (f *Filter) Seen(url string) bool {
	return f.f.TestString(url)
}

// EstimatedCount returns the approximate number of items in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
