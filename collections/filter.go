package collections

import (
	"fmt"

	"github.com/greatroar/blobloom"

	"go.dw1.io/musehash/internal/convert"
)

// Filter is a Bloom filter over musehash digests of K. It may report a key
// that was never added, but never misses one that was.
//
// A Filter is not safe for concurrent use when any goroutine calls Add or
// Clear.
type Filter[K comparable] struct {
	f    *blobloom.Filter
	hash func(K) uint64
}

// NewFilter returns a Filter sized for capacity distinct keys at the given
// false-positive rate. [WithGrowOnly] has no effect on a Filter.
func NewFilter[K comparable](capacity int, fpRate float64, opts ...Option) (*Filter[K], error) {
	n, err := convert.Uint64(capacity)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCapacity, err)
	}

	if n == 0 {
		return nil, fmt.Errorf("%w: must be positive", ErrInvalidCapacity)
	}

	if !(fpRate > 0 && fpRate < 1) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidFPRate, fpRate)
	}

	o := buildOptions(opts)

	return &Filter[K]{
		f: blobloom.NewOptimized(blobloom.Config{
			Capacity: n,
			FPRate:   fpRate,
		}),
		hash: keyHasher[K](o.state),
	}, nil
}

// Add inserts key.
func (f *Filter[K]) Add(key K) { f.f.Add(f.hash(key)) }

// Has reports whether key may have been added.
func (f *Filter[K]) Has(key K) bool { return f.f.Has(f.hash(key)) }

// Clear removes every key.
func (f *Filter[K]) Clear() { f.f.Clear() }

// Cardinality estimates the number of distinct keys added.
func (f *Filter[K]) Cardinality() float64 { return f.f.Cardinality() }
