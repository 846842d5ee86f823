package collections

import (
	"github.com/puzpuzpuz/xsync/v3"

	"go.dw1.io/musehash"
)

type options struct {
	state    musehash.BuildHasher
	growOnly bool
}

// Option configures a container constructor.
type Option func(*options)

// WithState sets the seed state used to hash keys. A nil state is ignored.
func WithState(state musehash.BuildHasher) Option {
	return func(o *options) {
		if state != nil {
			o.state = state
		}
	}
}

// WithGrowOnly keeps the backing table from shrinking after deletes.
// Ignored by [Filter].
func WithGrowOnly() Option {
	return func(o *options) {
		o.growOnly = true
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	if o.state == nil {
		o.state = musehash.NewRandomState()
	}

	return o
}

// keyHasher returns the digest function for keys of type K under state.
func keyHasher[K comparable](state musehash.BuildHasher) func(K) uint64 {
	return func(key K) uint64 {
		h := state.BuildHasher()
		musehash.WriteComparable(&h, key)
		return h.Finish()
	}
}

func (o options) tableConfig(n int) []func(*xsync.MapConfig) {
	var cfg []func(*xsync.MapConfig)
	if n > 0 {
		cfg = append(cfg, xsync.WithPresize(n))
	}

	if o.growOnly {
		cfg = append(cfg, xsync.WithGrowOnly())
	}

	return cfg
}
