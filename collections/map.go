package collections

import (
	"github.com/puzpuzpuz/xsync/v3"

	"go.dw1.io/musehash"
)

// Map is a concurrent hash map whose keys are hashed with musehash.
// The zero value is not usable; use [NewMap] or [NewMapWithCapacity].
type Map[K comparable, V any] struct {
	m     *xsync.MapOf[K, V]
	state musehash.BuildHasher
}

// NewMap returns an empty Map.
func NewMap[K comparable, V any](opts ...Option) *Map[K, V] {
	return newMap[K, V](0, opts)
}

// NewMapWithCapacity returns an empty Map presized to hold n entries
// without growing.
func NewMapWithCapacity[K comparable, V any](n int, opts ...Option) *Map[K, V] {
	return newMap[K, V](n, opts)
}

func newMap[K comparable, V any](n int, opts []Option) *Map[K, V] {
	o := buildOptions(opts)
	hash := keyHasher[K](o.state)

	return &Map[K, V]{
		m: xsync.NewMapOfWithHasher[K, V](func(key K, _ uint64) uint64 {
			return hash(key)
		}, o.tableConfig(n)...),
		state: o.state,
	}
}

// State returns the seed state used to hash keys.
func (m *Map[K, V]) State() musehash.BuildHasher { return m.state }

// Load returns the value stored for key, if any.
func (m *Map[K, V]) Load(key K) (value V, ok bool) { return m.m.Load(key) }

// Store sets the value for key.
func (m *Map[K, V]) Store(key K, value V) { m.m.Store(key, value) }

// LoadOrStore returns the existing value for key if present. Otherwise it
// stores value and returns it. loaded reports whether the value was
// already present.
func (m *Map[K, V]) LoadOrStore(key K, value V) (actual V, loaded bool) {
	return m.m.LoadOrStore(key, value)
}

// LoadAndDelete deletes key and returns its previous value, if any.
func (m *Map[K, V]) LoadAndDelete(key K) (value V, loaded bool) {
	return m.m.LoadAndDelete(key)
}

// Delete removes key.
func (m *Map[K, V]) Delete(key K) { m.m.Delete(key) }

// Range calls f for each entry until f returns false. The order depends
// on the seed state. Range does not block writers and may or may not
// observe concurrent updates.
func (m *Map[K, V]) Range(f func(key K, value V) bool) { m.m.Range(f) }

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return m.m.Size() }

// Clear removes every entry.
func (m *Map[K, V]) Clear() { m.m.Clear() }

// Keys returns the keys in Range order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.Len())
	m.Range(func(key K, _ V) bool {
		keys = append(keys, key)
		return true
	})

	return keys
}
