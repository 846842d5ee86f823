package collections

import "github.com/puzpuzpuz/xsync/v3"

// Set is a concurrent hash set whose members are hashed with musehash.
// The zero value is not usable; use [NewSet] or [NewSetWithCapacity].
type Set[K comparable] struct {
	m *xsync.MapOf[K, struct{}]
}

// NewSet returns an empty Set.
func NewSet[K comparable](opts ...Option) *Set[K] {
	return newSet[K](0, opts)
}

// NewSetWithCapacity returns an empty Set presized to hold n members
// without growing.
func NewSetWithCapacity[K comparable](n int, opts ...Option) *Set[K] {
	return newSet[K](n, opts)
}

func newSet[K comparable](n int, opts []Option) *Set[K] {
	o := buildOptions(opts)
	hash := keyHasher[K](o.state)

	return &Set[K]{
		m: xsync.NewMapOfWithHasher[K, struct{}](func(key K, _ uint64) uint64 {
			return hash(key)
		}, o.tableConfig(n)...),
	}
}

// Add inserts key and reports whether it was not already present.
func (s *Set[K]) Add(key K) bool {
	_, loaded := s.m.LoadOrStore(key, struct{}{})
	return !loaded
}

// Has reports whether key is present.
func (s *Set[K]) Has(key K) bool {
	_, ok := s.m.Load(key)
	return ok
}

// Remove deletes key and reports whether it was present.
func (s *Set[K]) Remove(key K) bool {
	_, loaded := s.m.LoadAndDelete(key)
	return loaded
}

// Len returns the number of members.
func (s *Set[K]) Len() int { return s.m.Size() }

// Range calls f for each member until f returns false.
func (s *Set[K]) Range(f func(key K) bool) {
	s.m.Range(func(key K, _ struct{}) bool { return f(key) })
}

// Clear removes every member.
func (s *Set[K]) Clear() { s.m.Clear() }
