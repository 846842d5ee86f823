package musehash

import (
	"sync"
	"sync/atomic"
	"unsafe"
)

// BuildHasher constructs a fresh Hasher for every value hashed. Hash tables
// call it once per operation.
type BuildHasher interface {
	BuildHasher() Hasher
}

// Compile-time interface assertions.
var _ BuildHasher = FixedState{}
var _ BuildHasher = RandomState{}

// FixedState builds hashers from a caller-chosen seed pair. Equal seeds give
// equal digests for equal input, across runs and machines.
type FixedState struct {
	seedA, seedB uint64
}

// NewFixedState returns a FixedState for seedA and seedB.
func NewFixedState(seedA, seedB uint64) FixedState {
	return FixedState{seedA: seedA, seedB: seedB}
}

// BuildHasher returns a new Hasher seeded with s.
func (s FixedState) BuildHasher() Hasher { return NewHasher(s.seedA, s.seedB) }

// Seeds returns the seed pair of s.
func (s FixedState) Seeds() (seedA, seedB uint64) { return s.seedA, s.seedB }

// Hash returns the digest of p written as a single byte run.
func (s FixedState) Hash(p []byte) uint64 { return hashBytes(s.BuildHasher(), p) }

// HashString returns the digest of str written as a single byte run.
func (s FixedState) HashString(str string) uint64 { return hashString(s.BuildHasher(), str) }

// RandomState builds hashers from a seed pair drawn by [NewRandomState].
//
// The seeds differ between calls and between goroutines, which is enough to
// make hash-flooding inputs unpredictable. They are not suitable as secrets.
type RandomState struct {
	seedA, seedB uint64
}

// seedCounter evolves on every NewRandomState call that borrows it.
type seedCounter struct {
	a, b uint64
}

var (
	counterSeq atomic.Uint64

	// counters approximates thread-local storage: the pool keeps a counter
	// per P and hands each one to a single goroutine at a time.
	counters = sync.Pool{
		New: func() any {
			return &seedCounter{a: counterSeq.Add(1) - 1, b: 1123}
		},
	}
)

// NewRandomState draws a new seed pair.
func NewRandomState() RandomState {
	seedA := c0
	seedB := c1 ^ uint64(uintptr(unsafe.Pointer(&seedA)))

	ctr := counters.Get().(*seedCounter)

	lo0, hi0 := wmul(ctr.a^seedA, ctr.b^seedB)
	lo1, hi1 := wmul(ctr.a^c2, seedB^c3)
	lo2, hi2 := wmul(seedA^c4, ctr.b^c5)

	a, b := lo0^hi1^lo2, hi0^lo1^hi2
	ctr.a, ctr.b = a, b
	counters.Put(ctr)

	return RandomState{seedA: seedA - a, seedB: seedB - b}
}

// BuildHasher returns a new Hasher seeded with s.
func (s RandomState) BuildHasher() Hasher { return NewHasher(s.seedA, s.seedB) }

// Seeds returns the seed pair of s.
func (s RandomState) Seeds() (seedA, seedB uint64) { return s.seedA, s.seedB }

// Hash returns the digest of p written as a single byte run.
func (s RandomState) Hash(p []byte) uint64 { return hashBytes(s.BuildHasher(), p) }

// HashString returns the digest of str written as a single byte run.
func (s RandomState) HashString(str string) uint64 { return hashString(s.BuildHasher(), str) }

func hashBytes(h Hasher, p []byte) uint64 {
	h.write(p)
	return h.Finish()
}

func hashString(h Hasher, s string) uint64 {
	h.WriteString(s)
	return h.Finish()
}
