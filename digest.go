package musehash

import (
	"encoding/binary"
	"hash"
)

// Compile-time interface assertions.
var _ hash.Hash = (*Digest)(nil)
var _ hash.Hash64 = (*Digest)(nil)

// Digest implements [hash.Hash64]. It buffers everything written and hashes
// it as one byte run when summed, so any split of the input across Write
// calls gives the same result as [Sum64WithSeed].
type Digest struct {
	seedA, seedB uint64
	buf          []byte
}

// New64 returns a Digest seeded with seedA and seedB.
func New64(seedA, seedB uint64) *Digest { return &Digest{seedA: seedA, seedB: seedB} }

// New64Random returns a Digest seeded from [NewRandomState].
func New64Random() *Digest {
	s := NewRandomState()
	return &Digest{seedA: s.seedA, seedB: s.seedB}
}

// Sum64 returns the digest of data with both seeds zero.
func Sum64(data []byte) uint64 { return Sum64WithSeed(data, 0, 0) }

// Sum64WithSeed returns the digest of data with the provided seeds.
func Sum64WithSeed(data []byte, seedA, seedB uint64) uint64 {
	return hashBytes(NewHasher(seedA, seedB), data)
}

// Write appends p to the buffered input.
func (d *Digest) Write(p []byte) (int, error) {
	d.buf = append(d.buf, p...)
	return len(p), nil
}

// WriteString appends s to the buffered input.
func (d *Digest) WriteString(s string) (int, error) {
	d.buf = append(d.buf, s...)
	return len(s), nil
}

// Sum appends the current digest to b in big-endian order.
func (d *Digest) Sum(b []byte) []byte {
	var out [8]byte
	binary.BigEndian.PutUint64(out[:], d.Sum64())
	return append(b, out[:]...)
}

// Sum64 returns the digest of the buffered input.
func (d *Digest) Sum64() uint64 { return Sum64WithSeed(d.buf, d.seedA, d.seedB) }

// Reset clears the buffered input.
func (d *Digest) Reset() { d.buf = d.buf[:0] }

// Size returns the digest size in bytes.
func (d *Digest) Size() int { return 8 }

// BlockSize returns the write block size.
func (d *Digest) BlockSize() int { return 1 }
