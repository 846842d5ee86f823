package musehash

import (
	"encoding/binary"
	"math/bits"
)

// Fractional part of Gamma(2/3).
const (
	c0 uint64 = 0x5aa77928c3678cab
	c1 uint64 = 0x2f4feb702b26990a
	c2 uint64 = 0x54f7edbc621298be
	c3 uint64 = 0xb6e4e1eb259b0c87
	c4 uint64 = 0xa38abf7cde765fa6
	c5 uint64 = 0x283d1db180df5862
	c6 uint64 = 0xff0d89fac6d1825e
)

const (
	shortMax  = 32
	mediumMax = 256
	blockSize = 96
)

// wmul returns the lower and upper 64 bits of a*b.
func wmul(a, b uint64) (uint64, uint64) {
	hi, lo := bits.Mul64(a, b)
	return lo, hi
}

// fmul folds the 128-bit product of a and b into 64 bits.
func fmul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return lo ^ hi
}

func le32(p []byte) uint64 { return uint64(binary.LittleEndian.Uint32(p)) }

func le64(p []byte) uint64 { return binary.LittleEndian.Uint64(p) }

// readShort packs up to 16 bytes into two words. Inputs of 4 bytes or more
// contribute their leading and trailing 32-bit words; shorter inputs
// contribute their first, middle and last byte.
func readShort(p []byte) (uint64, uint64) {
	n := len(p)
	switch {
	case n >= 4:
		off := 0
		if n >= 8 {
			off = 4
		}
		head, headOff := le32(p), le32(p[off:])
		tail, tailOff := le32(p[n-4:]), le32(p[n-off-4:])
		return head<<32 | tail, headOff<<32 | tailOff
	case n > 0:
		return uint64(p[0])<<48 | uint64(p[n>>1])<<24 | uint64(p[n-1]), 0
	default:
		return 0, 0
	}
}

func (h *Hasher) writeShort(p []byte) {
	n := uint64(len(p))
	lo2, hi2 := wmul(c0^h.accHi, c1^n^h.accLo)

	a, b := readShort(p[:min(len(p), 16)])
	h.accLo = a ^ lo2 ^ n
	h.accHi = b ^ hi2 ^ h.seedA

	if len(p) > 16 {
		u, v := readShort(p[16:])
		lo0, hi0 := wmul(c2, c3^u)
		lo1, hi1 := wmul(c4, c5^v)
		h.accLo ^= lo0 ^ hi1
		h.accHi ^= lo1 ^ hi0
	}
}

func (h *Hasher) writeMedium(p []byte) {
	h.mixMedium(p, len(p))
}

// mixMedium walks 16-byte windows from the front and from the back of p in
// lockstep until the two walks meet, then rotates the accumulator halves by
// rot in opposite directions. len(p) must be at least 16.
func (h *Hasher) mixMedium(p []byte, rot int) {
	n := len(p)
	times := min((n+31)/32, n/16)
	i, j := h.accLo, h.accHi

	for k := range times {
		fwd := p[k*16 : k*16+16]
		rev := p[n-k*16-16 : n-k*16]
		i = fmul(i^le64(fwd), h.seedB^le64(rev[8:]))
		j = fmul(j^le64(fwd[8:]), h.seedA^le64(rev))
	}

	r := rot & 63
	h.accLo = bits.RotateLeft64(h.accLo, r) ^ i
	h.accHi = bits.RotateLeft64(h.accHi, -r) ^ j
}

func (h *Hasher) writeLong(p []byte) {
	prev := c6
	s := [6]uint64{
		c0 + h.seedA,
		c1 - h.seedB,
		c2 ^ h.seedA,
		c3 + h.seedB,
		c4 - h.seedA,
		c5 ^ h.seedB,
	}

	rest := p
	for len(rest) >= blockSize {
		blk := rest[:blockSize:blockSize]
		rest = rest[blockSize:]

		s[0] ^= le64(blk[0:])
		s[1] ^= le64(blk[8:])
		lo0, hi0 := wmul(s[0], s[1])
		s[0] = prev ^ hi0

		s[1] ^= le64(blk[16:])
		s[2] ^= le64(blk[24:])
		lo1, hi1 := wmul(s[1], s[2])
		s[1] = lo0 ^ hi1

		s[2] ^= le64(blk[32:])
		s[3] ^= le64(blk[40:])
		lo2, hi2 := wmul(s[2], s[3])
		s[2] = lo1 ^ hi2

		s[3] ^= le64(blk[48:])
		s[4] ^= le64(blk[56:])
		lo3, hi3 := wmul(s[3], s[4])
		s[3] = lo2 ^ hi3

		s[4] ^= le64(blk[64:])
		s[5] ^= le64(blk[72:])
		lo4, hi4 := wmul(s[4], s[5])
		s[4] = lo3 ^ hi4

		s[5] ^= le64(blk[80:])
		s[0] ^= le64(blk[88:])
		lo5, hi5 := wmul(s[5], s[0])
		s[5] = lo4 ^ hi5

		prev = lo5
	}

	s[0] ^= prev

	h.accLo ^= s[0] + s[2] + s[4]
	h.accHi ^= s[1] + s[3] + s[5]

	// The tail window reaches back into the last block when fewer than 16
	// bytes remain; the rotation still reflects the true tail length.
	rem := len(rest)
	h.mixMedium(p[len(p)-max(rem, 16):], rem)
}
