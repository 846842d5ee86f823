package musehash

import (
	"io"
	"math"
	"math/bits"
	"unsafe"
)

// Compile-time interface assertions.
var _ io.Writer = (*Hasher)(nil)
var _ io.StringWriter = (*Hasher)(nil)

// Hasher accumulates byte runs and fixed-width integers into a 64-bit digest.
//
// The zero value is a valid Hasher with both seeds set to zero. A Hasher is a
// small value type and is not safe for concurrent use.
type Hasher struct {
	seedA, seedB uint64
	accLo, accHi uint64

	// 128-bit buffer for numeric writes and the number of bits used.
	spongeLo, spongeHi uint64
	spongeLen          uint
}

// NewHasher returns a Hasher for the hash-family member selected by seedA and
// seedB.
func NewHasher(seedA, seedB uint64) Hasher {
	return Hasher{
		seedA: seedA,
		seedB: seedB,
		accLo: seedA,
		accHi: seedB,
	}
}

// Seeds returns the seed pair h was built from.
func (h *Hasher) Seeds() (seedA, seedB uint64) { return h.seedA, h.seedB }

// Reset discards everything written so far, keeping the seeds.
func (h *Hasher) Reset() { *h = NewHasher(h.seedA, h.seedB) }

// Write mixes p into h as a single byte run. It always returns len(p), nil.
func (h *Hasher) Write(p []byte) (int, error) {
	h.write(p)
	return len(p), nil
}

// WriteString is like Write but takes a string without copying it.
func (h *Hasher) WriteString(s string) (int, error) {
	h.write(unsafe.Slice(unsafe.StringData(s), len(s)))
	return len(s), nil
}

func (h *Hasher) write(p []byte) {
	switch n := len(p); {
	case n <= shortMax:
		h.writeShort(p)
	case n <= mediumMax:
		h.writeMedium(p)
	default:
		h.writeLong(p)
	}
}

// WriteUint8 adds v to the numeric buffer.
func (h *Hasher) WriteUint8(v uint8) { h.writeNum(uint64(v), 0, 8) }

// WriteUint16 adds v to the numeric buffer.
func (h *Hasher) WriteUint16(v uint16) { h.writeNum(uint64(v), 0, 16) }

// WriteUint32 adds v to the numeric buffer.
func (h *Hasher) WriteUint32(v uint32) { h.writeNum(uint64(v), 0, 32) }

// WriteUint64 adds v to the numeric buffer.
func (h *Hasher) WriteUint64(v uint64) { h.writeNum(v, 0, 64) }

// WriteUint128 adds the 128-bit value hi<<64|lo to the numeric buffer.
func (h *Hasher) WriteUint128(hi, lo uint64) { h.writeNum(lo, hi, 128) }

// WriteUint adds v to the numeric buffer as a 32- or 64-bit value, depending
// on the platform word size.
func (h *Hasher) WriteUint(v uint) {
	if bits.UintSize == 32 {
		h.WriteUint32(uint32(v))
		return
	}
	h.WriteUint64(uint64(v))
}

// WriteUintptr is like WriteUint for uintptr values.
func (h *Hasher) WriteUintptr(v uintptr) { h.WriteUint(uint(v)) }

// WriteInt8 adds v to the numeric buffer.
func (h *Hasher) WriteInt8(v int8) { h.WriteUint8(uint8(v)) }

// WriteInt16 adds v to the numeric buffer.
func (h *Hasher) WriteInt16(v int16) { h.WriteUint16(uint16(v)) }

// WriteInt32 adds v to the numeric buffer.
func (h *Hasher) WriteInt32(v int32) { h.WriteUint32(uint32(v)) }

// WriteInt64 adds v to the numeric buffer.
func (h *Hasher) WriteInt64(v int64) { h.WriteUint64(uint64(v)) }

// WriteInt128 adds the two's complement 128-bit value hi<<64|lo to the
// numeric buffer.
func (h *Hasher) WriteInt128(hi int64, lo uint64) { h.WriteUint128(uint64(hi), lo) }

// WriteInt is like WriteUint for int values.
func (h *Hasher) WriteInt(v int) { h.WriteUint(uint(v)) }

// WriteBool adds v to the numeric buffer as a single byte.
func (h *Hasher) WriteBool(v bool) {
	var b uint8
	if v {
		b = 1
	}
	h.WriteUint8(b)
}

// WriteFloat32 adds the IEEE 754 bits of v to the numeric buffer.
func (h *Hasher) WriteFloat32(v float32) { h.WriteUint32(math.Float32bits(v)) }

// WriteFloat64 adds the IEEE 754 bits of v to the numeric buffer.
func (h *Hasher) WriteFloat64(v float64) { h.WriteUint64(math.Float64bits(v)) }

// writeNum inserts the width-bit value hi<<64|lo at the current buffer
// offset. When it would not fit, the buffer is first mixed into the
// accumulator and replaced by its own complement.
func (h *Hasher) writeNum(lo, hi uint64, width uint) {
	if h.spongeLen+width > 128 {
		sl, sh := h.spongeLo, h.spongeHi
		lolo, lohi := wmul(sl^h.accLo, sh^h.seedB)
		hilo, hihi := wmul(sh^h.accHi, sl^h.seedA)

		h.accLo = lolo ^ hihi
		h.accHi = hilo ^ lohi

		h.spongeLo, h.spongeHi = ^sl, ^sh
		h.spongeLen = 0
	}

	lo, hi = shl128(lo, hi, h.spongeLen)
	h.spongeLo ^= lo
	h.spongeHi ^= hi
	h.spongeLen += width
}

// shl128 shifts the 128-bit value hi<<64|lo left by n bits.
func shl128(lo, hi uint64, n uint) (uint64, uint64) {
	switch {
	case n == 0:
		return lo, hi
	case n < 64:
		return lo << n, hi<<n | lo>>(64-n)
	case n < 128:
		return 0, lo << (n - 64)
	default:
		return 0, 0
	}
}

// Finish returns the digest of everything written so far. It does not modify
// h, so it may be called repeatedly and interleaved with further writes.
func (h *Hasher) Finish() uint64 {
	i, j := h.accLo, h.accHi
	var u, v uint64

	if h.spongeLen != 0 {
		// Zero when seedA == c6 and only the low sponge word is set.
		u, v = wmul(h.spongeLo^j, h.spongeHi^i^c6)
		u, v = wmul(u^c0, v^c1)
	}

	i, j = wmul(i^c2, j^c3)
	i, j = wmul(i^c4, j^c5)

	return i ^ j ^ u ^ v
}

// Sum64 is an alias for Finish.
func (h *Hasher) Sum64() uint64 { return h.Finish() }
