package musehash

import (
	"math/bits"
	"testing"
)

func TestWmul(t *testing.T) {
	lo, hi := wmul(^uint64(0), ^uint64(0))
	if lo != 1 || hi != ^uint64(0)-1 {
		t.Fatalf("wmul(max, max) = (%#x, %#x)", lo, hi)
	}

	if got := fmul(1<<63, 4); got != 2 {
		t.Fatalf("fmul(1<<63, 4) = %#x, want 2", got)
	}
}

func TestReadShort(t *testing.T) {
	tests := []struct {
		name   string
		in     []byte
		lo, hi uint64
	}{
		{name: "empty", in: nil, lo: 0, hi: 0},
		{name: "one", in: []byte{0xaa}, lo: 0xaa<<48 | 0xaa<<24 | 0xaa, hi: 0},
		{name: "two", in: []byte{0x01, 0x02}, lo: 0x01<<48 | 0x02<<24 | 0x02, hi: 0},
		{name: "three", in: []byte{0x01, 0x02, 0x03}, lo: 0x01<<48 | 0x02<<24 | 0x03, hi: 0},
		{
			name: "four",
			in:   []byte{1, 2, 3, 4},
			lo:   0x04030201<<32 | 0x04030201,
			hi:   0x04030201<<32 | 0x04030201,
		},
		{
			name: "eight",
			in:   []byte{1, 2, 3, 4, 5, 6, 7, 8},
			lo:   0x04030201<<32 | 0x08070605,
			hi:   0x08070605<<32 | 0x04030201,
		},
		{
			name: "sixteen",
			in:   []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16},
			lo:   0x04030201<<32 | 0x100f0e0d,
			hi:   0x08070605<<32 | 0x0c0b0a09,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := readShort(tt.in)
			if lo != tt.lo || hi != tt.hi {
				t.Fatalf("readShort(%x) = (%#x, %#x), want (%#x, %#x)", tt.in, lo, hi, tt.lo, tt.hi)
			}
		})
	}
}

func TestShl128(t *testing.T) {
	tests := []struct {
		lo, hi uint64
		n      uint
		wlo    uint64
		whi    uint64
	}{
		{lo: 0xff, hi: 0, n: 0, wlo: 0xff, whi: 0},
		{lo: 0xff, hi: 0, n: 8, wlo: 0xff00, whi: 0},
		{lo: 0xff, hi: 0, n: 60, wlo: 0xf << 60, whi: 0xf},
		{lo: 0xff, hi: 0, n: 64, wlo: 0, whi: 0xff},
		{lo: 0xff, hi: 0, n: 120, wlo: 0, whi: 0xff << 56},
		{lo: 1, hi: 1, n: 1, wlo: 2, whi: 2},
	}

	for _, tt := range tests {
		lo, hi := shl128(tt.lo, tt.hi, tt.n)
		if lo != tt.wlo || hi != tt.whi {
			t.Fatalf("shl128(%#x, %#x, %d) = (%#x, %#x), want (%#x, %#x)",
				tt.lo, tt.hi, tt.n, lo, hi, tt.wlo, tt.whi)
		}
	}
}

func TestSpongeFillsWithoutFlush(t *testing.T) {
	h := NewHasher(1, 2)
	h.WriteUint8(0x11)
	h.WriteUint16(0x2222)
	h.WriteUint32(0x33333333)
	h.WriteUint64(0x4444444444444444)

	if h.spongeLen != 120 {
		t.Fatalf("spongeLen = %d, want 120", h.spongeLen)
	}
	if h.accLo != 1 || h.accHi != 2 {
		t.Fatalf("accumulator changed before the sponge was full: (%#x, %#x)", h.accLo, h.accHi)
	}

	wantLo := uint64(0x44_33333333_2222_11)
	wantHi := uint64(0x44444444444444)
	if h.spongeLo != wantLo || h.spongeHi != wantHi {
		t.Fatalf("sponge = (%#x, %#x), want (%#x, %#x)", h.spongeLo, h.spongeHi, wantLo, wantHi)
	}

	h.WriteUint8(0x55)
	if h.spongeLen != 128 || h.accLo != 1 || h.accHi != 2 {
		t.Fatalf("exactly 128 bits must not flush: len=%d acc=(%#x, %#x)", h.spongeLen, h.accLo, h.accHi)
	}
}

func TestSpongeFlush(t *testing.T) {
	h := NewHasher(0x1234, 0x5678)
	h.WriteUint64(0xaaaa)
	h.WriteUint64(0xbbbb)

	prevLo, prevHi := h.spongeLo, h.spongeHi
	accLo, accHi := h.accLo, h.accHi

	h.WriteUint8(0xcc)

	lolo, lohi := wmul(prevLo^accLo, prevHi^0x5678)
	hilo, hihi := wmul(prevHi^accHi, prevLo^0x1234)

	if h.accLo != lolo^hihi || h.accHi != hilo^lohi {
		t.Fatalf("accumulator after flush = (%#x, %#x), want (%#x, %#x)",
			h.accLo, h.accHi, lolo^hihi, hilo^lohi)
	}

	if h.spongeLo != ^prevLo^0xcc || h.spongeHi != ^prevHi {
		t.Fatalf("sponge after flush = (%#x, %#x), want complement of (%#x, %#x) with 0xcc inserted",
			h.spongeLo, h.spongeHi, prevLo, prevHi)
	}

	if h.spongeLen != 8 {
		t.Fatalf("spongeLen after flush = %d, want 8", h.spongeLen)
	}
}

func TestSpongeFlushOn128BitWrite(t *testing.T) {
	h := NewHasher(1, 2)
	h.WriteUint8(1)
	h.WriteUint128(3, 4)

	if h.spongeLen != 128 {
		t.Fatalf("spongeLen = %d, want 128", h.spongeLen)
	}
	if h.spongeLo != ^uint64(1)^4 || h.spongeHi != ^uint64(0)^3 {
		t.Fatalf("sponge = (%#x, %#x)", h.spongeLo, h.spongeHi)
	}
}

func TestFinishDoesNotMutate(t *testing.T) {
	h := NewHasher(9, 10)
	h.WriteString("abc")
	h.WriteUint32(5)

	before := h
	_ = h.Finish()
	if h != before {
		t.Fatalf("Finish modified the hasher")
	}
}

func TestFinishWithoutSponge(t *testing.T) {
	h := NewHasher(1, 2)

	i, j := wmul(1^c2, 2^c3)
	i, j = wmul(i^c4, j^c5)

	if got := h.Finish(); got != i^j {
		t.Fatalf("Finish() = %#x, want %#x", got, i^j)
	}
}

func TestMixMediumReadsEveryByte(t *testing.T) {
	for n := 16; n <= mediumMax; n++ {
		p := make([]byte, n)
		for i := range p {
			p[i] = byte(i % 251)
		}

		base := NewHasher(1, 2)
		base.mixMedium(p, n)

		for i := range p {
			p[i] ^= 1
			h := NewHasher(1, 2)
			h.mixMedium(p, n)
			p[i] ^= 1

			if h.accLo == base.accLo && h.accHi == base.accHi {
				t.Fatalf("len %d: byte %d does not reach the accumulator", n, i)
			}
		}
	}
}

func TestLongTailWindow(t *testing.T) {
	// A long input with no tail still mixes the final window, so the
	// accumulator is never left as the bare XOR of the ring state.
	data := make([]byte, 2*blockSize)
	h := NewHasher(1, 2)
	h.Write(data)

	if h.accLo == 0 && h.accHi == 0 {
		t.Fatalf("accumulator zeroed by a block-aligned input")
	}

	other := make([]byte, 2*blockSize)
	other[0] = 1
	g := NewHasher(1, 2)
	g.Write(other)

	if h.Finish() == g.Finish() {
		t.Fatalf("block-aligned inputs differing in the first byte collide")
	}
}

func TestUintSizeShortcut(t *testing.T) {
	h := NewHasher(1, 2)
	h.WriteUint(1)
	if h.spongeLen != uint(bits.UintSize) {
		t.Fatalf("WriteUint used %d bits, want %d", h.spongeLen, bits.UintSize)
	}
}

func TestZeroSeedSpongeProduct(t *testing.T) {
	// A lone 64-bit write under seedA == 0 must still reach the digest.
	seen := make(map[uint64]struct{}, 1000)
	for k := range uint64(1000) {
		h := NewHasher(0, 7)
		h.WriteUint64(k)
		seen[h.Finish()] = struct{}{}
	}

	if len(seen) != 1000 {
		t.Fatalf("1000 keys gave %d distinct digests under seedA == 0", len(seen))
	}
}
