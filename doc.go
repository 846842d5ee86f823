// Package musehash provides a fast, seeded, non-cryptographic 64-bit hash
// meant to back hash tables and sets.
//
// A [Hasher] is an incremental accumulator: it consumes byte runs through
// [Hasher.Write] and fixed-width integers through the WriteUintN/WriteIntN
// shortcuts, and produces a digest with [Hasher.Finish]. Byte runs are mixed
// by one of three algorithms chosen by length (up to 32 bytes, up to 256
// bytes, and longer), integers are batched in a 128-bit buffer before mixing.
// Each call to Write is hashed as its own unit, so splitting the same bytes
// across several calls yields a different digest. Use [Digest] when streamed
// input must hash like the concatenated one-shot input.
//
// Seeds come from a [BuildHasher]: [FixedState] for reproducible digests and
// [RandomState] for per-instance seeds that blunt hash-flooding attacks.
//
// The hash is not cryptographic, and digests may change between versions.
// Multi-byte reads are little-endian on every platform, so digests are
// identical across byte orders for a given version.
package musehash
