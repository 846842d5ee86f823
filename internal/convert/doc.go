// Package convert turns loosely typed values (flag strings, env values,
// caller-supplied sizes) into unsigned integers.
//
// Integer inputs go through [safemath] so that negative or out-of-range
// values are rejected instead of wrapped. Everything else goes through
// [cast], which accepts decimal strings and the 0x, 0o and 0b prefixes.
package convert
