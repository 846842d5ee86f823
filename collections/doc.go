// Package collections provides concurrent hash containers keyed by musehash
// digests.
//
// [Map] and [Set] are backed by xsync's lock-free tables, with the table's
// hash function replaced by a musehash [musehash.Hasher] built from the
// container's seed state. [Filter] is a Bloom filter over the same digests.
//
// By default every container draws its own [musehash.RandomState], so two
// containers holding the same keys generally lay them out (and iterate
// them) differently. Use [WithState] with a [musehash.FixedState] for a
// reproducible layout.
package collections
