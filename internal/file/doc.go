// Package file opens inputs for hashing. It prefers memory-mapped I/O via
// [mmapfile] so the whole file can be hashed as one byte run without a copy,
// and falls back to [os.File] when mmap is unavailable (empty files, pipes,
// special files or platform limits).
//
// When mmap is used, Bytes gives zero-copy access to the mapped region.
// Otherwise Bytes returns nil and the file is streamed through a
// [musehash.Digest].
package file
