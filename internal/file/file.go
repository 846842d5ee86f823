package file

import (
	"io"
	"math"
	"os"

	"go.dw1.io/mmapfile"

	"go.dw1.io/musehash"
)

var _ io.Closer = (*File)(nil)

// File is a read-only input backed by either a memory-mapped file or a
// plain os.File.
type File struct {
	mm *mmapfile.MmapFile
	os *os.File
}

// Open maps name into memory when possible; otherwise it falls back to
// os.Open.
func Open(name string) (*File, error) {
	mf, err := mmapfile.Open(name)
	if err == nil {
		return &File{mm: mf}, nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	return &File{os: f}, nil
}

// Close releases resources held by the file.
func (f *File) Close() error {
	if f.mm != nil {
		return f.mm.Close()
	}

	return f.os.Close()
}

// Bytes exposes the mapped region, or nil for the os.File fallback.
func (f *File) Bytes() []byte {
	if f.mm != nil {
		return f.mm.Bytes()
	}

	return nil
}

// Sum64 hashes the whole file as a single byte run. The current read
// offset is ignored and left unchanged.
func (f *File) Sum64(seedA, seedB uint64) (uint64, error) {
	if f.mm != nil {
		return musehash.Sum64WithSeed(f.mm.Bytes(), seedA, seedB), nil
	}

	return Sum64(io.NewSectionReader(f.os, 0, math.MaxInt64), seedA, seedB)
}

// Sum64 hashes everything read from r as a single byte run.
func Sum64(r io.Reader, seedA, seedB uint64) (uint64, error) {
	d := musehash.New64(seedA, seedB)
	if _, err := io.Copy(d, r); err != nil {
		return 0, err
	}

	return d.Sum64(), nil
}
