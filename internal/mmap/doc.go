// Package mmap maps fingerprint and slice files read-only into memory.
//
// A list file is a flat array of little-endian 64-bit words, so on a
// little-endian host the mapping can be handed to the search as a []uint64
// without copying:
//
//	m, err := mmap.Open("foo.012")
//	if err != nil { ... }
//	defer m.Close()
//
//	m.Advise(mmap.AccessSequential)
//	words, err := m.Uint64s()
//
// Unix systems use mmap(2) and madvise(2). Windows uses
// CreateFileMapping/MapViewOfFile and ignores access hints.
//
// A Mapping is safe for concurrent readers. Close is idempotent, but every
// slice obtained from Bytes or Uint64s is invalid once it returns.
package mmap
