package mem

import (
	"unsafe"
)

// Alignment is the byte alignment of returned buffers (one cache line).
const Alignment = 64

// WordsPerLine is the number of uint64 words in one aligned line.
const WordsPerLine = Alignment / 8

// AllocAligned allocates a byte slice of the given size with 64-byte alignment.
// The returned slice is guaranteed to start at a memory address divisible by 64.
//
// Note: This function allocates slightly more memory than requested to ensure alignment.
// The underlying array is kept alive by the returned slice.
func AllocAligned(size int) []byte {
	if size <= 0 {
		return nil
	}

	buf := make([]byte, size+Alignment)

	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for memory alignment
	addr := uintptr(ptr)
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	return buf[offset : offset+uintptr(size) : offset+uintptr(size)]
}

// AllocAlignedUint64 allocates a zeroed uint64 slice of n words with 64-byte alignment.
func AllocAlignedUint64(n int) []uint64 {
	if n <= 0 {
		return nil
	}
	byteSlice := AllocAligned(n * 8)
	ptr := unsafe.Pointer(&byteSlice[0])  //nolint:gosec // unsafe is required for memory alignment
	return unsafe.Slice((*uint64)(ptr), n) //nolint:gosec // unsafe is required for memory alignment
}

// RoundUpWords rounds n up to a whole number of 64-word blocks.
func RoundUpWords(n int) int {
	const block = 64
	return (n + block - 1) / block * block
}
