package mem

import (
	"fmt"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestAllocAligned(t *testing.T) {
	sizes := []int{1, 10, 63, 64, 65, 100, 1024}

	for _, size := range sizes {
		buf := AllocAligned(size)
		assert.Len(t, buf, size)
		assert.Equal(t, size, cap(buf))

		addr := uintptr(unsafe.Pointer(&buf[0]))
		assert.Equal(t, uintptr(0), addr%Alignment, "Address %d should be aligned to %d for size %d", addr, Alignment, size)
	}

	assert.Nil(t, AllocAligned(0))
	assert.Nil(t, AllocAligned(-1))
}

func TestAllocAlignedUint64(t *testing.T) {
	sizes := []int{1, 7, 8, 9, 100, 4096}

	for _, size := range sizes {
		buf := AllocAlignedUint64(size)
		assert.Len(t, buf, size)

		addr := uintptr(unsafe.Pointer(&buf[0]))
		assert.Equal(t, uintptr(0), addr%Alignment, "Address %d should be aligned to %d for size %d", addr, Alignment, size)
		for _, w := range buf {
			assert.Zero(t, w)
		}
	}

	assert.Nil(t, AllocAlignedUint64(0))
	assert.Nil(t, AllocAlignedUint64(-1))
}

func TestRoundUpWords(t *testing.T) {
	assert.Equal(t, 0, RoundUpWords(0))
	assert.Equal(t, 64, RoundUpWords(1))
	assert.Equal(t, 64, RoundUpWords(64))
	assert.Equal(t, 128, RoundUpWords(65))
}

func BenchmarkAllocAlignedUint64(b *testing.B) {
	sizes := []int{64, 1024, 1 << 16}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("words=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = AllocAlignedUint64(size)
			}
		})
	}
}
