package hashset

import (
	"fmt"
	"math/bits"
)

// DefaultSize is the slot count of a membership table (4 KiB of uint64).
const DefaultSize = 512

// Kind identifies the probing strategy of a Table.
type Kind uint8

const (
	// KindCuckoo is the two-probe cuckoo strategy.
	KindCuckoo Kind = iota
	// KindLinear is the linear-probing fallback.
	KindLinear
)

// String returns the string representation of a Kind.
func (k Kind) String() string {
	switch k {
	case KindCuckoo:
		return "cuckoo"
	case KindLinear:
		return "linear"
	default:
		return "unknown"
	}
}

// Table is a read-only membership set over uint64 values.
type Table interface {
	// Contains reports whether x was inserted.
	Contains(x uint64) bool
	// Kind reports the probing strategy.
	Kind() Kind
	// Len returns the number of distinct values stored.
	Len() int

	sealed()
}

// slots is the storage shared by both strategies.
type slots struct {
	h       []uint64
	mask    uint64
	hasZero bool
	n       int
}

func newSlots(size int) slots {
	return slots{h: make([]uint64, size), mask: uint64(size - 1)}
}

func (s *slots) h0(x uint64) uint64 { return x & s.mask }
func (s *slots) h1(x uint64) uint64 { return (x >> 16) & s.mask }

func (s *slots) Len() int { return s.n }

func (s *slots) sealed() {}

// TableSize returns the slot count used for n values: the configured size,
// doubled until it holds at least twice n slots. size must be a power of two.
func TableSize(size, n int) int {
	if size <= 0 || size&(size-1) != 0 {
		panic(fmt.Sprintf("hashset: table size %d is not a power of two", size))
	}
	for size < 2*n {
		size <<= 1
	}
	return size
}

// Build inserts values into a cuckoo table of TableSize(size, len(values))
// slots and falls back to linear probing if cuckoo insertion fails.
func Build(values []uint64, size int) Table {
	size = TableSize(size, len(values))
	if c, ok := BuildCuckoo(values, size); ok {
		return c
	}
	return BuildLinear(values, size)
}

func isPow2(n int) bool {
	return n > 0 && bits.OnesCount(uint(n)) == 1
}
