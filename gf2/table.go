package gf2

import "math/bits"

// Table is the byte-sliced lookup form of a Matrix.
// tables[k][b] is the XOR of rows 8k+i for every bit i set in b.
type Table struct {
	tables [8][256]uint64
}

// NewTable builds the lookup tables of m.
func NewTable(m *Matrix) *Table {
	t := &Table{}
	t.Reset(m)
	return t
}

// Reset rebuilds t in place for m.
func (t *Table) Reset(m *Matrix) {
	for k := 0; k < 8; k++ {
		lo := 8 * k
		t.tables[k][0] = 0
		var acc uint64
		for j := uint(1); j < 256; j++ {
			// Successive Gray codes differ in bit ctz(j).
			acc ^= m[lo+bits.TrailingZeros(j)]
			t.tables[k][j^(j>>1)] = acc
		}
	}
}

// Apply returns the product of the underlying matrix with x.
func (t *Table) Apply(x uint64) uint64 {
	return t.tables[0][x&0xff] ^
		t.tables[1][(x>>8)&0xff] ^
		t.tables[2][(x>>16)&0xff] ^
		t.tables[3][(x>>24)&0xff] ^
		t.tables[4][(x>>32)&0xff] ^
		t.tables[5][(x>>40)&0xff] ^
		t.tables[6][(x>>48)&0xff] ^
		t.tables[7][(x>>56)&0xff]
}

// ApplyAll writes t.Apply(src[i]) into dst[i] for every i.
// dst must be at least as long as src.
func (t *Table) ApplyAll(dst, src []uint64) {
	dst = dst[:len(src)]
	for i, x := range src {
		dst[i] = t.Apply(x)
	}
}
