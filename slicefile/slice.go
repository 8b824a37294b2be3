package slicefile

import (
	"github.com/hupe1980/joux/gf2"
)

// HeaderWords is the number of words preceding CM in a slice record.
const HeaderWords = 2*gf2.Dim + 2

// Slice is one randomized linear filter.
type Slice struct {
	// M projects fingerprints; Minv lifts them back.
	M, Minv gf2.Matrix
	// L is the number of leading bits that are zero in every CM entry.
	L int
	// CM is the compressed candidate set, already projected by M.
	CM []uint64
}

// Words returns the encoded length of s in words.
func (s *Slice) Words() int {
	return HeaderWords + len(s.CM)
}

// Invertible reports whether Minv undoes M.
func (s *Slice) Invertible() bool {
	return gf2.Mul(&s.Minv, &s.M) == gf2.Identity()
}

// Append appends the encoding of s to dst.
func Append(dst []uint64, s *Slice) []uint64 {
	dst = append(dst, s.M[:]...)
	dst = append(dst, s.Minv[:]...)
	dst = append(dst, uint64(len(s.CM)), uint64(s.L))
	return append(dst, s.CM...)
}
