package gf2

import "math/bits"

// Dim is the number of rows (and columns) of a Matrix.
const Dim = 64

// Matrix is a 64x64 bit-matrix. Row i is selected by bit i of the input vector.
type Matrix [Dim]uint64

// Identity returns the identity matrix.
func Identity() Matrix {
	var m Matrix
	for i := range m {
		m[i] = 1 << uint(i)
	}
	return m
}

// Apply returns the product of m with the column vector x.
func (m *Matrix) Apply(x uint64) uint64 {
	var y uint64
	for i := 0; i < Dim; i++ {
		mask := -((x >> uint(i)) & 1)
		y ^= m[i] & mask
	}
	return y
}

// Mul returns the matrix of the composed map x -> a.Apply(b.Apply(x)).
func Mul(a, b *Matrix) Matrix {
	var c Matrix
	for i := range c {
		c[i] = a.Apply(b[i])
	}
	return c
}

// Inverse returns the inverse of m. ok is false if m is singular.
func (m *Matrix) Inverse() (inv Matrix, ok bool) {
	// Each row pair holds (m.Apply(v), v) for some coefficient vector v.
	// Reducing the left halves to unit vectors leaves the preimages on the right.
	left := *m
	right := Identity()

	for col := 0; col < Dim; col++ {
		bit := uint64(1) << uint(col)

		pivot := -1
		for r := col; r < Dim; r++ {
			if left[r]&bit != 0 {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			return Matrix{}, false
		}

		left[col], left[pivot] = left[pivot], left[col]
		right[col], right[pivot] = right[pivot], right[col]

		for r := 0; r < Dim; r++ {
			if r != col && left[r]&bit != 0 {
				left[r] ^= left[col]
				right[r] ^= right[col]
			}
		}
	}

	return right, true
}

// Rank returns the rank of m.
func (m *Matrix) Rank() int {
	rows := *m
	rank := 0
	for col := 0; col < Dim && rank < Dim; col++ {
		bit := uint64(1) << uint(col)
		pivot := -1
		for r := rank; r < Dim; r++ {
			if rows[r]&bit != 0 {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			continue
		}
		rows[rank], rows[pivot] = rows[pivot], rows[rank]
		for r := rank + 1; r < Dim; r++ {
			if rows[r]&bit != 0 {
				rows[r] ^= rows[rank]
			}
		}
		rank++
	}
	return rank
}

// LeadingZeros reports whether the top l bits of x are all zero.
func LeadingZeros(x uint64, l int) bool {
	return l <= 0 || bits.LeadingZeros64(x) >= l
}
