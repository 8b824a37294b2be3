// Package gf2 implements 64x64 bit-matrices over GF(2).
//
// A Matrix is stored as 64 packed rows. Applying a matrix to a 64-bit vector x
// XORs together the rows selected by the set bits of x:
//
//	y = XOR { m[i] : bit i of x is set }
//
// Two interchangeable kernels are provided. Apply is the reference bit-scan.
// Table.Apply precomputes, for each of the 8 bytes of x, the 256 partial XOR
// sums of the corresponding 8 rows and then needs 8 lookups per vector:
//
//	t := gf2.NewTable(&m)
//	y := t.Apply(x) // == m.Apply(x)
//
// Tables are built with a Gray-code walk, so each of the 8 tables costs 255
// row XORs.
package gf2
