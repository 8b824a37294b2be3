// Package mem provides memory allocation utilities.
//
// # Aligned Allocation
//
// Projection and partition buffers are 64-byte aligned so that every
// per-worker bucket region starts on its own cache line.
package mem
