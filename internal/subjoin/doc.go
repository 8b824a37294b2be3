// Package subjoin performs the filtered per-bucket join of two partitioned
// sides.
//
// For one bucket, the values of side A are inserted into a linear-probing
// table keyed by their top l bits; each value y of side B then walks the probe
// chain at its own key and emits (x, y, x^y) for every x whose XOR with y has
// its top l bits clear. Emitted candidates are not verified here.
//
// Each worker owns a Joiner (table plus candidate buffer). Buckets are handed
// out in small chunks from a shared counter because bucket sizes vary.
package subjoin
