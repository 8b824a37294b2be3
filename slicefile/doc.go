// Package slicefile reads and writes slice sequences.
//
// A slice is a randomized linear filter. On disk it is a run of little-endian
// uint64 words:
//
//	M[64] Minv[64] n l CM[n]
//
// Slices are packed back to back with no padding; the sequence ends where the
// buffer ends. Parse validates the whole buffer before any slice is handed
// out, so a malformed file is rejected at load time:
//
//	seq, err := slicefile.Parse(buf)
//	if err != nil { ... }
//	for s := range seq.All() {
//	    _ = s.L
//	}
package slicefile
