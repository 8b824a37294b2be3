// Package partition scatters a projected list into 2^p buckets keyed by the
// top p bits of each value.
//
// Every worker owns a private, cache-line aligned region of each bucket in
// the scratch buffer, so the scatter runs without synchronization:
//
//	bucket b, worker t  ->  scratch[b*PartCap + t*ThreadCap : ... + ThreadCap]
//
// Region capacities come from a Chernoff-style bound that makes overflow
// astronomically unlikely for uniformly distributed input. Overflow is still
// checked and reported as an *OverflowError; it is never truncated.
package partition
