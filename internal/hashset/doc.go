// Package hashset provides the small fixed-capacity membership sets used to
// test candidate values against a slice's compressed candidate array.
//
// Build tries a two-function cuckoo table first (exactly two probes per
// lookup). If an insertion keeps displacing elements for 2*size rounds, the
// whole set is rebuilt as a linear-probing table instead. The returned Table
// is one of *Cuckoo or *Linear.
//
// Slot value 0 marks an empty slot. Zero itself can still be stored: tables
// keep a separate flag for it.
package hashset
