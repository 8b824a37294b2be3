// Package resultfile persists task solutions.
//
// A result file is a flat array of records, one per solution, each made of
// six 64-bit words: the three values followed by the three task coordinates.
// The byte order is chosen by the writer and must be given again to the
// reader. The stream may be compressed with zstd or lz4 frames.
package resultfile
