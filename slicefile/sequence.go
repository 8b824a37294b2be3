package slicefile

import (
	"encoding/binary"
	"fmt"
	"iter"

	"github.com/hupe1980/joux/gf2"
)

// Sequence is a validated, read-only sequence of slices.
type Sequence struct {
	words []uint64
	count int
}

// Parse decodes little-endian words from buf and validates the sequence.
func Parse(buf []byte) (*Sequence, error) {
	if len(buf)%8 != 0 {
		return nil, fmt.Errorf("%w: length %d is not a multiple of 8", ErrMalformed, len(buf))
	}
	words := make([]uint64, len(buf)/8)
	for i := range words {
		words[i] = binary.LittleEndian.Uint64(buf[8*i:])
	}
	return FromWords(words)
}

// FromWords validates words as a slice sequence. The sequence aliases words;
// the caller must not modify it afterwards.
func FromWords(words []uint64) (*Sequence, error) {
	count := 0
	for off := 0; off < len(words); count++ {
		rest := len(words) - off
		if rest < HeaderWords {
			return nil, &FormatError{Slice: count, Offset: off, Reason: fmt.Sprintf("truncated header (%d words left)", rest)}
		}
		n := words[off+2*64]
		l := words[off+2*64+1]
		if l > 64 {
			return nil, &FormatError{Slice: count, Offset: off, Reason: fmt.Sprintf("bit-width %d exceeds 64", l)}
		}
		if n > uint64(rest-HeaderWords) {
			return nil, &FormatError{Slice: count, Offset: off, Reason: fmt.Sprintf("declares %d candidates, %d words left", n, rest-HeaderWords)}
		}
		for i, c := range words[off+HeaderWords : off+HeaderWords+int(n)] {
			if !gf2.LeadingZeros(c, int(l)) {
				return nil, &FormatError{Slice: count, Offset: off, Reason: fmt.Sprintf("candidate %d (%#016x) has non-zero top %d bits", i, c, l)}
			}
		}
		sl := decode(words[off:])
		if !sl.Invertible() {
			return nil, &FormatError{Slice: count, Offset: off, Reason: "Minv is not the inverse of M"}
		}
		off += HeaderWords + int(n)
	}
	return &Sequence{words: words, count: count}, nil
}

// Encode returns the little-endian encoding of slices.
func Encode(slices ...*Slice) []byte {
	var words []uint64
	for _, s := range slices {
		words = Append(words, s)
	}
	return encodeWords(words)
}

func encodeWords(words []uint64) []byte {
	buf := make([]byte, 8*len(words))
	for i, w := range words {
		binary.LittleEndian.PutUint64(buf[8*i:], w)
	}
	return buf
}

// Len returns the number of slices.
func (s *Sequence) Len() int {
	if s == nil {
		return 0
	}
	return s.count
}

// Words returns the total length of the sequence in words.
func (s *Sequence) Words() int {
	if s == nil {
		return 0
	}
	return len(s.words)
}

// Bytes returns the little-endian encoding of the sequence.
func (s *Sequence) Bytes() []byte {
	return encodeWords(s.words)
}

// All yields the slices in order, decoding one record at a time.
// CM of each yielded slice aliases the sequence storage.
func (s *Sequence) All() iter.Seq[Slice] {
	return func(yield func(Slice) bool) {
		if s == nil {
			return
		}
		for off := 0; off < len(s.words); {
			sl := decode(s.words[off:])
			off += sl.Words()
			if !yield(sl) {
				return
			}
		}
	}
}

func decode(w []uint64) Slice {
	var s Slice
	copy(s.M[:], w[:64])
	copy(s.Minv[:], w[64:128])
	n := int(w[128])
	s.L = int(w[129])
	s.CM = w[HeaderWords : HeaderWords+n : HeaderWords+n]
	return s
}
