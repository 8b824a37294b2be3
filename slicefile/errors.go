package slicefile

import (
	"errors"
	"fmt"
)

// ErrMalformed is returned for buffers that do not hold a valid slice sequence.
var ErrMalformed = errors.New("slicefile: malformed slice sequence")

// FormatError locates a framing or content violation.
type FormatError struct {
	// Slice is the index of the offending slice in the sequence.
	Slice int
	// Offset is the word offset of the slice record.
	Offset int
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("slicefile: slice %d at word %d: %s", e.Slice, e.Offset, e.Reason)
}

// Unwrap returns ErrMalformed.
func (e *FormatError) Unwrap() error { return ErrMalformed }
