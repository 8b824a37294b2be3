package partition

import (
	"errors"
	"fmt"
)

// ErrOverflow is returned when a worker's bucket region is too small.
var ErrOverflow = errors.New("partition: bucket region overflow")

// OverflowError identifies the region that overflowed.
type OverflowError struct {
	Worker   int
	Bucket   int
	Capacity int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("partition: worker %d overflowed bucket %d (capacity %d)", e.Worker, e.Bucket, e.Capacity)
}

// Unwrap returns ErrOverflow.
func (e *OverflowError) Unwrap() error { return ErrOverflow }
