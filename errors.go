package joux

import (
	"errors"
	"fmt"

	"github.com/hupe1980/joux/resource"
)

var (
	// ErrInvalidConfig is returned when a Config fails validation.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrMemoryLimitExceeded is returned when the scratch buffers of a task
	// do not fit the memory budget of the resource controller.
	ErrMemoryLimitExceeded = resource.ErrMemoryLimitExceeded

	// ErrInconsistentSolution is returned when a verified triple does not XOR
	// to zero. It indicates a pairing bug, never bad input.
	ErrInconsistentSolution = errors.New("solution does not xor to zero")
)

// ErrPartitionOverflow indicates that a worker's bucket region was too small
// while partitioning one side of a slice.
//
// The original underlying error can be accessed via errors.Unwrap.
type ErrPartitionOverflow struct {
	Slice int
	cause error
}

func (e *ErrPartitionOverflow) Error() string {
	return fmt.Sprintf("slice %d: %v", e.Slice, e.cause)
}

func (e *ErrPartitionOverflow) Unwrap() error { return e.cause }

// ErrInvalidSolution carries the offending triple of ErrInconsistentSolution.
type ErrInvalidSolution struct {
	Solution Solution
}

func (e *ErrInvalidSolution) Error() string {
	v := e.Solution.Val
	return fmt.Sprintf("%016x ^ %016x ^ %016x != 0", v[0], v[1], v[2])
}

func (e *ErrInvalidSolution) Unwrap() error { return ErrInconsistentSolution }
