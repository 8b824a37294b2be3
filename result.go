package joux

import (
	"cmp"
	"fmt"
	"slices"
	"sync"
)

// TaskIndex identifies a task: the indices of the two input lists and of the
// slice set, which is always the XOR of the first two.
type TaskIndex [3]uint32

// NewTaskIndex returns the TaskIndex (i, j, i^j).
func NewTaskIndex(i, j uint32) TaskIndex {
	return TaskIndex{i, j, i ^ j}
}

// String formats the index as "[iiii ; jjjj ; kkkk]" in hexadecimal.
func (t TaskIndex) String() string {
	return fmt.Sprintf("[%04x ; %04x ; %04x]", t[0], t[1], t[2])
}

// Solution is a verified triple of original fingerprints with
// Val[0] ^ Val[1] ^ Val[2] == 0, tagged with the task that found it.
type Solution struct {
	Val       [3]uint64
	TaskIndex [3]uint64
}

// Valid reports whether the three values XOR to zero.
func (s *Solution) Valid() bool {
	return s.Val[0]^s.Val[1]^s.Val[2] == 0
}

// String formats the solution as "x ^ y ^ z == 0".
func (s Solution) String() string {
	return fmt.Sprintf("%016x ^ %016x ^ %016x == 0", s.Val[0], s.Val[1], s.Val[2])
}

const initialResultCapacity = 128

// Result accumulates the solutions of a task. Appends from several goroutines
// are safe; the capacity doubles when full.
type Result struct {
	mu        sync.Mutex
	solutions []Solution

	// Stats is filled in by RunTask.
	Stats TaskStats
}

// NewResult creates an empty Result.
func NewResult() *Result {
	return &Result{solutions: make([]Solution, 0, initialResultCapacity)}
}

// Append adds s after checking that it XORs to zero.
func (r *Result) Append(s Solution) error {
	return r.AppendBatch([]Solution{s})
}

// AppendBatch adds every solution of batch. Nothing is added if one of them
// fails the XOR check.
func (r *Result) AppendBatch(batch []Solution) error {
	for i := range batch {
		if !batch[i].Valid() {
			return &ErrInvalidSolution{Solution: batch[i]}
		}
	}
	if len(batch) == 0 {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	need := len(r.solutions) + len(batch)
	if need > cap(r.solutions) {
		c := max(cap(r.solutions), initialResultCapacity)
		for c < need {
			c *= 2
		}
		grown := make([]Solution, len(r.solutions), c)
		copy(grown, r.solutions)
		r.solutions = grown
	}
	r.solutions = append(r.solutions, batch...)
	return nil
}

// Len returns the number of solutions.
func (r *Result) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.solutions)
}

// Cap returns the current capacity.
func (r *Result) Cap() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cap(r.solutions)
}

// Solutions returns a copy of the solutions.
func (r *Result) Solutions() []Solution {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.solutions)
}

// Sort puts the solutions in canonical order, so that two runs of the same
// task compare equal.
func (r *Result) Sort() {
	r.mu.Lock()
	defer r.mu.Unlock()
	slices.SortFunc(r.solutions, compareSolutions)
}

func compareSolutions(a, b Solution) int {
	for k := 0; k < 3; k++ {
		if c := cmp.Compare(a.Val[k], b.Val[k]); c != 0 {
			return c
		}
	}
	for k := 0; k < 3; k++ {
		if c := cmp.Compare(a.TaskIndex[k], b.TaskIndex[k]); c != 0 {
			return c
		}
	}
	return 0
}
