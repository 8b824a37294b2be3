package grid

import (
	"fmt"
	"iter"
	"math"

	"github.com/hupe1980/joux"
)

// MaxIndex bounds the list indices of a task.
const MaxIndex = 1<<16 - 1

// Task is one cell (I, J) of the grid.
type Task struct {
	I, J uint32
}

// Index returns the task coordinates (I, J, I^J).
func (t Task) Index() joux.TaskIndex {
	return joux.NewTaskIndex(t.I, t.J)
}

// Key packs the task into 32 bits. Both indices must be at most MaxIndex.
func (t Task) Key() uint32 {
	return t.I<<16 | t.J
}

// TaskFromKey is the inverse of Key.
func TaskFromKey(k uint32) Task {
	return Task{I: k >> 16, J: k & 0xffff}
}

func (t Task) String() string {
	return fmt.Sprintf("(%03x, %03x)", t.I, t.J)
}

func (t Task) validate() error {
	if t.I > MaxIndex || t.J > MaxIndex {
		return fmt.Errorf("grid: task %v exceeds index %#x", t, MaxIndex)
	}
	return nil
}

// Side returns the side 2^ceil(log2(n)/2) of the grid holding n tasks,
// or 0 for n <= 0.
func Side(n int) int {
	if n <= 0 {
		return 0
	}
	return 1 << int(math.Ceil(math.Log2(float64(n))/2))
}

// FirstN yields the first n tasks of the Side(n) grid in row-major order.
func FirstN(n int) iter.Seq[Task] {
	return func(yield func(Task) bool) {
		side := Side(n)
		k := 0
		for i := 0; i < side; i++ {
			for j := 0; j < side; j++ {
				if k == n {
					return
				}
				if !yield(Task{I: uint32(i), J: uint32(j)}) {
					return
				}
				k++
			}
		}
	}
}
