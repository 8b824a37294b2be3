package grid

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/joux"
)

func TestSide(t *testing.T) {
	tests := []struct {
		n, want int
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 2},
		{4, 2},
		{5, 4},
		{16, 4},
		{17, 8},
		{64, 8},
		{65, 16},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Side(tt.n), "n=%d", tt.n)
	}
}

func TestFirstN(t *testing.T) {
	got := slices.Collect(FirstN(6))
	assert.Equal(t, []Task{
		{0, 0}, {0, 1}, {0, 2}, {0, 3},
		{1, 0}, {1, 1},
	}, got)

	assert.Empty(t, slices.Collect(FirstN(0)))
	assert.Len(t, slices.Collect(FirstN(16)), 16)

	// Early break.
	n := 0
	for range FirstN(100) {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

func TestTask(t *testing.T) {
	task := Task{I: 0x12, J: 0x1f0}
	assert.Equal(t, joux.NewTaskIndex(0x12, 0x1f0), task.Index())
	assert.Equal(t, task, TaskFromKey(task.Key()))
	assert.Equal(t, "(012, 1f0)", task.String())

	assert.NoError(t, Task{I: MaxIndex, J: MaxIndex}.validate())
	assert.Error(t, Task{I: MaxIndex + 1}.validate())
}
