package grid

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/joux/blobstore"
)

func TestProgress(t *testing.T) {
	p := NewProgress()
	assert.Equal(t, 0, p.Len())

	require.NoError(t, p.Mark(Task{1, 2}))
	require.NoError(t, p.Mark(Task{0, 3}))
	require.NoError(t, p.Mark(Task{1, 2}))
	assert.Error(t, p.Mark(Task{I: 1 << 16}))

	assert.True(t, p.Done(Task{1, 2}))
	assert.False(t, p.Done(Task{2, 1}))
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, []Task{{0, 3}, {1, 2}}, p.Tasks())
}

func TestProgress_Binary(t *testing.T) {
	p := NewProgress()
	for task := range FirstN(100) {
		require.NoError(t, p.Mark(task))
	}
	data, err := p.MarshalBinary()
	require.NoError(t, err)

	q := NewProgress()
	require.NoError(t, q.UnmarshalBinary(data))
	assert.Equal(t, p.Tasks(), q.Tasks())

	require.NoError(t, q.UnmarshalBinary(nil))
	assert.Equal(t, 0, q.Len())

	assert.Error(t, q.UnmarshalBinary([]byte{1, 2, 3}))
}

func TestProgress_Store(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	p, err := LoadProgress(ctx, store, "progress")
	require.NoError(t, err)
	assert.Equal(t, 0, p.Len())

	require.NoError(t, p.Mark(Task{3, 4}))
	require.NoError(t, p.Save(ctx, store, "progress"))

	q, err := LoadProgress(ctx, store, "progress")
	require.NoError(t, err)
	assert.True(t, q.Done(Task{3, 4}))
	assert.Equal(t, 1, q.Len())
}
