package mmap

import (
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWords(t *testing.T, words ...uint64) string {
	t.Helper()
	buf := make([]byte, 0, 8*len(words))
	for _, w := range words {
		buf = binary.LittleEndian.AppendUint64(buf, w)
	}
	path := filepath.Join(t.TempDir(), "foo.001")
	require.NoError(t, os.WriteFile(path, buf, 0o600))
	return path
}

func TestMapping_Uint64s(t *testing.T) {
	path := writeWords(t, 1, 0xdeadbeefcafebabe, 3)

	m, err := Open(path)
	require.NoError(t, err)
	defer m.Close()

	require.NoError(t, m.Advise(AccessSequential))
	assert.Equal(t, 24, m.Size())

	words, err := m.Uint64s()
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 0xdeadbeefcafebabe, 3}, words)
	require.NoError(t, m.Advise(AccessWillNeed))
}

func TestMapping_ReadAt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data")
	require.NoError(t, os.WriteFile(path, []byte("Hello, Mmap!"), 0o600))

	m, err := Open(path)
	require.NoError(t, err)
	defer m.Close()

	buf := make([]byte, 5)
	n, err := m.ReadAt(buf, 7)
	require.NoError(t, err)
	assert.Equal(t, "Mmap!", string(buf[:n]))

	buf = make([]byte, 10)
	n, err = m.ReadAt(buf, 7)
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, "Mmap!", string(buf[:n]))

	n, err = m.ReadAt(buf, 100)
	assert.Zero(t, n)
	assert.Equal(t, io.EOF, err)

	_, err = m.ReadAt(buf, -1)
	assert.ErrorIs(t, err, ErrInvalidOffset)

	_, err = m.Uint64s()
	assert.ErrorIs(t, err, ErrMisaligned)
}

func TestMapping_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	m, err := Open(path)
	require.NoError(t, err)
	defer m.Close()

	assert.Zero(t, m.Size())
	words, err := m.Uint64s()
	require.NoError(t, err)
	assert.Empty(t, words)
	require.NoError(t, m.Advise(AccessRandom))
}

func TestMapping_Closed(t *testing.T) {
	m, err := Open(writeWords(t, 7, 8))
	require.NoError(t, err)

	require.NoError(t, m.Close())
	require.NoError(t, m.Close())

	assert.Nil(t, m.Bytes())
	assert.ErrorIs(t, m.Advise(AccessRandom), ErrClosed)
	_, err = m.Uint64s()
	assert.ErrorIs(t, err, ErrClosed)
}

func TestOpen_Missing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
