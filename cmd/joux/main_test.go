package main

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/joux/blobstore"
	"github.com/hupe1980/joux/loader"
	"github.com/hupe1980/joux/resultfile"
	"github.com/hupe1980/joux/slicefile"
	"github.com/hupe1980/joux/testutil"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  config
		err  string
	}{
		{"nothing", config{n: -1, hashDir: "h", sliceDir: "s"}, "missing either --n or --i/--j"},
		{"conflict", config{n: 4, i: "1", j: "2", hashDir: "h", sliceDir: "s"}, "conflicting options"},
		{"only i", config{n: -1, i: "1", hashDir: "h", sliceDir: "s"}, "both i and j must be given"},
		{"no hash dir", config{n: 4, sliceDir: "s"}, "missing option --hash-dir"},
		{"no slice dir", config{n: 4, hashDir: "h"}, "missing option --slice-dir"},
		{"bad hex", config{n: -1, i: "xyz", j: "2", hashDir: "h", sliceDir: "s"}, "not a hexadecimal index"},
		{"progress without out", config{n: 4, hashDir: "h", sliceDir: "s", progress: "p", store: "local"}, "--progress requires --out"},
		{"bucket", config{n: 4, hashDir: "h", sliceDir: "s", store: "s3"}, "requires --bucket"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.cfg.store == "" {
				tt.cfg.store = "local"
			}
			_, _, _, err := tt.cfg.validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, errUsage)
			assert.Contains(t, err.Error(), tt.err)
		})
	}

	cfg := config{n: -1, i: "1f0", j: "12", hashDir: "h", sliceDir: "s", store: "local"}
	i, j, single, err := cfg.validate()
	require.NoError(t, err)
	assert.True(t, single)
	assert.Equal(t, uint32(0x1f0), i)
	assert.Equal(t, uint32(0x12), j)

	cfg = config{n: 0, hashDir: "h", sliceDir: "s", store: "local"}
	_, _, single, err = cfg.validate()
	require.NoError(t, err)
	assert.False(t, single)
}

func writeWords(t *testing.T, path string, words []uint64) {
	t.Helper()
	buf := make([]byte, 0, 8*len(words))
	for _, w := range words {
		buf = binary.LittleEndian.AppendUint64(buf, w)
	}
	require.NoError(t, os.WriteFile(path, buf, 0o644))
}

// plant writes a planted instance for task (i, j) and returns the expected
// solution lines.
func plant(t *testing.T, hashDir, sliceDir string, i, j uint32, seed int64) []string {
	t.Helper()
	n := loader.DefaultNaming()
	inst := testutil.NewRNG(seed).Planted(testutil.PlantConfig{N0: 1000, N1: 1000, Slices: 2, PerSlice: 2, L: 18, CMSize: 4})
	n0, n1 := n.ListNames(i, j)
	writeWords(t, filepath.Join(hashDir, n0), inst.L0)
	writeWords(t, filepath.Join(hashDir, n1), inst.L1)
	require.NoError(t, os.WriteFile(filepath.Join(sliceDir, n.SliceName(i^j)), slicefile.Encode(inst.Slices...), 0o644))

	var lines []string
	for _, p := range inst.Planted {
		lines = append(lines, fmt.Sprintf("%016x ^ %016x ^ %016x == 0", p[0], p[1], p[2]))
	}
	return lines
}

func TestRun_SingleTask(t *testing.T) {
	hashDir, sliceDir := t.TempDir(), t.TempDir()
	want := plant(t, hashDir, sliceDir, 0x12, 0x1f0, 3)

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{
		"--i=12", "--j=1f0",
		"--hash-dir=" + hashDir, "--slice-dir=" + sliceDir,
		"--gemm-workers=2", "--p=6",
	}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())

	out := stdout.String()
	assert.NotContains(t, out, "Task grid")
	assert.Contains(t, out, "[0012 ; 01f0 ; 01e2] ")
	assert.Contains(t, out, "#solutions = 4\n")
	for _, line := range want {
		assert.Contains(t, out, line+"\n")
	}
	assert.Contains(t, out, "FINISHED in ")
}

func TestRun_GridWithResults(t *testing.T) {
	hashDir, sliceDir, outDir := t.TempDir(), t.TempDir(), t.TempDir()
	want := plant(t, hashDir, sliceDir, 0, 0, 5)

	args := []string{
		"--n=1",
		"--hash-dir=" + hashDir, "--slice-dir=" + sliceDir,
		"--out=" + outDir, "--compression=lz4", "--byte-order=big",
		"--progress=progress", "--slice-cache=1048576", "-q",
	}
	var stdout, stderr bytes.Buffer
	require.NoError(t, run(context.Background(), args, &stdout, &stderr), stderr.String())

	out := stdout.String()
	assert.True(t, strings.HasPrefix(out, "Task grid is 1 x 1\n"))
	assert.Contains(t, out, "[0000 ; 0000 ; 0000] ")
	assert.NotContains(t, out, "#solutions")

	sols, err := resultfile.Load(context.Background(), blobstore.NewLocalStore(outDir), "sol.000.000.lz4",
		resultfile.WithCompression(resultfile.LZ4), resultfile.WithByteOrder(binary.BigEndian))
	require.NoError(t, err)
	var got []string
	for _, s := range sols {
		got = append(got, fmt.Sprintf("%016x ^ %016x ^ %016x == 0", s.Val[0], s.Val[1], s.Val[2]))
	}
	assert.ElementsMatch(t, want, got)
	assert.FileExists(t, filepath.Join(outDir, "progress"))

	// The finished task is skipped on the next run.
	stdout.Reset()
	require.NoError(t, run(context.Background(), args, &stdout, &stderr), stderr.String())
	assert.NotContains(t, stdout.String(), "[0000 ; 0000 ; 0000]")
	assert.Contains(t, stdout.String(), "FINISHED in ")
}

func TestRun_FirstN(t *testing.T) {
	hashDir, sliceDir := t.TempDir(), t.TempDir()
	rng := testutil.NewRNG(8)
	n := loader.DefaultNaming()
	for k := uint32(0); k < 2; k++ {
		n0, n1 := n.ListNames(k, k)
		writeWords(t, filepath.Join(hashDir, n0), rng.Fingerprints(500))
		writeWords(t, filepath.Join(hashDir, n1), rng.Fingerprints(500))
		require.NoError(t, os.WriteFile(filepath.Join(sliceDir, n.SliceName(k)), slicefile.Encode(rng.Slice(16, 4)), 0o644))
	}

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{
		"--n=3", "--tasks=2",
		"--hash-dir=" + hashDir, "--slice-dir=" + sliceDir,
	}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())

	out := stdout.String()
	assert.True(t, strings.HasPrefix(out, "Task grid is 2 x 2\n"))
	assert.Contains(t, out, "[0000 ; 0000 ; 0000] ")
	assert.Contains(t, out, "[0000 ; 0001 ; 0001] ")
	assert.Contains(t, out, "[0001 ; 0000 ; 0001] ")
	assert.NotContains(t, out, "[0001 ; 0001 ; 0000]")
}

func TestRun_Errors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"--n=1"}, &stdout, &stderr)
	assert.ErrorIs(t, err, errUsage)
	assert.Contains(t, stderr.String(), "usage: joux")

	err = run(context.Background(), []string{
		"--i=0", "--j=0", "--hash-dir=" + t.TempDir(), "--slice-dir=" + t.TempDir(),
	}, &stdout, &stderr)
	assert.ErrorIs(t, err, blobstore.ErrNotFound)

	err = run(context.Background(), []string{
		"--n=1", "--hash-dir=h", "--slice-dir=s", "--compression=brotli",
	}, &stdout, &stderr)
	assert.Error(t, err)
}
