package subjoin

import (
	"golang.org/x/sys/cpu"

	"github.com/hupe1980/joux/internal/hashset"
)

// DefaultTableSize is the initial slot count of a join table (16 KiB / 4).
const DefaultTableSize = 16384 / 4 / 8

// Candidate is an unverified triple with X ^ Y == Z.
type Candidate struct {
	X, Y, Z uint64
}

// Joiner is the per-worker state of the join phase. It is not safe for
// concurrent use.
type Joiner struct {
	// Candidates accumulates every emitted triple until Reset.
	Candidates []Candidate

	table     []uint64
	tableSize int
	runsA     [][]uint64
	runsB     [][]uint64

	_ cpu.CacheLinePad
}

// NewJoiner creates a Joiner whose table starts with tableSize slots.
// tableSize must be a power of two.
func NewJoiner(tableSize int) *Joiner {
	if tableSize <= 0 {
		tableSize = DefaultTableSize
	}
	hashset.TableSize(tableSize, 0) // validates power of two
	return &Joiner{tableSize: tableSize}
}

// Reset drops all candidates, keeping the buffer.
func (j *Joiner) Reset() {
	j.Candidates = j.Candidates[:0]
}

func (j *Joiner) prepare(n int) uint64 {
	size := hashset.TableSize(j.tableSize, n)
	if cap(j.table) < size {
		j.table = make([]uint64, size)
	} else {
		j.table = j.table[:size]
		clear(j.table)
	}
	return uint64(size - 1)
}

// Join joins the runs of one bucket. a holds the runs of side A, b those of
// side B, l is the slice bit-width. It returns the number of candidates
// appended to j.Candidates.
func (j *Joiner) Join(a, b [][]uint64, l int) int {
	nA := 0
	for _, run := range a {
		nA += len(run)
	}
	if nA == 0 {
		return 0
	}

	shift := uint(64 - l)
	mask := j.prepare(nA)
	table := j.table

	zeros := 0
	for _, run := range a {
		for _, x := range run {
			if x == 0 {
				zeros++
				continue
			}
			h := (x >> shift) & mask
			for table[h] != 0 {
				h = (h + 1) & mask
			}
			table[h] = x
		}
	}

	before := len(j.Candidates)
	for _, run := range b {
		for _, y := range run {
			h := (y >> shift) & mask
			for x := table[h]; x != 0; x = table[h] {
				if z := x ^ y; z>>shift == 0 {
					j.Candidates = append(j.Candidates, Candidate{X: x, Y: y, Z: z})
				}
				h = (h + 1) & mask
			}
			if zeros > 0 && y>>shift == 0 {
				for range zeros {
					j.Candidates = append(j.Candidates, Candidate{X: 0, Y: y, Z: y})
				}
			}
		}
	}
	return len(j.Candidates) - before
}
