package partition

import (
	"fmt"
	"math"

	"github.com/hupe1980/joux/internal/mem"
)

// MaxBits is the largest supported partitioning depth.
const MaxBits = 24

// ChernoffBound returns a per-bucket capacity for n items hashed uniformly
// into the given number of buckets: n(1+d)/buckets with d = sqrt(210/mu),
// mu = n/buckets, rounded up to whole 64-word blocks.
func ChernoffBound(n, buckets int) int {
	if n <= 0 || buckets <= 0 {
		return 0
	}
	mu := float64(n) / float64(buckets)
	delta := math.Sqrt(210 / mu)
	return mem.RoundUpWords(int(math.Ceil(float64(n) * (1 + delta) / float64(buckets))))
}

// Layout fixes the shape of the scratch buffer for one side.
type Layout struct {
	N         int  // items to partition
	Workers   int  // scatter workers
	Bits      uint // partitioning depth p
	FanOut    int  // 2^p buckets
	ThreadCap int  // capacity of one worker's region of one bucket
	PartCap   int  // capacity of one bucket (ThreadCap * Workers)
}

// NewLayout sizes the scratch buffer for n items, workers scatter workers and
// 2^bits buckets.
func NewLayout(n, workers int, bits uint) (Layout, error) {
	if workers <= 0 {
		return Layout{}, fmt.Errorf("partition: workers must be positive, got %d", workers)
	}
	if bits > MaxBits {
		return Layout{}, fmt.Errorf("partition: depth %d exceeds %d bits", bits, MaxBits)
	}
	if n < 0 {
		return Layout{}, fmt.Errorf("partition: negative item count %d", n)
	}
	fanOut := 1 << bits
	threadCap := ChernoffBound(n, workers*fanOut)
	return Layout{
		N:         n,
		Workers:   workers,
		Bits:      bits,
		FanOut:    fanOut,
		ThreadCap: threadCap,
		PartCap:   threadCap * workers,
	}, nil
}

// ScratchWords is the scratch buffer length in words.
func (l Layout) ScratchWords() int {
	return l.PartCap * l.FanOut
}

// Bytes is the memory needed by a Side with this layout.
func (l Layout) Bytes() int64 {
	words := int64(l.N) + int64(l.ScratchWords())
	return 8*words + 8*int64(l.Workers*l.FanOut)
}

// regionStart is the first scratch offset owned by worker in bucket.
func (l Layout) regionStart(bucket, worker int) int {
	return l.PartCap*bucket + l.ThreadCap*worker
}

// blockRange returns the static share [lo, hi) of worker out of n items.
func blockRange(n, workers, worker int) (lo, hi int) {
	return worker * n / workers, (worker + 1) * n / workers
}
