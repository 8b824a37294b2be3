package partition

import (
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/joux/internal/mem"
)

// Side is the working state of one input list during one slice: the
// projection output LM, the scatter destination and the write cursors.
type Side struct {
	LM      []uint64
	Scratch []uint64

	// count[worker*FanOut+bucket] is the write cursor of worker in bucket.
	// After Scatter it is the end offset of that worker's run.
	count  []int
	layout Layout
}

// NewSide allocates the buffers described by layout.
func NewSide(layout Layout) *Side {
	return &Side{
		LM:      mem.AllocAlignedUint64(layout.N),
		Scratch: mem.AllocAlignedUint64(layout.ScratchWords()),
		count:   make([]int, layout.Workers*layout.FanOut),
		layout:  layout,
	}
}

// Layout returns the layout the side was allocated with.
func (s *Side) Layout() Layout {
	return s.layout
}

// scatter distributes worker's static share of LM into its private regions.
func (s *Side) scatter(worker int) error {
	l := s.layout
	count := s.count[worker*l.FanOut : (worker+1)*l.FanOut]
	for b := range count {
		count[b] = l.regionStart(b, worker)
	}
	if l.N == 0 {
		return nil
	}

	shift := 64 - l.Bits
	lo, hi := blockRange(l.N, l.Workers, worker)
	for _, x := range s.LM[lo:hi] {
		b := int(x >> shift)
		idx := count[b]
		if idx == l.regionStart(b, worker)+l.ThreadCap {
			return &OverflowError{Worker: worker, Bucket: b, Capacity: l.ThreadCap}
		}
		s.Scratch[idx] = x
		count[b] = idx + 1
	}
	return nil
}

// Runs returns the runs contributed by each worker to bucket, in worker order.
// The returned slices alias Scratch.
func (s *Side) Runs(bucket int, dst [][]uint64) [][]uint64 {
	l := s.layout
	dst = dst[:0]
	for t := 0; t < l.Workers; t++ {
		lo := l.regionStart(bucket, t)
		hi := s.count[t*l.FanOut+bucket]
		dst = append(dst, s.Scratch[lo:hi])
	}
	return dst
}

// BucketLen returns the number of items scattered into bucket.
func (s *Side) BucketLen(bucket int) int {
	l := s.layout
	n := 0
	for t := 0; t < l.Workers; t++ {
		n += s.count[t*l.FanOut+bucket] - l.regionStart(bucket, t)
	}
	return n
}

// Scatter partitions the LM buffers of all sides. Worker t scatters its block
// of every side in turn; the call returns once all workers are done. All sides
// must share the same worker count.
func Scatter(sides ...*Side) error {
	if len(sides) == 0 {
		return nil
	}
	workers := sides[0].layout.Workers

	var g errgroup.Group
	for t := 0; t < workers; t++ {
		g.Go(func() error {
			for _, s := range sides {
				if err := s.scatter(t); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}
