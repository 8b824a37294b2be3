package subjoin

import (
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/joux/internal/partition"
)

// DefaultChunk is the number of buckets a worker claims at a time.
const DefaultChunk = 4

// Run joins every bucket of a with the same bucket of b. Worker w appends its
// candidates to joiners[w]; one goroutine runs per joiner. a and b must have
// the same fan-out.
func Run(a, b *partition.Side, l, chunk int, joiners []*Joiner) {
	if chunk <= 0 {
		chunk = DefaultChunk
	}
	fanOut := a.Layout().FanOut

	var next atomic.Int64
	var g errgroup.Group
	for _, j := range joiners {
		g.Go(func() error {
			for {
				start := int(next.Add(int64(chunk))) - chunk
				if start >= fanOut {
					return nil
				}
				end := min(start+chunk, fanOut)
				for bucket := start; bucket < end; bucket++ {
					j.runsA = a.Runs(bucket, j.runsA)
					j.runsB = b.Runs(bucket, j.runsB)
					j.Join(j.runsA, j.runsB, l)
				}
			}
		})
	}
	_ = g.Wait()
}
