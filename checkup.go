package joux

import (
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/joux/gf2"
	"github.com/hupe1980/joux/internal/hashset"
)

// project writes M·x into the LM buffer of each side. Every GEMM worker takes
// the same static share of both lists.
func (e *engine) project() {
	workers := e.cfg.GEMMWorkers

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for k, list := range e.lists {
				lo, hi := w*len(list)/workers, (w+1)*len(list)/workers
				e.matrix.ApplyAll(e.sides[k].LM[lo:hi], list[lo:hi])
			}
			return nil
		})
	}
	_ = g.Wait()
}

// checkup keeps the candidates whose z is in cm, lifts them with minv and
// appends them to the task result. Each join worker's candidates are checked
// by one goroutine and merged once it is done.
func (e *engine) checkup(cm hashset.Table, minv *gf2.Matrix) (int, error) {
	var found atomic.Int64

	var g errgroup.Group
	for _, j := range e.joiners {
		g.Go(func() error {
			var batch []Solution
			for _, c := range j.Candidates {
				if !cm.Contains(c.Z) {
					continue
				}
				batch = append(batch, Solution{
					Val:       [3]uint64{minv.Apply(c.X), minv.Apply(c.Y), minv.Apply(c.Z)},
					TaskIndex: e.index,
				})
			}
			if err := e.result.AppendBatch(batch); err != nil {
				return err
			}
			found.Add(int64(len(batch)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return int(found.Load()), nil
}
