package joux

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/joux/gf2"
	"github.com/hupe1980/joux/internal/hashset"
	"github.com/hupe1980/joux/internal/partition"
	"github.com/hupe1980/joux/internal/subjoin"
	"github.com/hupe1980/joux/slicefile"
)

// Task is the input of RunTask. The lists are owned by the caller and are not
// modified.
type Task struct {
	Index  TaskIndex
	L0, L1 []uint64
	Slices *slicefile.Sequence
}

// RunTask searches for every triple (x, y, z) with x in L0, y in L1 and
// x ^ y ^ z == 0, where z is accepted by one of the task's slices.
//
// Each slice goes through four parallel phases separated by barriers:
// projection by M, partitioning by the top PartitionBits bits, the per-bucket
// join, and the checkup against CM with lifting by Minv.
//
// RunTask is deterministic up to the order of solutions and keeps no state
// between calls, so distinct tasks may run concurrently and a failed task can
// simply be run again. ctx only carries logging values; a started task is not
// cancelled. On error no partial result is returned.
func RunTask(ctx context.Context, task Task, opts ...Option) (*Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.cfg.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	e, err := newEngine(task, o)
	if err != nil {
		o.logger.WithTask(task.Index).LogTask(ctx, TaskStats{}, err)
		o.metricsCollector.RecordTask(TaskStats{}, err)
		return nil, err
	}
	defer e.close()

	e.log.LogTaskStart(ctx, len(task.L0), len(task.L1), task.Slices.Len())

	n := 0
	for s := range task.Slices.All() {
		if err = e.processSlice(ctx, n, &s); err != nil {
			break
		}
		n++
	}

	e.result.Stats.Duration = time.Since(start)
	e.log.LogTask(ctx, e.result.Stats, err)
	o.metricsCollector.RecordTask(e.result.Stats, err)
	if err != nil {
		return nil, err
	}
	return e.result, nil
}

// engine holds the per-task state shared by all slices of a task.
type engine struct {
	cfg     Config
	log     *Logger
	metrics MetricsCollector
	opts    options

	index   [3]uint64
	lists   [2][]uint64
	sides   [2]*partition.Side
	joiners []*subjoin.Joiner
	matrix  gf2.Table

	reserved int64
	result   *Result
}

func newEngine(task Task, o options) (*engine, error) {
	e := &engine{
		cfg:     o.cfg,
		log:     o.logger.WithTask(task.Index),
		metrics: o.metricsCollector,
		opts:    o,
		lists:   [2][]uint64{task.L0, task.L1},
		result:  NewResult(),
	}
	for k, v := range task.Index {
		e.index[k] = uint64(v)
	}

	var layouts [2]partition.Layout
	for k, list := range e.lists {
		l, err := partition.NewLayout(len(list), e.cfg.PartitionWorkers, e.cfg.PartitionBits)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		layouts[k] = l
		e.reserved += l.Bytes()
	}

	if err := o.resources.AcquireMemory(e.reserved); err != nil {
		return nil, fmt.Errorf("reserve %d bytes of scratch: %w", e.reserved, err)
	}
	for k := range e.sides {
		e.sides[k] = partition.NewSide(layouts[k])
	}

	e.joiners = make([]*subjoin.Joiner, e.cfg.SubjoinWorkers)
	for w := range e.joiners {
		e.joiners[w] = subjoin.NewJoiner(e.cfg.SubjoinTableSize)
	}
	return e, nil
}

func (e *engine) close() {
	e.sides = [2]*partition.Side{}
	e.joiners = nil
	e.opts.resources.ReleaseMemory(e.reserved)
	e.reserved = 0
}

func (e *engine) processSlice(ctx context.Context, n int, s *slicefile.Slice) error {
	stats := SliceStats{Index: n, L: s.L, CandidateSet: len(s.CM)}

	cm := hashset.Build(s.CM, e.cfg.CMTableSize)
	if cm.Kind() == hashset.KindLinear {
		stats.Fallback = true
		e.log.LogCuckooFallback(ctx, n, len(s.CM))
	}
	if s.L-int(e.cfg.PartitionBits) < e.cfg.WeakFilterBits {
		e.log.LogWeakSlice(ctx, n, s.L, e.cfg.PartitionBits)
	}

	t := time.Now()
	e.matrix.Reset(&s.M)
	e.project()
	stats.GEMM = time.Since(t)

	t = time.Now()
	if err := partition.Scatter(e.sides[0], e.sides[1]); err != nil {
		return &ErrPartitionOverflow{Slice: n, cause: err}
	}
	stats.Partition = time.Since(t)

	t = time.Now()
	for _, j := range e.joiners {
		j.Reset()
	}
	subjoin.Run(e.sides[0], e.sides[1], s.L, e.cfg.SubjoinChunk, e.joiners)
	for _, j := range e.joiners {
		stats.Probes += len(j.Candidates)
	}
	stats.Subjoin = time.Since(t)

	t = time.Now()
	found, err := e.checkup(cm, &s.Minv)
	if err != nil {
		return fmt.Errorf("slice %d: %w", n, err)
	}
	stats.Solutions = found
	stats.Checkup = time.Since(t)

	e.result.Stats.add(stats, len(e.lists[0])+len(e.lists[1]))
	e.log.LogSlice(ctx, stats)
	e.metrics.RecordSlice(stats)
	return nil
}
