package joux

import (
	"sync/atomic"
	"time"
)

// SliceStats describes the processing of one slice.
type SliceStats struct {
	// Index is the position of the slice in the task's sequence.
	Index int
	// L is the slice bit-width.
	L int
	// CandidateSet is the number of CM entries.
	CandidateSet int
	// Fallback is true if CM did not fit a cuckoo table.
	Fallback bool
	// Probes is the number of candidates emitted by the join.
	Probes int
	// Solutions is the number of verified triples.
	Solutions int

	GEMM      time.Duration
	Partition time.Duration
	Subjoin   time.Duration
	Checkup   time.Duration
}

// TaskStats aggregates the SliceStats of one task.
type TaskStats struct {
	Slices    int
	BadSlices int
	// Volume is the number of fingerprints projected (both lists, all slices).
	Volume    int64
	Probes    int64
	Solutions int

	GEMM      time.Duration
	Partition time.Duration
	Subjoin   time.Duration
	Checkup   time.Duration
	Duration  time.Duration
}

func (t *TaskStats) add(s SliceStats, volume int) {
	t.Slices++
	if s.Fallback {
		t.BadSlices++
	}
	t.Volume += int64(volume)
	t.Probes += int64(s.Probes)
	t.Solutions += s.Solutions
	t.GEMM += s.GEMM
	t.Partition += s.Partition
	t.Subjoin += s.Subjoin
	t.Checkup += s.Checkup
}

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordSlice is called after each slice of a task.
	RecordSlice(s SliceStats)

	// RecordTask is called once per task. err is nil if successful.
	RecordTask(s TaskStats, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSlice(SliceStats)       {}
func (NoopMetricsCollector) RecordTask(TaskStats, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// It is safe for concurrent use by several tasks.
type BasicMetricsCollector struct {
	SliceCount     atomic.Int64
	FallbackSlices atomic.Int64
	Probes         atomic.Int64
	Solutions      atomic.Int64
	GEMMNanos      atomic.Int64
	PartitionNanos atomic.Int64
	SubjoinNanos   atomic.Int64
	CheckupNanos   atomic.Int64
	TaskCount      atomic.Int64
	TaskErrors     atomic.Int64
	TaskNanos      atomic.Int64
	Volume         atomic.Int64
}

// RecordSlice implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSlice(s SliceStats) {
	b.SliceCount.Add(1)
	if s.Fallback {
		b.FallbackSlices.Add(1)
	}
	b.Probes.Add(int64(s.Probes))
	b.Solutions.Add(int64(s.Solutions))
	b.GEMMNanos.Add(s.GEMM.Nanoseconds())
	b.PartitionNanos.Add(s.Partition.Nanoseconds())
	b.SubjoinNanos.Add(s.Subjoin.Nanoseconds())
	b.CheckupNanos.Add(s.Checkup.Nanoseconds())
}

// RecordTask implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTask(s TaskStats, err error) {
	b.TaskCount.Add(1)
	b.TaskNanos.Add(s.Duration.Nanoseconds())
	b.Volume.Add(s.Volume)
	if err != nil {
		b.TaskErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SliceCount:     b.SliceCount.Load(),
		FallbackSlices: b.FallbackSlices.Load(),
		Probes:         b.Probes.Load(),
		Solutions:      b.Solutions.Load(),
		TaskCount:      b.TaskCount.Load(),
		TaskErrors:     b.TaskErrors.Load(),
		Volume:         b.Volume.Load(),
		GEMM:           time.Duration(b.GEMMNanos.Load()),
		Partition:      time.Duration(b.PartitionNanos.Load()),
		Subjoin:        time.Duration(b.SubjoinNanos.Load()),
		Checkup:        time.Duration(b.CheckupNanos.Load()),
		TaskTime:       time.Duration(b.TaskNanos.Load()),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector.
type BasicMetricsStats struct {
	SliceCount     int64
	FallbackSlices int64
	Probes         int64
	Solutions      int64
	TaskCount      int64
	TaskErrors     int64
	Volume         int64

	GEMM      time.Duration
	Partition time.Duration
	Subjoin   time.Duration
	Checkup   time.Duration
	TaskTime  time.Duration
}

// Rate returns items per second for a phase that took d over the collected volume.
func (s BasicMetricsStats) Rate(d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(s.Volume) / d.Seconds()
}
