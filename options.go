package joux

import (
	"fmt"

	"github.com/hupe1980/joux/internal/hashset"
	"github.com/hupe1980/joux/internal/partition"
	"github.com/hupe1980/joux/internal/subjoin"
	"github.com/hupe1980/joux/resource"
)

// Config holds the tuning parameters of a task.
//
// Each phase has its own worker count: projection is compute-bound,
// partitioning is bandwidth-bound and the join is latency-bound.
type Config struct {
	// GEMMWorkers project both lists through the slice matrix. Default 4.
	GEMMWorkers int
	// PartitionWorkers scatter the projected lists into buckets. Default 2.
	PartitionWorkers int
	// SubjoinWorkers join buckets and verify candidates. Default 3.
	SubjoinWorkers int

	// PartitionBits is the bucket depth p (2^p buckets). Default 10.
	PartitionBits uint
	// SubjoinChunk is the number of buckets claimed at a time. Default 4.
	SubjoinChunk int
	// SubjoinTableSize is the initial slot count of a join table. Default 512.
	SubjoinTableSize int
	// CMTableSize is the slot count of a candidate-set table. Default 512.
	CMTableSize int

	// WeakFilterBits is the minimum l-p before a slice is reported as weak. Default 9.
	WeakFilterBits int
}

// DefaultConfig returns the default tuning.
func DefaultConfig() Config {
	return Config{
		GEMMWorkers:      4,
		PartitionWorkers: 2,
		SubjoinWorkers:   3,
		PartitionBits:    10,
		SubjoinChunk:     subjoin.DefaultChunk,
		SubjoinTableSize: subjoin.DefaultTableSize,
		CMTableSize:      hashset.DefaultSize,
		WeakFilterBits:   9,
	}
}

// Validate checks c and returns an error wrapping ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.GEMMWorkers <= 0:
		return fmt.Errorf("%w: GEMMWorkers must be positive, got %d", ErrInvalidConfig, c.GEMMWorkers)
	case c.PartitionWorkers <= 0:
		return fmt.Errorf("%w: PartitionWorkers must be positive, got %d", ErrInvalidConfig, c.PartitionWorkers)
	case c.SubjoinWorkers <= 0:
		return fmt.Errorf("%w: SubjoinWorkers must be positive, got %d", ErrInvalidConfig, c.SubjoinWorkers)
	case c.PartitionBits > partition.MaxBits:
		return fmt.Errorf("%w: PartitionBits must be at most %d, got %d", ErrInvalidConfig, partition.MaxBits, c.PartitionBits)
	case c.SubjoinChunk <= 0:
		return fmt.Errorf("%w: SubjoinChunk must be positive, got %d", ErrInvalidConfig, c.SubjoinChunk)
	case !isPow2(c.SubjoinTableSize):
		return fmt.Errorf("%w: SubjoinTableSize must be a power of two, got %d", ErrInvalidConfig, c.SubjoinTableSize)
	case !isPow2(c.CMTableSize):
		return fmt.Errorf("%w: CMTableSize must be a power of two, got %d", ErrInvalidConfig, c.CMTableSize)
	}
	return nil
}

func isPow2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

type options struct {
	cfg              Config
	logger           *Logger
	metricsCollector MetricsCollector
	resources        *resource.Controller
}

func defaultOptions() options {
	return options{
		cfg:              DefaultConfig(),
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
}

// Option configures RunTask.
type Option func(*options)

// WithConfig replaces the whole tuning configuration.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.cfg = cfg
	}
}

// WithWorkers sets the worker count of each phase.
//
// Example:
//
//	res, err := joux.RunTask(ctx, task, joux.WithWorkers(8, 4, 6))
func WithWorkers(gemm, part, subj int) Option {
	return func(o *options) {
		o.cfg.GEMMWorkers = gemm
		o.cfg.PartitionWorkers = part
		o.cfg.SubjoinWorkers = subj
	}
}

// WithPartitionBits sets the bucket depth p.
func WithPartitionBits(p uint) Option {
	return func(o *options) {
		o.cfg.PartitionBits = p
	}
}

// WithLogger configures structured logging.
// Pass nil to disable logging.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector for per-slice and
// per-task statistics. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithResourceController charges the scratch buffers of the task against rc.
// A task whose buffers exceed the remaining budget fails with
// ErrMemoryLimitExceeded before any work is done.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.resources = rc
	}
}
