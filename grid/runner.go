package grid

import (
	"context"
	"fmt"
	"iter"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/joux"
	"github.com/hupe1980/joux/loader"
	"github.com/hupe1980/joux/resource"
)

// Sink consumes the result of a finished task. It may be called concurrently.
type Sink func(ctx context.Context, t Task, res *joux.Result) error

// Summary counts what a Run did.
type Summary struct {
	Tasks     int
	Skipped   int
	Solutions int
	Duration  time.Duration
}

// Runner executes tasks read through a loader.
type Runner struct {
	loader      *loader.Loader
	sink        Sink
	progress    *Progress
	rc          *resource.Controller
	logger      *joux.Logger
	concurrency int
	taskOpts    []joux.Option
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithSink sets the consumer of task results. Without one, results are
// dropped after being counted.
func WithSink(s Sink) RunnerOption {
	return func(r *Runner) { r.sink = s }
}

// WithProgress skips tasks already in p and records the ones that finish.
func WithProgress(p *Progress) RunnerOption {
	return func(r *Runner) { r.progress = p }
}

// WithResourceController bounds the number of running tasks by the task
// slots of rc and charges their scratch memory against it.
func WithResourceController(rc *resource.Controller) RunnerOption {
	return func(r *Runner) { r.rc = rc }
}

// WithLogger sets the logger of the runner and of every task.
func WithLogger(l *joux.Logger) RunnerOption {
	return func(r *Runner) {
		if l == nil {
			l = joux.NoopLogger()
		}
		r.logger = l
	}
}

// WithConcurrency sets how many tasks are loaded and run at once. It defaults
// to the task slots of the resource controller.
func WithConcurrency(n int) RunnerOption {
	return func(r *Runner) { r.concurrency = n }
}

// WithTaskOptions passes opts to every joux.RunTask call.
func WithTaskOptions(opts ...joux.Option) RunnerOption {
	return func(r *Runner) { r.taskOpts = append(r.taskOpts, opts...) }
}

// NewRunner returns a Runner loading task inputs with l.
func NewRunner(l *loader.Loader, opts ...RunnerOption) *Runner {
	r := &Runner{
		loader:      l,
		logger: joux.NoopLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.concurrency < 1 {
		r.concurrency = r.rc.MaxConcurrentTasks()
	}
	return r
}

// Run executes every task of tasks that is not yet done. The first failing
// task stops the run; tasks already handed to the sink stay recorded in the
// progress.
func (r *Runner) Run(ctx context.Context, tasks iter.Seq[Task]) (Summary, error) {
	var (
		start     = time.Now()
		done      atomic.Int64
		skipped   int
		solutions atomic.Int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for t := range tasks {
		if gctx.Err() != nil {
			break
		}
		if err := t.validate(); err != nil {
			g.Go(func() error { return err })
			break
		}
		if r.progress != nil && r.progress.Done(t) {
			skipped++
			continue
		}
		g.Go(func() error {
			n, err := r.runOne(gctx, t)
			if err != nil {
				return fmt.Errorf("task %v: %w", t, err)
			}
			done.Add(1)
			solutions.Add(int64(n))
			return nil
		})
	}
	err := g.Wait()

	s := Summary{
		Tasks:     int(done.Load()),
		Skipped:   skipped,
		Solutions: int(solutions.Load()),
		Duration:  time.Since(start),
	}
	r.logger.InfoContext(ctx, "grid finished",
		"tasks", s.Tasks,
		"skipped", s.Skipped,
		"solutions", s.Solutions,
		"duration", s.Duration,
	)
	return s, err
}

func (r *Runner) runOne(ctx context.Context, t Task) (int, error) {
	if err := r.rc.AcquireTask(ctx); err != nil {
		return 0, err
	}
	defer r.rc.ReleaseTask()

	in, err := r.loader.Load(ctx, t.I, t.J)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	opts := append([]joux.Option{
		joux.WithLogger(r.logger),
		joux.WithResourceController(r.rc),
	}, r.taskOpts...)
	res, err := joux.RunTask(ctx, in.Task, opts...)
	if err != nil {
		return 0, err
	}

	if r.sink != nil {
		if err := r.sink(ctx, t, res); err != nil {
			return 0, err
		}
	}
	if r.progress != nil {
		if err := r.progress.Mark(t); err != nil {
			return 0, err
		}
	}
	return res.Len(), nil
}
