// Command joux solves tasks of the 3-list XOR problem.
//
// Each task (i, j) reads the fingerprint lists foo.i and bar.j from the hash
// directory and the slice set i^j from the slice directory, then prints every
// triple that XORs to zero:
//
//	joux --hash-dir=hashes --slice-dir=slices --i=12 --j=1f0
//	joux --hash-dir=hashes --slice-dir=slices --n=64 --tasks=2 --out=results --progress=done
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"sync"
	"syscall"
	"time"

	"github.com/hupe1980/joux"
	"github.com/hupe1980/joux/blobstore"
	"github.com/hupe1980/joux/grid"
	"github.com/hupe1980/joux/loader"
	"github.com/hupe1980/joux/resource"
	"github.com/hupe1980/joux/resultfile"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()

	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
	default:
		fmt.Fprintf(os.Stderr, "joux: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var cfg config
	fs := newFlagSet(&cfg, stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	i, j, single, err := cfg.validate()
	if err != nil {
		fs.Usage()
		return err
	}
	compression, err := resultfile.ParseCompression(cfg.compression)
	if err != nil {
		return err
	}
	order, err := resultfile.ParseByteOrder(cfg.byteOrder)
	if err != nil {
		return err
	}

	logger := newLogger(&cfg, stderr)
	rc := resource.NewController(resource.Config{
		MemoryLimitBytes:   cfg.memLimit,
		MaxConcurrentTasks: int64(max(cfg.tasks, 1)),
		IOLimitBytesPerSec: cfg.ioLimit,
	})

	hashStore, err := openStore(ctx, &cfg, cfg.hashDir)
	if err != nil {
		return err
	}
	sliceStore, err := openStore(ctx, &cfg, cfg.sliceDir)
	if err != nil {
		return err
	}
	if cfg.cacheBytes > 0 {
		sliceStore = blobstore.NewCachingStore(sliceStore, cfg.cacheBytes, rc)
	}
	ld := loader.New(hashStore,
		loader.WithSliceStore(sliceStore),
		loader.WithResourceController(rc),
	)

	var (
		outStore blobstore.BlobStore
		progress *grid.Progress
		fileOpts []resultfile.Option
	)
	if cfg.out != "" {
		if outStore, err = openStore(ctx, &cfg, cfg.out); err != nil {
			return err
		}
		fileOpts = []resultfile.Option{
			resultfile.WithCompression(compression),
			resultfile.WithByteOrder(order),
			resultfile.WithResourceController(rc),
		}
		if cfg.progress != "" {
			if progress, err = grid.LoadProgress(ctx, outStore, cfg.progress); err != nil {
				return err
			}
		}
	}

	p := &printer{w: stdout, quiet: cfg.quiet}
	sink := func(ctx context.Context, t grid.Task, res *joux.Result) error {
		res.Sort()
		if outStore != nil {
			if err := resultfile.Save(ctx, outStore, resultName(t, compression), res, fileOpts...); err != nil {
				return err
			}
		}
		return p.print(t, res)
	}

	var tasks iter.Seq[grid.Task]
	if single {
		tasks = slices.Values([]grid.Task{{I: i, J: j}})
	} else {
		side := grid.Side(cfg.n)
		fmt.Fprintf(stdout, "Task grid is %d x %d\n", side, side)
		tasks = grid.FirstN(cfg.n)
	}

	metrics := &joux.BasicMetricsCollector{}
	runnerOpts := []grid.RunnerOption{
		grid.WithSink(sink),
		grid.WithResourceController(rc),
		grid.WithLogger(logger),
		grid.WithTaskOptions(
			joux.WithWorkers(cfg.gemmWorkers, cfg.partitionWorkers, cfg.subjoinWorkers),
			joux.WithPartitionBits(cfg.partitionBits),
			joux.WithMetricsCollector(metrics),
		),
	}
	if progress != nil {
		runnerOpts = append(runnerOpts, grid.WithProgress(progress))
	}

	start := time.Now()
	_, runErr := grid.NewRunner(ld, runnerOpts...).Run(ctx, tasks)
	if progress != nil {
		if err := progress.Save(context.WithoutCancel(ctx), outStore, cfg.progress); err != nil {
			runErr = errors.Join(runErr, fmt.Errorf("save progress: %w", err))
		}
	}

	stats := metrics.GetStats()
	logger.InfoContext(ctx, "metrics",
		"slices", stats.SliceCount,
		"fallback_slices", stats.FallbackSlices,
		"probes", stats.Probes,
		"volume", stats.Volume,
		"gemm_rate", stats.Rate(stats.GEMM),
		"partition_rate", stats.Rate(stats.Partition),
		"subjoin_rate", stats.Rate(stats.Subjoin),
	)
	if runErr != nil {
		return runErr
	}
	fmt.Fprintf(stdout, "FINISHED in %.1fs\n", time.Since(start).Seconds())
	return nil
}

func newLogger(cfg *config, w io.Writer) *joux.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelWarn}
	if cfg.verbose {
		opts.Level = slog.LevelDebug
	}
	if cfg.jsonLog {
		return joux.NewLogger(slog.NewJSONHandler(w, opts))
	}
	return joux.NewLogger(slog.NewTextHandler(w, opts))
}

func resultName(t grid.Task, c resultfile.Compression) string {
	return fmt.Sprintf("sol.%03x.%03x%s", t.I, t.J, c.Extension())
}

// printer writes task reports to w, one task at a time.
type printer struct {
	mu    sync.Mutex
	w     io.Writer
	quiet bool
}

func (p *printer) print(t grid.Task, res *joux.Result) error {
	sols := res.Solutions()

	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintf(p.w, "%v %.2fs\n", t.Index(), res.Stats.Duration.Seconds())
	if len(sols) == 0 || p.quiet {
		return nil
	}
	fmt.Fprintf(p.w, "#solutions = %d\n", len(sols))
	for _, s := range sols {
		if _, err := fmt.Fprintln(p.w, s); err != nil {
			return err
		}
	}
	return nil
}
