package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/hupe1980/joux"
)

var errUsage = errors.New("usage")

type config struct {
	i, j     string
	n        int
	hashDir  string
	sliceDir string

	store    string
	bucket   string
	endpoint string
	region   string
	insecure bool

	gemmWorkers      int
	partitionWorkers int
	subjoinWorkers   int
	partitionBits    uint
	tasks            int
	memLimit         int64
	ioLimit          int64
	cacheBytes       int64

	out         string
	compression string
	byteOrder   string
	progress    string

	verbose bool
	jsonLog bool
	quiet   bool
}

func newFlagSet(cfg *config, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("joux", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&cfg.i, "i", "", "list index i of a single task, in hexadecimal")
	fs.StringVar(&cfg.j, "j", "", "list index j of a single task, in hexadecimal")
	fs.IntVar(&cfg.n, "n", -1, "solve the first N tasks of the grid")
	fs.StringVar(&cfg.hashDir, "hash-dir", "", "location of the hash files")
	fs.StringVar(&cfg.sliceDir, "slice-dir", "", "location of the slice files")

	fs.StringVar(&cfg.store, "store", "local", "storage backend: local, s3 or minio")
	fs.StringVar(&cfg.bucket, "bucket", "", "bucket holding the directories (s3, minio)")
	fs.StringVar(&cfg.endpoint, "endpoint", "", "S3-compatible endpoint (s3, minio)")
	fs.StringVar(&cfg.region, "region", "", "AWS region (s3)")
	fs.BoolVar(&cfg.insecure, "insecure", false, "connect without TLS (minio)")

	defaults := joux.DefaultConfig()
	fs.IntVar(&cfg.gemmWorkers, "gemm-workers", defaults.GEMMWorkers, "projection workers per task")
	fs.IntVar(&cfg.partitionWorkers, "partition-workers", defaults.PartitionWorkers, "partition workers per task")
	fs.IntVar(&cfg.subjoinWorkers, "subjoin-workers", defaults.SubjoinWorkers, "join workers per task")
	fs.UintVar(&cfg.partitionBits, "p", defaults.PartitionBits, "partition bits; 2^p buckets per slice")
	fs.IntVar(&cfg.tasks, "tasks", 1, "tasks run at once")
	fs.Int64Var(&cfg.memLimit, "mem-limit", 0, "scratch memory limit in bytes (0: unlimited)")
	fs.Int64Var(&cfg.ioLimit, "io-limit", 0, "input bandwidth limit in bytes per second (0: unlimited)")
	fs.Int64Var(&cfg.cacheBytes, "slice-cache", 0, "bytes of slice files kept in memory across tasks (0: off)")

	fs.StringVar(&cfg.out, "out", "", "write the solutions of each task to this directory")
	fs.StringVar(&cfg.compression, "compression", "none", "result file compression: none, zstd or lz4")
	fs.StringVar(&cfg.byteOrder, "byte-order", "little", "result file byte order: little or big")
	fs.StringVar(&cfg.progress, "progress", "", "resume file in the output directory (requires -out)")

	fs.BoolVar(&cfg.verbose, "v", false, "log every slice")
	fs.BoolVar(&cfg.jsonLog, "log-json", false, "log in JSON")
	fs.BoolVar(&cfg.quiet, "q", false, "do not print solutions")

	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: joux (--i=I --j=J | --n=N) --hash-dir=PATH --slice-dir=PATH [flags]")
		fs.PrintDefaults()
	}
	return fs
}

func parseIndex(name, s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: --%s=%q is not a hexadecimal index", errUsage, name, s)
	}
	return uint32(v), nil
}

// validate checks the flag combination and returns the single task, if any.
func (c *config) validate() (i, j uint32, single bool, err error) {
	hasI, hasJ, hasN := c.i != "", c.j != "", c.n >= 0

	switch {
	case !hasN && !hasI && !hasJ:
		return 0, 0, false, fmt.Errorf("%w: missing either --n or --i/--j", errUsage)
	case hasN && (hasI || hasJ):
		return 0, 0, false, fmt.Errorf("%w: conflicting options", errUsage)
	case hasI != hasJ:
		return 0, 0, false, fmt.Errorf("%w: both i and j must be given", errUsage)
	case c.hashDir == "":
		return 0, 0, false, fmt.Errorf("%w: missing option --hash-dir", errUsage)
	case c.sliceDir == "":
		return 0, 0, false, fmt.Errorf("%w: missing option --slice-dir", errUsage)
	case c.progress != "" && c.out == "":
		return 0, 0, false, fmt.Errorf("%w: --progress requires --out", errUsage)
	case c.store != "local" && c.bucket == "":
		return 0, 0, false, fmt.Errorf("%w: --store=%s requires --bucket", errUsage, c.store)
	}

	if !hasI {
		return 0, 0, false, nil
	}
	if i, err = parseIndex("i", c.i); err != nil {
		return 0, 0, false, err
	}
	if j, err = parseIndex("j", c.j); err != nil {
		return 0, 0, false, err
	}
	return i, j, true, nil
}
