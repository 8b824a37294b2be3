package loader

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/hupe1980/joux"
	"github.com/hupe1980/joux/blobstore"
	"github.com/hupe1980/joux/resource"
	"github.com/hupe1980/joux/slicefile"
)

// ErrMisaligned is returned for a list whose size is not a multiple of 8 bytes.
var ErrMisaligned = errors.New("loader: list size is not a multiple of 8 bytes")

// Loader reads lists and slice sets. It is safe for concurrent use.
type Loader struct {
	hashes blobstore.BlobStore
	slices blobstore.BlobStore
	naming Naming
	rc     *resource.Controller
}

// Option configures a Loader.
type Option func(*Loader)

// WithSliceStore reads slice sets from store instead of the list store.
func WithSliceStore(store blobstore.BlobStore) Option {
	return func(l *Loader) {
		l.slices = store
	}
}

// WithNaming overrides the blob name patterns.
func WithNaming(n Naming) Option {
	return func(l *Loader) {
		l.naming = n
	}
}

// WithResourceController throttles reads with the IO limit of rc.
func WithResourceController(rc *resource.Controller) Option {
	return func(l *Loader) {
		l.rc = rc
	}
}

// New creates a Loader reading lists (and, by default, slice sets) from store.
func New(store blobstore.BlobStore, opts ...Option) *Loader {
	l := &Loader{
		hashes: store,
		slices: store,
		naming: DefaultNaming(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Naming returns the name patterns in use.
func (l *Loader) Naming() Naming {
	return l.naming
}

// Loaded is a task whose inputs may alias open blobs.
type Loaded struct {
	Task    joux.Task
	closers []io.Closer
}

// Close releases the blobs behind the task. The task must not be used after.
func (t *Loaded) Close() error {
	var errs []error
	for _, c := range t.closers {
		errs = append(errs, c.Close())
	}
	t.closers = nil
	return errors.Join(errs...)
}

// Load reads the inputs of task (i, j).
func (l *Loader) Load(ctx context.Context, i, j uint32) (*Loaded, error) {
	idx := joux.NewTaskIndex(i, j)
	t := &Loaded{Task: joux.Task{Index: idx}}

	n0, n1 := l.naming.ListNames(i, j)
	var (
		c   io.Closer
		err error
	)
	if t.Task.L0, c, err = l.LoadList(ctx, n0); err != nil {
		return nil, err
	}
	t.closers = append(t.closers, c)

	if t.Task.L1, c, err = l.LoadList(ctx, n1); err != nil {
		_ = t.Close()
		return nil, err
	}
	t.closers = append(t.closers, c)

	if t.Task.Slices, c, err = l.LoadSlices(ctx, l.naming.SliceName(idx[2])); err != nil {
		_ = t.Close()
		return nil, err
	}
	t.closers = append(t.closers, c)
	return t, nil
}

// LoadList reads a fingerprint list. The words may alias the blob until the
// returned closer is closed.
func (l *Loader) LoadList(ctx context.Context, name string) ([]uint64, io.Closer, error) {
	words, c, err := l.readWords(ctx, l.hashes, name)
	if err != nil {
		return nil, nil, err
	}
	return words, c, nil
}

// LoadSlices reads and validates a slice set.
func (l *Loader) LoadSlices(ctx context.Context, name string) (*slicefile.Sequence, io.Closer, error) {
	words, c, err := l.readWords(ctx, l.slices, name)
	if err != nil {
		return nil, nil, err
	}
	seq, err := slicefile.FromWords(words)
	if err != nil {
		_ = c.Close()
		return nil, nil, fmt.Errorf("load %s: %w", name, err)
	}
	return seq, c, nil
}

func (l *Loader) readWords(ctx context.Context, store blobstore.BlobStore, name string) ([]uint64, io.Closer, error) {
	b, err := store.Open(ctx, name)
	if err != nil {
		return nil, nil, fmt.Errorf("load %s: %w", name, err)
	}
	size := b.Size()
	if size%8 != 0 {
		_ = b.Close()
		return nil, nil, fmt.Errorf("load %s: %w (%d bytes)", name, ErrMisaligned, size)
	}

	if wm, ok := b.(blobstore.WordMappable); ok {
		if err := l.rc.AcquireIO(ctx, int(size)); err != nil {
			_ = b.Close()
			return nil, nil, err
		}
		words, err := wm.Uint64s()
		if err != nil {
			_ = b.Close()
			return nil, nil, fmt.Errorf("load %s: %w", name, err)
		}
		return words, b, nil
	}
	defer b.Close()

	buf := make([]byte, size)
	r := resource.NewRateLimitedReader(ctx, blobstore.Reader(ctx, b), l.rc)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, nil, fmt.Errorf("load %s: %w", name, err)
	}
	words := make([]uint64, size/8)
	for k := range words {
		words[k] = binary.LittleEndian.Uint64(buf[8*k:])
	}
	return words, nopCloser{}, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
