package resultfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/joux"
	"github.com/hupe1980/joux/blobstore"
	"github.com/hupe1980/joux/resource"
)

// RecordWords is the number of 64-bit words per solution.
const RecordWords = 6

// RecordBytes is the encoded size of one solution.
const RecordBytes = 8 * RecordWords

// ErrTruncated is returned when a stream ends inside a record.
var ErrTruncated = errors.New("resultfile: truncated record")

// Writer encodes solutions to an io.Writer.
type Writer struct {
	opts  options
	w     io.Writer
	zw    io.WriteCloser
	buf   [RecordBytes]byte
	count int
}

// NewWriter returns a Writer on w. Close must be called to flush compressed
// streams; it does not close w.
func NewWriter(w io.Writer, opts ...Option) (*Writer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	wr := &Writer{opts: o, w: w}
	switch o.compression {
	case None:
	case Zstd:
		enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(o.level))
		if err != nil {
			return nil, fmt.Errorf("resultfile: %w", err)
		}
		wr.zw, wr.w = enc, enc
	case LZ4:
		lw := lz4.NewWriter(w)
		wr.zw, wr.w = lw, lw
	default:
		return nil, fmt.Errorf("resultfile: unknown compression %v", o.compression)
	}
	return wr, nil
}

// Write appends solutions.
func (w *Writer) Write(sols ...joux.Solution) error {
	for i := range sols {
		s := &sols[i]
		for k := 0; k < 3; k++ {
			w.opts.order.PutUint64(w.buf[8*k:], s.Val[k])
			w.opts.order.PutUint64(w.buf[24+8*k:], s.TaskIndex[k])
		}
		if _, err := w.w.Write(w.buf[:]); err != nil {
			return err
		}
		w.count++
	}
	return nil
}

// Count returns the number of solutions written.
func (w *Writer) Count() int {
	return w.count
}

// Close flushes the compressor.
func (w *Writer) Close() error {
	if w.zw != nil {
		return w.zw.Close()
	}
	return nil
}

// Reader decodes solutions from an io.Reader.
type Reader struct {
	opts options
	r    io.Reader
	dec  *zstd.Decoder
	buf  [RecordBytes]byte
}

// NewReader returns a Reader on r. The options must match the writer's.
func NewReader(r io.Reader, opts ...Option) (*Reader, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	rd := &Reader{opts: o, r: r}
	switch o.compression {
	case None:
	case Zstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("resultfile: %w", err)
		}
		rd.dec, rd.r = dec, dec
	case LZ4:
		rd.r = lz4.NewReader(r)
	default:
		return nil, fmt.Errorf("resultfile: unknown compression %v", o.compression)
	}
	return rd, nil
}

// Next returns the next solution, or io.EOF at the end of the stream.
// A record that does not XOR to zero is returned with an error wrapping
// joux.ErrInconsistentSolution.
func (r *Reader) Next() (joux.Solution, error) {
	var s joux.Solution
	n, err := io.ReadFull(r.r, r.buf[:])
	switch {
	case errors.Is(err, io.EOF):
		return s, io.EOF
	case errors.Is(err, io.ErrUnexpectedEOF):
		return s, fmt.Errorf("%w: %d trailing bytes", ErrTruncated, n)
	case err != nil:
		return s, err
	}
	for k := 0; k < 3; k++ {
		s.Val[k] = r.opts.order.Uint64(r.buf[8*k:])
		s.TaskIndex[k] = r.opts.order.Uint64(r.buf[24+8*k:])
	}
	if !s.Valid() {
		return s, &joux.ErrInvalidSolution{Solution: s}
	}
	return s, nil
}

// All yields the remaining solutions and stops after the first error.
func (r *Reader) All() iter.Seq2[joux.Solution, error] {
	return func(yield func(joux.Solution, error) bool) {
		for {
			s, err := r.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(s, err) || err != nil {
				return
			}
		}
	}
}

// Close releases the decompressor. It does not close the underlying reader.
func (r *Reader) Close() {
	if r.dec != nil {
		r.dec.Close()
	}
}

// ReadAll decodes every solution of r.
func ReadAll(r io.Reader, opts ...Option) ([]joux.Solution, error) {
	rd, err := NewReader(r, opts...)
	if err != nil {
		return nil, err
	}
	defer rd.Close()

	var sols []joux.Solution
	for s, err := range rd.All() {
		if err != nil {
			return nil, err
		}
		sols = append(sols, s)
	}
	return sols, nil
}

// Save writes the solutions of res to name in store.
func Save(ctx context.Context, store blobstore.BlobStore, name string, res *joux.Result, opts ...Option) error {
	blob, err := store.Create(ctx, name)
	if err != nil {
		return err
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	bw := bufio.NewWriterSize(resource.NewRateLimitedWriter(ctx, blob, o.rc), 64<<10)
	w, err := NewWriter(bw, opts...)
	if err != nil {
		_ = blobstore.Abort(blob)
		return err
	}
	if err := w.Write(res.Solutions()...); err != nil {
		_ = blobstore.Abort(blob)
		return err
	}
	if err := errors.Join(w.Close(), bw.Flush()); err != nil {
		_ = blobstore.Abort(blob)
		return err
	}
	return blob.Close()
}

// Load reads every solution of name in store.
func Load(ctx context.Context, store blobstore.BlobStore, name string, opts ...Option) ([]joux.Solution, error) {
	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer blob.Close()
	return ReadAll(blobstore.Reader(ctx, blob), opts...)
}
