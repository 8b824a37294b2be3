package resultfile

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/hupe1980/joux/resource"
)

// Compression selects the stream compression.
type Compression int

const (
	// None writes raw records.
	None Compression = iota
	// Zstd wraps the records in a zstd stream.
	Zstd
	// LZ4 wraps the records in an lz4 frame.
	LZ4
)

func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	default:
		return fmt.Sprintf("Compression(%d)", int(c))
	}
}

// Extension returns the conventional file suffix, empty for None.
func (c Compression) Extension() string {
	switch c {
	case Zstd:
		return ".zst"
	case LZ4:
		return ".lz4"
	default:
		return ""
	}
}

// ParseCompression accepts "none", "zstd" and "lz4".
func ParseCompression(s string) (Compression, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return None, nil
	case "zstd", "zst":
		return Zstd, nil
	case "lz4":
		return LZ4, nil
	default:
		return None, fmt.Errorf("resultfile: unknown compression %q", s)
	}
}

// ParseByteOrder accepts "little"/"le" and "big"/"be".
func ParseByteOrder(s string) (binary.ByteOrder, error) {
	switch strings.ToLower(s) {
	case "", "little", "le":
		return binary.LittleEndian, nil
	case "big", "be":
		return binary.BigEndian, nil
	default:
		return nil, fmt.Errorf("resultfile: unknown byte order %q", s)
	}
}

type options struct {
	order       binary.ByteOrder
	compression Compression
	level       zstd.EncoderLevel
	rc          *resource.Controller
}

func defaultOptions() options {
	return options{
		order:       binary.LittleEndian,
		compression: None,
		level:       zstd.SpeedDefault,
	}
}

// Option configures a Writer or Reader.
type Option func(*options)

// WithByteOrder sets the word byte order. Default little-endian.
func WithByteOrder(order binary.ByteOrder) Option {
	return func(o *options) {
		o.order = order
	}
}

// WithCompression sets the stream compression. Default None.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithZstdLevel sets the zstd level, using the zstd command line scale.
func WithZstdLevel(level int) Option {
	return func(o *options) {
		o.level = zstd.EncoderLevelFromZstd(level)
	}
}

// WithResourceController throttles Save by the IO limit of rc.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.rc = rc
	}
}
