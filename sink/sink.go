// Package sink forwards encoder output to an io.Writer, optionally through
// streaming compression.
//
// Encoders produce plain text buffers and perform no I/O themselves; a
// sink.Writer is the piece that turns those buffers into a file or network
// stream. Compression is applied as a streaming stage, so chunked encoder
// output compresses as one continuous document:
//   - None: passthrough (default)
//   - Zstd: excellent ratio, moderate speed
//   - S2: balanced ratio and speed
//   - LZ4: fast, moderate ratio
//
// The sink also maintains an xxHash64 digest of the uncompressed bytes,
// available via Checksum after the stream is written. This lets callers
// verify an export end-to-end without re-reading it.
package sink

import (
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"

	"github.com/seqlogic/bitrow/errs"
	"github.com/seqlogic/bitrow/format"
	"github.com/seqlogic/bitrow/internal/options"
)

// Writer forwards written bytes to an underlying io.Writer through an
// optional compression stage.
//
// Close flushes and closes the compression stage but never closes the
// underlying writer; its lifetime belongs to the caller.
//
// Note: The Writer is NOT thread-safe. Serialize writes from a single
// goroutine, matching the sequential chunk delivery of an encoder stream.
type Writer struct {
	dst      io.Writer
	compress io.WriteCloser // nil when compression is None
	digest   *xxhash.Digest
	written  int64
	closed   bool
}

// Config holds sink configuration applied via functional options.
type Config struct {
	compression format.CompressionType
}

// Option is a functional option for configuring a sink Writer.
type Option = options.Option[*Config]

// WithCompression selects the compression applied to the output stream.
// Default is format.CompressionNone.
func WithCompression(c format.CompressionType) Option {
	return options.New(func(cfg *Config) error {
		switch c {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
			cfg.compression = c
			return nil
		default:
			return fmt.Errorf("invalid sink compression: %s", c)
		}
	})
}

// NewWriter creates a sink Writer forwarding to w.
//
// Parameters:
//   - w: Destination writer, owned by the caller (must be non-nil)
//   - opts: Optional configuration (compression)
//
// Returns:
//   - *Writer: New sink ready for writing
//   - error: ErrNilWriter, or an option/compressor setup error
func NewWriter(w io.Writer, opts ...Option) (*Writer, error) {
	if w == nil {
		return nil, errs.ErrNilWriter
	}

	cfg := &Config{compression: format.CompressionNone}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	sw := &Writer{
		dst:    w,
		digest: xxhash.New(),
	}

	var err error
	switch cfg.compression {
	case format.CompressionNone:
		// passthrough
	case format.CompressionZstd:
		sw.compress, err = newZstdWriter(w)
	case format.CompressionS2:
		sw.compress = newS2Writer(w)
	case format.CompressionLZ4:
		sw.compress = newLZ4Writer(w)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create %s writer: %w", cfg.compression, err)
	}

	return sw, nil
}

// Write implements io.Writer. The digest covers the bytes as given, before
// compression.
func (w *Writer) Write(p []byte) (int, error) {
	if w.closed {
		return 0, errs.ErrSinkClosed
	}

	_, _ = w.digest.Write(p) // never fails
	w.written += int64(len(p))

	if w.compress != nil {
		return w.compress.Write(p)
	}

	return w.dst.Write(p)
}

// Checksum returns the xxHash64 digest of all uncompressed bytes written
// so far.
func (w *Writer) Checksum() uint64 {
	return w.digest.Sum64()
}

// Written returns the number of uncompressed bytes written so far.
func (w *Writer) Written() int64 {
	return w.written
}

// Close flushes and closes the compression stage. The underlying writer
// stays open. Idempotent.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if w.compress != nil {
		return w.compress.Close()
	}

	return nil
}
