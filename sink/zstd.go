//go:build !nobuild

package sink

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// newZstdWriter creates the Zstandard compression stage.
//
// Single-threaded encoding keeps output deterministic for a given input,
// matching the determinism contract of the encoders feeding the sink.
func newZstdWriter(w io.Writer) (io.WriteCloser, error) {
	return zstd.NewWriter(w, zstd.WithEncoderConcurrency(1))
}
