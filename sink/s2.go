package sink

import (
	"io"

	"github.com/klauspost/compress/s2"
)

// newS2Writer creates the S2 compression stage.
func newS2Writer(w io.Writer) io.WriteCloser {
	return s2.NewWriter(w, s2.WriterConcurrency(1))
}
