package sink

import (
	"io"

	"github.com/pierrec/lz4/v4"
)

// newLZ4Writer creates the LZ4 frame compression stage.
func newLZ4Writer(w io.Writer) io.WriteCloser {
	return lz4.NewWriter(w)
}
