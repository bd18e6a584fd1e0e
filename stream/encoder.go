// Package stream implements the streaming text encoders that convert
// packed-bit logic capture chunks into line-oriented output.
//
// Two formats exist: CSVEncoder emits one row per sample, GnuplotEncoder
// emits a counter-prefixed row only when the sample differs from the
// previous one. Both are driven the same way: construct with the capture's
// channel list, feed chunks in order with ProcessChunk, and Close when the
// stream ends.
//
// Encoders are not safe for concurrent use. Each logical output stream owns
// exactly one encoder instance; independent streams may run in parallel
// with their own instances.
package stream

import (
	"fmt"

	"github.com/seqlogic/bitrow/capture"
	"github.com/seqlogic/bitrow/errs"
	"github.com/seqlogic/bitrow/internal/pool"
	"github.com/seqlogic/bitrow/internal/sample"
)

// Encoder converts a sequence of capture chunks into text buffers.
//
// ProcessChunk returns one freshly allocated buffer per call, owned by the
// caller. The very first buffer of a stream starts with the format header;
// later buffers contain data rows only. A chunk with zero units yields a
// valid buffer with zero rows.
//
// Close releases all per-stream state and is idempotent. After Close,
// ProcessChunk returns ErrEncoderClosed.
type Encoder interface {
	ProcessChunk(chunk capture.Chunk) ([]byte, error)
	Close() error
}

type encoderState uint8

const (
	// stateOpened means the header is built but no chunk was processed yet.
	stateOpened encoderState = iota

	// stateStreaming means the header was emitted with the first chunk.
	stateStreaming

	// stateClosed is terminal; all per-stream state is released.
	stateClosed
)

// encoderCore carries the stream state shared by both encoder formats.
type encoderCore struct {
	*EncoderConfig

	header   *pool.ByteBuffer
	state    encoderState
	unitSize int // locked by the first chunk, 0 until then
}

// beginChunk validates the chunk against the stream contract. The first
// chunk locks the stream's unit size and must cover every selected bit
// position; later chunks must keep the same unit size.
func (c *encoderCore) beginChunk(chunk capture.Chunk) error {
	if c.state == stateClosed {
		return errs.ErrEncoderClosed
	}
	if err := chunk.Validate(); err != nil {
		return err
	}

	if c.unitSize == 0 {
		if !sample.Fits(c.selection, chunk.UnitSize) {
			return fmt.Errorf("%w: selection needs more than %d bytes per unit",
				errs.ErrBitIndexRange, chunk.UnitSize)
		}
		c.unitSize = chunk.UnitSize

		return nil
	}

	if chunk.UnitSize != c.unitSize {
		return fmt.Errorf("%w: stream started with %d, got %d",
			errs.ErrUnitSizeChanged, c.unitSize, chunk.UnitSize)
	}

	return nil
}

// seedOutput returns the output buffer for one chunk. On the first chunk it
// is primed with the header, whose pooled buffer is released right after;
// every later chunk starts from an empty buffer.
func (c *encoderCore) seedOutput(estimate int) []byte {
	if c.state != stateOpened {
		return make([]byte, 0, estimate)
	}

	out := make([]byte, 0, c.header.Len()+estimate)
	out = append(out, c.header.Bytes()...)
	pool.PutHeaderBuffer(c.header)
	c.header = nil
	c.state = stateStreaming

	return out
}

// close releases the shared state. Safe to call more than once.
func (c *encoderCore) close() {
	if c.header != nil {
		pool.PutHeaderBuffer(c.header)
		c.header = nil
	}
	c.state = stateClosed
}
