package capture

import (
	"fmt"

	"github.com/seqlogic/bitrow/errs"
)

// Chunk is one packed-bit data block delivered by the capture framework.
//
// Data holds Units() consecutive sample units of UnitSize bytes each. Chunk
// boundaries carry no semantic meaning; a logical stream is an arbitrary
// sequence of chunks sharing one unit size.
type Chunk struct {
	// Data is the raw packed sample bytes. Its length must be a multiple
	// of UnitSize. An empty chunk is valid and contains zero units.
	Data []byte

	// UnitSize is the byte width of one packed multi-channel sample.
	UnitSize int
}

// Validate checks the chunk's framing contract: a positive unit size and a
// data length that is a whole number of units.
//
// Returns:
//   - error: ErrInvalidUnitSize or ErrChunkNotAligned on violation, nil otherwise
func (c Chunk) Validate() error {
	if c.UnitSize <= 0 {
		return fmt.Errorf("%w: %d", errs.ErrInvalidUnitSize, c.UnitSize)
	}
	if len(c.Data)%c.UnitSize != 0 {
		return fmt.Errorf("%w: length %d, unit size %d", errs.ErrChunkNotAligned, len(c.Data), c.UnitSize)
	}

	return nil
}

// Units returns the number of complete sample units in the chunk.
// Only meaningful after Validate succeeds.
func (c Chunk) Units() int {
	if c.UnitSize <= 0 {
		return 0
	}

	return len(c.Data) / c.UnitSize
}

// Unit returns the i-th sample unit as a sub-slice of Data.
// The slice aliases Data; callers must not retain it across chunk reuse.
func (c Chunk) Unit(i int) []byte {
	off := i * c.UnitSize
	return c.Data[off : off+c.UnitSize]
}
