// Package errs defines the sentinel errors returned by bitrow encoders.
//
// All errors are plain sentinel values suitable for errors.Is checks.
// Callers receive them wrapped with additional context via fmt.Errorf("%w: ...").
package errs

import "errors"

var (
	// ErrNoChannels indicates an encoder was created without a channel list.
	ErrNoChannels = errors.New("no channel list provided")

	// ErrNoLogicChannels indicates no enabled logic channel exists in the
	// channel list. The gnuplot format requires at least one.
	ErrNoLogicChannels = errors.New("no logic channel enabled")

	// ErrRateFormat indicates a sample rate or period string could not be rendered.
	ErrRateFormat = errors.New("cannot format sample rate")

	// ErrInvalidUnitSize indicates a chunk carries a non-positive unit size.
	ErrInvalidUnitSize = errors.New("invalid unit size")

	// ErrChunkNotAligned indicates a chunk length is not a multiple of its unit size.
	ErrChunkNotAligned = errors.New("chunk length not a multiple of unit size")

	// ErrUnitSizeChanged indicates a chunk's unit size differs from the one
	// the stream started with.
	ErrUnitSizeChanged = errors.New("unit size changed mid-stream")

	// ErrBitIndexRange indicates a selected bit position lies outside the
	// chunk's unit size.
	ErrBitIndexRange = errors.New("bit index outside sample unit")

	// ErrEncoderClosed indicates an operation on an encoder after Close.
	ErrEncoderClosed = errors.New("encoder is closed")

	// ErrNilWriter indicates a sink was created without an underlying writer.
	ErrNilWriter = errors.New("nil writer")

	// ErrSinkClosed indicates a write to a sink after Close.
	ErrSinkClosed = errors.New("sink is closed")
)
