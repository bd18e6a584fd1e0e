package stream

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/seqlogic/bitrow/capture"
	"github.com/seqlogic/bitrow/errs"
	"github.com/seqlogic/bitrow/internal/options"
	"github.com/seqlogic/bitrow/internal/pool"
	"github.com/seqlogic/bitrow/internal/rate"
	"github.com/seqlogic/bitrow/internal/sample"
)

// GnuplotEncoder converts capture chunks into gnuplot's space-separated
// columns format.
//
// Each emitted row carries the running sample counter followed by the bit
// value of every enabled logic channel, each with a trailing space. Rows
// whose raw sample unit equals the previous unit byte-for-byte are
// suppressed, except at chunk boundaries: the first and last unit of every
// chunk is always emitted, which guarantees the stream's first and last
// samples appear in the output.
//
// The equality test covers the entire raw unit, including bits of disabled
// or non-logic channels. Two samples identical in every selected bit can
// therefore still both be emitted, and a change confined to unselected bits
// suppresses nothing it shouldn't but emits more than strictly needed.
//
// Note: The GnuplotEncoder is NOT thread-safe. Each encoder instance must
// be driven by a single goroutine at a time.
type GnuplotEncoder struct {
	encoderCore

	// prevUnit holds the previous raw sample unit for the change filter.
	// It cannot be allocated until the first chunk reveals the unit size.
	prevUnit []byte

	// sampleCount counts samples across the whole stream, suppressed ones
	// included. The first sample is 1.
	sampleCount uint64
}

var _ Encoder = (*GnuplotEncoder)(nil)

// NewGnuplotEncoder creates a GnuplotEncoder for the given channel list.
//
// The gnuplot format requires at least one enabled logic channel, since a
// row with only a counter plots nothing.
//
// Parameters:
//   - channels: Ordered channel list of the capture (must be non-empty)
//   - opts: Optional configuration (sample rate, generator, ...)
//
// Returns:
//   - *GnuplotEncoder: New encoder in the opened state
//   - error: ErrNoChannels, ErrNoLogicChannels, ErrRateFormat, or an option error
func NewGnuplotEncoder(channels []capture.Channel, opts ...EncoderOption) (*GnuplotEncoder, error) {
	if len(channels) == 0 {
		return nil, errs.ErrNoChannels
	}

	cfg := newEncoderConfig(channels)
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if len(cfg.selection) == 0 {
		return nil, errs.ErrNoLogicChannels
	}

	hdr, err := buildGnuplotHeader(cfg)
	if err != nil {
		return nil, err
	}

	enc := &GnuplotEncoder{
		encoderCore: encoderCore{
			EncoderConfig: cfg,
			state:         stateOpened,
		},
	}
	enc.header = hdr

	return enc, nil
}

// buildGnuplotHeader renders the one-time "# "-prefixed preamble with the
// generator line, the optional acquisition comment, the sample period, and
// the column-to-channel map. Column 0 is the sample counter, so channel
// columns are numbered from 1 in selection order.
func buildGnuplotHeader(cfg *EncoderConfig) (*pool.ByteBuffer, error) {
	period, err := rate.Period(cfg.sampleRate)
	if err != nil {
		return nil, err
	}

	comment := ""
	if cfg.sampleRate > 0 {
		freq, err := rate.Frequency(cfg.sampleRate)
		if err != nil {
			return nil, err
		}
		comment = fmt.Sprintf("# Comment: Acquisition with %d/%d channels at %s\n",
			len(cfg.selection), len(cfg.channels), freq)
	}

	hdr := pool.GetHeaderBuffer()

	hdr.WriteString("# Sample data in space-separated columns format usable by gnuplot\n")
	hdr.WriteString("#\n")
	fmt.Fprintf(hdr, "# Generated by: %s on %s\n", cfg.generator, cfg.generatedAt.Format(time.ANSIC))
	hdr.WriteString(comment)
	fmt.Fprintf(hdr, "# Period: %s\n", period)
	hdr.WriteString("#\n")
	hdr.WriteString("# Column\tChannel\n")
	hdr.WriteString("# " + strings.Repeat("-", 77) + "\n")
	hdr.WriteString("# 0\t\tSample counter (for internal gnuplot purposes)\n")
	for col, name := range cfg.names {
		fmt.Fprintf(hdr, "# %d\t\t%s\n", col+1, name)
	}
	hdr.WriteString("\n")

	return hdr, nil
}

// ProcessChunk encodes one chunk and returns the produced text buffer.
//
// The first call locks the stream's unit size and allocates the
// previous-unit memory. Suppressed samples still advance the sample
// counter, so emitted counters reflect true sample positions.
//
// Returns:
//   - []byte: Output text, possibly header-only for an empty first chunk
//   - error: ErrEncoderClosed, or a chunk contract violation
func (e *GnuplotEncoder) ProcessChunk(chunk capture.Chunk) ([]byte, error) {
	if err := e.beginChunk(chunk); err != nil {
		return nil, err
	}

	if e.prevUnit == nil {
		e.prevUnit = make([]byte, e.unitSize)
	}

	// Row width: counter and tab, one digit and space per channel, newline.
	rowWidth := 21 + 2*len(e.selection)
	out := e.seedOutput(chunk.Units() * rowWidth)

	units := chunk.Units()
	for i := 0; i < units; i++ {
		unit := chunk.Unit(i)
		e.sampleCount++

		// Skip repeated samples, but keep chunk boundary samples so the
		// first and last sample of the stream always reach the output.
		suppress := i > 0 && i < units-1 && bytes.Equal(unit, e.prevUnit)
		copy(e.prevUnit, unit)
		if suppress {
			continue
		}

		out = strconv.AppendUint(out, e.sampleCount, 10)
		out = append(out, '\t')
		for _, idx := range e.selection {
			out = append(out, '0'+sample.Bit(unit, idx), ' ')
		}
		out = append(out, '\n')
	}

	return out, nil
}

// Close releases all per-stream state, the previous-unit memory included.
// Idempotent.
func (e *GnuplotEncoder) Close() error {
	e.close()
	e.prevUnit = nil

	return nil
}
