package stream

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/seqlogic/bitrow/capture"
	"github.com/seqlogic/bitrow/errs"
	"github.com/seqlogic/bitrow/internal/options"
	"github.com/seqlogic/bitrow/internal/pool"
	"github.com/seqlogic/bitrow/internal/sample"
)

// CSVEncoder converts capture chunks into comma-separated values output.
//
// Every sample unit produces exactly one data row: the bit value of each
// enabled logic channel as '0' or '1', joined by the separator, with no
// trailing separator. The header is a small block of "; "-prefixed metadata
// lines emitted once at the start of the first buffer.
//
// A capture with zero enabled logic channels is valid for this format and
// produces blank data rows.
//
// Note: The CSVEncoder is NOT thread-safe. Each encoder instance must be
// driven by a single goroutine at a time.
type CSVEncoder struct {
	encoderCore
}

var _ Encoder = (*CSVEncoder)(nil)

// NewCSVEncoder creates a CSVEncoder for the given channel list.
//
// The channel list describes all channels of the capture device in order;
// the encoder selects the enabled logic channels itself. The header is
// built here, so option-dependent fields (sample rate, generator,
// separator) are fixed at construction.
//
// Parameters:
//   - channels: Ordered channel list of the capture (must be non-empty)
//   - opts: Optional configuration (sample rate, generator, separator, ...)
//
// Returns:
//   - *CSVEncoder: New encoder in the opened state
//   - error: ErrNoChannels for an empty channel list, or an option error
func NewCSVEncoder(channels []capture.Channel, opts ...EncoderOption) (*CSVEncoder, error) {
	if len(channels) == 0 {
		return nil, errs.ErrNoChannels
	}

	cfg := newEncoderConfig(channels)
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	enc := &CSVEncoder{
		encoderCore: encoderCore{
			EncoderConfig: cfg,
			state:         stateOpened,
		},
	}
	enc.header = buildCSVHeader(cfg)

	return enc, nil
}

// buildCSVHeader renders the one-time metadata preamble:
//
//	; CSV, generated by <generator> on <timestamp>
//	; Samplerate: <rate>
//	; Channels (<enabled>/<total>): <name>,<name>,...
//
// The Samplerate line is omitted when the rate is unknown.
func buildCSVHeader(cfg *EncoderConfig) *pool.ByteBuffer {
	hdr := pool.GetHeaderBuffer()

	hdr.WriteString("; CSV, generated by ")
	hdr.WriteString(cfg.generator)
	hdr.WriteString(" on ")
	hdr.WriteString(cfg.generatedAt.Format(time.ANSIC))
	hdr.WriteString("\n")

	if cfg.sampleRate > 0 {
		hdr.WriteString("; Samplerate: ")
		hdr.WriteString(strconv.FormatUint(cfg.sampleRate, 10))
		hdr.WriteString("\n")
	}

	fmt.Fprintf(hdr, "; Channels (%d/%d): %s\n",
		len(cfg.selection), len(cfg.channels), strings.Join(cfg.names, ","))

	return hdr
}

// ProcessChunk encodes one chunk and returns the produced text buffer.
//
// The returned buffer is owned by the caller; the encoder retains no
// reference to it. The first call's buffer starts with the header.
//
// Returns:
//   - []byte: Output text, possibly header-only for an empty first chunk
//   - error: ErrEncoderClosed, or a chunk contract violation
func (e *CSVEncoder) ProcessChunk(chunk capture.Chunk) ([]byte, error) {
	if err := e.beginChunk(chunk); err != nil {
		return nil, err
	}

	// Row width: one digit per channel plus separators and the newline.
	rowWidth := 2 * len(e.selection)
	if rowWidth == 0 {
		rowWidth = 1
	}
	out := e.seedOutput(chunk.Units() * rowWidth)

	for i := 0; i < chunk.Units(); i++ {
		unit := chunk.Unit(i)
		for j, idx := range e.selection {
			if j > 0 {
				out = append(out, e.separator)
			}
			out = append(out, '0'+sample.Bit(unit, idx))
		}
		out = append(out, '\n')
	}

	return out, nil
}

// Close releases all per-stream state. Idempotent.
func (e *CSVEncoder) Close() error {
	e.close()
	return nil
}
