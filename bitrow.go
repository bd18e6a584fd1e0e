// Package bitrow converts packed-bit logic analyzer captures into
// line-oriented text formats for external tools.
//
// A capture device samples N digital channels at a fixed rate and packs each
// sample into a fixed-width binary unit, one bit per channel. Bitrow turns a
// chunked stream of such units into text, one row per sample:
//
//   - CSV: every sample as '0'/'1' fields, comma-separated
//   - Gnuplot: counter-prefixed space-separated columns, with repeated
//     samples suppressed to keep slowly-changing captures small
//
// # Basic Usage
//
// Encoding a capture to CSV:
//
//	channels := []capture.Channel{
//	    {Name: "SCL", Kind: capture.KindLogic, Enabled: true},
//	    {Name: "SDA", Kind: capture.KindLogic, Enabled: true},
//	}
//
//	encoder, _ := bitrow.NewCSVEncoder(channels, stream.WithSampleRate(1_000_000))
//	defer encoder.Close()
//
//	for _, chunk := range chunks {
//	    buf, err := encoder.ProcessChunk(chunk)
//	    if err != nil {
//	        return err
//	    }
//	    w.Write(buf)
//	}
//
// Or drive a whole chunk sequence in one call, optionally through a
// compressing sink:
//
//	dst, _ := sink.NewWriter(file, sink.WithCompression(format.CompressionZstd))
//	err := bitrow.Export(dst, encoder, chunks)
//	dst.Close()
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the stream
// package. For fine-grained control, use the stream, capture, and sink
// packages directly.
package bitrow

import (
	"fmt"
	"io"

	"github.com/seqlogic/bitrow/capture"
	"github.com/seqlogic/bitrow/format"
	"github.com/seqlogic/bitrow/stream"
)

// NewCSVEncoder creates a CSV encoder for the given channel list.
//
// This is a convenience wrapper around stream.NewCSVEncoder.
func NewCSVEncoder(channels []capture.Channel, opts ...stream.EncoderOption) (*stream.CSVEncoder, error) {
	return stream.NewCSVEncoder(channels, opts...)
}

// NewGnuplotEncoder creates a gnuplot encoder for the given channel list.
//
// This is a convenience wrapper around stream.NewGnuplotEncoder.
func NewGnuplotEncoder(channels []capture.Channel, opts ...stream.EncoderOption) (*stream.GnuplotEncoder, error) {
	return stream.NewGnuplotEncoder(channels, opts...)
}

// NewEncoder creates an encoder for the given output format.
//
// Parameters:
//   - f: Output format (format.FormatCSV or format.FormatGnuplot)
//   - channels: Ordered channel list of the capture
//   - opts: Optional encoder configuration
//
// Returns:
//   - stream.Encoder: New encoder for the requested format
//   - error: Construction error, or an invalid format error
func NewEncoder(f format.FormatType, channels []capture.Channel, opts ...stream.EncoderOption) (stream.Encoder, error) {
	switch f {
	case format.FormatCSV:
		return stream.NewCSVEncoder(channels, opts...)
	case format.FormatGnuplot:
		return stream.NewGnuplotEncoder(channels, opts...)
	default:
		return nil, fmt.Errorf("invalid output format: %s", f)
	}
}

// Export drives enc over the given chunk sequence and writes every produced
// buffer to w in order.
//
// The encoder is closed when Export returns, success or not; w stays open.
// An empty chunk sequence writes nothing, not even the header, matching the
// stream contract that the header travels with the first data chunk.
//
// Returns:
//   - error: The first encoding or write error encountered
func Export(w io.Writer, enc stream.Encoder, chunks []capture.Chunk) error {
	defer enc.Close()

	for _, chunk := range chunks {
		buf, err := enc.ProcessChunk(chunk)
		if err != nil {
			return err
		}
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("failed to write output buffer: %w", err)
		}
	}

	return nil
}
