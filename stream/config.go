package stream

import (
	"fmt"
	"time"

	"github.com/seqlogic/bitrow/capture"
	"github.com/seqlogic/bitrow/internal/options"
)

// defaultGenerator identifies this library in output headers when the
// caller does not override it via WithGenerator.
const defaultGenerator = "bitrow"

// EncoderConfig holds the configuration shared by all output encoders.
//
// It is populated at encoder construction from the channel list and the
// functional options, and is immutable afterwards.
type EncoderConfig struct {
	channels    []capture.Channel
	selection   []int
	names       []string
	sampleRate  uint64
	generator   string
	generatedAt time.Time
	separator   byte
}

// newEncoderConfig derives the channel selection from the channel list and
// fills in the defaults.
func newEncoderConfig(channels []capture.Channel) *EncoderConfig {
	return &EncoderConfig{
		channels:    channels,
		selection:   capture.SelectLogic(channels),
		names:       capture.LogicNames(channels),
		generator:   defaultGenerator,
		generatedAt: time.Now(),
		separator:   ',',
	}
}

// Selection returns the bit positions of the enabled logic channels, in
// channel list order.
func (c *EncoderConfig) Selection() []int {
	return c.selection
}

// SampleRate returns the configured sample rate in samples/second, or zero
// when the rate is unknown.
func (c *EncoderConfig) SampleRate() uint64 {
	return c.sampleRate
}

// EncoderOption is a functional option for configuring an encoder.
type EncoderOption = options.Option[*EncoderConfig]

// WithSampleRate sets the resolved sample rate of the capture in
// samples/second. A zero rate means the rate is unknown, which is the
// default; rate-derived header fields are then omitted or rendered as
// unknown, depending on the format.
func WithSampleRate(hz uint64) EncoderOption {
	return options.NoError(func(cfg *EncoderConfig) {
		cfg.sampleRate = hz
	})
}

// WithGenerator sets the generator identification string written to output
// headers, typically "<tool> <version>".
func WithGenerator(name string) EncoderOption {
	return options.New(func(cfg *EncoderConfig) error {
		if name == "" {
			return fmt.Errorf("empty generator string")
		}
		cfg.generator = name

		return nil
	})
}

// WithGeneratedAt sets the generation timestamp written to output headers.
// Default is the wall clock at encoder construction. Fixing the timestamp
// makes output byte-reproducible.
func WithGeneratedAt(t time.Time) EncoderOption {
	return options.NoError(func(cfg *EncoderConfig) {
		cfg.generatedAt = t
	})
}

// WithSeparator sets the field separator of CSV data rows. Default is ','.
// The gnuplot format ignores it.
func WithSeparator(sep byte) EncoderOption {
	return options.New(func(cfg *EncoderConfig) error {
		if sep == '\n' || sep == '\r' || sep == 0 {
			return fmt.Errorf("invalid separator 0x%02x", sep)
		}
		cfg.separator = sep

		return nil
	})
}
