package stream

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seqlogic/bitrow/capture"
	"github.com/seqlogic/bitrow/errs"
)

func oneLogicChannel() []capture.Channel {
	return []capture.Channel{
		{Name: "CLK", Kind: capture.KindLogic, Enabled: true},
	}
}

// =============================================================================
// Construction Tests
// =============================================================================

func TestNewGnuplotEncoder(t *testing.T) {
	enc, err := NewGnuplotEncoder(oneLogicChannel())
	require.NoError(t, err)
	require.NotNil(t, enc)
	defer enc.Close()
}

func TestNewGnuplotEncoder_EmptyChannelList(t *testing.T) {
	_, err := NewGnuplotEncoder(nil)
	require.ErrorIs(t, err, errs.ErrNoChannels)
}

func TestNewGnuplotEncoder_RequiresLogicChannel(t *testing.T) {
	channels := []capture.Channel{
		{Name: "A0", Kind: capture.KindAnalog, Enabled: true},
		{Name: "D0", Kind: capture.KindLogic, Enabled: false},
	}

	_, err := NewGnuplotEncoder(channels)
	require.ErrorIs(t, err, errs.ErrNoLogicChannels)
}

func TestNewGnuplotEncoder_UnrenderablePeriod(t *testing.T) {
	_, err := NewGnuplotEncoder(oneLogicChannel(), WithSampleRate(2_000_000_000_000))
	require.ErrorIs(t, err, errs.ErrRateFormat)
}

// =============================================================================
// Header Tests
// =============================================================================

func TestGnuplotEncoder_Header(t *testing.T) {
	channels := []capture.Channel{
		{Name: "SCL", Kind: capture.KindLogic, Enabled: true},
		{Name: "A0", Kind: capture.KindAnalog, Enabled: true},
		{Name: "SDA", Kind: capture.KindLogic, Enabled: true},
	}

	enc, err := NewGnuplotEncoder(channels,
		WithSampleRate(1_000_000),
		WithGeneratedAt(testTime))
	require.NoError(t, err)
	defer enc.Close()

	out, err := enc.ProcessChunk(capture.Chunk{Data: nil, UnitSize: 1})
	require.NoError(t, err)
	header := string(out)

	want := "# Sample data in space-separated columns format usable by gnuplot\n" +
		"#\n" +
		"# Generated by: bitrow on " + testTime.Format(time.ANSIC) + "\n" +
		"# Comment: Acquisition with 2/3 channels at 1 MHz\n" +
		"# Period: 1 us\n" +
		"#\n" +
		"# Column\tChannel\n" +
		"# " + strings.Repeat("-", 77) + "\n" +
		"# 0\t\tSample counter (for internal gnuplot purposes)\n" +
		"# 1\t\tSCL\n" +
		"# 2\t\tSDA\n" +
		"\n"
	require.Equal(t, want, header)
}

func TestGnuplotEncoder_HeaderUnknownRate(t *testing.T) {
	enc, err := NewGnuplotEncoder(oneLogicChannel(), WithGeneratedAt(testTime))
	require.NoError(t, err)
	defer enc.Close()

	out, err := enc.ProcessChunk(capture.Chunk{Data: nil, UnitSize: 1})
	require.NoError(t, err)

	assert.Contains(t, string(out), "# Period: 0 s\n")
	assert.NotContains(t, string(out), "# Comment:")
}

func TestGnuplotEncoder_HeaderEmittedExactlyOnce(t *testing.T) {
	enc, err := NewGnuplotEncoder(oneLogicChannel(), WithGeneratedAt(testTime))
	require.NoError(t, err)
	defer enc.Close()

	first, err := enc.ProcessChunk(capture.Chunk{Data: []byte{0x01}, UnitSize: 1})
	require.NoError(t, err)
	second, err := enc.ProcessChunk(capture.Chunk{Data: []byte{0x00}, UnitSize: 1})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(first), "# Sample data"))
	assert.False(t, strings.Contains(string(second), "#"), "later buffers carry no header")
}

// =============================================================================
// Row and Change Filter Tests
// =============================================================================

func TestGnuplotEncoder_RepeatedSamplesSuppressed(t *testing.T) {
	// Four samples, three identical then a change: only the first and the
	// last (counter 4) appear.
	enc, err := NewGnuplotEncoder(oneLogicChannel(), WithGeneratedAt(testTime))
	require.NoError(t, err)
	defer enc.Close()

	out, err := enc.ProcessChunk(capture.Chunk{Data: []byte{0, 0, 0, 1}, UnitSize: 1})
	require.NoError(t, err)

	body := stripGnuplotHeader(string(out))
	require.Equal(t, "1\t0 \n4\t1 \n", body)
}

func TestGnuplotEncoder_IdenticalRunEmitsFirstAndLast(t *testing.T) {
	enc, err := NewGnuplotEncoder(oneLogicChannel(), WithGeneratedAt(testTime))
	require.NoError(t, err)
	defer enc.Close()

	out, err := enc.ProcessChunk(capture.Chunk{Data: []byte{1, 1, 1, 1, 1}, UnitSize: 1})
	require.NoError(t, err)

	body := stripGnuplotHeader(string(out))
	require.Equal(t, "1\t1 \n5\t1 \n", body)
}

func TestGnuplotEncoder_SingleSample(t *testing.T) {
	enc, err := NewGnuplotEncoder(oneLogicChannel(), WithGeneratedAt(testTime))
	require.NoError(t, err)
	defer enc.Close()

	out, err := enc.ProcessChunk(capture.Chunk{Data: []byte{1}, UnitSize: 1})
	require.NoError(t, err)

	body := stripGnuplotHeader(string(out))
	require.Equal(t, "1\t1 \n", body)
}

func TestGnuplotEncoder_TrailingSpaceBeforeNewline(t *testing.T) {
	channels := []capture.Channel{
		{Name: "A", Kind: capture.KindLogic, Enabled: true},
		{Name: "B", Kind: capture.KindLogic, Enabled: true},
	}
	enc, err := NewGnuplotEncoder(channels, WithGeneratedAt(testTime))
	require.NoError(t, err)
	defer enc.Close()

	out, err := enc.ProcessChunk(capture.Chunk{Data: []byte{0b10}, UnitSize: 1})
	require.NoError(t, err)

	body := stripGnuplotHeader(string(out))
	require.Equal(t, "1\t0 1 \n", body)
}

func TestGnuplotEncoder_CounterPersistsAcrossChunks(t *testing.T) {
	enc, err := NewGnuplotEncoder(oneLogicChannel(), WithGeneratedAt(testTime))
	require.NoError(t, err)
	defer enc.Close()

	first, err := enc.ProcessChunk(capture.Chunk{Data: []byte{0, 1}, UnitSize: 1})
	require.NoError(t, err)
	second, err := enc.ProcessChunk(capture.Chunk{Data: []byte{1, 0}, UnitSize: 1})
	require.NoError(t, err)

	require.Equal(t, "1\t0 \n2\t1 \n", stripGnuplotHeader(string(first)))

	// Chunk boundary samples are always emitted, so counter 3 appears even
	// though it repeats the previous sample.
	require.Equal(t, "3\t1 \n4\t0 \n", string(second))
}

func TestGnuplotEncoder_SuppressedSamplesAdvanceCounter(t *testing.T) {
	enc, err := NewGnuplotEncoder(oneLogicChannel(), WithGeneratedAt(testTime))
	require.NoError(t, err)
	defer enc.Close()

	out, err := enc.ProcessChunk(capture.Chunk{Data: []byte{0, 0, 0, 0, 1, 1, 0}, UnitSize: 1})
	require.NoError(t, err)

	body := stripGnuplotHeader(string(out))
	require.Equal(t, "1\t0 \n5\t1 \n7\t0 \n", body)
}

func TestGnuplotEncoder_ComparesWholeRawUnit(t *testing.T) {
	// Only bit 0 is selected, but the change filter compares the entire
	// raw unit: a change confined to the unselected bit 1 still emits.
	channels := []capture.Channel{
		{Name: "D0", Kind: capture.KindLogic, Enabled: true},
		{Name: "D1", Kind: capture.KindLogic, Enabled: false},
	}
	enc, err := NewGnuplotEncoder(channels, WithGeneratedAt(testTime))
	require.NoError(t, err)
	defer enc.Close()

	out, err := enc.ProcessChunk(capture.Chunk{Data: []byte{0b00, 0b10, 0b10, 0b00}, UnitSize: 1})
	require.NoError(t, err)

	body := stripGnuplotHeader(string(out))
	require.Equal(t, "1\t0 \n2\t0 \n4\t0 \n", body)
}

// =============================================================================
// Contract and State Tests
// =============================================================================

func TestGnuplotEncoder_UnitSizeChange(t *testing.T) {
	enc, err := NewGnuplotEncoder(oneLogicChannel(), WithGeneratedAt(testTime))
	require.NoError(t, err)
	defer enc.Close()

	_, err = enc.ProcessChunk(capture.Chunk{Data: []byte{0x00}, UnitSize: 1})
	require.NoError(t, err)

	_, err = enc.ProcessChunk(capture.Chunk{Data: []byte{0x00, 0x00}, UnitSize: 2})
	require.ErrorIs(t, err, errs.ErrUnitSizeChanged)
}

func TestGnuplotEncoder_Close(t *testing.T) {
	enc, err := NewGnuplotEncoder(oneLogicChannel(), WithGeneratedAt(testTime))
	require.NoError(t, err)

	_, err = enc.ProcessChunk(capture.Chunk{Data: []byte{0x01}, UnitSize: 1})
	require.NoError(t, err)

	require.NoError(t, enc.Close())
	require.NoError(t, enc.Close(), "Close must be idempotent")
	require.Nil(t, enc.prevUnit, "Close must release previous-unit memory")

	_, err = enc.ProcessChunk(capture.Chunk{Data: []byte{0x01}, UnitSize: 1})
	require.ErrorIs(t, err, errs.ErrEncoderClosed)
}

func TestGnuplotEncoder_Deterministic(t *testing.T) {
	chunks := []capture.Chunk{
		{Data: []byte{0, 1, 1, 0}, UnitSize: 1},
		{Data: []byte{0, 0}, UnitSize: 1},
	}

	run := func() string {
		enc, err := NewGnuplotEncoder(oneLogicChannel(),
			WithSampleRate(1_000_000),
			WithGeneratedAt(testTime))
		require.NoError(t, err)
		defer enc.Close()

		var sb strings.Builder
		for _, chunk := range chunks {
			out, err := enc.ProcessChunk(chunk)
			require.NoError(t, err)
			sb.Write(out)
		}

		return sb.String()
	}

	require.Equal(t, run(), run())
}

// stripGnuplotHeader removes the "# "-prefixed header lines and the blank
// line terminating the header block.
func stripGnuplotHeader(out string) string {
	lines := strings.SplitAfter(out, "\n")
	var body strings.Builder
	for _, line := range lines {
		if strings.HasPrefix(line, "#") || line == "\n" {
			continue
		}
		body.WriteString(line)
	}

	return body.String()
}
