package rate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seqlogic/bitrow/errs"
)

func TestFrequency(t *testing.T) {
	tests := []struct {
		hz   uint64
		want string
	}{
		{1, "1 Hz"},
		{999, "999 Hz"},
		{1_000, "1 kHz"},
		{44_100, "44100 Hz"},
		{200_000, "200 kHz"},
		{1_000_000, "1 MHz"},
		{1_500_000, "1500 kHz"},
		{2_000_000_000, "2 GHz"},
		{2_500_000_000, "2500 MHz"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, err := Frequency(tt.hz)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestFrequency_ZeroRate(t *testing.T) {
	_, err := Frequency(0)
	require.ErrorIs(t, err, errs.ErrRateFormat)
}

func TestPeriod(t *testing.T) {
	tests := []struct {
		hz   uint64
		want string
	}{
		{0, "0 s"}, // unknown rate
		{1, "1 s"},
		{2, "500 ms"},
		{500, "2 ms"},
		{1_000, "1 ms"},
		{1_000_000, "1 us"},
		{4_000_000, "250 ns"},
		{1_000_000_000, "1 ns"},
		{2_000_000_000, "500 ps"},
		{3, "333.333 ms"},
		{44_100, "22.676 us"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, err := Period(tt.hz)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestPeriod_SubPicosecond(t *testing.T) {
	_, err := Period(2_000_000_000_000)
	require.ErrorIs(t, err, errs.ErrRateFormat)
}
