// Package rate renders sample rates and their derived sample periods as
// human-readable strings for output headers.
package rate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/seqlogic/bitrow/errs"
)

const (
	kilo = 1_000
	mega = 1_000_000
	giga = 1_000_000_000
	tera = 1_000_000_000_000
)

// Frequency renders a sample rate in samples/second as a human-readable
// frequency string, e.g. "500 MHz" or "44100 Hz".
//
// The largest unit that divides the rate evenly is used; rates with no even
// representation fall back to plain Hz.
//
// Returns:
//   - string: Rendered frequency
//   - error: ErrRateFormat if hz is zero
func Frequency(hz uint64) (string, error) {
	if hz == 0 {
		return "", fmt.Errorf("%w: zero sample rate", errs.ErrRateFormat)
	}

	switch {
	case hz >= giga && hz%giga == 0:
		return strconv.FormatUint(hz/giga, 10) + " GHz", nil
	case hz >= mega && hz%mega == 0:
		return strconv.FormatUint(hz/mega, 10) + " MHz", nil
	case hz >= kilo && hz%kilo == 0:
		return strconv.FormatUint(hz/kilo, 10) + " kHz", nil
	default:
		return strconv.FormatUint(hz, 10) + " Hz", nil
	}
}

// Period renders the sample period, the reciprocal of the given sample rate,
// e.g. "2 ms" for 500 Hz.
//
// A zero rate means the rate is unknown and renders as "0 s". Periods with
// no even unit representation are rendered with three decimals in the
// largest fitting unit.
//
// Returns:
//   - string: Rendered period
//   - error: ErrRateFormat if the period is below one picosecond
func Period(hz uint64) (string, error) {
	if hz == 0 {
		return "0 s", nil
	}

	switch {
	case hz == 1:
		return "1 s", nil
	case hz <= kilo && kilo%hz == 0:
		return strconv.FormatUint(kilo/hz, 10) + " ms", nil
	case hz <= mega && mega%hz == 0:
		return strconv.FormatUint(mega/hz, 10) + " us", nil
	case hz <= giga && giga%hz == 0:
		return strconv.FormatUint(giga/hz, 10) + " ns", nil
	case hz <= tera && tera%hz == 0:
		return strconv.FormatUint(tera/hz, 10) + " ps", nil
	case hz > tera:
		return "", fmt.Errorf("%w: period of %d Hz is below 1 ps", errs.ErrRateFormat, hz)
	default:
		return fractionalPeriod(hz), nil
	}
}

// fractionalPeriod renders an uneven period with three decimals in the
// largest unit keeping the value at or above 1.
func fractionalPeriod(hz uint64) string {
	period := 1.0 / float64(hz)

	var (
		scaled float64
		unit   string
	)
	switch {
	case period >= 1e-3:
		scaled, unit = period*kilo, "ms"
	case period >= 1e-6:
		scaled, unit = period*mega, "us"
	default:
		scaled, unit = period*giga, "ns"
	}

	s := strconv.FormatFloat(scaled, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")

	return s + " " + unit
}
