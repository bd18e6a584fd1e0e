// Package sample extracts per-channel bit values from packed sample units.
//
// A unit packs one bit per channel of the capture device, least significant
// bit first: bit position idx lives in byte idx/8 at bit offset idx%8.
package sample

// Bit returns bit position idx of the packed unit, either 0 or 1.
//
// The caller guarantees idx is addressable within the unit; use Fits to
// validate a selection once per stream.
func Bit(unit []byte, idx int) byte {
	return (unit[idx>>3] >> (idx & 7)) & 1
}

// Fits reports whether every bit position in selection is addressable
// within a unit of unitSize bytes.
func Fits(selection []int, unitSize int) bool {
	for _, idx := range selection {
		if idx < 0 || idx>>3 >= unitSize {
			return false
		}
	}

	return true
}
