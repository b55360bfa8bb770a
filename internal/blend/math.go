// Package blend provides saturating 8-bit channel arithmetic and the row
// kernels built on it.
//
// Every function here clamps instead of wrapping: results stay inside
// [0, max] for any input, which is what the hybrid compositors rely on to
// stay in 8-bit integer space without ever producing negative values.
package blend

// SubClamp subtracts b from a, clamping to the range [0, max].
//
// Underflow always clamps to 0. An a larger than max yields max.
func SubClamp(a, b, max uint8) uint8 {
	if a < b {
		return 0
	}
	return min(max, a-b)
}

// AddClamp adds a and b, returning max when the sum exceeds it.
// The sum is computed in uint16 so it never wraps.
func AddClamp(a, b, max uint8) uint8 {
	sum := uint16(a) + uint16(b)
	if sum > uint16(max) {
		return max
	}
	return uint8(sum)
}

// addClamp255 is AddClamp with max = 255.
func addClamp255(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}

// subClamp255 is SubClamp with max = 255.
func subClamp255(a, b byte) byte {
	if b >= a {
		return 0
	}
	return a - b
}
