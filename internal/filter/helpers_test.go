package filter

// Test helper functions shared across filter tests.

// solidBuffer returns a w*h buffer with every pixel set to px.
func solidBuffer(w, h int, px ...byte) []byte {
	buf := make([]byte, w*h*len(px))
	for i := 0; i < len(buf); i += len(px) {
		copy(buf[i:], px)
	}
	return buf
}

// noiseBuffer returns a deterministic pseudo-random buffer.
func noiseBuffer(w, h, channels int, seed uint32) []byte {
	buf := make([]byte, w*h*channels)
	x := seed | 1
	for i := range buf {
		// xorshift32
		x ^= x << 13
		x ^= x >> 17
		x ^= x << 5
		buf[i] = byte(x)
	}
	return buf
}

// absDiff returns |a - b| for bytes.
func absDiff(a, b byte) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

// formatFloat formats a float for benchmark names.
func formatFloat(f float64) string {
	if f == float64(int(f)) {
		return formatInt(int(f))
	}
	intPart := int(f)
	fracPart := int((f - float64(intPart)) * 100)
	if fracPart < 0 {
		fracPart = -fracPart
	}
	return formatInt(intPart) + "." + formatInt(fracPart)
}

// formatInt formats an integer without using fmt.
func formatInt(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var digits []byte
	for i > 0 {
		digits = append([]byte{byte('0' + i%10)}, digits...)
		i /= 10
	}
	if neg {
		digits = append([]byte{'-'}, digits...)
	}
	return string(digits)
}
