package blend

// Span kernels operate on RGBA rows (4 bytes per pixel). Color channels are
// combined with saturating arithmetic and alpha is always written as 255.
// All slices must hold at least len(dst) bytes; dst may alias an input.

// AddSpan writes a + b for every pixel of dst.
func AddSpan(dst, a, b []byte) {
	n := len(dst) &^ 3
	a = a[:n]
	b = b[:n]
	for i := 0; i < n; i += 4 {
		dst[i+0] = addClamp255(a[i+0], b[i+0])
		dst[i+1] = addClamp255(a[i+1], b[i+1])
		dst[i+2] = addClamp255(a[i+2], b[i+2])
		dst[i+3] = 255
	}
}

// AddSpan3 writes (a + b) + c for every pixel of dst, clamping after each
// addition.
func AddSpan3(dst, a, b, c []byte) {
	n := len(dst) &^ 3
	a = a[:n]
	b = b[:n]
	c = c[:n]
	for i := 0; i < n; i += 4 {
		dst[i+0] = addClamp255(addClamp255(a[i+0], b[i+0]), c[i+0])
		dst[i+1] = addClamp255(addClamp255(a[i+1], b[i+1]), c[i+1])
		dst[i+2] = addClamp255(addClamp255(a[i+2], b[i+2]), c[i+2])
		dst[i+3] = 255
	}
}

// SubSpan writes a - b for every pixel of dst.
func SubSpan(dst, a, b []byte) {
	n := len(dst) &^ 3
	a = a[:n]
	b = b[:n]
	for i := 0; i < n; i += 4 {
		dst[i+0] = subClamp255(a[i+0], b[i+0])
		dst[i+1] = subClamp255(a[i+1], b[i+1])
		dst[i+2] = subClamp255(a[i+2], b[i+2])
		dst[i+3] = 255
	}
}
