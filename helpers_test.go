package hybrid

import "testing"

// Test helper functions shared across hybrid tests.

// solidImage returns an RGBA image filled with one color.
func solidImage(t testing.TB, w, h int, r, g, b, a uint8) *Image {
	t.Helper()
	img, err := NewImage(w, h, FormatRGBA8)
	if err != nil {
		t.Fatalf("NewImage(%d, %d): %v", w, h, err)
	}
	img.Fill(r, g, b, a)
	return img
}

// noiseImage returns a deterministic pseudo-random image.
func noiseImage(t testing.TB, w, h int, format Format, seed uint32) *Image {
	t.Helper()
	img, err := NewImage(w, h, format)
	if err != nil {
		t.Fatalf("NewImage(%d, %d): %v", w, h, err)
	}
	x := seed | 1
	for i := range img.pix {
		x ^= x << 13
		x ^= x >> 17
		x ^= x << 5
		img.pix[i] = byte(x)
	}
	return img
}

// checkerImage returns an RGBA checkerboard with cells of the given size.
func checkerImage(t testing.TB, w, h, cell int) *Image {
	t.Helper()
	img := solidImage(t, w, h, 0, 0, 0, 255)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x/cell+y/cell)%2 == 0 {
				_ = img.Set(x, y, 255, 255, 255, 255)
			}
		}
	}
	return img
}

// equalPix reports whether two images have identical size, format and bytes.
func equalPix(a, b *Image) bool {
	if a.width != b.width || a.height != b.height || a.format != b.format {
		return false
	}
	for i := range a.pix {
		if a.pix[i] != b.pix[i] {
			return false
		}
	}
	return true
}
