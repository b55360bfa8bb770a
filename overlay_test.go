package hybrid

import (
	"errors"
	"testing"
)

func TestOverlay2Saturates(t *testing.T) {
	tests := []struct {
		name string
		a, b uint8
		want uint8
	}{
		{"sum below max", 100, 50, 150},
		{"exact max", 200, 55, 255},
		{"overflow", 200, 100, 255},
		{"both full", 255, 255, 255},
		{"zeros", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := solidImage(t, 3, 3, tt.a, tt.a, tt.a, 10)
			b := solidImage(t, 3, 3, tt.b, 0, tt.b, 20)

			out, err := Overlay2(a, b)
			if err != nil {
				t.Fatal(err)
			}
			r, g, bl, al := out.At(1, 1)
			if r != tt.want || g != tt.a || bl != tt.want || al != 255 {
				t.Errorf("pixel = %d,%d,%d,%d, want %d,%d,%d,255", r, g, bl, al, tt.want, tt.a, tt.want)
			}
		})
	}
}

func TestOverlay2Commutes(t *testing.T) {
	a := noiseImage(t, 7, 5, FormatRGBA8, 1)
	b := noiseImage(t, 7, 5, FormatRGBA8, 2)

	ab, err := Overlay2(a, b)
	if err != nil {
		t.Fatal(err)
	}
	ba, err := Overlay2(b, a)
	if err != nil {
		t.Fatal(err)
	}
	if !equalPix(ab, ba) {
		t.Error("Overlay2(a, b) != Overlay2(b, a)")
	}
}

func TestOverlay2MixedFormats(t *testing.T) {
	gray, _ := NewImage(2, 2, FormatGray8)
	for i := range gray.Pix() {
		gray.Pix()[i] = 100
	}
	rgba := solidImage(t, 2, 2, 10, 20, 200, 0)

	out, err := Overlay2(gray, rgba)
	if err != nil {
		t.Fatal(err)
	}
	if out.Format() != FormatRGBA8 {
		t.Fatalf("Format() = %v, want RGBA8", out.Format())
	}
	r, g, b, a := out.At(0, 0)
	if r != 110 || g != 120 || b != 255 || a != 255 {
		t.Errorf("pixel = %d,%d,%d,%d, want 110,120,255,255", r, g, b, a)
	}
}

func TestOverlay3MatchesNestedOverlay2(t *testing.T) {
	a := noiseImage(t, 9, 6, FormatRGBA8, 3)
	b := noiseImage(t, 9, 6, FormatRGBA8, 4)
	c := noiseImage(t, 9, 6, FormatRGB8, 5)

	got, err := Overlay3(a, b, c)
	if err != nil {
		t.Fatal(err)
	}

	ab, err := Overlay2(a, b)
	if err != nil {
		t.Fatal(err)
	}
	want, err := Overlay2(ab, c)
	if err != nil {
		t.Fatal(err)
	}

	if !equalPix(got, want) {
		t.Error("Overlay3(a, b, c) != Overlay2(Overlay2(a, b), c)")
	}
}

func TestOverlayDoesNotMutateInputs(t *testing.T) {
	a := noiseImage(t, 4, 4, FormatRGBA8, 6)
	b := noiseImage(t, 4, 4, FormatRGBA8, 7)
	a0, b0 := a.Clone(), b.Clone()

	if _, err := Overlay3(a, b, a); err != nil {
		t.Fatal(err)
	}
	if !equalPix(a, a0) || !equalPix(b, b0) {
		t.Error("Overlay3 modified an input")
	}
}

func TestOverlaySizeMismatch(t *testing.T) {
	a := solidImage(t, 4, 4, 1, 1, 1, 1)
	b := solidImage(t, 5, 5, 1, 1, 1, 1)
	c := solidImage(t, 4, 3, 1, 1, 1, 1)

	if _, err := Overlay2(a, b); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("Overlay2(4x4, 5x5) error = %v, want ErrSizeMismatch", err)
	}
	if _, err := Overlay3(a, a, c); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("Overlay3(4x4, 4x4, 4x3) error = %v, want ErrSizeMismatch", err)
	}
}

func TestOverlayNil(t *testing.T) {
	a := solidImage(t, 2, 2, 1, 1, 1, 1)

	if _, err := Overlay2(a, nil); !errors.Is(err, ErrNilImage) {
		t.Errorf("Overlay2(a, nil) error = %v, want ErrNilImage", err)
	}
	if _, err := Overlay3(nil, a, a); !errors.Is(err, ErrNilImage) {
		t.Errorf("Overlay3(nil, a, a) error = %v, want ErrNilImage", err)
	}
}
