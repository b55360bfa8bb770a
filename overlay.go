package hybrid

import (
	"fmt"

	"github.com/gogpu/hybrid/internal/blend"
)

// Overlay2 adds a and b pixel by pixel with saturation at 255.
//
// Both images are read as RGBA. Color channels are summed and clamped;
// alpha is always 255. The images must have identical dimensions, otherwise
// ErrSizeMismatch is returned and no pixel is read.
func Overlay2(a, b *Image) (*Image, error) {
	if err := checkSameSize(a, b); err != nil {
		return nil, err
	}

	out := newImageLike(a, FormatRGBA8)
	blend.AddSpan(out.pix, asRGBA(a).pix, asRGBA(b).pix)
	return out, nil
}

// Overlay3 adds a, b and c pixel by pixel, clamping after each addition:
// (a + b) + c. The result equals Overlay2(Overlay2(a, b), c).
//
// Alpha is always 255. All three images must have identical dimensions.
func Overlay3(a, b, c *Image) (*Image, error) {
	if err := checkSameSize(a, b, c); err != nil {
		return nil, err
	}

	out := newImageLike(a, FormatRGBA8)
	blend.AddSpan3(out.pix, asRGBA(a).pix, asRGBA(b).pix, asRGBA(c).pix)
	return out, nil
}

// checkSameSize returns an error unless every image is non-nil and matches
// the first one's dimensions.
func checkSameSize(imgs ...*Image) error {
	for i, img := range imgs {
		if img == nil {
			return fmt.Errorf("%w: argument %d", ErrNilImage, i)
		}
	}
	first := imgs[0]
	for i, img := range imgs[1:] {
		if !first.SameSize(img) {
			return fmt.Errorf("%w: image 0 is %dx%d, image %d is %dx%d",
				ErrSizeMismatch, first.width, first.height, i+1, img.width, img.height)
		}
	}
	return nil
}
