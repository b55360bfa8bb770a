package hybrid

import "github.com/gogpu/hybrid/internal/spectrum"

// Spectrum returns a grayscale visualization of the frequency content of
// img.
//
// img is reduced to Rec. 709 luma, scaled to [0, 1] and transformed with a
// 2-D FFT over its exact dimensions. Each output pixel is the natural log of
// the coefficient magnitude divided by the largest log-magnitude and scaled
// to 0..255. Coefficients keep FFT order, so the DC term is pixel (0, 0).
// Zero magnitudes and logs below zero map to 0; a spectrum with no positive
// log-magnitude yields an all-zero image.
//
// The result is FormatGray8 with img's dimensions.
func Spectrum(img *Image) (*Image, error) {
	if img == nil {
		return nil, ErrNilImage
	}

	gray := img
	if img.format != FormatGray8 {
		gray = img.ToGray()
	}

	return &Image{
		pix:    spectrum.LogMagnitude(gray.pix, img.width, img.height),
		width:  img.width,
		height: img.height,
		format: FormatGray8,
	}, nil
}
