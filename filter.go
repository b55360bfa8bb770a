package hybrid

import (
	"fmt"
	"math"

	"github.com/gogpu/hybrid/internal/blend"
	"github.com/gogpu/hybrid/internal/filter"
)

// Default blend parameters.
const (
	// DefaultLowPass is the Gaussian sigma applied to the low-frequency
	// image, and the blur subtracted when high-passing the others.
	DefaultLowPass = 4.5

	// DefaultSharpen is the center-weight scale for the second image.
	DefaultSharpen = 0.545

	// DefaultThirdSharpen is the center-weight scale for the optional third
	// image. Zero turns the impulse step into a pure edge detector.
	DefaultThirdSharpen = 0.0

	// MaxRadius is the largest accepted blur sigma. The kernel grows as
	// 6*sigma+1 taps.
	MaxRadius = 1024.0
)

// LowPass blurs every channel of img, alpha included, with a Gaussian of
// standard deviation sigma. Edges replicate the border pixel.
//
// The result has the same dimensions and format as img. A sigma of 0
// returns an exact copy.
func LowPass(img *Image, sigma float64) (*Image, error) {
	return lowPass(img, sigma, nil)
}

func lowPass(img *Image, sigma float64, s filter.Scheduler) (*Image, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	if err := checkRadius(sigma); err != nil {
		return nil, err
	}

	out := newImageLike(img, img.format)
	filter.Blur(img.pix, out.pix, img.width, img.height, img.Channels(), sigma, s)
	return out, nil
}

// Sharpen applies the 3x3 kernel k to every channel of img ("impulse"
// filter). When the kernel weights sum to a non-zero value the response is
// divided by that sum, so flat regions keep their value; a zero-sum kernel
// is applied unnormalized. Edges replicate the border pixel.
//
// The result has the same dimensions and format as img.
func Sharpen(img *Image, k Kernel) (*Image, error) {
	return sharpen(img, k, nil)
}

func sharpen(img *Image, k Kernel, s filter.Scheduler) (*Image, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	for _, w := range k {
		if math.IsNaN(float64(w)) || math.IsInf(float64(w), 0) {
			return nil, fmt.Errorf("%w: kernel weight %v", ErrInvalidSharpen, w)
		}
	}

	out := newImageLike(img, img.format)
	filter.Convolve3x3(img.pix, out.pix, img.width, img.height, img.Channels(), k, s)
	return out, nil
}

// HighPass isolates the fine detail of img.
//
// It computes Sharpen(img, MakeKernel(sharpenAmount)) and
// LowPass(img, lowPassAmount) on the RGBA form of img, then subtracts the
// blurred copy from the sharpened one per color channel, clamping at 0.
// Alpha is always 255. The result is FormatRGBA8.
//
// A flat image has no detail and yields opaque black.
func HighPass(img *Image, sharpenAmount, lowPassAmount float64) (*Image, error) {
	return highPass(img, sharpenAmount, lowPassAmount, nil)
}

func highPass(img *Image, sharpenAmount, lowPassAmount float64, s filter.Scheduler) (*Image, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	if math.IsNaN(sharpenAmount) || math.IsInf(sharpenAmount, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSharpen, sharpenAmount)
	}
	if err := checkRadius(lowPassAmount); err != nil {
		return nil, err
	}

	rgba := asRGBA(img)

	k := MakeKernel(sharpenAmount)
	if k.Sum() == 0 {
		Logger().Debug("hybrid: zero-sum sharpen kernel applied unnormalized",
			"amount", sharpenAmount)
	}

	impulse, err := sharpen(rgba, k, s)
	if err != nil {
		return nil, err
	}
	low, err := lowPass(rgba, lowPassAmount, s)
	if err != nil {
		return nil, err
	}

	blend.SubSpan(impulse.pix, impulse.pix, low.pix)
	return impulse, nil
}

// checkRadius validates a blur sigma.
func checkRadius(sigma float64) error {
	if math.IsNaN(sigma) || sigma < 0 || sigma > MaxRadius {
		return fmt.Errorf("%w: %v (want 0..%v)", ErrInvalidRadius, sigma, MaxRadius)
	}
	return nil
}

// asRGBA returns img when it is already RGBA, or an RGBA copy. The result
// must be treated as read-only.
func asRGBA(img *Image) *Image {
	if img.format == FormatRGBA8 {
		return img
	}
	return img.ToRGBA()
}
