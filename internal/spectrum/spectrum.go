// Package spectrum renders the 2-D Fourier spectrum of a grayscale image as
// a log-magnitude grayscale image.
//
// The transform covers the exact width x height grid, with no windowing and
// no padding. Coefficients stay in their natural FFT order, so the DC term
// lands at (0, 0).
package spectrum

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// LogMagnitude transforms an 8-bit grayscale buffer of width*height samples
// and returns the normalized log-magnitude of every coefficient, one byte
// per coefficient in the same layout.
func LogMagnitude(gray []byte, width, height int) []byte {
	if width <= 0 || height <= 0 {
		return nil
	}

	rows := make([][]float64, height)
	for y := range rows {
		src := gray[y*width : (y+1)*width]
		row := make([]float64, width)
		for x, v := range src {
			row[x] = float64(v) / 255
		}
		rows[y] = row
	}

	coeffs := fft.FFT2Real(rows)

	logs := make([]float64, width*height)
	for y, row := range coeffs {
		out := logs[y*width : (y+1)*width]
		for x, c := range row {
			// ln(0) = -Inf; Normalize maps it to 0.
			out[x] = math.Log(cmplx.Abs(c))
		}
	}

	return Normalize(logs)
}

// Normalize scales log-magnitudes into [0, 255].
//
// Each value is divided by the largest finite value (floored at zero),
// multiplied by 255 and truncated. Negative, NaN and infinite values map to
// 0. When no value is positive the result is all zero.
func Normalize(logs []float64) []byte {
	out := make([]byte, len(logs))

	peak := 0.0
	for _, v := range logs {
		if v > peak && !math.IsInf(v, 1) {
			peak = v
		}
	}
	if peak == 0 {
		return out
	}

	for i, v := range logs {
		s := v / peak * 255
		switch {
		case !(s > 0): // negative, -Inf, NaN
		case s >= 255:
			out[i] = 255
		default:
			out[i] = byte(s)
		}
	}
	return out
}
