package filter

import "sync"

// MaxChannels is the largest channel count the filters accept.
const MaxChannels = 4

// Blur applies a separable Gaussian blur with standard deviation sigma to
// src and writes the result to dst.
//
// src and dst hold width*height pixels of the given channel count and must
// not overlap. The two passes are:
//  1. Horizontal pass: convolve each row with the 1D kernel into a float buffer
//  2. Vertical pass: convolve each column of that buffer into dst
//
// A sigma of zero or less copies src to dst unchanged.
func Blur(src, dst []byte, width, height, channels int, sigma float64, s Scheduler) {
	n := width * height * channels
	if n == 0 {
		return
	}
	if sigma <= 0 {
		copy(dst[:n], src[:n])
		return
	}

	kernel := CachedGaussianKernel(sigma)

	temp := getTempBuffer(n)
	defer putTempBuffer(temp)

	runRows(s, height, func(y0, y1 int) {
		blurHorizontal(src, temp, width, channels, y0, y1, kernel)
	})
	runRows(s, height, func(y0, y1 int) {
		blurVertical(temp, dst, width, height, channels, y0, y1, kernel)
	})
}

// blurHorizontal convolves rows [y0, y1) of src into temp.
func blurHorizontal(src []byte, temp []float32, width, channels, y0, y1 int, kernel []float32) {
	half := len(kernel) / 2
	stride := width * channels

	for y := y0; y < y1; y++ {
		row := src[y*stride : (y+1)*stride]
		out := temp[y*stride : (y+1)*stride]

		for x := 0; x < width; x++ {
			var acc [MaxChannels]float32

			for k, weight := range kernel {
				// Clamp to row bounds (edge extension)
				kx := clampIndex(x+k-half, width) * channels
				for c := 0; c < channels; c++ {
					acc[c] += float32(row[kx+c]) * weight
				}
			}

			copy(out[x*channels:(x+1)*channels], acc[:channels])
		}
	}
}

// blurVertical convolves columns of temp into rows [y0, y1) of dst.
func blurVertical(temp []float32, dst []byte, width, height, channels, y0, y1 int, kernel []float32) {
	half := len(kernel) / 2
	stride := width * channels

	for y := y0; y < y1; y++ {
		out := dst[y*stride : (y+1)*stride]

		for x := 0; x < width; x++ {
			var acc [MaxChannels]float32
			col := x * channels

			for k, weight := range kernel {
				// Clamp to column bounds (edge extension)
				ky := clampIndex(y+k-half, height)
				base := ky*stride + col
				for c := 0; c < channels; c++ {
					acc[c] += temp[base+c] * weight
				}
			}

			for c := 0; c < channels; c++ {
				out[col+c] = clampUint8(acc[c])
			}
		}
	}
}

// floatBuffer wraps a slice for sync.Pool to avoid allocation warnings.
type floatBuffer struct {
	data []float32
}

// Temporary buffer pool for the horizontal pass.
var tempBufferPool = sync.Pool{
	New: func() interface{} {
		return &floatBuffer{data: make([]float32, 512*512*4)}
	},
}

// getTempBuffer returns a buffer with at least size elements. Every element
// is overwritten by the horizontal pass, so it is not cleared.
func getTempBuffer(size int) []float32 {
	wrapper := tempBufferPool.Get().(*floatBuffer)
	if len(wrapper.data) < size {
		tempBufferPool.Put(wrapper)
		return make([]float32, size)
	}
	return wrapper.data[:size]
}

// putTempBuffer returns a buffer to the pool.
func putTempBuffer(buf []float32) {
	// Only pool reasonably-sized buffers (64MB max)
	if cap(buf) <= 16*1024*1024 {
		tempBufferPool.Put(&floatBuffer{data: buf[:cap(buf)]})
	}
}
