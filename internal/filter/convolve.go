package filter

// Convolve3x3 applies a 3x3 kernel to src and writes the result to dst.
//
// The kernel is laid out row by row, k[0..2] being the row above the pixel.
// When the weights sum to a non-zero value the weighted sum is divided by
// it, so a flat region maps to itself; a zero-sum kernel is applied as is.
// Results are clamped to [0, 255]. Edges replicate the border pixel.
//
// The sum is accumulated relative to the center sample, in float64, so a
// flat region reproduces exactly even when the kernel sum is tiny.
//
// src and dst must not overlap.
func Convolve3x3(src, dst []byte, width, height, channels int, k [9]float32, s Scheduler) {
	if width*height*channels == 0 {
		return
	}

	var sum float64
	for _, w := range k {
		sum += float64(w)
	}

	runRows(s, height, func(y0, y1 int) {
		convolveRows(src, dst, width, height, channels, y0, y1, &k, sum)
	})
}

func convolveRows(src, dst []byte, width, height, channels, y0, y1 int, k *[9]float32, sum float64) {
	stride := width * channels

	for y := y0; y < y1; y++ {
		var rows [3]int
		for dy := range 3 {
			rows[dy] = clampIndex(y+dy-1, height) * stride
		}
		out := dst[y*stride : (y+1)*stride]

		for x := 0; x < width; x++ {
			var cols [3]int
			for dx := range 3 {
				cols[dx] = clampIndex(x+dx-1, width) * channels
			}
			center := y*stride + x*channels

			// acc[c] = sum of w * (p - center); exactly 0 on flat regions.
			var acc [MaxChannels]float64
			for dy := range 3 {
				for dx := range 3 {
					weight := float64(k[dy*3+dx])
					if weight == 0 {
						continue
					}
					base := rows[dy] + cols[dx]
					for c := 0; c < channels; c++ {
						acc[c] += weight * (float64(src[base+c]) - float64(src[center+c]))
					}
				}
			}

			col := x * channels
			for c := 0; c < channels; c++ {
				pc := float64(src[center+c])
				v := acc[c] // zero-sum: sum of w*p == acc
				if sum != 0 {
					v = pc + acc[c]/sum
				}
				out[col+c] = clampUint8(float32(v))
			}
		}
	}
}
