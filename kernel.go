package hybrid

// Kernel is a 3x3 convolution kernel laid out row by row.
type Kernel [9]float32

// identityMinusLaplacian is the sharpen template: the identity kernel minus
// the 4-neighbor Laplacian.
var identityMinusLaplacian = Kernel{
	0, -1, 0,
	-1, 5, -1,
	0, -1, 0,
}

// MakeKernel returns the identity-minus-Laplacian kernel with its center
// weight scaled by amount. Edge weights stay -1 and corners stay 0.
//
// An amount of 1 gives the unmodified sharpen kernel. An amount of 0 gives
// the pure negative-Laplacian edge kernel.
func MakeKernel(amount float64) Kernel {
	k := identityMinusLaplacian
	k[4] *= float32(amount)
	return k
}

// Sum returns the sum of the kernel weights.
func (k Kernel) Sum() float32 {
	var s float32
	for _, w := range k {
		s += w
	}
	return s
}
