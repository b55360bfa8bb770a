package filter

// Scheduler runs fn over bands of rows covering [0, height) and returns once
// all bands are done. *parallel.Pool implements it.
type Scheduler interface {
	Rows(height int, fn func(y0, y1 int))
}

// runRows dispatches to s, or runs the whole range inline when s is nil.
func runRows(s Scheduler, height int, fn func(y0, y1 int)) {
	if s == nil {
		fn(0, height)
		return
	}
	s.Rows(height, fn)
}

// clampIndex clamps i into [0, n).
func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// clampUint8 clamps a float32 to [0, 255] and rounds to the nearest uint8.
func clampUint8(v float32) uint8 {
	if !(v > 0) { // also catches NaN
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
