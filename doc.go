// Package hybrid builds hybrid images: composites that show one image up
// close and another from far away.
//
// # Overview
//
// A hybrid image keeps the low spatial frequencies of one source and the high
// frequencies of another (optionally a third). Up close the eye picks up the
// fine detail; from a distance only the coarse structure survives.
//
// # Quick Start
//
//	p := hybrid.NewPipeline()
//	defer p.Close()
//
//	res, err := p.Run(ctx, hybrid.Pair{Low: far, High: near})
//	if err != nil {
//	    return err
//	}
//	out := res.Hybrid()
//
// # Operations
//
// The pipeline is built from five operations that can also be called
// directly:
//   - LowPass: separable Gaussian blur
//   - HighPass: 3x3 sharpen minus Gaussian blur, clamped at zero
//   - Spectrum: log-magnitude 2-D FFT visualization, diagnostics only
//   - Overlay2, Overlay3: saturating per-pixel sum
//
// All arithmetic is 8-bit and saturating; nothing wraps. Every operation
// returns a new Image with the dimensions of its input.
//
// # Logging
//
// hybrid is silent by default. See SetLogger.
package hybrid

// Version is the current version of the library.
const Version = "0.1.0"
