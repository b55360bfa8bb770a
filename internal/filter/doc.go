// Package filter implements the spatial filters behind the hybrid pipeline.
//
// This package contains:
//   - Gaussian blur (separable, horizontal pass then vertical pass)
//   - 3x3 convolution for the sharpen / Laplacian impulse filter
//
// Filters work on flat 8-bit buffers with 1, 3 or 4 interleaved channels
// and treat every channel identically, alpha included. Edges are handled
// by replicating the border pixel.
//
// Both filters accept an optional Scheduler that may run bands of rows
// concurrently. Each output row is computed the same way regardless of
// which band it lands in, so scheduled and sequential results are
// byte-identical.
package filter
