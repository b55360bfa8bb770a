package hybrid

import (
	"fmt"
	"math"
)

// Params holds the blend parameters of a pipeline run.
type Params struct {
	// LowPass is the Gaussian sigma applied to the low-frequency image.
	// The high-passed images subtract a blur of the same sigma.
	LowPass float64

	// Sharpen scales the center weight of the second image's impulse
	// kernel.
	Sharpen float64

	// ThirdSharpen scales the center weight of the third image's impulse
	// kernel. Ignored for two-image runs.
	ThirdSharpen float64
}

// DefaultParams returns the parameters used when none are given.
func DefaultParams() Params {
	return Params{
		LowPass:      DefaultLowPass,
		Sharpen:      DefaultSharpen,
		ThirdSharpen: DefaultThirdSharpen,
	}
}

// Validate checks that every parameter can be passed to the filters.
func (p Params) Validate() error {
	if err := checkRadius(p.LowPass); err != nil {
		return fmt.Errorf("low-pass: %w", err)
	}
	for _, s := range []struct {
		name string
		v    float64
	}{{"sharpen", p.Sharpen}, {"third sharpen", p.ThirdSharpen}} {
		if math.IsNaN(s.v) || math.IsInf(s.v, 0) {
			return fmt.Errorf("%s: %w: %v", s.name, ErrInvalidSharpen, s.v)
		}
	}
	return nil
}

// Option configures a Pipeline during creation.
// Use functional options to customize Pipeline behavior.
//
// Example:
//
//	// Defaults: sigma 4.5, sharpen 0.545, no spectra, one goroutine
//	p := hybrid.NewPipeline()
//
//	// Custom parameters, spectra of every stage, all CPUs
//	p := hybrid.NewPipeline(
//	    hybrid.WithLowPass(6),
//	    hybrid.WithSharpen(0.6),
//	    hybrid.WithSpectra(true),
//	    hybrid.WithWorkers(0),
//	)
type Option func(*options)

// options holds optional configuration for Pipeline creation.
type options struct {
	params  Params
	spectra bool
	workers int
}

// defaultOptions returns the default pipeline options.
func defaultOptions() options {
	return options{
		params:  DefaultParams(),
		spectra: false,
		workers: 1,
	}
}

// WithParams replaces every blend parameter. Fields left zero stay zero,
// so start from DefaultParams to change only some of them, or use
// WithLowPass, WithSharpen and WithThirdSharpen.
func WithParams(p Params) Option {
	return func(o *options) {
		o.params = p
	}
}

// WithLowPass sets the Gaussian sigma and keeps the other parameters.
func WithLowPass(sigma float64) Option {
	return func(o *options) {
		o.params.LowPass = sigma
	}
}

// WithSharpen sets the second image's sharpen amount.
func WithSharpen(amount float64) Option {
	return func(o *options) {
		o.params.Sharpen = amount
	}
}

// WithThirdSharpen sets the third image's sharpen amount.
func WithThirdSharpen(amount float64) Option {
	return func(o *options) {
		o.params.ThirdSharpen = amount
	}
}

// WithSpectra enables spectrum images for every source, every filtered
// image and the final hybrid.
func WithSpectra(enabled bool) Option {
	return func(o *options) {
		o.spectra = enabled
	}
}

// WithWorkers sets how many goroutines filter bands of rows. One (the
// default) runs everything on the calling goroutine; zero or less uses
// GOMAXPROCS. Output does not depend on the worker count.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}
