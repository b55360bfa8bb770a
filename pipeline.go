package hybrid

import (
	"context"
	"fmt"
	"time"

	"github.com/gogpu/hybrid/internal/filter"
	"github.com/gogpu/hybrid/internal/parallel"
)

// Pipeline builds hybrid images from a Pair or Triple of sources.
//
// The low source is low-passed, every other source is high-passed, and the
// filtered images are overlaid into the hybrid. Every intermediate image is
// kept in the Result so callers can save them.
//
// A Pipeline may be reused and is safe for concurrent use. Call Close to
// release its worker goroutines.
type Pipeline struct {
	opts  options
	pool  *parallel.Pool
	sched filter.Scheduler
}

// NewPipeline creates a pipeline with the given options.
func NewPipeline(opts ...Option) *Pipeline {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p := &Pipeline{opts: o}
	if o.workers != 1 {
		p.pool = parallel.NewPool(o.workers)
		p.sched = p.pool
	}
	return p
}

// Params returns the blend parameters the pipeline runs with.
func (p *Pipeline) Params() Params {
	return p.opts.params
}

// Close stops the pipeline's worker goroutines, if any.
// A closed pipeline still runs, on the calling goroutine.
func (p *Pipeline) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}

// Run blends src into a hybrid image.
//
// src must be a Pair or a Triple value; anything else, pointers included,
// fails with ErrInvalidSources before any filtering. All sources must share
// dimensions; ErrSizeMismatch is returned otherwise.
// ctx is checked between stages and its error is returned on cancellation.
func (p *Pipeline) Run(ctx context.Context, src Sources) (*Result, error) {
	var imgs []*Image
	switch s := src.(type) {
	case nil:
		return nil, fmt.Errorf("%w: no sources", ErrNilImage)
	case Pair:
		imgs = s.images()
	case Triple:
		imgs = s.images()
	default:
		return nil, fmt.Errorf("%w: %T", ErrInvalidSources, src)
	}

	params := p.opts.params
	if err := params.Validate(); err != nil {
		return nil, err
	}

	if err := checkSameSize(imgs...); err != nil {
		return nil, err
	}

	log := Logger()
	log.Info("hybrid: run",
		"images", len(imgs),
		"size", fmt.Sprintf("%dx%d", imgs[0].width, imgs[0].height),
		"low_pass", params.LowPass,
		"sharpen", params.Sharpen,
		"third_sharpen", params.ThirdSharpen)
	started := time.Now()

	res := newResult()
	for i, img := range imgs {
		res.add(sourceStages[i], img)
	}

	sharpenAmounts := [...]float64{0, params.Sharpen, params.ThirdSharpen}
	filtered := make([]*Image, len(imgs))
	for i, img := range imgs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		t0 := time.Now()
		var err error
		if i == 0 {
			filtered[i], err = lowPass(asRGBA(img), params.LowPass, p.sched)
		} else {
			filtered[i], err = highPass(img, sharpenAmounts[i], params.LowPass, p.sched)
		}
		if err != nil {
			return nil, fmt.Errorf("stage %s: %w", filteredStages[i], err)
		}
		res.add(filteredStages[i], filtered[i])
		log.Debug("hybrid: stage done", "stage", filteredStages[i], "elapsed", time.Since(t0))
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		out *Image
		err error
	)
	if len(filtered) == 2 {
		out, err = Overlay2(filtered[0], filtered[1])
	} else {
		out, err = Overlay3(filtered[0], filtered[1], filtered[2])
	}
	if err != nil {
		return nil, err
	}
	res.add(StageHybrid, out)

	if p.opts.spectra {
		for _, st := range res.Stages() {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			spec, err := Spectrum(st.Image)
			if err != nil {
				return nil, fmt.Errorf("spectrum of %s: %w", st.Name, err)
			}
			res.add(SpectrumPrefix+st.Name, spec)
		}
	}

	log.Info("hybrid: run done", "stages", len(res.stages), "elapsed", time.Since(started))
	return res, nil
}
