package hybrid

import (
	"context"
	"errors"
	"math"
	"testing"
)

func stageNames(res *Result) []string {
	var names []string
	for _, st := range res.Stages() {
		names = append(names, st.Name)
	}
	return names
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestPipelineStages(t *testing.T) {
	low := noiseImage(t, 16, 12, FormatRGBA8, 1)
	high := noiseImage(t, 16, 12, FormatRGB8, 2)
	extra := noiseImage(t, 16, 12, FormatGray8, 3)

	tests := []struct {
		name    string
		src     Sources
		spectra bool
		want    []string
	}{
		{
			name: "pair",
			src:  Pair{Low: low, High: high},
			want: []string{"aa", "bb", "a", "b", "t"},
		},
		{
			name: "triple",
			src:  Triple{Low: low, High: high, Extra: extra},
			want: []string{"aa", "bb", "cc", "a", "b", "c", "t"},
		},
		{
			name:    "pair with spectra",
			src:     Pair{Low: low, High: high},
			spectra: true,
			want: []string{
				"aa", "bb", "a", "b", "t",
				"fft_aa", "fft_bb", "fft_a", "fft_b", "fft_t",
			},
		},
		{
			name:    "triple with spectra",
			src:     Triple{Low: low, High: high, Extra: extra},
			spectra: true,
			want: []string{
				"aa", "bb", "cc", "a", "b", "c", "t",
				"fft_aa", "fft_bb", "fft_cc", "fft_a", "fft_b", "fft_c", "fft_t",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPipeline(WithSpectra(tt.spectra))
			defer p.Close()

			res, err := p.Run(context.Background(), tt.src)
			if err != nil {
				t.Fatal(err)
			}
			if got := stageNames(res); !equalStrings(got, tt.want) {
				t.Errorf("stages = %v, want %v", got, tt.want)
			}
			for _, st := range res.Stages() {
				if st.Image.Width() != 16 || st.Image.Height() != 12 {
					t.Errorf("stage %s is %dx%d, want 16x12", st.Name, st.Image.Width(), st.Image.Height())
				}
			}
			if res.Hybrid() == nil || res.Hybrid().Format() != FormatRGBA8 {
				t.Errorf("Hybrid() = %v, want RGBA8", res.Hybrid())
			}
		})
	}
}

func TestPipelineSourcesAreUntouched(t *testing.T) {
	low := noiseImage(t, 8, 8, FormatRGBA8, 4)
	high := noiseImage(t, 8, 8, FormatRGBA8, 5)
	low0, high0 := low.Clone(), high.Clone()

	p := NewPipeline()
	defer p.Close()

	res, err := p.Run(context.Background(), Pair{Low: low, High: high})
	if err != nil {
		t.Fatal(err)
	}
	if !equalPix(low, low0) || !equalPix(high, high0) {
		t.Error("Run modified a source image")
	}
	if aa, _ := res.Stage(StageLowSource); aa != low {
		t.Error("source stage should be the caller's image")
	}
}

func TestPipelineMatchesOperations(t *testing.T) {
	low := noiseImage(t, 20, 14, FormatRGBA8, 6)
	high := noiseImage(t, 20, 14, FormatRGBA8, 7)
	extra := checkerImage(t, 20, 14, 3)
	params := Params{LowPass: 2.5, Sharpen: 0.7, ThirdSharpen: 0.3}

	p := NewPipeline(WithParams(params))
	defer p.Close()

	res, err := p.Run(context.Background(), Triple{Low: low, High: high, Extra: extra})
	if err != nil {
		t.Fatal(err)
	}

	a, _ := LowPass(low, params.LowPass)
	b, _ := HighPass(high, params.Sharpen, params.LowPass)
	c, _ := HighPass(extra, params.ThirdSharpen, params.LowPass)
	want, _ := Overlay3(a, b, c)

	for name, img := range map[string]*Image{"a": a, "b": b, "c": c, "t": want} {
		got, ok := res.Stage(name)
		if !ok {
			t.Fatalf("stage %s missing", name)
		}
		if !equalPix(got, img) {
			t.Errorf("stage %s differs from calling the operation directly", name)
		}
	}
}

func TestPipelineFlatPairIsBlurredLow(t *testing.T) {
	low := solidImage(t, 10, 10, 90, 40, 200, 255)
	high := solidImage(t, 10, 10, 250, 250, 250, 255)

	p := NewPipeline()
	defer p.Close()

	res, err := p.Run(context.Background(), Pair{Low: low, High: high})
	if err != nil {
		t.Fatal(err)
	}

	// A flat image has no detail, so the hybrid is just the low source.
	if !equalPix(res.Hybrid(), low) {
		r, g, b, a := res.Hybrid().At(5, 5)
		t.Errorf("hybrid pixel = %d,%d,%d,%d, want 90,40,200,255", r, g, b, a)
	}
}

func TestPipelineWorkersDeterministic(t *testing.T) {
	src := Triple{
		Low:   noiseImage(t, 67, 45, FormatRGBA8, 8),
		High:  noiseImage(t, 67, 45, FormatRGBA8, 9),
		Extra: noiseImage(t, 67, 45, FormatRGBA8, 10),
	}

	seq := NewPipeline(WithSpectra(true))
	defer seq.Close()
	par := NewPipeline(WithSpectra(true), WithWorkers(4))
	defer par.Close()

	want, err := seq.Run(context.Background(), src)
	if err != nil {
		t.Fatal(err)
	}
	got, err := par.Run(context.Background(), src)
	if err != nil {
		t.Fatal(err)
	}

	for _, st := range want.Stages() {
		img, ok := got.Stage(st.Name)
		if !ok || !equalPix(img, st.Image) {
			t.Errorf("stage %s differs between 1 and 4 workers", st.Name)
		}
	}
}

func TestPipelineClosedStillRuns(t *testing.T) {
	p := NewPipeline(WithWorkers(2))
	p.Close()

	src := Pair{
		Low:  noiseImage(t, 32, 32, FormatRGBA8, 1),
		High: noiseImage(t, 32, 32, FormatRGBA8, 2),
	}
	if _, err := p.Run(context.Background(), src); err != nil {
		t.Fatalf("Run after Close: %v", err)
	}
}

func TestPipelineErrors(t *testing.T) {
	img := solidImage(t, 4, 4, 1, 2, 3, 255)
	other := solidImage(t, 5, 5, 1, 2, 3, 255)

	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name   string
		ctx    context.Context
		params Params
		src    Sources
		want   error
	}{
		{"size mismatch pair", context.Background(), DefaultParams(), Pair{img, other}, ErrSizeMismatch},
		{"size mismatch triple", context.Background(), DefaultParams(), Triple{img, img, other}, ErrSizeMismatch},
		{"nil image", context.Background(), DefaultParams(), Pair{Low: img}, ErrNilImage},
		{"nil sources", context.Background(), DefaultParams(), nil, ErrNilImage},
		{"pair pointer", context.Background(), DefaultParams(), &Pair{img, img}, ErrInvalidSources},
		{"nil pair pointer", context.Background(), DefaultParams(), (*Pair)(nil), ErrInvalidSources},
		{"nil triple pointer", context.Background(), DefaultParams(), (*Triple)(nil), ErrInvalidSources},
		{"pointer beats bad params", context.Background(), Params{LowPass: -1}, &Triple{img, img, img}, ErrInvalidSources},
		{"bad sigma", context.Background(), Params{LowPass: -1}, Pair{img, img}, ErrInvalidRadius},
		{"bad sharpen", context.Background(), Params{LowPass: 1, Sharpen: math.NaN()}, Pair{img, img}, ErrInvalidSharpen},
		{"canceled", canceled, DefaultParams(), Pair{img, img}, context.Canceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPipeline(WithParams(tt.params))
			defer p.Close()

			res, err := p.Run(tt.ctx, tt.src)
			if !errors.Is(err, tt.want) {
				t.Errorf("Run error = %v, want %v", err, tt.want)
			}
			if res != nil {
				t.Error("Run should return a nil result on error")
			}
		})
	}
}

func BenchmarkPipelinePair(b *testing.B) {
	src := Pair{
		Low:  noiseImage(b, 256, 256, FormatRGBA8, 1),
		High: noiseImage(b, 256, 256, FormatRGBA8, 2),
	}
	p := NewPipeline(WithWorkers(0))
	defer p.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = p.Run(context.Background(), src)
	}
}
