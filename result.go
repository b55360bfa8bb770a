package hybrid

// Stage names used in a Result.
const (
	StageLowSource   = "aa"
	StageHighSource  = "bb"
	StageExtraSource = "cc"
	StageLow         = "a"
	StageHigh        = "b"
	StageExtra       = "c"
	StageHybrid      = "t"

	// SpectrumPrefix is prepended to a stage name for its spectrum.
	SpectrumPrefix = "fft_"
)

var (
	sourceStages   = [...]string{StageLowSource, StageHighSource, StageExtraSource}
	filteredStages = [...]string{StageLow, StageHigh, StageExtra}
)

// Stage is a named image produced (or consumed) by a pipeline run.
type Stage struct {
	Name  string
	Image *Image
}

// Result holds every stage of a pipeline run in a fixed order: sources,
// filtered images, the hybrid, then spectra in the same order.
//
// Source stages are the caller's images, not copies.
type Result struct {
	stages []Stage
	index  map[string]int
}

func newResult() *Result {
	return &Result{index: make(map[string]int)}
}

func (r *Result) add(name string, img *Image) {
	r.index[name] = len(r.stages)
	r.stages = append(r.stages, Stage{Name: name, Image: img})
}

// Stages returns all stages in order.
func (r *Result) Stages() []Stage {
	out := make([]Stage, len(r.stages))
	copy(out, r.stages)
	return out
}

// Stage returns the image recorded under name.
func (r *Result) Stage(name string) (*Image, bool) {
	i, ok := r.index[name]
	if !ok {
		return nil, false
	}
	return r.stages[i].Image, true
}

// Hybrid returns the final composite.
func (r *Result) Hybrid() *Image {
	img, _ := r.Stage(StageHybrid)
	return img
}
