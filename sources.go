package hybrid

// Sources is the set of images a pipeline run blends. It is either a Pair
// or a Triple; the variant is fixed for the whole run.
type Sources interface {
	// images returns the sources in blend order: low first.
	images() []*Image
}

// Pair blends the low frequencies of Low with the high frequencies of High.
type Pair struct {
	Low  *Image
	High *Image
}

func (p Pair) images() []*Image { return []*Image{p.Low, p.High} }

// Triple adds the high frequencies of a third image, Extra, to a Pair.
type Triple struct {
	Low   *Image
	High  *Image
	Extra *Image
}

func (t Triple) images() []*Image { return []*Image{t.Low, t.High, t.Extra} }
