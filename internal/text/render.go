// Package text rasterizes short messages into seed images for the
// pipeline's text mode.
//
// Measurement goes through a HarfBuzz shaper so kerning and ligatures are
// accounted for; drawing uses an x/image font face.
package text

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"sync"
	"unicode/utf8"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/hybrid"
)

// Seed canvas layout.
const (
	// CanvasHeight is the height of every seed image.
	CanvasHeight = 200

	// OriginX and OriginY place the top-left corner of the text.
	OriginX = 20
	OriginY = 35

	// Size is the font size in pixels per em.
	Size = 150

	// pixelsPerChar is the canvas width reserved per character.
	pixelsPerChar = 400 / 4
)

// Message colors, in source order: low, high, extra.
var Colors = [3]color.RGBA{
	{R: 255, A: 255},
	{G: 255, A: 255},
	{B: 255, A: 255},
}

// ErrEmptyMessage is returned when asked to draw an empty string.
var ErrEmptyMessage = errors.New("text: empty message")

// Options controls a single Render call.
type Options struct {
	Width, Height int

	// X and Y are the top-left corner of the text box. The baseline sits
	// one ascent below Y.
	X, Y int

	Size  float64
	Color color.RGBA
}

// SeedOptions returns the layout used for seed images: a canvas wide enough
// for the longest of msgs, height 200, origin (20, 35) and size 150.
// The color is left zero.
func SeedOptions(msgs ...string) Options {
	return Options{
		Width:  CanvasWidth(msgs...),
		Height: CanvasHeight,
		X:      OriginX,
		Y:      OriginY,
		Size:   Size,
	}
}

// CanvasWidth returns the seed canvas width for msgs: 100 pixels per
// character of the longest message.
func CanvasWidth(msgs ...string) int {
	longest := 0
	for _, m := range msgs {
		longest = max(longest, utf8.RuneCountInString(m))
	}
	return longest * pixelsPerChar
}

// Renderer draws text with one font. It is safe for concurrent use.
type Renderer struct {
	face *opentype.Font
	font *gtfont.Font

	// HarfbuzzShaper keeps internal buffers and is not safe for concurrent
	// use.
	shapers sync.Pool
}

var (
	defaultOnce     sync.Once
	defaultRenderer *Renderer
	defaultErr      error
)

// Default returns a shared Renderer for the embedded Go Bold font.
func Default() (*Renderer, error) {
	defaultOnce.Do(func() {
		defaultRenderer, defaultErr = NewRenderer(gobold.TTF)
	})
	return defaultRenderer, defaultErr
}

// NewRenderer parses a TrueType or OpenType font.
func NewRenderer(data []byte) (*Renderer, error) {
	face, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	gt, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font for shaping: %w", err)
	}

	return &Renderer{
		face: face,
		font: gt.Font,
		shapers: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
	}, nil
}

// Measure returns the shaped advance of msg at size, in pixels.
func (r *Renderer) Measure(msg string, size float64) float64 {
	if msg == "" {
		return 0
	}

	runes := []rune(msg)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: direction(msg),
		Face:      gtfont.NewFace(r.font),
		Size:      fixed.Int26_6(size * 64),
		Script:    script(runes),
		Language:  lang,
	}

	hb := r.shapers.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	r.shapers.Put(hb)

	adv := out.Advance
	if adv < 0 {
		adv = -adv
	}
	return float64(adv) / 64
}

// Render draws msg onto a transparent canvas and returns it as RGBA8.
//
// Left-to-right text starts X pixels from the left edge; right-to-left
// text ends X pixels from the right edge.
//
// Glyph coverage scales every channel: a pixel covered by fraction v of a
// glyph gets color*v with alpha 255*v, so antialiased edges fade to black
// once alpha is discarded.
func (r *Renderer) Render(msg string, o Options) (*hybrid.Image, error) {
	if msg == "" {
		return nil, ErrEmptyMessage
	}
	if o.Width <= 0 || o.Height <= 0 {
		return nil, fmt.Errorf("%w: canvas %dx%d", hybrid.ErrInvalidDimensions, o.Width, o.Height)
	}

	face, err := opentype.NewFace(r.face, &opentype.FaceOptions{
		Size:    o.Size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("text: create face: %w", err)
	}
	defer func() { _ = face.Close() }()

	canvas := image.NewRGBA(image.Rect(0, 0, o.Width, o.Height))
	d := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(o.Color),
		Face: face,
	}
	d.Dot = fixed.Point26_6{
		X: startX(direction(msg), d.MeasureString(msg), o),
		Y: fixed.I(o.Y) + face.Metrics().Ascent,
	}
	d.DrawString(msg)

	// Premultiplied bytes are kept as is.
	return hybrid.FromPix(canvas.Pix, o.Width, o.Height, hybrid.FormatRGBA8)
}

// startX returns the pen start for a line of the given advance.
func startX(dir di.Direction, advance fixed.Int26_6, o Options) fixed.Int26_6 {
	if dir == di.DirectionRTL {
		return fixed.I(o.Width-o.X) - advance
	}
	return fixed.I(o.X)
}

// Layout returns SeedOptions(msgs...) widened, when needed, so that the
// shaped advance of every message fits between the left margin and the
// right edge.
func (r *Renderer) Layout(msgs ...string) Options {
	o := SeedOptions(msgs...)
	for _, m := range msgs {
		need := o.X + int(math.Ceil(r.Measure(m, o.Size)))
		if need > o.Width {
			hybrid.Logger().Debug("text: widening canvas for shaped message",
				"message", m, "width", o.Width, "shaped", need)
			o.Width = need
		}
	}
	return o
}
