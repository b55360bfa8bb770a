package hybrid

import "fmt"

// Image is an 8-bit raster with 1, 3 or 4 interleaved channels.
//
// Pixels are stored row by row in a contiguous byte slice with no padding,
// so the stride is always Width() * Channels(). Every operation in this
// package returns a new Image and leaves its inputs untouched.
//
// Thread safety: Image is safe for concurrent read access. Writes (Set,
// Fill, or through Pix) require external synchronization.
type Image struct {
	pix    []byte
	width  int
	height int
	format Format
}

// NewImage creates a zeroed image with the given dimensions and format.
// Returns an error if dimensions are invalid or format is unknown.
func NewImage(width, height int, format Format) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}

	return &Image{
		pix:    make([]byte, format.RowBytes(width)*height),
		width:  width,
		height: height,
		format: format,
	}, nil
}

// FromPix wraps existing pixel data without copying.
// The caller must not modify pix while the Image is in use.
func FromPix(pix []byte, width, height int, format Format) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}

	required := format.RowBytes(width) * height
	if len(pix) < required {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrDataTooSmall, len(pix), required)
	}

	return &Image{
		pix:    pix[:required],
		width:  width,
		height: height,
		format: format,
	}, nil
}

// newImageLike allocates an image with m's dimensions in the given format.
func newImageLike(m *Image, format Format) *Image {
	return &Image{
		pix:    make([]byte, format.RowBytes(m.width)*m.height),
		width:  m.width,
		height: m.height,
		format: format,
	}
}

// Clone creates a deep copy of the image.
func (m *Image) Clone() *Image {
	pix := make([]byte, len(m.pix))
	copy(pix, m.pix)

	return &Image{
		pix:    pix,
		width:  m.width,
		height: m.height,
		format: m.format,
	}
}

// Width returns the image width in pixels.
func (m *Image) Width() int {
	return m.width
}

// Height returns the image height in pixels.
func (m *Image) Height() int {
	return m.height
}

// Format returns the pixel format.
func (m *Image) Format() Format {
	return m.format
}

// Channels returns the number of channels per pixel.
func (m *Image) Channels() int {
	return m.format.Channels()
}

// Stride returns the number of bytes per row.
func (m *Image) Stride() int {
	return m.format.RowBytes(m.width)
}

// Pix returns the raw pixel data.
func (m *Image) Pix() []byte {
	return m.pix
}

// Row returns the pixel data for row y, or nil if y is out of bounds.
func (m *Image) Row(y int) []byte {
	if y < 0 || y >= m.height {
		return nil
	}
	stride := m.Stride()
	return m.pix[y*stride : (y+1)*stride]
}

// SameSize reports whether m and o have identical width and height.
func (m *Image) SameSize(o *Image) bool {
	return m.width == o.width && m.height == o.height
}

// String returns a short description such as "RGBA8 640x480".
func (m *Image) String() string {
	return fmt.Sprintf("%s %dx%d", m.format, m.width, m.height)
}

// PixelOffset returns the byte offset of pixel (x, y) in the data slice.
// Returns -1 if coordinates are out of bounds.
func (m *Image) PixelOffset(x, y int) int {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return -1
	}
	return (y*m.width + x) * m.format.Channels()
}

// At returns the color at (x, y) as (r, g, b, a).
// For grayscale, r=g=b=gray. Formats without alpha report a=255.
// Returns (0,0,0,0) if coordinates are out of bounds.
func (m *Image) At(x, y int) (r, g, b, a uint8) {
	off := m.PixelOffset(x, y)
	if off < 0 {
		return 0, 0, 0, 0
	}

	p := m.pix[off:]
	switch m.format {
	case FormatGray8:
		return p[0], p[0], p[0], 255
	case FormatRGB8:
		return p[0], p[1], p[2], 255
	default:
		return p[0], p[1], p[2], p[3]
	}
}

// Set sets the color at (x, y). Grayscale images store the luma of
// (r, g, b); formats without alpha drop a.
// Returns ErrOutOfBounds if coordinates are outside image bounds.
func (m *Image) Set(x, y int, r, g, b, a uint8) error {
	off := m.PixelOffset(x, y)
	if off < 0 {
		return ErrOutOfBounds
	}

	p := m.pix[off:]
	switch m.format {
	case FormatGray8:
		p[0] = luma(r, g, b)
	case FormatRGB8:
		p[0], p[1], p[2] = r, g, b
	default:
		p[0], p[1], p[2], p[3] = r, g, b, a
	}
	return nil
}

// Fill sets every pixel to the given color.
func (m *Image) Fill(r, g, b, a uint8) {
	var px [4]byte
	switch m.format {
	case FormatGray8:
		px[0] = luma(r, g, b)
	default:
		px = [4]byte{r, g, b, a}
	}

	n := m.format.Channels()
	for i := 0; i < len(m.pix); i += n {
		copy(m.pix[i:i+n], px[:n])
	}
}

// ToRGBA returns a copy of the image in FormatRGBA8.
// Grayscale expands to r=g=b; missing alpha becomes 255.
func (m *Image) ToRGBA() *Image {
	out := newImageLike(m, FormatRGBA8)
	dst := out.pix

	switch m.format {
	case FormatGray8:
		for i, v := range m.pix {
			j := i * 4
			dst[j+0], dst[j+1], dst[j+2], dst[j+3] = v, v, v, 255
		}
	case FormatRGB8:
		for i, j := 0, 0; i < len(m.pix); i, j = i+3, j+4 {
			dst[j+0], dst[j+1], dst[j+2], dst[j+3] = m.pix[i], m.pix[i+1], m.pix[i+2], 255
		}
	default:
		copy(dst, m.pix)
	}
	return out
}

// ToGray returns a copy of the image in FormatGray8, using Rec. 709 luma
// weights. Alpha is ignored.
func (m *Image) ToGray() *Image {
	out := newImageLike(m, FormatGray8)

	n := m.format.Channels()
	if n == 1 {
		copy(out.pix, m.pix)
		return out
	}
	for i, j := 0, 0; i < len(m.pix); i, j = i+n, j+1 {
		out.pix[j] = luma(m.pix[i], m.pix[i+1], m.pix[i+2])
	}
	return out
}

// luma computes Rec. 709 luminance: 0.2126 R + 0.7152 G + 0.0722 B,
// truncated toward zero.
func luma(r, g, b uint8) uint8 {
	return uint8((2126*uint32(r) + 7152*uint32(g) + 722*uint32(b)) / 10000)
}
