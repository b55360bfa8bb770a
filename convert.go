package hybrid

import (
	"image"

	"golang.org/x/image/draw"
)

// FromStd converts a standard library image.
//
// *image.Gray keeps one channel and *image.NRGBA is copied as is. Every
// other image type is drawn onto an NRGBA canvas, which un-premultiplies
// alpha, and becomes FormatRGBA8.
func FromStd(img image.Image) (*Image, error) {
	if img == nil {
		return nil, ErrNilImage
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	switch src := img.(type) {
	case *image.Gray:
		out, err := NewImage(width, height, FormatGray8)
		if err != nil {
			return nil, err
		}
		copyRows(out, src.Pix, src.Stride)
		return out, nil

	case *image.NRGBA:
		out, err := NewImage(width, height, FormatRGBA8)
		if err != nil {
			return nil, err
		}
		copyRows(out, src.Pix, src.Stride)
		return out, nil
	}

	out, err := NewImage(width, height, FormatRGBA8)
	if err != nil {
		return nil, err
	}
	canvas := &image.NRGBA{
		Pix:    out.pix,
		Stride: out.Stride(),
		Rect:   image.Rect(0, 0, width, height),
	}
	draw.Draw(canvas, canvas.Rect, img, bounds.Min, draw.Src)
	return out, nil
}

// copyRows copies rows of a strided buffer into m.
func copyRows(m *Image, pix []byte, stride int) {
	rowBytes := m.Stride()
	if stride == rowBytes {
		copy(m.pix, pix)
		return
	}
	for y := range m.height {
		copy(m.Row(y), pix[y*stride:y*stride+rowBytes])
	}
}

// Std returns the image as a standard library image sharing no memory with
// m: *image.Gray for FormatGray8, *image.NRGBA otherwise.
func (m *Image) Std() image.Image {
	rect := image.Rect(0, 0, m.width, m.height)

	if m.format == FormatGray8 {
		gray := image.NewGray(rect)
		copy(gray.Pix, m.pix)
		return gray
	}

	nrgba := image.NewNRGBA(rect)
	copy(nrgba.Pix, m.ToRGBA().pix)
	return nrgba
}
