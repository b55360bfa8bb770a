// Package imageio reads source images from disk and writes pipeline stages
// back out.
//
// Decoding sniffs the content, so a file's extension does not matter on
// input. PNG, JPEG, GIF, BMP, TIFF and WebP are recognized. Encoding picks
// the format from the extension: PNG or JPEG.
package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/gogpu/hybrid"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when an output extension has no
	// encoder.
	ErrUnsupportedFormat = errors.New("imageio: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("imageio: empty data")
)

// JPEGQuality is the quality used when saving .jpg and .jpeg files.
const JPEGQuality = 90

// Load decodes the image at path.
func Load(path string) (*hybrid.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("imageio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// LoadBytes decodes an image held in memory.
func LoadBytes(data []byte) (*hybrid.Image, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes an image from r, detecting the format from its content.
func Decode(r io.Reader) (*hybrid.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode: %w", err)
	}

	out, err := hybrid.FromStd(img)
	if err != nil {
		return nil, fmt.Errorf("imageio: convert: %w", err)
	}
	return out, nil
}

// Save encodes img to path in the format named by its extension.
//
// Nothing is created when the extension is not supported.
func Save(path string, img *hybrid.Image) error {
	ext := filepath.Ext(path)
	if err := CheckExt(ext); err != nil {
		return err
	}
	if img == nil {
		return hybrid.ErrNilImage
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}

	if err := Encode(f, img, ext); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// Encode writes img to w as ext, which is "png", "jpg" or "jpeg" with or
// without the leading dot.
func Encode(w io.Writer, img *hybrid.Image, ext string) error {
	if img == nil {
		return hybrid.ErrNilImage
	}

	switch strings.TrimPrefix(strings.ToLower(ext), ".") {
	case "png":
		if err := png.Encode(w, img.Std()); err != nil {
			return fmt.Errorf("imageio: encode PNG: %w", err)
		}
	case "jpg", "jpeg":
		if err := jpeg.Encode(w, img.Std(), &jpeg.Options{Quality: JPEGQuality}); err != nil {
			return fmt.Errorf("imageio: encode JPEG: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return nil
}

// CheckExt reports whether ext ("png", ".jpg", ...) can be encoded.
func CheckExt(ext string) error {
	switch strings.TrimPrefix(strings.ToLower(ext), ".") {
	case "png", "jpg", "jpeg":
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}
