package hybrid

// Format represents a pixel storage format.
type Format uint8

const (
	// FormatGray8 is 8-bit grayscale (1 byte per pixel).
	FormatGray8 Format = iota

	// FormatRGB8 is 24-bit RGB (3 bytes per pixel, no alpha).
	FormatRGB8

	// FormatRGBA8 is 32-bit non-premultiplied RGBA (4 bytes per pixel).
	// Every compositing step works in this format.
	FormatRGBA8

	// formatCount is the number of formats (for internal use).
	formatCount
)

// formatChannels maps each format to its channel count.
var formatChannels = [formatCount]int{
	FormatGray8: 1,
	FormatRGB8:  3,
	FormatRGBA8: 4,
}

// Channels returns the number of channels per pixel, or 0 for an unknown
// format.
func (f Format) Channels() int {
	if f >= formatCount {
		return 0
	}
	return formatChannels[f]
}

// HasAlpha returns true if this format has an alpha channel.
func (f Format) HasAlpha() bool {
	return f == FormatRGBA8
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// RowBytes calculates the number of bytes needed for a row of the given width.
func (f Format) RowBytes(width int) int {
	return width * f.Channels()
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatGray8:
		return "Gray8"
	case FormatRGB8:
		return "RGB8"
	case FormatRGBA8:
		return "RGBA8"
	default:
		return "Unknown"
	}
}

// FormatForChannels returns the format with the given channel count.
func FormatForChannels(channels int) (Format, bool) {
	switch channels {
	case 1:
		return FormatGray8, true
	case 3:
		return FormatRGB8, true
	case 4:
		return FormatRGBA8, true
	default:
		return 0, false
	}
}
