package hybrid

import "errors"

// Common errors for hybrid operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("hybrid: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("hybrid: invalid format")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("hybrid: data buffer too small")

	// ErrOutOfBounds is returned when pixel coordinates are outside image bounds.
	ErrOutOfBounds = errors.New("hybrid: coordinates out of bounds")

	// ErrNilImage is returned when an operation receives a nil image.
	ErrNilImage = errors.New("hybrid: nil image")

	// ErrSizeMismatch is returned when images that must share dimensions
	// do not.
	ErrSizeMismatch = errors.New("hybrid: image dimensions differ")

	// ErrInvalidRadius is returned for a negative or NaN blur sigma.
	ErrInvalidRadius = errors.New("hybrid: invalid blur radius")

	// ErrInvalidSources is returned when Sources is neither a Pair nor a
	// Triple value.
	ErrInvalidSources = errors.New("hybrid: unsupported sources")

	// ErrInvalidSharpen is returned for a NaN or infinite sharpen amount.
	ErrInvalidSharpen = errors.New("hybrid: invalid sharpen amount")
)
