package ggrad

import "errors"

// ErrInvalidSpecification is returned when a gradient is constructed with
// fewer than two colors, a stop list whose length differs from the color
// count, unsorted or out-of-range stops, or a density outside (0, 1].
var ErrInvalidSpecification = errors.New("ggrad: invalid gradient specification")

// ErrUnsupportedColorSpace is returned when a color cannot be converted to
// or from the requested color space. Resamplers must report it instead of
// silently substituting another space.
var ErrUnsupportedColorSpace = errors.New("ggrad: unsupported color space")
