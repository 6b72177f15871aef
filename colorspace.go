package ggrad

import (
	"fmt"
	"strings"
)

// ColorSpace identifies a color model. Gradients interpolate each segment
// in one of these spaces; see [Resampler].
//
// The zero value, ColorSpaceNone, is not a space of its own. As a
// gradient's fixed interpolation space it means "use the native space of
// the segment's anchor color".
type ColorSpace uint8

const (
	// ColorSpaceNone means no fixed interpolation space.
	ColorSpaceNone ColorSpace = iota
	// ColorSpaceRGB is gamma-encoded sRGB, the renderer's native space.
	ColorSpaceRGB
	// ColorSpaceHSL is hue, saturation, lightness.
	ColorSpaceHSL
	// ColorSpaceHSB is hue, saturation, brightness (also known as HSV).
	ColorSpaceHSB
	// ColorSpaceHSI is hue, saturation, intensity.
	ColorSpaceHSI
	// ColorSpaceHSP is hue, saturation, perceived brightness.
	ColorSpaceHSP
	// ColorSpaceCMYK is cyan, magenta, yellow, key.
	ColorSpaceCMYK
	// ColorSpaceLAB is CIE L*a*b* (D65).
	ColorSpaceLAB
	// ColorSpaceOklab is Björn Ottosson's Oklab.
	ColorSpaceOklab
	// ColorSpaceXYZ is CIE 1931 XYZ (D65).
	ColorSpaceXYZ

	numColorSpaces
)

var colorSpaceNames = [...]string{
	ColorSpaceNone:  "none",
	ColorSpaceRGB:   "rgb",
	ColorSpaceHSL:   "hsl",
	ColorSpaceHSB:   "hsb",
	ColorSpaceHSI:   "hsi",
	ColorSpaceHSP:   "hsp",
	ColorSpaceCMYK:  "cmyk",
	ColorSpaceLAB:   "lab",
	ColorSpaceOklab: "oklab",
	ColorSpaceXYZ:   "xyz",
}

// String returns the lower-case name of the space.
func (s ColorSpace) String() string {
	if s < numColorSpaces {
		return colorSpaceNames[s]
	}
	return fmt.Sprintf("ColorSpace(%d)", uint8(s))
}

// Valid reports whether s names a concrete color space.
// ColorSpaceNone is not valid as the space of a color.
func (s ColorSpace) Valid() bool {
	return s > ColorSpaceNone && s < numColorSpaces
}

// ParseColorSpace returns the space with the given name, case-insensitive.
// "hsv" is accepted as an alias of "hsb".
func ParseColorSpace(name string) (ColorSpace, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "hsv" {
		return ColorSpaceHSB, nil
	}
	for i, n := range colorSpaceNames {
		if n == name {
			return ColorSpace(i), nil
		}
	}
	return ColorSpaceNone, fmt.Errorf("%w: %q", ErrUnsupportedColorSpace, name)
}

// Color is a color value defined in some color space.
//
// Implementations must be comparable value types: gradients compare their
// stops with ==.
type Color interface {
	// Space returns the color space the value is defined in.
	Space() ColorSpace

	// Native returns the renderer-native sRGB equivalent.
	Native() RGBA

	// ScaleAlpha returns a copy with alpha multiplied by factor, in the
	// same color space.
	ScaleAlpha(factor float64) Color
}
