package colorspace

import (
	"math"

	"github.com/gogpu/ggrad"
	"github.com/lucasb-eyer/go-colorful"
)

// LAB is a color in CIE L*a*b* with the D65 white point. L is in [0, 1].
type LAB struct {
	L, A, B float64
	Alpha   float64
}

// LABFromRGBA converts a native color to L*a*b*.
func LABFromRGBA(c ggrad.RGBA) LAB {
	l, a, b := toColorful(c).Lab()
	return LAB{L: l, A: a, B: b, Alpha: c.A}
}

// Space implements ggrad.Color.
func (c LAB) Space() ggrad.ColorSpace { return ggrad.ColorSpaceLAB }

// Native implements ggrad.Color. Out-of-gamut values are clamped.
func (c LAB) Native() ggrad.RGBA {
	return fromColorful(colorful.Lab(c.L, c.A, c.B), c.Alpha)
}

// ScaleAlpha implements ggrad.Color.
func (c LAB) ScaleAlpha(factor float64) ggrad.Color {
	c.Alpha *= factor
	return c
}

// Oklab is a color in the Oklab perceptual space. Conversions use the
// linear sRGB matrices from Björn Ottosson's reference, which round trip
// to well below 8-bit precision.
type Oklab struct {
	L, A, B float64
	Alpha   float64
}

// OklabFromRGBA converts a native color to Oklab.
func OklabFromRGBA(c ggrad.RGBA) Oklab {
	r, g, b := toColorful(c).LinearRgb()

	l := math.Cbrt(0.4122214708*r + 0.5363325363*g + 0.0514459929*b)
	m := math.Cbrt(0.2119034982*r + 0.6806995451*g + 0.1073969566*b)
	s := math.Cbrt(0.0883024619*r + 0.2817188376*g + 0.6299787005*b)

	return Oklab{
		L:     0.2104542553*l + 0.7936177850*m - 0.0040720468*s,
		A:     1.9779984951*l - 2.4285922050*m + 0.4505937099*s,
		B:     0.0259040371*l + 0.7827717662*m - 0.8086757660*s,
		Alpha: c.A,
	}
}

// Space implements ggrad.Color.
func (c Oklab) Space() ggrad.ColorSpace { return ggrad.ColorSpaceOklab }

// Native implements ggrad.Color. Out-of-gamut values are clamped.
func (c Oklab) Native() ggrad.RGBA {
	l := c.L + 0.3963377774*c.A + 0.2158037573*c.B
	m := c.L - 0.1055613458*c.A - 0.0638541728*c.B
	s := c.L - 0.0894841775*c.A - 1.2914855480*c.B
	l, m, s = l*l*l, m*m*m, s*s*s

	return fromColorful(colorful.LinearRgb(
		4.0767416621*l - 3.3077115913*m + 0.2309699292*s,
		-1.2684380046*l + 2.6097574011*m - 0.3413193965*s,
		-0.0041960863*l - 0.7034186147*m + 1.7076147010*s,
	), c.Alpha)
}

// ScaleAlpha implements ggrad.Color.
func (c Oklab) ScaleAlpha(factor float64) ggrad.Color {
	c.Alpha *= factor
	return c
}

// XYZ is a color in CIE 1931 XYZ with the D65 white point.
type XYZ struct {
	X, Y, Z float64
	Alpha   float64
}

// XYZFromRGBA converts a native color to XYZ.
func XYZFromRGBA(c ggrad.RGBA) XYZ {
	x, y, z := toColorful(c).Xyz()
	return XYZ{X: x, Y: y, Z: z, Alpha: c.A}
}

// Space implements ggrad.Color.
func (c XYZ) Space() ggrad.ColorSpace { return ggrad.ColorSpaceXYZ }

// Native implements ggrad.Color. Out-of-gamut values are clamped.
func (c XYZ) Native() ggrad.RGBA {
	return fromColorful(colorful.Xyz(c.X, c.Y, c.Z), c.Alpha)
}

// ScaleAlpha implements ggrad.Color.
func (c XYZ) ScaleAlpha(factor float64) ggrad.Color {
	c.Alpha *= factor
	return c
}
