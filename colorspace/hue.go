package colorspace

import (
	"math"

	"github.com/gogpu/ggrad"
	"github.com/lucasb-eyer/go-colorful"
)

// HSL is a color in hue (degrees), saturation and lightness.
type HSL struct {
	H, S, L float64
	Alpha   float64
}

// HSLFromRGBA converts a native color to HSL.
func HSLFromRGBA(c ggrad.RGBA) HSL {
	h, s, l := toColorful(c).Hsl()
	return HSL{H: h, S: s, L: l, Alpha: c.A}
}

// Space implements ggrad.Color.
func (c HSL) Space() ggrad.ColorSpace { return ggrad.ColorSpaceHSL }

// Native implements ggrad.Color.
func (c HSL) Native() ggrad.RGBA {
	return fromColorful(colorful.Hsl(normalizeHue(c.H), clamp01(c.S), clamp01(c.L)), c.Alpha)
}

// ScaleAlpha implements ggrad.Color.
func (c HSL) ScaleAlpha(factor float64) ggrad.Color {
	c.Alpha *= factor
	return c
}

// HSB is a color in hue (degrees), saturation and brightness, also known
// as HSV.
type HSB struct {
	H, S, B float64
	Alpha   float64
}

// HSBFromRGBA converts a native color to HSB.
func HSBFromRGBA(c ggrad.RGBA) HSB {
	h, s, v := toColorful(c).Hsv()
	return HSB{H: h, S: s, B: v, Alpha: c.A}
}

// Space implements ggrad.Color.
func (c HSB) Space() ggrad.ColorSpace { return ggrad.ColorSpaceHSB }

// Native implements ggrad.Color.
func (c HSB) Native() ggrad.RGBA {
	return fromColorful(colorful.Hsv(normalizeHue(c.H), clamp01(c.S), clamp01(c.B)), c.Alpha)
}

// ScaleAlpha implements ggrad.Color.
func (c HSB) ScaleAlpha(factor float64) ggrad.Color {
	c.Alpha *= factor
	return c
}

// HSI is a color in hue (degrees), saturation and intensity, the mean of
// the RGB components.
type HSI struct {
	H, S, I float64
	Alpha   float64
}

// HSIFromRGBA converts a native color to HSI.
func HSIFromRGBA(c ggrad.RGBA) HSI {
	r, g, b := c.R, c.G, c.B
	i := (r + g + b) / 3
	if i == 0 {
		return HSI{Alpha: c.A}
	}
	s := 1 - math.Min(r, math.Min(g, b))/i

	var h float64
	den := math.Sqrt((r-g)*(r-g) + (r-b)*(g-b))
	if den > 0 {
		cos := (0.5 * ((r - g) + (r - b))) / den
		h = math.Acos(math.Max(-1, math.Min(1, cos))) * 180 / math.Pi
		if b > g {
			h = 360 - h
		}
	}
	return HSI{H: normalizeHue(h), S: s, I: i, Alpha: c.A}
}

// Space implements ggrad.Color.
func (c HSI) Space() ggrad.ColorSpace { return ggrad.ColorSpaceHSI }

// Native implements ggrad.Color.
func (c HSI) Native() ggrad.RGBA {
	h := normalizeHue(c.H)
	s := clamp01(c.S)
	i := math.Max(0, c.I)

	// sector returns the dominant, minimum and remaining channels for an
	// angle within a 120° sector.
	sector := func(deg float64) (hi, lo, rest float64) {
		rad := deg * math.Pi / 180
		lo = i * (1 - s)
		hi = i * (1 + s*math.Cos(rad)/math.Cos(math.Pi/3-rad))
		rest = 3*i - (hi + lo)
		return hi, lo, rest
	}

	var r, g, b float64
	switch {
	case h < 120:
		r, b, g = sector(h)
	case h < 240:
		g, r, b = sector(h - 120)
	default:
		b, g, r = sector(h - 240)
	}
	return fromColorful(colorful.Color{R: r, G: g, B: b}, c.Alpha)
}

// ScaleAlpha implements ggrad.Color.
func (c HSI) ScaleAlpha(factor float64) ggrad.Color {
	c.Alpha *= factor
	return c
}

// normalizeHue wraps a hue in degrees into [0, 360).
func normalizeHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
