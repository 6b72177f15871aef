package colorspace

import (
	"math"

	"github.com/gogpu/ggrad"
	"github.com/lucasb-eyer/go-colorful"
)

// Perceived brightness weights of the HSP model.
const (
	pr = 0.299
	pg = 0.587
	pb = 0.114
)

// HSP is a color in hue (degrees), saturation and perceived brightness,
// after Darel Rex Finley's HSP model.
type HSP struct {
	H, S, P float64
	Alpha   float64
}

// HSPFromRGBA converts a native color to HSP.
func HSPFromRGBA(c ggrad.RGBA) HSP {
	r, g, b := c.R, c.G, c.B
	p := math.Sqrt(r*r*pr + g*g*pg + b*b*pb)

	var h, s float64
	switch {
	case r == g && r == b:
		// gray
	case r >= g && r >= b:
		if b >= g {
			h = 1 - (b-g)/(r-g)/6
			s = 1 - g/r
		} else {
			h = (g - b) / (r - b) / 6
			s = 1 - b/r
		}
	case g >= r && g >= b:
		if r >= b {
			h = 2.0/6 - (r-b)/(g-b)/6
			s = 1 - b/g
		} else {
			h = 2.0/6 + (b-r)/(g-r)/6
			s = 1 - r/g
		}
	default:
		if g >= r {
			h = 4.0/6 - (g-r)/(b-r)/6
			s = 1 - r/b
		} else {
			h = 4.0/6 + (r-g)/(b-g)/6
			s = 1 - g/b
		}
	}
	return HSP{H: normalizeHue(h * 360), S: s, P: p, Alpha: c.A}
}

// Space implements ggrad.Color.
func (c HSP) Space() ggrad.ColorSpace { return ggrad.ColorSpaceHSP }

// Native implements ggrad.Color.
func (c HSP) Native() ggrad.RGBA {
	h := normalizeHue(c.H) / 360
	p := math.Max(0, c.P)
	mom := 1 - clamp01(c.S) // min over max

	var r, g, b float64
	if mom > 0 {
		part := func(f float64) float64 { return 1 + f*(1/mom-1) }
		switch {
		case h < 1.0/6:
			f := 6 * h
			q := part(f)
			b = p / math.Sqrt(pr/mom/mom+pg*q*q+pb)
			r = b / mom
			g = b + f*(r-b)
		case h < 2.0/6:
			f := 6 * (2.0/6 - h)
			q := part(f)
			b = p / math.Sqrt(pg/mom/mom+pr*q*q+pb)
			g = b / mom
			r = b + f*(g-b)
		case h < 3.0/6:
			f := 6 * (h - 2.0/6)
			q := part(f)
			r = p / math.Sqrt(pg/mom/mom+pb*q*q+pr)
			g = r / mom
			b = r + f*(g-r)
		case h < 4.0/6:
			f := 6 * (4.0/6 - h)
			q := part(f)
			r = p / math.Sqrt(pb/mom/mom+pg*q*q+pr)
			b = r / mom
			g = r + f*(b-r)
		case h < 5.0/6:
			f := 6 * (h - 4.0/6)
			q := part(f)
			g = p / math.Sqrt(pb/mom/mom+pr*q*q+pg)
			b = g / mom
			r = g + f*(b-g)
		default:
			f := 6 * (1 - h)
			q := part(f)
			g = p / math.Sqrt(pr/mom/mom+pb*q*q+pg)
			r = g / mom
			b = g + f*(r-g)
		}
	} else {
		switch {
		case h < 1.0/6:
			f := 6 * h
			r = math.Sqrt(p * p / (pr + pg*f*f))
			g = r * f
		case h < 2.0/6:
			f := 6 * (2.0/6 - h)
			g = math.Sqrt(p * p / (pg + pr*f*f))
			r = g * f
		case h < 3.0/6:
			f := 6 * (h - 2.0/6)
			g = math.Sqrt(p * p / (pg + pb*f*f))
			b = g * f
		case h < 4.0/6:
			f := 6 * (4.0/6 - h)
			b = math.Sqrt(p * p / (pb + pg*f*f))
			g = b * f
		case h < 5.0/6:
			f := 6 * (h - 4.0/6)
			b = math.Sqrt(p * p / (pb + pr*f*f))
			r = b * f
		default:
			f := 6 * (1 - h)
			r = math.Sqrt(p * p / (pr + pb*f*f))
			b = r * f
		}
	}
	return fromColorful(colorful.Color{R: r, G: g, B: b}, c.Alpha)
}

// ScaleAlpha implements ggrad.Color.
func (c HSP) ScaleAlpha(factor float64) ggrad.Color {
	c.Alpha *= factor
	return c
}
