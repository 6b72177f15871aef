// Package color provides the sRGB transfer functions used when blending
// gradient colors in linear light.
package color

// Linear is a color with linear-light RGB components in [0, 1].
// Alpha is always linear (never gamma-encoded).
type Linear struct {
	R, G, B, A float64
}

// Lerp interpolates component-wise between c and d.
func (c Linear) Lerp(d Linear, t float64) Linear {
	return Linear{
		R: c.R + t*(d.R-c.R),
		G: c.G + t*(d.G-c.G),
		B: c.B + t*(d.B-c.B),
		A: c.A + t*(d.A-c.A),
	}
}
