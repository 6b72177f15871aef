package colorspace

import (
	"math"

	"github.com/gogpu/ggrad"
)

// CMYK is a color in naive (profile-less) cyan, magenta, yellow and key.
type CMYK struct {
	C, M, Y, K float64
	Alpha      float64
}

// CMYKFromRGBA converts a native color to CMYK.
func CMYKFromRGBA(c ggrad.RGBA) CMYK {
	maxc := math.Max(c.R, math.Max(c.G, c.B))
	k := 1 - maxc
	if maxc == 0 {
		return CMYK{K: 1, Alpha: c.A}
	}
	return CMYK{
		C:     (maxc - c.R) / maxc,
		M:     (maxc - c.G) / maxc,
		Y:     (maxc - c.B) / maxc,
		K:     k,
		Alpha: c.A,
	}
}

// Space implements ggrad.Color.
func (c CMYK) Space() ggrad.ColorSpace { return ggrad.ColorSpaceCMYK }

// Native implements ggrad.Color.
func (c CMYK) Native() ggrad.RGBA {
	w := 1 - clamp01(c.K)
	return ggrad.RGBA{
		R: (1 - clamp01(c.C)) * w,
		G: (1 - clamp01(c.M)) * w,
		B: (1 - clamp01(c.Y)) * w,
		A: clamp01(c.Alpha),
	}
}

// ScaleAlpha implements ggrad.Color.
func (c CMYK) ScaleAlpha(factor float64) ggrad.Color {
	c.Alpha *= factor
	return c
}
