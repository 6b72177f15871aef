// Package colorspace provides colors defined in the HSL, HSB, HSI, HSP,
// CMYK, CIE L*a*b*, Oklab and CIE XYZ models, conversions between them,
// and a [Resampler] that interpolates gradient segments in any of them.
//
// Every type implements [ggrad.Color]. Conversions go through the
// renderer-native sRGB representation; conversions to the space a color
// is already in return it unchanged.
//
// Channel scales follow github.com/lucasb-eyer/go-colorful: hues are in
// degrees [0, 360), L*a*b* lightness is in [0, 1] rather than [0, 100].
package colorspace

import (
	"fmt"

	"github.com/gogpu/ggrad"
	"github.com/lucasb-eyer/go-colorful"
)

// channels holds up to four color channels plus alpha.
type channels struct {
	c [4]float64
	a float64
}

func (v channels) lerp(w channels, u float64) channels {
	var out channels
	for i := range v.c {
		out.c[i] = v.c[i] + (w.c[i]-v.c[i])*u
	}
	out.a = v.a + (w.a-v.a)*u
	return out
}

// Convert returns c expressed in the given space.
// It fails with ggrad.ErrUnsupportedColorSpace for spaces this package
// does not model, including ggrad.ColorSpaceNone.
func Convert(c ggrad.Color, to ggrad.ColorSpace) (ggrad.Color, error) {
	if !to.Valid() {
		return nil, fmt.Errorf("colorspace: convert to %v: %w", to, ggrad.ErrUnsupportedColorSpace)
	}
	if !c.Space().Valid() {
		return nil, fmt.Errorf("colorspace: convert from %v: %w", c.Space(), ggrad.ErrUnsupportedColorSpace)
	}
	if c.Space() == to {
		return c, nil
	}
	return fromNative(c.Native(), to), nil
}

// fromNative converts a native color into the given valid space.
func fromNative(c ggrad.RGBA, to ggrad.ColorSpace) ggrad.Color {
	switch to {
	case ggrad.ColorSpaceHSL:
		return HSLFromRGBA(c)
	case ggrad.ColorSpaceHSB:
		return HSBFromRGBA(c)
	case ggrad.ColorSpaceHSI:
		return HSIFromRGBA(c)
	case ggrad.ColorSpaceHSP:
		return HSPFromRGBA(c)
	case ggrad.ColorSpaceCMYK:
		return CMYKFromRGBA(c)
	case ggrad.ColorSpaceLAB:
		return LABFromRGBA(c)
	case ggrad.ColorSpaceOklab:
		return OklabFromRGBA(c)
	case ggrad.ColorSpaceXYZ:
		return XYZFromRGBA(c)
	default:
		return c
	}
}

// channelsOf returns the channels of c in its own space. Colors of
// foreign types are first converted into the package's own type for
// their space.
func channelsOf(c ggrad.Color) channels {
	switch v := c.(type) {
	case ggrad.RGBA:
		return channels{c: [4]float64{v.R, v.G, v.B}, a: v.A}
	case HSL:
		return channels{c: [4]float64{v.H, v.S, v.L}, a: v.Alpha}
	case HSB:
		return channels{c: [4]float64{v.H, v.S, v.B}, a: v.Alpha}
	case HSI:
		return channels{c: [4]float64{v.H, v.S, v.I}, a: v.Alpha}
	case HSP:
		return channels{c: [4]float64{v.H, v.S, v.P}, a: v.Alpha}
	case CMYK:
		return channels{c: [4]float64{v.C, v.M, v.Y, v.K}, a: v.Alpha}
	case LAB:
		return channels{c: [4]float64{v.L, v.A, v.B}, a: v.Alpha}
	case Oklab:
		return channels{c: [4]float64{v.L, v.A, v.B}, a: v.Alpha}
	case XYZ:
		return channels{c: [4]float64{v.X, v.Y, v.Z}, a: v.Alpha}
	default:
		return channelsOf(fromNative(c.Native(), c.Space()))
	}
}

// fromChannels builds a color of the given valid space.
func fromChannels(space ggrad.ColorSpace, v channels) ggrad.Color {
	c := v.c
	switch space {
	case ggrad.ColorSpaceHSL:
		return HSL{H: c[0], S: c[1], L: c[2], Alpha: v.a}
	case ggrad.ColorSpaceHSB:
		return HSB{H: c[0], S: c[1], B: c[2], Alpha: v.a}
	case ggrad.ColorSpaceHSI:
		return HSI{H: c[0], S: c[1], I: c[2], Alpha: v.a}
	case ggrad.ColorSpaceHSP:
		return HSP{H: c[0], S: c[1], P: c[2], Alpha: v.a}
	case ggrad.ColorSpaceCMYK:
		return CMYK{C: c[0], M: c[1], Y: c[2], K: c[3], Alpha: v.a}
	case ggrad.ColorSpaceLAB:
		return LAB{L: c[0], A: c[1], B: c[2], Alpha: v.a}
	case ggrad.ColorSpaceOklab:
		return Oklab{L: c[0], A: c[1], B: c[2], Alpha: v.a}
	case ggrad.ColorSpaceXYZ:
		return XYZ{X: c[0], Y: c[1], Z: c[2], Alpha: v.a}
	default:
		return ggrad.RGBA{R: c[0], G: c[1], B: c[2], A: v.a}
	}
}

// Lerp interpolates from a to b by u, channel by channel, in the given
// space and returns the renderer-native result.
func Lerp(a, b ggrad.Color, u float64, space ggrad.ColorSpace) (ggrad.RGBA, error) {
	ca, err := Convert(a, space)
	if err != nil {
		return ggrad.RGBA{}, err
	}
	cb, err := Convert(b, space)
	if err != nil {
		return ggrad.RGBA{}, err
	}
	return fromChannels(space, channelsOf(ca).lerp(channelsOf(cb), u)).Native(), nil
}

// toColorful drops alpha and converts to go-colorful's representation.
func toColorful(c ggrad.RGBA) colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// fromColorful clamps a go-colorful color into gamut and attaches alpha.
func fromColorful(c colorful.Color, alpha float64) ggrad.RGBA {
	c = c.Clamped()
	return ggrad.RGBA{R: c.R, G: c.G, B: c.B, A: clamp01(alpha)}
}

func clamp01(x float64) float64 {
	if x < 0 || x != x {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
