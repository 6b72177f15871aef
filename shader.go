package ggrad

import (
	"image"
	"image/color"
	"math"
	"sort"

	icolor "github.com/gogpu/ggrad/internal/color"
)

// Shader is a software gradient shader built from ShaderArgs. Between
// adjacent stops it blends two colors at a time in linear sRGB, the way a
// host renderer does natively; resampled arguments simply give it more,
// closer stops.
//
// Shader implements image.Image over Bounds so it can serve as a draw
// source. Pixels are sampled at their centers.
type Shader struct {
	geom    RenderGeometry
	colors  []RGBA
	stops   []float64
	extend  ExtendMode
	inverse Matrix
	bounds  image.Rectangle
}

// NewShader creates a shader from args. The color and stop slices are
// copied. Arguments with mismatched or empty color and stop arrays paint
// transparent.
func NewShader(args ShaderArgs) *Shader {
	s := &Shader{
		geom:    args.Geometry,
		extend:  args.Extend,
		inverse: Identity(),
		bounds:  pixelBounds(args.Geometry.Bounds),
	}
	if len(args.Colors) == len(args.Stops) {
		s.colors = append([]RGBA(nil), args.Colors...)
		s.stops = append([]float64(nil), args.Stops...)
	}
	if args.Transform != nil {
		s.inverse = args.Transform.Invert()
	}
	return s
}

// pixelBounds returns the smallest integer rectangle covering r.
func pixelBounds(r Rect) image.Rectangle {
	return image.Rect(
		int(math.Floor(r.Min.X)), int(math.Floor(r.Min.Y)),
		int(math.Ceil(r.Max.X)), int(math.Ceil(r.Max.Y)),
	)
}

// ColorAt returns the color at the given point.
func (s *Shader) ColorAt(x, y float64) RGBA {
	if len(s.colors) == 0 {
		return Transparent
	}

	p := s.inverse.TransformPoint(Pt(x, y))

	var (
		t  float64
		ok bool
	)
	switch s.geom.Kind {
	case KindLinear:
		t, ok = linearT(&s.geom, p)
	case KindRadial:
		t, ok = radialT(&s.geom, p)
	case KindSweep:
		t, ok = sweepT(&s.geom, p)
	}
	if !ok {
		return s.colors[0]
	}
	return colorAtOffset(s.colors, s.stops, t, s.extend)
}

// ColorModel implements image.Image.
func (s *Shader) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements image.Image.
func (s *Shader) Bounds() image.Rectangle {
	return s.bounds
}

// At implements image.Image.
func (s *Shader) At(x, y int) color.Color {
	return s.ColorAt(float64(x)+0.5, float64(y)+0.5).Color()
}

// applyExtendMode applies the extend mode to normalize t to [0, 1].
// ExtendDecal clamps like ExtendPad; colorAtOffset handles the
// transparent region before normalizing.
func applyExtendMode(t float64, mode ExtendMode) float64 {
	switch mode {
	case ExtendRepeat:
		t -= math.Floor(t)
	case ExtendReflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if int(period)%2 == 1 {
			t = 1 - t
		}
	default: // ExtendPad, ExtendDecal
		t = clamp01(t)
	}
	return t
}

// interpolateColorLinear blends two sRGB colors in linear light.
func interpolateColorLinear(c1, c2 RGBA, t float64) RGBA {
	l1 := icolor.ToLinear(c1.R, c1.G, c1.B, c1.A)
	l2 := icolor.ToLinear(c2.R, c2.G, c2.B, c2.A)
	r, g, b, a := l1.Lerp(l2, t).ToSRGB()
	return RGBA{R: r, G: g, B: b, A: a}
}

// colorAtOffset returns the color at offset t of a stop list. Offsets
// must be sorted. Before the first stop and after the last, the edge
// color holds. With ExtendDecal, t outside [0, 1] is transparent.
func colorAtOffset(colors []RGBA, stops []float64, t float64, mode ExtendMode) RGBA {
	if mode == ExtendDecal && (t < 0 || t > 1) {
		return Transparent
	}
	if len(colors) == 1 {
		return colors[0]
	}

	t = applyExtendMode(t, mode)

	// First stop with offset > t, so coincident stops switch hard.
	idx := sort.Search(len(stops), func(i int) bool {
		return stops[i] > t
	})

	if idx == 0 {
		return colors[0]
	}
	if idx >= len(stops) {
		return colors[len(colors)-1]
	}

	o1, o2 := stops[idx-1], stops[idx]
	if o2 == o1 {
		return colors[idx-1]
	}
	return interpolateColorLinear(colors[idx-1], colors[idx], (t-o1)/(o2-o1))
}
