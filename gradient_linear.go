package ggrad

import "math"

// LinearGeometry places a linear gradient between two alignments of the
// painted rectangle.
type LinearGeometry struct {
	Begin Alignment // Where offset 0 is placed
	End   Alignment // Where offset 1 is placed
}

// NewLinearGradient creates a linear gradient from CenterLeft to
// CenterRight with DefaultLinearDensity, unless overridden by options.
//
// Example:
//
//	g, err := ggrad.NewLinearGradient(
//	    []ggrad.Color{ggrad.Red, ggrad.Yellow, ggrad.Blue},
//	    ggrad.WithBegin(ggrad.TopLeft),
//	    ggrad.WithEnd(ggrad.BottomRight),
//	)
func NewLinearGradient(colors []Color, opts ...GradientOption) (*Gradient, error) {
	o := &gradientOptions{
		begin:   CenterLeft,
		end:     CenterRight,
		density: DefaultLinearDensity,
	}
	return newGradient(KindLinear, colors, o, opts)
}

// WithBegin sets where a linear gradient's offset 0 is placed.
func WithBegin(a Alignment) GradientOption {
	return func(o *gradientOptions) {
		o.begin = a
	}
}

// WithEnd sets where a linear gradient's offset 1 is placed.
func WithEnd(a Alignment) GradientOption {
	return func(o *gradientOptions) {
		o.end = a
	}
}

// LinearSampleCount returns how many colors a linear gradient spanning
// start to end warrants: one per device pixel along the span, scaled by
// density. Coincident points yield 0.
func LinearSampleCount(start, end Point, devicePixelRatio, density float64) int {
	span := nonNegative(start.Distance(end))
	return sampleCount(span * nonNegative(devicePixelRatio) * nonNegative(density))
}

// linearT projects p onto the gradient line; 0 at Start, 1 at End.
func linearT(geom *RenderGeometry, p Point) (float64, bool) {
	d := geom.End.Sub(geom.Start)
	lengthSq := d.Dot(d)
	if lengthSq == 0 || math.IsNaN(lengthSq) {
		return 0, false
	}
	return p.Sub(geom.Start).Dot(d) / lengthSq, true
}
