package ggrad

import "math"

// SweepGeometry places an angular (conic) gradient. Angles are in
// radians, measured clockwise from the positive x axis in screen
// coordinates. Only the portion within [0, 2π] contributes to sampling.
type SweepGeometry struct {
	Center     Alignment
	StartAngle float64
	EndAngle   float64
}

// NewSweepGradient creates a full-revolution sweep gradient centered in
// the rectangle with DefaultSweepDensity, unless overridden by options.
//
// Example:
//
//	// Color wheel
//	wheel, err := ggrad.NewSweepGradient(
//	    []ggrad.Color{ggrad.Red, ggrad.Yellow, ggrad.Green, ggrad.Cyan,
//	        ggrad.Blue, ggrad.Magenta, ggrad.Red},
//	    ggrad.WithColorSpace(ggrad.ColorSpaceHSB),
//	)
func NewSweepGradient(colors []Color, opts ...GradientOption) (*Gradient, error) {
	o := &gradientOptions{
		center:   Center,
		endAngle: 2 * math.Pi,
		density:  DefaultSweepDensity,
	}
	return newGradient(KindSweep, colors, o, opts)
}

// WithAngles sets the start and end angles of a sweep gradient.
func WithAngles(start, end float64) GradientOption {
	return func(o *gradientOptions) {
		o.startAngle = start
		o.endAngle = end
	}
}

// SweepSampleCount returns how many colors a sweep gradient warrants when
// painted into a width × height rectangle: the rectangle's diagonal,
// scaled by the fraction of the revolution covered, in device pixels,
// scaled by density.
func SweepSampleCount(startAngle, endAngle, width, height, devicePixelRatio, density float64) int {
	w := nonNegative(width)
	h := nonNegative(height)
	diag := math.Hypot(math.Max(w, h), math.Min(w, h))
	slice := nonNegative((clampAngle(endAngle) - clampAngle(startAngle)) / (2 * math.Pi))
	return sampleCount(diag * slice * nonNegative(devicePixelRatio) * nonNegative(density))
}

// clampAngle clamps an angle to [0, 2π]; NaN maps to 0.
func clampAngle(a float64) float64 {
	return 2 * math.Pi * clamp01(a/(2*math.Pi))
}

// sweepT maps the angle of p around the center to [0, 1] between the
// start and end angles.
func sweepT(geom *RenderGeometry, p Point) (float64, bool) {
	sweepRange := geom.EndAngle - geom.StartAngle
	d := p.Sub(geom.Center)
	if sweepRange == 0 || (d.X == 0 && d.Y == 0) {
		return 0, false
	}

	// atan2 returns [-π, π]; shift to [0, 2π)
	angle := math.Atan2(d.Y, d.X)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return (angle - geom.StartAngle) / sweepRange, true
}
