package ggrad

import "math"

// RadialGeometry places a radial gradient within the painted rectangle.
//
// Radius and FocalRadius are fractions of the rectangle's shortest side.
// A focal point different from the center creates an asymmetric
// (spotlight) gradient.
type RadialGeometry struct {
	Center      Alignment
	Radius      float64
	Focal       Alignment
	FocalRadius float64
}

// NewRadialGradient creates a radial gradient centered in the rectangle
// with radius 0.5 and DefaultRadialDensity, unless overridden by options.
// The focal point defaults to the center.
func NewRadialGradient(colors []Color, opts ...GradientOption) (*Gradient, error) {
	o := &gradientOptions{
		center:  Center,
		radius:  0.5,
		density: DefaultRadialDensity,
	}
	return newGradient(KindRadial, colors, o, opts)
}

// WithCenter sets the center of a radial or sweep gradient.
func WithCenter(a Alignment) GradientOption {
	return func(o *gradientOptions) {
		o.center = a
	}
}

// WithRadius sets a radial gradient's radius as a fraction of the
// rectangle's shortest side.
func WithRadius(fraction float64) GradientOption {
	return func(o *gradientOptions) {
		o.radius = fraction
	}
}

// WithFocal sets a radial gradient's focal point and focal radius.
func WithFocal(focal Alignment, focalRadius float64) GradientOption {
	return func(o *gradientOptions) {
		o.focal = &focal
		o.focalRadius = focalRadius
	}
}

// RadialSampleCount returns how many colors a radial gradient of the given
// resolved radius warrants: one per device pixel along the radius, scaled
// by density.
func RadialSampleCount(radius, devicePixelRatio, density float64) int {
	return sampleCount(nonNegative(radius) * nonNegative(devicePixelRatio) * nonNegative(density))
}

// radialT returns the gradient parameter of p.
// For the simple case (focus at center): t = distance / radius.
// For a focal gradient it solves a ray-circle intersection.
func radialT(geom *RenderGeometry, p Point) (float64, bool) {
	if geom.Radius <= 0 {
		return 0, false
	}
	if geom.Focal == geom.Center {
		span := geom.Radius - geom.FocalRadius
		if span == 0 {
			return 0, false
		}
		return (p.Distance(geom.Center) - geom.FocalRadius) / span, true
	}
	return radialFocalT(geom, p), true
}

// radialFocalT calculates t for focal gradients (focus != center).
func radialFocalT(geom *RenderGeometry, p Point) float64 {
	// Direction from focus to point
	d := p.Sub(geom.Focal)
	// Vector from focus to center
	f := geom.Center.Sub(geom.Focal)

	// Ray: P(s) = Focus + s*d, circle: |P - Center|^2 = Radius^2
	// s^2*|d|^2 - 2s*(d.f) + |f|^2 - Radius^2 = 0
	a := d.Dot(d)
	b := -2 * d.Dot(f)
	c := f.Dot(f) - geom.Radius*geom.Radius

	// Point at focus
	if a == 0 {
		return 0
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		// Outside the gradient circle
		return 1
	}

	sqrtD := math.Sqrt(discriminant)
	s1 := (-b - sqrtD) / (2 * a)
	s2 := (-b + sqrtD) / (2 * a)

	var s float64
	switch {
	case s1 > 0 && s2 > 0:
		s = math.Min(s1, s2)
	case s1 > 0:
		s = s1
	case s2 > 0:
		s = s2
	default:
		return 0
	}

	// p sits at s=1 on the ray; the circle at s.
	return 1 / s
}
