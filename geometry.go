package ggrad

import "math"

// RenderGeometry is a gradient's geometry resolved against the painted
// rectangle, in logical pixels. It is derived fresh for every paint.
type RenderGeometry struct {
	Kind   Kind
	Bounds Rect

	// Linear
	Start, End Point

	// Radial and sweep
	Center Point

	// Radial
	Radius      float64
	Focal       Point
	FocalRadius float64

	// Sweep
	StartAngle, EndAngle float64
}

// Resolve places g's geometry inside target. dir resolves directional
// alignments.
func (g *Gradient) Resolve(target Rect, dir TextDirection) RenderGeometry {
	geom := RenderGeometry{Kind: g.Kind, Bounds: target}
	switch g.Kind {
	case KindLinear:
		geom.Start = g.Linear.Begin.WithinRect(target, dir)
		geom.End = g.Linear.End.WithinRect(target, dir)
	case KindRadial:
		side := target.ShortestSide()
		geom.Center = g.Radial.Center.WithinRect(target, dir)
		geom.Radius = nonNegative(g.Radial.Radius * side)
		geom.Focal = g.Radial.Focal.WithinRect(target, dir)
		geom.FocalRadius = nonNegative(g.Radial.FocalRadius * side)
	case KindSweep:
		geom.Center = g.Sweep.Center.WithinRect(target, dir)
		geom.StartAngle = g.Sweep.StartAngle
		geom.EndAngle = g.Sweep.EndAngle
	}
	return geom
}

// SampleCount returns the number of colors geom warrants at the given
// device pixel ratio and density. It dispatches on geom.Kind.
func (geom RenderGeometry) SampleCount(devicePixelRatio, density float64) int {
	switch geom.Kind {
	case KindLinear:
		return LinearSampleCount(geom.Start, geom.End, devicePixelRatio, density)
	case KindRadial:
		return RadialSampleCount(geom.Radius, devicePixelRatio, density)
	case KindSweep:
		return SweepSampleCount(geom.StartAngle, geom.EndAngle,
			geom.Bounds.Width(), geom.Bounds.Height(), devicePixelRatio, density)
	default:
		return 0
	}
}

// maxSampleCount bounds a single gradient's sample count so that
// pathological geometry cannot overflow int conversion.
const maxSampleCount = 1 << 20

// sampleCount rounds a non-negative sample budget up to an integer.
// Overflow to +Inf saturates.
func sampleCount(x float64) int {
	if x <= 0 || math.IsNaN(x) {
		return 0
	}
	if x >= maxSampleCount {
		return maxSampleCount
	}
	return int(math.Ceil(x))
}

// nonNegative maps negative and NaN values to 0. +Inf is kept so that an
// overflowing span saturates in sampleCount.
func nonNegative(x float64) float64 {
	if x < 0 || math.IsNaN(x) {
		return 0
	}
	return x
}
