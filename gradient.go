package ggrad

import (
	"fmt"
	"math"
	"slices"
)

// Kind tags the geometry of a gradient.
type Kind uint8

const (
	// KindLinear blends along the line between two alignments.
	KindLinear Kind = iota
	// KindRadial blends outward from a center (or focal point) to a radius.
	KindRadial
	// KindSweep blends around a center between two angles.
	KindSweep
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindLinear:
		return "linear"
	case KindRadial:
		return "radial"
	case KindSweep:
		return "sweep"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ExtendMode defines how gradients extend beyond their defined bounds.
type ExtendMode int

const (
	// ExtendPad extends edge colors beyond bounds (default behavior).
	ExtendPad ExtendMode = iota
	// ExtendRepeat repeats the gradient pattern.
	ExtendRepeat
	// ExtendReflect mirrors the gradient pattern.
	ExtendReflect
	// ExtendDecal paints nothing beyond bounds.
	ExtendDecal
)

// String returns "pad", "repeat", "reflect" or "decal".
func (m ExtendMode) String() string {
	switch m {
	case ExtendRepeat:
		return "repeat"
	case ExtendReflect:
		return "reflect"
	case ExtendDecal:
		return "decal"
	default:
		return "pad"
	}
}

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Color  Color   // Color at this position, in any color space
	Offset float64 // Position in gradient, 0.0 to 1.0
}

// Default density factors: the fraction of device pixels along the
// gradient axis that receive their own color sample.
const (
	DefaultLinearDensity = 0.075
	DefaultRadialDensity = 0.125
	DefaultSweepDensity  = 0.075
)

// Gradient describes a multi-stop gradient whose colors are resampled at
// paint time. One type covers all three kinds; only the geometry field
// matching Kind is consulted.
//
// Gradients are created by NewLinearGradient, NewRadialGradient and
// NewSweepGradient, which validate eagerly. They are treated as immutable
// afterwards and may be shared between goroutines.
type Gradient struct {
	Kind   Kind
	Linear LinearGeometry
	Radial RadialGeometry
	Sweep  SweepGeometry

	Stops  []ColorStop
	Extend ExtendMode

	// Transform is applied to the gradient geometry at paint time.
	// Implementations must be comparable; nil means none.
	Transform GradientTransform

	// ColorSpace, when not ColorSpaceNone, is the space every segment
	// is interpolated in.
	ColorSpace ColorSpace

	// Invert selects the segment's end color, instead of its start
	// color, as the anchor whose native space governs interpolation.
	// Ignored when ColorSpace is set.
	Invert bool

	// Density is the fraction of device pixels along the gradient axis
	// that get a color sample, in (0, 1].
	Density float64
}

// GradientOption configures a Gradient during creation.
//
// Example:
//
//	g, err := ggrad.NewLinearGradient(
//	    []ggrad.Color{ggrad.Red, ggrad.Blue},
//	    ggrad.WithColorSpace(ggrad.ColorSpaceOklab),
//	    ggrad.WithDensity(0.25),
//	)
type GradientOption func(*gradientOptions)

// gradientOptions holds optional configuration for Gradient creation.
type gradientOptions struct {
	stops      []float64
	extend     ExtendMode
	transform  GradientTransform
	colorSpace ColorSpace
	invert     bool
	density    float64

	begin, end  Alignment
	center      Alignment
	radius      float64
	focal       *Alignment
	focalRadius float64
	startAngle  float64
	endAngle    float64
}

// WithStops sets explicit stop offsets, one per color. Without it, stops
// are spread evenly from 0 to 1.
func WithStops(stops ...float64) GradientOption {
	return func(o *gradientOptions) {
		o.stops = slices.Clone(stops)
	}
}

// WithExtend sets the tile mode applied beyond the gradient's span.
func WithExtend(mode ExtendMode) GradientOption {
	return func(o *gradientOptions) {
		o.extend = mode
	}
}

// WithTransform sets a transform applied to the gradient geometry.
func WithTransform(t GradientTransform) GradientOption {
	return func(o *gradientOptions) {
		o.transform = t
	}
}

// WithColorSpace fixes the interpolation space of every segment.
func WithColorSpace(space ColorSpace) GradientOption {
	return func(o *gradientOptions) {
		o.colorSpace = space
	}
}

// WithInvert makes each segment interpolate in its end color's space.
func WithInvert(invert bool) GradientOption {
	return func(o *gradientOptions) {
		o.invert = invert
	}
}

// WithDensity overrides the kind's default density. It must be in (0, 1].
func WithDensity(density float64) GradientOption {
	return func(o *gradientOptions) {
		o.density = density
	}
}

// newGradient applies options over kind defaults, builds the stops and
// validates the result.
func newGradient(kind Kind, colors []Color, o *gradientOptions, opts []GradientOption) (*Gradient, error) {
	for _, opt := range opts {
		opt(o)
	}

	if len(colors) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 colors, got %d", ErrInvalidSpecification, len(colors))
	}
	offsets := o.stops
	if offsets == nil {
		offsets = evenStops(len(colors))
	}
	if len(offsets) != len(colors) {
		return nil, fmt.Errorf("%w: %d stops for %d colors", ErrInvalidSpecification, len(offsets), len(colors))
	}

	stops := make([]ColorStop, len(colors))
	for i, c := range colors {
		stops[i] = ColorStop{Color: c, Offset: offsets[i]}
	}

	g := &Gradient{
		Kind:       kind,
		Stops:      stops,
		Extend:     o.extend,
		Transform:  o.transform,
		ColorSpace: o.colorSpace,
		Invert:     o.invert,
		Density:    o.density,
	}
	switch kind {
	case KindLinear:
		g.Linear = LinearGeometry{Begin: o.begin, End: o.end}
	case KindRadial:
		focal := o.center
		if o.focal != nil {
			focal = *o.focal
		}
		g.Radial = RadialGeometry{
			Center:      o.center,
			Radius:      o.radius,
			Focal:       focal,
			FocalRadius: o.focalRadius,
		}
	case KindSweep:
		g.Sweep = SweepGeometry{Center: o.center, StartAngle: o.startAngle, EndAngle: o.endAngle}
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// evenStops spreads n offsets evenly over [0, 1], first at 0 and last at 1.
func evenStops(n int) []float64 {
	stops := make([]float64, n)
	for i := range stops {
		stops[i] = float64(i) / float64(n-1)
	}
	return stops
}

// Validate reports whether g satisfies the gradient invariants. The error
// wraps ErrInvalidSpecification or ErrUnsupportedColorSpace.
func (g *Gradient) Validate() error {
	if len(g.Stops) < 2 {
		return fmt.Errorf("%w: need at least 2 colors, got %d", ErrInvalidSpecification, len(g.Stops))
	}
	prev := math.Inf(-1)
	for i, s := range g.Stops {
		if s.Color == nil {
			return fmt.Errorf("%w: stop %d has no color", ErrInvalidSpecification, i)
		}
		if !s.Color.Space().Valid() {
			return fmt.Errorf("%w: stop %d: %v", ErrUnsupportedColorSpace, i, s.Color.Space())
		}
		if math.IsNaN(s.Offset) || s.Offset < 0 || s.Offset > 1 {
			return fmt.Errorf("%w: stop %d offset %v outside [0, 1]", ErrInvalidSpecification, i, s.Offset)
		}
		if s.Offset < prev {
			return fmt.Errorf("%w: stop %d offset %v decreases", ErrInvalidSpecification, i, s.Offset)
		}
		prev = s.Offset
	}
	if math.IsNaN(g.Density) || g.Density <= 0 || g.Density > 1 {
		return fmt.Errorf("%w: density %v outside (0, 1]", ErrInvalidSpecification, g.Density)
	}
	if g.ColorSpace != ColorSpaceNone && !g.ColorSpace.Valid() {
		return fmt.Errorf("%w: %v", ErrUnsupportedColorSpace, g.ColorSpace)
	}
	if g.Extend < ExtendPad || g.Extend > ExtendDecal {
		return fmt.Errorf("%w: extend mode %d", ErrInvalidSpecification, int(g.Extend))
	}
	if g.Kind > KindSweep {
		return fmt.Errorf("%w: unknown kind %v", ErrInvalidSpecification, g.Kind)
	}
	return nil
}

// Colors returns the stop colors in order.
func (g *Gradient) Colors() []Color {
	colors := make([]Color, len(g.Stops))
	for i, s := range g.Stops {
		colors[i] = s.Color
	}
	return colors
}

// Offsets returns the stop offsets in order.
func (g *Gradient) Offsets() []float64 {
	offsets := make([]float64, len(g.Stops))
	for i, s := range g.Stops {
		offsets[i] = s.Offset
	}
	return offsets
}

// Scale returns a copy of g with every color's alpha multiplied by factor,
// clamped to [0, 1]. Scale(0) is fully transparent, Scale(1) an equal copy.
// All other fields are copied.
func (g *Gradient) Scale(factor float64) *Gradient {
	factor = clamp01(factor)
	out := *g
	out.Stops = make([]ColorStop, len(g.Stops))
	for i, s := range g.Stops {
		out.Stops[i] = ColorStop{Color: s.Color.ScaleAlpha(factor), Offset: s.Offset}
	}
	return &out
}

// Equal reports whether g and other describe the same gradient, field by
// field. Geometry of kinds other than Kind is ignored.
func (g *Gradient) Equal(other *Gradient) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.Kind != other.Kind ||
		g.Extend != other.Extend ||
		g.Transform != other.Transform ||
		g.ColorSpace != other.ColorSpace ||
		g.Invert != other.Invert ||
		g.Density != other.Density {
		return false
	}
	switch g.Kind {
	case KindLinear:
		if g.Linear != other.Linear {
			return false
		}
	case KindRadial:
		if g.Radial != other.Radial {
			return false
		}
	case KindSweep:
		if g.Sweep != other.Sweep {
			return false
		}
	}
	return slices.Equal(g.Stops, other.Stops)
}

// clamp01 clamps a value to [0, 1] range. NaN maps to 0.
func clamp01(x float64) float64 {
	if x < 0 || math.IsNaN(x) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
