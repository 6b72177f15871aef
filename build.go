package ggrad

import (
	"fmt"
	"log/slog"
)

// Resampler regenerates a gradient's colors at a higher sample count,
// interpolating each segment in a chosen color space.
//
// For output index k the target position is t = k/n, matching
// [GenerateStops]. The segment [stop_i, stop_i+1] containing t is
// interpolated at u = (t - stop_i) / (stop_i+1 - stop_i), or 0 for a
// zero-width segment. When space is not ColorSpaceNone both endpoints are
// converted into it; otherwise the native space of the segment's start
// color is used, or of its end color when invert is true.
//
// Implementations must return exactly n colors, accept stops whose colors
// live in different spaces, and report conversion failures wrapping
// [ErrUnsupportedColorSpace]. Callers guarantee len(stops) >= 2, sorted
// offsets and n >= len(stops).
type Resampler interface {
	Resample(stops []ColorStop, space ColorSpace, invert bool, n int) ([]RGBA, error)
}

// ShaderArgs are the arguments handed to a shader constructor: the
// resolved geometry, equal-length color and stop arrays, the tile mode
// and an optional device-space transform.
type ShaderArgs struct {
	Geometry  RenderGeometry
	Colors    []RGBA
	Stops     []float64
	Extend    ExtendMode
	Transform *Matrix

	// SampleCount is the budget computed for the geometry.
	SampleCount int
	// Resampled is false when the original stops were passed through.
	Resampled bool
}

// BuildOption configures Build.
type BuildOption func(*buildOptions)

type buildOptions struct {
	resampler        Resampler
	devicePixelRatio float64
	textDirection    TextDirection
}

func defaultBuildOptions() buildOptions {
	return buildOptions{devicePixelRatio: 1}
}

// WithResampler sets the resampler used when the sample budget exceeds
// the gradient's stop count. Without one, Build always passes the
// original stops through.
func WithResampler(r Resampler) BuildOption {
	return func(o *buildOptions) {
		o.resampler = r
	}
}

// WithDevicePixelRatio sets the number of device pixels per logical
// pixel. The default is 1.
func WithDevicePixelRatio(ratio float64) BuildOption {
	return func(o *buildOptions) {
		o.devicePixelRatio = ratio
	}
}

// WithTextDirection sets the direction used to resolve directional
// alignments. The default is LeftToRight.
func WithTextDirection(dir TextDirection) BuildOption {
	return func(o *buildOptions) {
		o.textDirection = dir
	}
}

// Build computes the shader arguments for painting g into target. Stops
// are only resampled when a Resampler is supplied with WithResampler;
// without one Build always passes the original stops through.
//
// The sample budget N comes from the resolved geometry. When N is smaller
// than the number of stops, the original colors and offsets are passed
// through unchanged so fidelity never drops below what the caller
// specified. Otherwise the resampler produces N colors placed at
// GenerateStops(N).
//
// Build keeps no state between calls and is safe for concurrent use.
// Errors wrap ErrInvalidSpecification for malformed gradients and
// whatever the resampler reports.
func Build(g *Gradient, target Rect, opts ...BuildOption) (ShaderArgs, error) {
	o := defaultBuildOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := g.Validate(); err != nil {
		return ShaderArgs{}, err
	}

	geom := g.Resolve(target, o.textDirection)
	n := geom.SampleCount(o.devicePixelRatio, g.Density)

	args := ShaderArgs{
		Geometry:    geom,
		Extend:      g.Extend,
		SampleCount: n,
	}
	if g.Transform != nil {
		m := g.Transform.Matrix(target, o.textDirection)
		args.Transform = &m
	}

	log := Logger()
	if o.resampler == nil {
		args.Colors = nativeColors(g.Stops)
		args.Stops = g.Offsets()
		log.Info("ggrad: no resampler, gradient passed through",
			slog.String("kind", g.Kind.String()),
			slog.Int("samples", n),
			slog.Int("stops", len(g.Stops)))
		return args, nil
	}
	if n < len(g.Stops) {
		args.Colors = nativeColors(g.Stops)
		args.Stops = g.Offsets()
		log.Debug("ggrad: gradient passed through",
			slog.String("kind", g.Kind.String()),
			slog.Int("samples", n),
			slog.Int("stops", len(g.Stops)))
		return args, nil
	}

	colors, err := o.resampler.Resample(g.Stops, g.ColorSpace, g.Invert, n)
	if err != nil {
		log.Warn("ggrad: resample failed",
			slog.String("kind", g.Kind.String()),
			slog.Int("samples", n),
			slog.String("space", g.ColorSpace.String()),
			slog.Any("error", err))
		return ShaderArgs{}, fmt.Errorf("ggrad: resample %s gradient to %d colors: %w", g.Kind, n, err)
	}
	if len(colors) != n {
		return ShaderArgs{}, fmt.Errorf("ggrad: resampler returned %d colors, want %d", len(colors), n)
	}

	args.Colors = colors
	args.Stops = GenerateStops(n)
	args.Resampled = true
	log.Debug("ggrad: gradient resampled",
		slog.String("kind", g.Kind.String()),
		slog.Int("samples", n),
		slog.Int("stops", len(g.Stops)),
		slog.String("space", g.ColorSpace.String()),
		slog.Bool("invert", g.Invert))
	return args, nil
}

// nativeColors converts stop colors to the renderer's representation.
func nativeColors(stops []ColorStop) []RGBA {
	colors := make([]RGBA, len(stops))
	for i, s := range stops {
		colors[i] = s.Color.Native()
	}
	return colors
}
