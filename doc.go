// Package ggrad renders multi-stop gradients with an adaptive number of
// interpolated colors, interpolated in a chosen color space.
//
// # Overview
//
// A host renderer blends a gradient two stops at a time in its own color
// space. ggrad instead resamples the caller's sparse stops into N evenly
// spaced colors before they reach the shader, where N follows the painted
// size: roughly one color per device pixel along the gradient's axis,
// scaled down by a density factor.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/ggrad"
//	    "github.com/gogpu/ggrad/colorspace"
//	)
//
//	g, err := ggrad.NewLinearGradient(
//	    []ggrad.Color{ggrad.Red, colorspace.HSLFromRGBA(ggrad.Blue)},
//	    ggrad.WithColorSpace(ggrad.ColorSpaceOklab),
//	)
//	if err != nil {
//	    return err
//	}
//
//	args, err := ggrad.Build(g, ggrad.RectXYWH(0, 0, 400, 100),
//	    ggrad.WithResampler(colorspace.Resampler{}),
//	    ggrad.WithDevicePixelRatio(2),
//	)
//
// args holds the colors, stops, tile mode and transform for a shader
// constructor. [NewShader] is a software shader for previews.
//
// # Sample Budget
//
//   - Linear: ceil(span × ratio × density)
//   - Radial: ceil(radius × ratio × density), radius relative to the
//     shortest side of the rectangle
//   - Sweep: ceil(diagonal × covered fraction of 2π × ratio × density)
//
// When the budget is smaller than the number of stops, Build passes the
// original stops through unchanged.
//
// # Color Spaces
//
// Each segment between two stops is interpolated in the gradient's fixed
// [ColorSpace] when one is set, otherwise in the space of the segment's
// start color (or end color with WithInvert). The root package has no
// color math of its own; it calls a [Resampler].
package ggrad
