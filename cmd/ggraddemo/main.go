// Command ggraddemo paints a resampled gradient and saves it as a PNG.
//
// Usage:
//
//	ggraddemo -kind sweep -colors '#f00,#ff0,#0f0,#0ff,#00f,#f0f,#f00' -space hsb
//	ggraddemo -colors '#f00,#00f' -stop-spaces hsl,lab -invert -density 0.5
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/ggrad"
	"github.com/gogpu/ggrad/colorspace"
)

func main() {
	var (
		width      = flag.Int("width", 512, "image width")
		height     = flag.Int("height", 256, "image height")
		output     = flag.String("output", "gradient.png", "output file")
		kind       = flag.String("kind", "linear", "gradient kind: linear, radial or sweep")
		colors     = flag.String("colors", "#e63946,#f1c40f,#1d3557", "comma-separated hex colors")
		stops      = flag.String("stops", "", "comma-separated stop offsets (default: evenly spaced)")
		stopSpaces = flag.String("stop-spaces", "", "comma-separated color space of each color (default: rgb)")
		space      = flag.String("space", "", "fixed interpolation color space (default: anchor color's space)")
		invert     = flag.Bool("invert", false, "anchor each segment on its end color")
		density    = flag.Float64("density", 0, "sample density in (0, 1] (default: per kind)")
		dpr        = flag.Float64("dpr", 1, "device pixel ratio")
		locale     = flag.String("locale", "en", "locale used to resolve directional alignments")
		rotate     = flag.Float64("rotate", 0, "gradient rotation in degrees")
		extend     = flag.String("extend", "pad", "tile mode: pad, repeat, reflect or decal")
		ellipse    = flag.Bool("ellipse", false, "paint an ellipse instead of the full image")
		verbose    = flag.Bool("v", false, "log resampling decisions")
	)
	flag.Parse()

	if *verbose {
		ggrad.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cols, err := parseColors(*colors, *stopSpaces)
	if err != nil {
		log.Fatalf("Invalid colors: %v", err)
	}

	opts, err := gradientOptions(*stops, *space, *invert, *density, *rotate, *extend)
	if err != nil {
		log.Fatalf("Invalid options: %v", err)
	}

	var g *ggrad.Gradient
	switch *kind {
	case "linear":
		g, err = ggrad.NewLinearGradient(cols, opts...)
	case "radial":
		g, err = ggrad.NewRadialGradient(cols, opts...)
	case "sweep":
		g, err = ggrad.NewSweepGradient(cols, opts...)
	default:
		log.Fatalf("Unknown gradient kind %q", *kind)
	}
	if err != nil {
		log.Fatalf("Failed to create gradient: %v", err)
	}

	dir, err := ggrad.DirectionForLocale(*locale)
	if err != nil {
		log.Fatalf("Invalid locale: %v", err)
	}

	target := ggrad.RectXYWH(0, 0, float64(*width), float64(*height))
	args, err := ggrad.Build(g, target,
		ggrad.WithResampler(colorspace.Resampler{}),
		ggrad.WithDevicePixelRatio(*dpr),
		ggrad.WithTextDirection(dir),
	)
	if err != nil {
		log.Fatalf("Failed to build gradient: %v", err)
	}

	pm := ggrad.NewPixmap(*width, *height)
	shader := ggrad.NewShader(args)
	if *ellipse {
		ggrad.FillEllipse(pm, target, shader)
	} else {
		ggrad.FillRect(pm, target, shader)
	}

	if err := pm.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Gradient saved to %s (%dx%d, %d colors, resampled=%v)\n",
		*output, *width, *height, len(args.Colors), args.Resampled)
}

// parseColors parses hex colors and converts each into its requested
// color space.
func parseColors(hexes, spaces string) ([]ggrad.Color, error) {
	parts := splitList(hexes)
	var spaceNames []string
	if spaces != "" {
		spaceNames = splitList(spaces)
		if len(spaceNames) != len(parts) {
			return nil, fmt.Errorf("%d color spaces for %d colors", len(spaceNames), len(parts))
		}
	}

	cols := make([]ggrad.Color, len(parts))
	for i, p := range parts {
		c, ok := ggrad.ParseHex(p)
		if !ok {
			return nil, fmt.Errorf("bad hex color %q", p)
		}
		cols[i] = c
		if spaceNames == nil {
			continue
		}
		space, err := ggrad.ParseColorSpace(spaceNames[i])
		if err != nil {
			return nil, err
		}
		if cols[i], err = colorspace.Convert(c, space); err != nil {
			return nil, err
		}
	}
	return cols, nil
}

func gradientOptions(stops, space string, invert bool, density, rotate float64, extend string) ([]ggrad.GradientOption, error) {
	opts := []ggrad.GradientOption{ggrad.WithInvert(invert)}

	if stops != "" {
		parts := splitList(stops)
		offsets := make([]float64, len(parts))
		for i, p := range parts {
			v, err := strconv.ParseFloat(p, 64)
			if err != nil {
				return nil, fmt.Errorf("stop %d: %w", i, err)
			}
			offsets[i] = v
		}
		opts = append(opts, ggrad.WithStops(offsets...))
	}

	if space != "" {
		s, err := ggrad.ParseColorSpace(space)
		if err != nil {
			return nil, err
		}
		opts = append(opts, ggrad.WithColorSpace(s))
	}

	if density != 0 {
		opts = append(opts, ggrad.WithDensity(density))
	}

	if rotate != 0 {
		opts = append(opts, ggrad.WithTransform(ggrad.Rotation(rotate*math.Pi/180)))
	}

	switch extend {
	case "pad":
		opts = append(opts, ggrad.WithExtend(ggrad.ExtendPad))
	case "repeat":
		opts = append(opts, ggrad.WithExtend(ggrad.ExtendRepeat))
	case "reflect":
		opts = append(opts, ggrad.WithExtend(ggrad.ExtendReflect))
	case "decal":
		opts = append(opts, ggrad.WithExtend(ggrad.ExtendDecal))
	default:
		return nil, fmt.Errorf("unknown extend mode %q", extend)
	}
	return opts, nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
