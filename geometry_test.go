package ggrad

import (
	"math"
	"testing"
)

func TestLinearSampleCount(t *testing.T) {
	tests := []struct {
		name       string
		start, end Point
		dpr        float64
		density    float64
		want       int
	}{
		{"horizontal", Pt(0, 0), Pt(100, 0), 2, 0.25, 50},
		{"diagonal rounds up", Pt(0, 0), Pt(3, 4), 1, 0.5, 3},
		{"reversed", Pt(100, 0), Pt(0, 0), 1, 0.5, 50},
		{"coincident", Pt(7, 7), Pt(7, 7), 3, 1, 0},
		{"zero ratio", Pt(0, 0), Pt(100, 0), 0, 1, 0},
		{"negative ratio", Pt(0, 0), Pt(100, 0), -2, 1, 0},
		{"NaN ratio", Pt(0, 0), Pt(100, 0), math.NaN(), 1, 0},
		{"NaN point", Pt(math.NaN(), 0), Pt(100, 0), 1, 1, 0},
		{"infinite point", Pt(math.Inf(-1), 0), Pt(100, 0), 1, 1, maxSampleCount},
		{"overflowing span", Pt(-1e308, 0), Pt(1e308, 0), 1, 1, maxSampleCount},
		{"infinite point zero ratio", Pt(math.Inf(1), 0), Pt(0, 0), 0, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LinearSampleCount(tt.start, tt.end, tt.dpr, tt.density)
			if got != tt.want {
				t.Errorf("LinearSampleCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRadialSampleCount(t *testing.T) {
	tests := []struct {
		name    string
		radius  float64
		dpr     float64
		density float64
		want    int
	}{
		{"default density", 80, 1, DefaultRadialDensity, 10},
		{"retina", 80, 2, DefaultRadialDensity, 20},
		{"fractional", 3, 1, 0.5, 2},
		{"zero radius", 0, 2, 1, 0},
		{"negative radius", -50, 2, 1, 0},
		{"NaN radius", math.NaN(), 2, 1, 0},
		{"infinite radius", math.Inf(1), 2, 1, maxSampleCount},
		{"negative infinite radius", math.Inf(-1), 2, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RadialSampleCount(tt.radius, tt.dpr, tt.density)
			if got != tt.want {
				t.Errorf("RadialSampleCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSweepSampleCount(t *testing.T) {
	tests := []struct {
		name          string
		start, end    float64
		width, height float64
		dpr, density  float64
		want          int
	}{
		// 300x400 has a 500 px diagonal.
		{"full revolution", 0, 2 * math.Pi, 300, 400, 1, 0.25, 125},
		{"half revolution", 0, math.Pi, 400, 300, 1, 0.5, 125},
		{"end clamped to 2π", 0, 3 * math.Pi, 300, 400, 1, 0.25, 125},
		{"start clamped to 0", -1, math.Pi, 300, 400, 1, 0.5, 125},
		{"empty slice", math.Pi, math.Pi, 300, 400, 1, 1, 0},
		{"reversed slice", math.Pi, 0, 300, 400, 1, 1, 0},
		{"empty rect", 0, 2 * math.Pi, 0, 0, 1, 1, 0},
		{"NaN angle", math.NaN(), math.Pi, 300, 400, 1, 0.5, 125},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SweepSampleCount(tt.start, tt.end, tt.width, tt.height, tt.dpr, tt.density)
			if got != tt.want {
				t.Errorf("SweepSampleCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSampleCountMonotonic(t *testing.T) {
	for _, density := range []float64{DefaultLinearDensity, DefaultRadialDensity, 0.3, 1} {
		prevLinear, prevRadial, prevSweep := 0, 0, 0
		for size := 0.0; size <= 2000; size += 0.75 {
			linear := LinearSampleCount(Pt(0, 0), Pt(size, size/2), 1.5, density)
			radial := RadialSampleCount(size, 1.5, density)
			sweep := SweepSampleCount(0.5, 4, size, size*0.6, 1.5, density)

			if linear < prevLinear {
				t.Fatalf("linear density %v: N dropped from %d to %d at size %v", density, prevLinear, linear, size)
			}
			if radial < prevRadial {
				t.Fatalf("radial density %v: N dropped from %d to %d at size %v", density, prevRadial, radial, size)
			}
			if sweep < prevSweep {
				t.Fatalf("sweep density %v: N dropped from %d to %d at size %v", density, prevSweep, sweep, size)
			}
			prevLinear, prevRadial, prevSweep = linear, radial, sweep
		}
	}
}

func TestSampleCountSaturates(t *testing.T) {
	got := LinearSampleCount(Pt(0, 0), Pt(1e300, 0), 1e300, 1)
	if got != maxSampleCount {
		t.Errorf("overflowing span: N = %d, want %d", got, maxSampleCount)
	}

	// A span past float64 range stays at least as large as a finite one.
	big := LinearSampleCount(Pt(0, 0), Pt(1e300, 0), 1, 1)
	inf := LinearSampleCount(Pt(-1e308, 0), Pt(1e308, 0), 1, 1)
	if inf < big {
		t.Errorf("N(overflowing span) = %d < N(1e300) = %d", inf, big)
	}
}

func TestResolve(t *testing.T) {
	target := RectXYWH(0, 0, 200, 100)

	t.Run("linear defaults", func(t *testing.T) {
		g := mustLinear(t, []Color{Red, Blue})
		geom := g.Resolve(target, LeftToRight)
		if geom.Start != Pt(0, 50) || geom.End != Pt(200, 50) {
			t.Errorf("Resolve() start %v end %v, want (0,50) (200,50)", geom.Start, geom.End)
		}
	})

	t.Run("linear directional rtl", func(t *testing.T) {
		g := mustLinear(t, []Color{Red, Blue}, WithBegin(CenterStart), WithEnd(CenterEnd))
		ltr := g.Resolve(target, LeftToRight)
		rtl := g.Resolve(target, RightToLeft)
		if ltr.Start != Pt(0, 50) {
			t.Errorf("ltr start = %v, want (0,50)", ltr.Start)
		}
		if rtl.Start != Pt(200, 50) || rtl.End != Pt(0, 50) {
			t.Errorf("rtl start %v end %v, want (200,50) (0,50)", rtl.Start, rtl.End)
		}
	})

	t.Run("radial uses shortest side", func(t *testing.T) {
		g, err := NewRadialGradient([]Color{Red, Blue}, WithRadius(0.5), WithFocal(TopLeft, 0.1))
		if err != nil {
			t.Fatal(err)
		}
		geom := g.Resolve(target, LeftToRight)
		if geom.Center != Pt(100, 50) {
			t.Errorf("center = %v, want (100,50)", geom.Center)
		}
		if geom.Radius != 50 {
			t.Errorf("radius = %v, want 50", geom.Radius)
		}
		if geom.Focal != Pt(0, 0) || geom.FocalRadius != 10 {
			t.Errorf("focal %v radius %v, want (0,0) 10", geom.Focal, geom.FocalRadius)
		}
	})

	t.Run("radial negative radius clamps", func(t *testing.T) {
		g, err := NewRadialGradient([]Color{Red, Blue}, WithRadius(-1))
		if err != nil {
			t.Fatal(err)
		}
		geom := g.Resolve(target, LeftToRight)
		if geom.Radius != 0 {
			t.Errorf("radius = %v, want 0", geom.Radius)
		}
		if n := geom.SampleCount(2, 1); n != 0 {
			t.Errorf("SampleCount() = %d, want 0", n)
		}
	})

	t.Run("sweep", func(t *testing.T) {
		g, err := NewSweepGradient([]Color{Red, Blue}, WithCenter(TopLeft), WithAngles(0, math.Pi))
		if err != nil {
			t.Fatal(err)
		}
		geom := g.Resolve(target, LeftToRight)
		if geom.Center != Pt(0, 0) || geom.EndAngle != math.Pi {
			t.Errorf("center %v end %v", geom.Center, geom.EndAngle)
		}
		if geom.Bounds != target {
			t.Errorf("bounds = %v, want %v", geom.Bounds, target)
		}
	})
}

func mustLinear(t *testing.T, colors []Color, opts ...GradientOption) *Gradient {
	t.Helper()
	g, err := NewLinearGradient(colors, opts...)
	if err != nil {
		t.Fatalf("NewLinearGradient() error = %v", err)
	}
	return g
}
