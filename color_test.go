package ggrad

import (
	"errors"
	"image/color"
	"math"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		in     string
		want   RGBA
		wantOK bool
	}{
		{"#ff0000", Red, true},
		{"00ff00", Green, true},
		{"#00F", Blue, true},
		{"#fff8", RGBA{R: 1, G: 1, B: 1, A: 136.0 / 255}, true},
		{"#0000ff80", RGBA{B: 1, A: 128.0 / 255}, true},
		{"", RGBA{}, false},
		{"#12345", RGBA{}, false},
		{"#gg0000", RGBA{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseHex(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("ParseHex(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if ok && !rgbaNear(got, tt.want, 1e-9) {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
			wantHex := tt.want
			if !ok {
				wantHex = Black
			}
			if got := Hex(tt.in); !rgbaNear(got, wantHex, 1e-9) {
				t.Errorf("Hex(%q) = %v, want %v", tt.in, got, wantHex)
			}
		})
	}
}

func TestRGBAColor(t *testing.T) {
	tests := []struct {
		name string
		c    RGBA
		want color.NRGBA
	}{
		{"black", Black, color.NRGBA{A: 255}},
		{"white", White, color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{"half alpha red", RGBA2(1, 0, 0, 0.5), color.NRGBA{R: 255, A: 128}},
		{"out of range", RGBA{R: 2, G: -1, B: math.NaN(), A: 1}, color.NRGBA{R: 255, A: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Color(); got != tt.want {
				t.Errorf("Color() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromColor(t *testing.T) {
	got := FromColor(color.NRGBA{R: 255, G: 0, B: 255, A: 255})
	if !rgbaNear(got, Magenta, 1e-9) {
		t.Errorf("FromColor() = %v, want %v", got, Magenta)
	}

	// Premultiplied input is un-premultiplied.
	got = FromColor(color.RGBA{R: 128, A: 128})
	if math.Abs(got.R-1) > 0.01 || math.Abs(got.A-128.0/255) > 0.01 {
		t.Errorf("FromColor(premultiplied) = %v", got)
	}
}

func TestRGBAImplementsColor(t *testing.T) {
	var c Color = RGBA2(0.2, 0.4, 0.6, 0.8)
	if c.Space() != ColorSpaceRGB {
		t.Errorf("Space() = %v, want rgb", c.Space())
	}
	if c.Native() != c.(RGBA) {
		t.Error("Native() changed an RGBA color")
	}
	scaled := c.ScaleAlpha(0.5).(RGBA)
	if scaled.A != 0.4 || scaled.R != 0.2 {
		t.Errorf("ScaleAlpha(0.5) = %v", scaled)
	}
}

func TestRGBALerpAndClamped(t *testing.T) {
	mid := Black.Lerp(White, 0.5)
	if !rgbaNear(mid, RGB(0.5, 0.5, 0.5), 1e-12) {
		t.Errorf("Lerp() = %v", mid)
	}
	if got := (RGBA{R: 1.5, G: -0.5, B: 0.5, A: 2}).Clamped(); got != RGB(1, 0, 0.5) {
		t.Errorf("Clamped() = %v", got)
	}
}

func TestParseColorSpace(t *testing.T) {
	for s := ColorSpaceRGB; s < numColorSpaces; s++ {
		got, err := ParseColorSpace(s.String())
		if err != nil || got != s {
			t.Errorf("ParseColorSpace(%q) = %v, %v", s.String(), got, err)
		}
		if !s.Valid() {
			t.Errorf("%v.Valid() = false", s)
		}
	}

	if got, err := ParseColorSpace(" HSV "); err != nil || got != ColorSpaceHSB {
		t.Errorf("ParseColorSpace(hsv) = %v, %v, want hsb", got, err)
	}
	if _, err := ParseColorSpace("rec2020"); !errors.Is(err, ErrUnsupportedColorSpace) {
		t.Errorf("ParseColorSpace(rec2020) error = %v", err)
	}
	if ColorSpaceNone.Valid() || ColorSpace(42).Valid() {
		t.Error("none and out-of-range spaces must not be valid")
	}
	if got := ColorSpace(42).String(); got != "ColorSpace(42)" {
		t.Errorf("String() = %q", got)
	}
}
