package ggrad

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func pixelNear(t *testing.T, p *Pixmap, x, y int, want RGBA) {
	t.Helper()
	if got := p.GetPixel(x, y); !rgbaNear(got, want, 1.0/255+1e-9) {
		t.Errorf("pixel (%d, %d) = %v, want %v", x, y, got, want)
	}
}

func TestFillRect(t *testing.T) {
	p := NewPixmap(20, 20)
	p.Clear(White)

	FillRect(p, RectXYWH(5, 5, 10, 10), image.NewUniform(color.NRGBA{R: 255, A: 255}))

	pixelNear(t, p, 10, 10, Red)
	pixelNear(t, p, 5, 5, Red)
	pixelNear(t, p, 14, 14, Red)
	pixelNear(t, p, 2, 2, White)
	pixelNear(t, p, 15, 10, White)
}

func TestFillRectClipsToDestination(t *testing.T) {
	p := NewPixmap(10, 10)
	FillRect(p, RectXYWH(-5, -5, 10, 10), image.NewUniform(color.NRGBA{B: 255, A: 255}))
	pixelNear(t, p, 0, 0, Blue)
	pixelNear(t, p, 6, 6, Transparent)

	// Entirely outside: no-op.
	FillRect(p, RectXYWH(50, 50, 10, 10), image.NewUniform(color.NRGBA{R: 255, A: 255}))
	pixelNear(t, p, 9, 9, Transparent)
}

func TestFillEllipse(t *testing.T) {
	p := NewPixmap(40, 40)
	p.Clear(White)

	FillEllipse(p, RectXYWH(0, 0, 40, 40), image.NewUniform(color.NRGBA{G: 255, A: 255}))

	pixelNear(t, p, 20, 20, Green)
	pixelNear(t, p, 20, 2, Green)
	pixelNear(t, p, 0, 0, White)
	pixelNear(t, p, 39, 39, White)
}

func TestFillRectWithShader(t *testing.T) {
	target := RectXYWH(0, 0, 64, 8)
	g := mustLinear(t, []Color{Red, Blue}, WithDensity(0.5))
	args, err := Build(g, target, WithResampler(&lerpResampler{}))
	if err != nil {
		t.Fatal(err)
	}

	p := NewPixmap(64, 8)
	FillRect(p, target, NewShader(args))

	left := p.GetPixel(0, 4)
	right := p.GetPixel(63, 4)
	if left.R < 0.9 || left.B > 0.1 {
		t.Errorf("left pixel = %v, want red", left)
	}
	if right.B < 0.9 || right.R > 0.1 {
		t.Errorf("right pixel = %v, want blue", right)
	}
	// Red decreases monotonically along the row.
	prev := math.Inf(1)
	for x := 0; x < 64; x++ {
		r := p.GetPixel(x, 4).R
		if r > prev {
			t.Fatalf("red rises at x=%d: %v > %v", x, r, prev)
		}
		prev = r
	}
}

func TestPixmapSavePNG(t *testing.T) {
	p := NewPixmap(3, 2)
	p.SetPixel(1, 1, RGBA2(0, 1, 0, 0.5))

	path := filepath.Join(t.TempDir(), "out.png")
	if err := p.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Errorf("bounds = %v", img.Bounds())
	}
	got := color.NRGBAModel.Convert(img.At(1, 1)).(color.NRGBA)
	if want := (color.NRGBA{G: 255, A: 128}); got != want {
		t.Errorf("pixel = %v, want %v", got, want)
	}
}

func TestPixmapOutOfBounds(t *testing.T) {
	p := NewPixmap(2, 2)
	p.SetPixel(-1, 0, Red)
	p.SetPixel(2, 0, Red)
	if got := p.GetPixel(5, 5); got != Transparent {
		t.Errorf("GetPixel(out of bounds) = %v", got)
	}
	if p.Width() != 2 || p.Height() != 2 {
		t.Errorf("size = %dx%d", p.Width(), p.Height())
	}
}

// lerpResampler interpolates component-wise in sRGB at k/n.
type lerpResampler struct{}

func (lerpResampler) Resample(stops []ColorStop, _ ColorSpace, _ bool, n int) ([]RGBA, error) {
	out := make([]RGBA, n)
	a, b := stops[0].Color.Native(), stops[len(stops)-1].Color.Native()
	for k := range out {
		out[k] = a.Lerp(b, float64(k)/float64(n))
	}
	return out, nil
}
