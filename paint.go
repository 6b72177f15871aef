package ggrad

import (
	"image"
	"image/draw"

	"golang.org/x/image/vector"
)

// FillRect paints r on dst with src, typically a *Shader, composited
// over the existing pixels with anti-aliased edges.
func FillRect(dst draw.Image, r Rect, src image.Image) {
	fill(dst, src, func(z *vector.Rasterizer, off Point) {
		z.MoveTo(float32(r.Min.X-off.X), float32(r.Min.Y-off.Y))
		z.LineTo(float32(r.Max.X-off.X), float32(r.Min.Y-off.Y))
		z.LineTo(float32(r.Max.X-off.X), float32(r.Max.Y-off.Y))
		z.LineTo(float32(r.Min.X-off.X), float32(r.Max.Y-off.Y))
		z.ClosePath()
	}, r)
}

// kappa is the control point distance for a cubic quarter circle.
const kappa = 0.5522847498

// FillEllipse paints the ellipse inscribed in r on dst with src.
func FillEllipse(dst draw.Image, r Rect, src image.Image) {
	fill(dst, src, func(z *vector.Rasterizer, off Point) {
		c := r.Center().Sub(off)
		rx, ry := r.Width()/2, r.Height()/2
		kx, ky := rx*kappa, ry*kappa
		pt := func(x, y float64) (float32, float32) { return float32(x), float32(y) }

		z.MoveTo(pt(c.X+rx, c.Y))
		x1, y1 := pt(c.X+rx, c.Y+ky)
		x2, y2 := pt(c.X+kx, c.Y+ry)
		x3, y3 := pt(c.X, c.Y+ry)
		z.CubeTo(x1, y1, x2, y2, x3, y3)
		x1, y1 = pt(c.X-kx, c.Y+ry)
		x2, y2 = pt(c.X-rx, c.Y+ky)
		x3, y3 = pt(c.X-rx, c.Y)
		z.CubeTo(x1, y1, x2, y2, x3, y3)
		x1, y1 = pt(c.X-rx, c.Y-ky)
		x2, y2 = pt(c.X-kx, c.Y-ry)
		x3, y3 = pt(c.X, c.Y-ry)
		z.CubeTo(x1, y1, x2, y2, x3, y3)
		x1, y1 = pt(c.X+kx, c.Y-ry)
		x2, y2 = pt(c.X+rx, c.Y-ky)
		x3, y3 = pt(c.X+rx, c.Y)
		z.CubeTo(x1, y1, x2, y2, x3, y3)
		z.ClosePath()
	}, r)
}

// fill rasterizes the path traced by build, restricted to the pixels
// covering r and dst, and draws src through it.
func fill(dst draw.Image, src image.Image, build func(z *vector.Rasterizer, off Point), r Rect) {
	area := pixelBounds(r).Intersect(dst.Bounds())
	if area.Empty() {
		return
	}
	z := vector.NewRasterizer(area.Dx(), area.Dy())
	z.DrawOp = draw.Over
	build(z, Pt(float64(area.Min.X), float64(area.Min.Y)))
	z.Draw(dst, area, src, area.Min)
}
