package ggrad

// Alignment is a point within a rectangle, expressed relative to its
// center: (-1, -1) is the top-left corner, (1, 1) the bottom-right corner.
// Values outside [-1, 1] address points outside the rectangle.
//
// A Directional alignment measures X from the start edge instead of the
// left edge, so it mirrors horizontally under [RightToLeft].
type Alignment struct {
	X, Y        float64
	Directional bool
}

// Common alignments.
var (
	TopLeft      = Alignment{X: -1, Y: -1}
	TopCenter    = Alignment{X: 0, Y: -1}
	TopRight     = Alignment{X: 1, Y: -1}
	CenterLeft   = Alignment{X: -1, Y: 0}
	Center       = Alignment{X: 0, Y: 0}
	CenterRight  = Alignment{X: 1, Y: 0}
	BottomLeft   = Alignment{X: -1, Y: 1}
	BottomCenter = Alignment{X: 0, Y: 1}
	BottomRight  = Alignment{X: 1, Y: 1}

	CenterStart = Alignment{X: -1, Y: 0, Directional: true}
	CenterEnd   = Alignment{X: 1, Y: 0, Directional: true}
)

// Align creates an absolute alignment.
func Align(x, y float64) Alignment {
	return Alignment{X: x, Y: y}
}

// AlignDirectional creates an alignment whose X axis follows the text
// direction.
func AlignDirectional(start, y float64) Alignment {
	return Alignment{X: start, Y: y, Directional: true}
}

// Resolve returns the absolute alignment for the given text direction.
func (a Alignment) Resolve(dir TextDirection) Alignment {
	if a.Directional && dir == RightToLeft {
		return Alignment{X: -a.X, Y: a.Y}
	}
	return Alignment{X: a.X, Y: a.Y}
}

// WithinRect returns the point a addresses inside r.
func (a Alignment) WithinRect(r Rect, dir TextDirection) Point {
	a = a.Resolve(dir)
	halfW := r.Width() / 2
	halfH := r.Height() / 2
	return Point{
		X: r.Min.X + halfW + a.X*halfW,
		Y: r.Min.Y + halfH + a.Y*halfH,
	}
}
