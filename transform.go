package ggrad

// GradientTransform maps a gradient's geometry into device space at paint
// time. Implementations must be comparable values.
type GradientTransform interface {
	// Matrix returns the transform for a gradient painted into bounds.
	Matrix(bounds Rect, dir TextDirection) Matrix
}

// Rotation rotates a gradient by the given number of radians around the
// center of the painted rectangle.
type Rotation float64

// Matrix implements GradientTransform.
func (r Rotation) Matrix(bounds Rect, _ TextDirection) Matrix {
	c := bounds.Center()
	return Translate(c.X, c.Y).
		Multiply(Rotate(float64(r))).
		Multiply(Translate(-c.X, -c.Y))
}
