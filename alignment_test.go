package ggrad

import (
	"math"
	"testing"
)

func TestAlignmentWithinRect(t *testing.T) {
	r := RectXYWH(10, 20, 100, 50)

	tests := []struct {
		name string
		a    Alignment
		dir  TextDirection
		want Point
	}{
		{"top left", TopLeft, LeftToRight, Pt(10, 20)},
		{"center", Center, LeftToRight, Pt(60, 45)},
		{"bottom right", BottomRight, RightToLeft, Pt(110, 70)},
		{"outside", Align(2, 0), LeftToRight, Pt(160, 45)},
		{"start ltr", CenterStart, LeftToRight, Pt(10, 45)},
		{"start rtl", CenterStart, RightToLeft, Pt(110, 45)},
		{"end rtl", CenterEnd, RightToLeft, Pt(10, 45)},
		{"directional fraction rtl", AlignDirectional(-0.5, -1), RightToLeft, Pt(85, 20)},
		{"absolute ignores rtl", CenterLeft, RightToLeft, Pt(10, 45)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.WithinRect(r, tt.dir); got != tt.want {
				t.Errorf("WithinRect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAlignmentResolve(t *testing.T) {
	got := CenterStart.Resolve(RightToLeft)
	if got != CenterRight {
		t.Errorf("Resolve(rtl) = %+v, want %+v", got, CenterRight)
	}
	if got := CenterStart.Resolve(LeftToRight); got != CenterLeft {
		t.Errorf("Resolve(ltr) = %+v, want %+v", got, CenterLeft)
	}
}

func TestDirectionForLocale(t *testing.T) {
	tests := []struct {
		locale  string
		want    TextDirection
		wantErr bool
	}{
		{"en-US", LeftToRight, false},
		{"de", LeftToRight, false},
		{"ar", RightToLeft, false},
		{"he-IL", RightToLeft, false},
		{"fa", RightToLeft, false},
		{"az-Arab", RightToLeft, false},
		{"az-Latn", LeftToRight, false},
		{"not a locale!", LeftToRight, true},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			got, err := DirectionForLocale(tt.locale)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DirectionForLocale(%q) error = %v, wantErr %v", tt.locale, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("DirectionForLocale(%q) = %v, want %v", tt.locale, got, tt.want)
			}
		})
	}
}

func TestTextDirectionString(t *testing.T) {
	if LeftToRight.String() != "ltr" || RightToLeft.String() != "rtl" {
		t.Errorf("got %q and %q", LeftToRight, RightToLeft)
	}
}

func TestRotationKeepsCenter(t *testing.T) {
	r := RectXYWH(0, 0, 200, 100)
	m := Rotation(math.Pi/2).Matrix(r, LeftToRight)

	if c := m.TransformPoint(r.Center()); c.Distance(r.Center()) > 1e-9 {
		t.Errorf("center moved to %v", c)
	}
	// (200, 50) is 100 right of the center; a quarter turn moves it below.
	if p := m.TransformPoint(Pt(200, 50)); p.Distance(Pt(100, 150)) > 1e-9 {
		t.Errorf("TransformPoint(200, 50) = %v, want (100, 150)", p)
	}
}

func TestMatrixInvert(t *testing.T) {
	m := Translate(5, -3).Multiply(Rotate(0.7)).Multiply(Scale(2, 4))
	p := Pt(1.5, -2)

	back := m.Invert().TransformPoint(m.TransformPoint(p))
	if back.Distance(p) > 1e-9 {
		t.Errorf("inverse round trip = %v, want %v", back, p)
	}
	if !Identity().IsIdentity() || m.IsIdentity() {
		t.Error("IsIdentity() mismatch")
	}
	if got := Scale(0, 1).Invert(); !got.IsIdentity() {
		t.Errorf("singular Invert() = %v, want identity", got)
	}
}

func TestRectSides(t *testing.T) {
	r := NewRect(Pt(30, 40), Pt(10, 0))
	if r.Min != Pt(10, 0) || r.Max != Pt(30, 40) {
		t.Errorf("NewRect() = %v, want normalized corners", r)
	}
	if r.ShortestSide() != 20 || r.LongestSide() != 40 {
		t.Errorf("sides = %v, %v, want 20, 40", r.ShortestSide(), r.LongestSide())
	}
}
