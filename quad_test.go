package prim

import "testing"

func testQuad() Quad {
	return Quad{
		Bounds:      NewBounds(0, 0, 100, 100),
		ContentMask: NewBounds(0, 0, 100, 100),
		Background:  SolidBackground(Hsla{H: 0, S: 1, L: 0.5, A: 1}),
		BorderColor: Hsla{H: 0, S: 0, L: 0, A: 1},
		CornerRadii: UniformCorners(10),
		BorderWidths: UniformEdges(2),
	}
}

func TestQuadBorderedRounded(t *testing.T) {
	q := testQuad()
	v := q.prepare()

	tests := []struct {
		name  string
		p     Point
		check func(t *testing.T, c RGBA)
	}{
		{"deep interior is the fill", Pt(50.5, 50.5), func(t *testing.T, c RGBA) {
			if absf(c.R-1) > 1e-5 || absf(c.G) > 1e-5 || absf(c.A-1) > 1e-5 {
				t.Errorf("got %+v, want opaque red", c)
			}
		}},
		{"outside the rounded corner is transparent", Pt(1.5, 1.5), func(t *testing.T, c RGBA) {
			if c.A > 1e-5 {
				t.Errorf("got alpha %f, want 0", c.A)
			}
		}},
		{"top border is the border color", Pt(50.5, 1.5), func(t *testing.T, c RGBA) {
			if absf(c.R) > 1e-5 || absf(c.G) > 1e-5 || absf(c.B) > 1e-5 || absf(c.A-1) > 1e-5 {
				t.Errorf("got %+v, want opaque black", c)
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, q.colorAt(tt.p, v, false))
		})
	}
}

func TestQuadFastPathFlat(t *testing.T) {
	q := Quad{
		Bounds:      NewBounds(0, 0, 10, 10),
		ContentMask: NewBounds(0, 0, 10, 10),
		Background:  SolidBackground(Hsla{H: 2.0 / 3, S: 1, L: 0.5, A: 1}),
	}
	v := q.prepare()

	// No border and no radius: every covered point is exactly the fill.
	for _, p := range []Point{Pt(0.5, 0.5), Pt(5, 5), Pt(9.5, 9.5)} {
		c := q.colorAt(p, v, false)
		if absf(c.B-1) > 1e-6 || absf(c.A-1) > 1e-6 {
			t.Errorf("colorAt(%+v) = %+v, want opaque blue", p, c)
		}
	}
}

func TestQuadFastPathFractionalEdge(t *testing.T) {
	q := Quad{
		Bounds:      NewBounds(0, 0, 50.3, 50.3),
		ContentMask: NewBounds(0, 0, 100, 100),
		Background:  SolidBackground(Hsla{H: 0, S: 1, L: 0.5, A: 1}),
	}
	v := q.prepare()

	// Pixel centers near the fractional right edge walk the 0.5-pixel
	// ramp: 50.5 is 0.2 past the edge, 51.5 is a full pixel past it.
	tests := []struct {
		name string
		p    Point
		want float32
		tol  float64
	}{
		{"inside", Pt(49.5, 25.5), 1, 1e-3},
		{"straddling the edge", Pt(50.5, 25.5), 0.3, 1e-3},
		{"outside", Pt(51.5, 25.5), 0, 1e-6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := q.colorAt(tt.p, v, false).A; absf(got-tt.want) > tt.tol {
				t.Errorf("alpha at %+v = %f, want %f", tt.p, got, tt.want)
			}
		})
	}

	// Integer-aligned bounds keep the exact 1/0 split at pixel centers.
	aligned := q
	aligned.Bounds = NewBounds(0, 0, 50, 50)
	if got := aligned.colorAt(Pt(49.5, 25.5), v, false).A; got != 1 {
		t.Errorf("aligned interior alpha = %f, want 1", got)
	}
	if got := aligned.colorAt(Pt(50.5, 25.5), v, false).A; got != 0 {
		t.Errorf("aligned exterior alpha = %f, want 0", got)
	}
}

func TestQuadEdgeCoverageRamp(t *testing.T) {
	q := Quad{
		Bounds:      NewBounds(0, 0, 100, 100),
		ContentMask: NewBounds(0, 0, 100, 100),
		Background:  SolidBackground(Hsla{H: 0, S: 0, L: 0, A: 1}),
		CornerRadii: UniformCorners(10),
	}
	v := q.prepare()

	// On the outer edge the antialias ramp yields half coverage.
	c := q.colorAt(Pt(100, 50), v, false)
	if absf(c.A-0.5) > 1e-5 {
		t.Errorf("alpha on edge = %f, want 0.5", c.A)
	}
}

func TestQuadRadialFalloffMonotonic(t *testing.T) {
	q := testQuad()
	v := q.prepare()

	// Walking outward through a rounded corner, alpha never increases.
	prev := float32(2)
	for step := float32(0); step < 20; step += 0.25 {
		p := Pt(10-step*0.7071, 10-step*0.7071)
		a := q.colorAt(p, v, false).A
		if a > prev+1e-6 {
			t.Errorf("alpha increased at step %f: %f -> %f", step, prev, a)
		}
		prev = a
	}
}

func TestQuadZeroWidthBorderSide(t *testing.T) {
	q := Quad{
		Bounds:       NewBounds(0, 0, 100, 100),
		ContentMask:  NewBounds(0, 0, 100, 100),
		Background:   SolidBackground(Hsla{H: 0, S: 1, L: 0.5, A: 1}),
		BorderColor:  Hsla{H: 0, S: 0, L: 0, A: 1},
		BorderWidths: Edges{Top: 4},
	}
	v := q.prepare()

	// Top border applies.
	top := q.colorAt(Pt(50.5, 1.5), v, false)
	if absf(top.R) > 1e-5 {
		t.Errorf("top border = %+v, want black", top)
	}
	// Left side has no border; a point near the left edge is the fill.
	left := q.colorAt(Pt(1.5, 50.5), v, false)
	if absf(left.R-1) > 1e-5 {
		t.Errorf("left edge = %+v, want red fill", left)
	}
}

func TestQuadGradientFallsBackToFirstStop(t *testing.T) {
	red := Hsla{H: 0, S: 1, L: 0.5, A: 1}
	blue := Hsla{H: 2.0 / 3, S: 1, L: 0.5, A: 1}
	q := Quad{
		Bounds:      NewBounds(0, 0, 100, 100),
		ContentMask: NewBounds(0, 0, 100, 100),
		Background: LinearGradientBackground(90,
			LinearColorStop{Color: red, Percentage: 0},
			LinearColorStop{Color: blue, Percentage: 1},
			ColorSpaceSRGB),
	}
	v := q.prepare()

	// The quad pipeline evaluates only solid fills; both ends of the quad
	// get the first stop's color.
	for _, p := range []Point{Pt(5, 50), Pt(95, 50)} {
		c := q.colorAt(p, v, false)
		if absf(c.R-1) > 1e-5 || absf(c.B) > 1e-5 {
			t.Errorf("colorAt(%+v) = %+v, want red", p, c)
		}
	}
}
