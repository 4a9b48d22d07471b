package prim

import "testing"

func TestSolidBackground(t *testing.T) {
	red := Hsla{H: 0, S: 1, L: 0.5, A: 1}
	b := SolidBackground(red)

	want := red.RGBA()
	if got := b.SolidColor(); got != want {
		t.Errorf("SolidColor() = %+v, want %+v", got, want)
	}
	// Solid backgrounds ignore the point and bounds.
	if got := b.ColorAt(Pt(123, 456), NewBounds(0, 0, 10, 10)); got != want {
		t.Errorf("ColorAt() = %+v, want %+v", got, want)
	}
}

func TestGradientSolidFallback(t *testing.T) {
	red := Hsla{H: 0, S: 1, L: 0.5, A: 1}
	blue := Hsla{H: 2.0 / 3, S: 1, L: 0.5, A: 1}
	b := LinearGradientBackground(90,
		LinearColorStop{Color: red, Percentage: 0},
		LinearColorStop{Color: blue, Percentage: 1},
		ColorSpaceSRGB)

	if got := b.SolidColor(); got != red.RGBA() {
		t.Errorf("gradient SolidColor() = %+v, want first stop", got)
	}
}

func TestGradientEndpoints(t *testing.T) {
	red := Hsla{H: 0, S: 1, L: 0.5, A: 1}
	blue := Hsla{H: 2.0 / 3, S: 1, L: 0.5, A: 1}
	bounds := NewBounds(0, 0, 100, 100)

	// 90 degrees is a left-to-right gradient in the CSS convention.
	b := LinearGradientBackground(90,
		LinearColorStop{Color: red, Percentage: 0},
		LinearColorStop{Color: blue, Percentage: 1},
		ColorSpaceSRGB)

	left := b.ColorAt(Pt(0, 50), bounds)
	if absf(left.R-1) > 1e-5 || absf(left.B) > 1e-5 {
		t.Errorf("left edge = %+v, want red", left)
	}
	right := b.ColorAt(Pt(100, 50), bounds)
	if absf(right.B-1) > 1e-5 || absf(right.R) > 1e-5 {
		t.Errorf("right edge = %+v, want blue", right)
	}
}

func TestGradientTClamped(t *testing.T) {
	red := Hsla{H: 0, S: 1, L: 0.5, A: 1}
	blue := Hsla{H: 2.0 / 3, S: 1, L: 0.5, A: 1}
	bounds := NewBounds(0, 0, 100, 100)

	b := LinearGradientBackground(90,
		LinearColorStop{Color: red, Percentage: 0},
		LinearColorStop{Color: blue, Percentage: 1},
		ColorSpaceSRGB)

	// Points beyond the bounds clamp to the endpoint colors.
	before := b.ColorAt(Pt(-50, 50), bounds)
	if before != b.ColorAt(Pt(0, 50), bounds) {
		t.Errorf("point before axis start = %+v, want start color", before)
	}
	after := b.ColorAt(Pt(250, 50), bounds)
	if after != b.ColorAt(Pt(100, 50), bounds) {
		t.Errorf("point past axis end = %+v, want end color", after)
	}
}

func TestGradientStopPercentages(t *testing.T) {
	black := Hsla{H: 0, S: 0, L: 0, A: 1}
	white := Hsla{H: 0, S: 0, L: 1, A: 1}
	bounds := NewBounds(0, 0, 100, 100)

	// Stops at 25% and 75%: everything left of x=25 is black, right of
	// x=75 is white.
	b := LinearGradientBackground(90,
		LinearColorStop{Color: black, Percentage: 0.25},
		LinearColorStop{Color: white, Percentage: 0.75},
		ColorSpaceSRGB)

	if got := b.ColorAt(Pt(10, 50), bounds); absf(got.R) > 1e-5 {
		t.Errorf("before first stop = %+v, want black", got)
	}
	if got := b.ColorAt(Pt(90, 50), bounds); absf(got.R-1) > 1e-5 {
		t.Errorf("past last stop = %+v, want white", got)
	}
	mid := b.ColorAt(Pt(50, 50), bounds)
	if absf(mid.R-0.5) > 1e-4 {
		t.Errorf("midpoint = %+v, want 0.5 gray", mid)
	}
}

func TestGradientColorSpacesDiffer(t *testing.T) {
	blue := Hsla{H: 2.0 / 3, S: 1, L: 0.5, A: 1}
	yellow := Hsla{H: 1.0 / 6, S: 1, L: 0.5, A: 1}
	bounds := NewBounds(0, 0, 100, 100)
	mid := Pt(50, 50)

	stop0 := LinearColorStop{Color: blue, Percentage: 0}
	stop1 := LinearColorStop{Color: yellow, Percentage: 1}

	srgb := LinearGradientBackground(90, stop0, stop1, ColorSpaceSRGB).ColorAt(mid, bounds)
	oklab := LinearGradientBackground(90, stop0, stop1, ColorSpaceOklab).ColorAt(mid, bounds)
	linear := LinearGradientBackground(90, stop0, stop1, ColorSpaceLinear).ColorAt(mid, bounds)

	if absf(srgb.G-oklab.G) < 1e-3 {
		t.Errorf("sRGB and Oklab midpoints should differ: %+v vs %+v", srgb, oklab)
	}
	if absf(srgb.G-linear.G) < 1e-3 {
		t.Errorf("sRGB and linear midpoints should differ: %+v vs %+v", srgb, linear)
	}

	// Endpoints agree across spaces after the round trip back to sRGB.
	for _, space := range []ColorSpace{ColorSpaceSRGB, ColorSpaceOklab, ColorSpaceLinear} {
		got := LinearGradientBackground(90, stop0, stop1, space).ColorAt(Pt(0, 50), bounds)
		want := blue.RGBA()
		if absf(got.R-want.R) > 1e-3 || absf(got.G-want.G) > 1e-3 || absf(got.B-want.B) > 1e-3 {
			t.Errorf("%s start color = %+v, want %+v", space, got, want)
		}
	}
}

func TestGradientDegenerateInputs(t *testing.T) {
	red := Hsla{H: 0, S: 1, L: 0.5, A: 1}
	blue := Hsla{H: 2.0 / 3, S: 1, L: 0.5, A: 1}

	// Zero-size bounds must not produce NaN.
	b := LinearGradientBackground(90,
		LinearColorStop{Color: red, Percentage: 0},
		LinearColorStop{Color: blue, Percentage: 1},
		ColorSpaceSRGB)
	got := b.ColorAt(Pt(0, 0), Bounds{})
	for _, v := range []float32{got.R, got.G, got.B, got.A} {
		if v != v {
			t.Fatalf("zero bounds produced NaN: %+v", got)
		}
	}

	// Coincident stop percentages snap to one side or the other.
	eq := LinearGradientBackground(90,
		LinearColorStop{Color: red, Percentage: 0.5},
		LinearColorStop{Color: blue, Percentage: 0.5},
		ColorSpaceSRGB)
	bounds := NewBounds(0, 0, 100, 100)
	if got := eq.ColorAt(Pt(10, 50), bounds); got != red.RGBA() {
		t.Errorf("left of coincident stops = %+v, want red", got)
	}
	if got := eq.ColorAt(Pt(90, 50), bounds); got != blue.RGBA() {
		t.Errorf("right of coincident stops = %+v, want blue", got)
	}
}

func TestColorSpaceString(t *testing.T) {
	tests := []struct {
		space ColorSpace
		want  string
	}{
		{ColorSpaceSRGB, "sRGB"},
		{ColorSpaceOklab, "Oklab"},
		{ColorSpaceLinear, "linear"},
		{ColorSpace(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.space.String(); got != tt.want {
			t.Errorf("ColorSpace(%d).String() = %q, want %q", tt.space, got, tt.want)
		}
	}
}
