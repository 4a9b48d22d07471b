package prim

import "testing"

func TestBlendColor(t *testing.T) {
	c := RGBA{R: 0.8, G: 0.4, B: 0.2, A: 0.5}

	t.Run("straight", func(t *testing.T) {
		got := BlendColor(c, 0.5, false)
		if got.R != c.R || got.G != c.G || got.B != c.B {
			t.Errorf("straight output changed RGB: %+v", got)
		}
		if absf(got.A-0.25) > 1e-6 {
			t.Errorf("alpha = %f, want 0.25", got.A)
		}
	})

	t.Run("premultiplied", func(t *testing.T) {
		got := BlendColor(c, 0.5, true)
		if absf(got.A-0.25) > 1e-6 {
			t.Errorf("alpha = %f, want 0.25", got.A)
		}
		if absf(got.R-c.R*0.25) > 1e-6 || absf(got.G-c.G*0.25) > 1e-6 || absf(got.B-c.B*0.25) > 1e-6 {
			t.Errorf("premultiplied RGB = %+v", got)
		}
	})

	t.Run("zero coverage", func(t *testing.T) {
		if got := BlendColor(c, 0, false); got.A != 0 {
			t.Errorf("alpha = %f, want 0", got.A)
		}
	})
}

func TestOver(t *testing.T) {
	red := RGBA{R: 1, A: 1}
	blue := RGBA{B: 1, A: 1}

	t.Run("opaque above wins", func(t *testing.T) {
		got := Over(red, blue)
		if absf(got.B-1) > 1e-6 || absf(got.R) > 1e-6 || absf(got.A-1) > 1e-6 {
			t.Errorf("Over(red, blue) = %+v, want blue", got)
		}
	})

	t.Run("transparent above is no-op", func(t *testing.T) {
		got := Over(red, RGBA{})
		if absf(got.R-1) > 1e-6 || absf(got.A-1) > 1e-6 {
			t.Errorf("Over(red, transparent) = %+v, want red", got)
		}
	})

	t.Run("half alpha mixes", func(t *testing.T) {
		got := Over(red, RGBA{B: 1, A: 0.5})
		if absf(got.R-0.5) > 1e-6 || absf(got.B-0.5) > 1e-6 || absf(got.A-1) > 1e-6 {
			t.Errorf("Over(red, half blue) = %+v", got)
		}
	})

	t.Run("both transparent", func(t *testing.T) {
		if got := Over(RGBA{}, RGBA{}); got != (RGBA{}) {
			t.Errorf("Over(transparent, transparent) = %+v", got)
		}
	})
}

func TestOverPremultiplied(t *testing.T) {
	red := RGBA{R: 1, A: 1}.Premultiply()
	halfBlue := RGBA{B: 1, A: 0.5}.Premultiply()

	got := OverPremultiplied(red, halfBlue)
	if absf(got.R-0.5) > 1e-6 || absf(got.B-0.5) > 1e-6 || absf(got.A-1) > 1e-6 {
		t.Errorf("OverPremultiplied = %+v", got)
	}

	// Compositing is not commutative; order must matter.
	ab := OverPremultiplied(red, halfBlue)
	ba := OverPremultiplied(halfBlue, red)
	if ab == ba {
		t.Error("premultiplied over should not be commutative for these inputs")
	}
}
