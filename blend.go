package prim

// BlendColor applies a coverage value to a color, producing the final
// per-pixel contribution of an evaluator.
//
// The output alpha is color.A * coverage. When premultiplied is true, the
// RGB components are additionally scaled by that final alpha (premultiplied
// output); otherwise they are left unscaled (straight alpha).
func BlendColor(c RGBA, coverage float32, premultiplied bool) RGBA {
	alpha := c.A * coverage
	if premultiplied {
		return RGBA{R: c.R * alpha, G: c.G * alpha, B: c.B * alpha, A: alpha}
	}
	return RGBA{R: c.R, G: c.G, B: c.B, A: alpha}
}

// Over composites above over below. Both inputs and the result carry
// straight (non-premultiplied) alpha.
func Over(below, above RGBA) RGBA {
	alpha := above.A + below.A*(1-above.A)
	if alpha == 0 {
		return RGBA{}
	}
	inv := 1 / alpha
	return RGBA{
		R: (above.R*above.A + below.R*below.A*(1-above.A)) * inv,
		G: (above.G*above.A + below.G*below.A*(1-above.A)) * inv,
		B: (above.B*above.A + below.B*below.A*(1-above.A)) * inv,
		A: alpha,
	}
}

// OverPremultiplied composites a premultiplied source over a premultiplied
// destination. This is the frame-buffer accumulation step of the renderer's
// ordered reduce; it is not commutative, so callers must apply sources in
// submission order.
func OverPremultiplied(dst, src RGBA) RGBA {
	inv := 1 - src.A
	return RGBA{
		R: src.R + dst.R*inv,
		G: src.G + dst.G*inv,
		B: src.B + dst.B*inv,
		A: src.A + dst.A*inv,
	}
}
