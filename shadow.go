package prim

import "github.com/chewxy/math32"

// Shadow is a soft drop shadow cast by a rounded rectangle. Coverage is a
// closed-form approximation of a Gaussian blur of the rounded-rect mask:
// the horizontal dimension integrates analytically through erf, and the
// vertical dimension is sampled numerically.
type Shadow struct {
	Order       uint32
	Bounds      Bounds
	ContentMask Bounds
	CornerRadii Corners
	Color       Hsla
	BlurRadius  float32
}

// shadowSampleCount is the number of vertical samples taken per pixel.
// Four is a deliberate minimal-sample tradeoff; raising it improves the
// approximation without changing its semantics.
const shadowSampleCount = 4

// shadowBlurMargin is the multiple of the blur radius by which the shadow's
// bounds expand on all sides, covering the effective support of the kernel.
const shadowBlurMargin = 3

// minBlurSigma is the blur radius below which the evaluator degenerates to
// the hard rounded-rect mask rather than dividing by a vanishing sigma.
const minBlurSigma = 1e-3

// expandedBounds returns the shadow's bounds grown by the blur margin, so
// the penumbra is not clipped by the unexpanded shape bounds.
func (s *Shadow) expandedBounds() Bounds {
	return s.Bounds.Dilate(shadowBlurMargin * s.BlurRadius)
}

// coverageAt returns the blurred mask value at a point. The value is the
// accumulated Gaussian-weighted coverage and is not clamped further.
func (s *Shadow) coverageAt(point Point) float32 {
	halfSize := s.Bounds.HalfSize()
	centerToPoint := point.Sub(s.Bounds.Center())
	cornerRadius := PickCornerRadius(centerToPoint, s.CornerRadii)

	if s.BlurRadius < minBlurSigma {
		return sdfCoverage(RoundedRectSDF(centerToPoint, halfSize, cornerRadius))
	}

	// The signal is non-zero only over the shape's vertical span
	// intersected with the kernel's support, so sampling is restricted
	// to that window.
	low := centerToPoint.Y - halfSize.Y
	high := centerToPoint.Y + halfSize.Y
	start := clamp32(-shadowBlurMargin*s.BlurRadius, low, high)
	end := clamp32(shadowBlurMargin*s.BlurRadius, low, high)

	step := (end - start) / shadowSampleCount
	y := start + step/2
	var alpha float32
	for i := 0; i < shadowSampleCount; i++ {
		blur := blurAlongX(centerToPoint.X, centerToPoint.Y-y, s.BlurRadius, cornerRadius, halfSize)
		alpha += blur * gaussian(y, s.BlurRadius) * step
		y += step
	}
	return alpha
}

// colorAt evaluates the shadow at a point. The shadow color's own alpha
// controls darkness; the blurred mask controls spatial coverage. The two
// multiply in the final output.
func (s *Shadow) colorAt(point Point, color RGBA, premultiplied bool) RGBA {
	return BlendColor(color, s.coverageAt(point), premultiplied)
}

// gaussian is the normalized Gaussian density with standard deviation sigma.
func gaussian(x, sigma float32) float32 {
	return math32.Exp(-(x*x)/(2*sigma*sigma)) / (math32.Sqrt(2*math32.Pi) * sigma)
}

// erf approximates the error function with the Abramowitz–Stegun 7.1.27
// rational polynomial, sign-corrected for negative inputs. The shadow
// integral needs only this accuracy, and the fixed-degree form keeps the
// per-pixel cost flat.
func erf(x float32) float32 {
	s := sign32(x)
	a := math32.Abs(x)
	r := 1 + (0.278393+(0.230389+0.078108*a*a)*a)*a
	r *= r
	return s - s/(r*r)
}

// blurAlongX computes the analytic 1D Gaussian blur of the rounded
// rectangle's horizontal slice at vertical offset y from the shape center.
func blurAlongX(x, y, sigma, cornerRadius float32, halfSize Point) float32 {
	// Slice width shrinks within the rounded corners.
	delta := math32.Min(halfSize.Y-cornerRadius-math32.Abs(y), 0)
	curved := halfSize.X - cornerRadius + math32.Sqrt(math32.Max(0, cornerRadius*cornerRadius-delta*delta))

	inv := 1 / (math32.Sqrt2 * sigma)
	integralLow := 0.5 + 0.5*erf((x-curved)*inv)
	integralHigh := 0.5 + 0.5*erf((x+curved)*inv)
	return integralHigh - integralLow
}

// sign32 returns -1, 0, or 1 matching the sign of x.
func sign32(x float32) float32 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// clamp32 restricts x to [lo, hi].
func clamp32(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
