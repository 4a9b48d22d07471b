package prim

import "github.com/chewxy/math32"

// Underline is a horizontal text decoration, either a straight rule or the
// wavy squiggle used for diagnostics. Bounds span the decorated run; for
// the straight form the geometry clamps the height to the thickness, and
// for the wavy form it dilates vertically to make room for the wave.
type Underline struct {
	Order       uint32
	Bounds      Bounds
	ContentMask Bounds
	Color       Hsla
	Thickness   float32
	Wavy        bool
}

// Wave shape constants, in pixels.
const (
	wavyAmplitude = 1.5
	wavyPeriod    = 6.0
)

// renderBounds returns the rectangle the underline actually covers: the
// straight form is exactly Thickness tall, the wavy form grows by the wave
// amplitude above and below.
func (u *Underline) renderBounds() Bounds {
	if u.Wavy {
		return u.Bounds.dilateY(wavyAmplitude)
	}
	b := u.Bounds
	b.Size.Height = math32.Min(b.Size.Height, u.Thickness)
	return b
}

// coverageAt returns the underline's coverage at a point. The straight form
// is the plain rect ramp over its render bounds, so fractional bounds fall
// off to zero within the antialias band. The wavy form measures vertical
// distance to a sine centerline; the run's horizontal ends get the same
// rect ramp.
func (u *Underline) coverageAt(point Point) float32 {
	bounds := u.renderBounds()
	edgeToPoint := point.Sub(bounds.Center()).Abs().Sub(bounds.HalfSize())
	if !u.Wavy {
		return sdfCoverage(math32.Max(edgeToPoint.X, edgeToPoint.Y))
	}

	local := point.Sub(bounds.Origin)

	// Centerline in expanded-local coordinates: one amplitude of headroom
	// above, oscillating with the fixed period.
	center := wavyAmplitude + wavyAmplitude*math32.Sin(2*math32.Pi*local.X/wavyPeriod)
	distance := math32.Abs(local.Y - center)

	halfThickness := u.Thickness / 2
	wave := saturate(halfThickness - distance + antialiasThreshold)
	return math32.Min(wave, sdfCoverage(edgeToPoint.X))
}

// colorAt evaluates the underline at a point.
func (u *Underline) colorAt(point Point, color RGBA, premultiplied bool) RGBA {
	return BlendColor(color, u.coverageAt(point), premultiplied)
}
