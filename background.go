package prim

import "github.com/chewxy/math32"

// ColorSpace selects the space in which gradient stop colors are
// interpolated. Interpolating in sRGB or Oklab rather than linear light is
// a perceptual-uniformity choice; the evaluated color is converted back to
// the working encoding afterwards, so the choice affects only the ramp.
type ColorSpace uint32

const (
	// ColorSpaceSRGB interpolates the sRGB-encoded components directly.
	ColorSpaceSRGB ColorSpace = iota
	// ColorSpaceOklab interpolates in the Oklab perceptual space.
	ColorSpaceOklab
	// ColorSpaceLinear interpolates in linear light.
	ColorSpaceLinear
)

// String returns a string representation of the color space.
func (s ColorSpace) String() string {
	switch s {
	case ColorSpaceSRGB:
		return "sRGB"
	case ColorSpaceOklab:
		return "Oklab"
	case ColorSpaceLinear:
		return "linear"
	default:
		return "unknown"
	}
}

// BackgroundTag discriminates the Background union.
type BackgroundTag uint32

const (
	// BackgroundSolid fills with a single color.
	BackgroundSolid BackgroundTag = iota
	// BackgroundLinearGradient fills with a two-stop linear gradient.
	BackgroundLinearGradient
)

// LinearColorStop is a gradient stop: a color and its position along the
// gradient axis in [0, 1]. Callers must order stop percentages ascending;
// the evaluator does not validate them.
type LinearColorStop struct {
	Color      Hsla
	Percentage float32
}

// Background is a tagged union describing a primitive's fill. Tag 0 uses
// the Solid color; tag 1 uses the two Stops, the Angle, and the Space.
// Further tags (radial, conic) are reserved.
type Background struct {
	Tag   BackgroundTag
	Space ColorSpace

	Solid Hsla

	// Angle is the gradient angle in degrees, measured clockwise from
	// vertical, matching CSS linear-gradient semantics.
	Angle float32
	Stops [2]LinearColorStop
}

// SolidBackground creates a solid-color background.
func SolidBackground(c Hsla) Background {
	return Background{Tag: BackgroundSolid, Solid: c}
}

// LinearGradientBackground creates a two-stop linear gradient background.
func LinearGradientBackground(angle float32, stop0, stop1 LinearColorStop, space ColorSpace) Background {
	return Background{
		Tag:   BackgroundLinearGradient,
		Space: space,
		Angle: angle,
		Stops: [2]LinearColorStop{stop0, stop1},
	}
}

// gradientEpsilon guards divisions by near-zero axis lengths and stop
// spans. Guarded values clamp locally; the evaluator always produces a
// finite color for finite input.
const gradientEpsilon = 1e-6

// SolidColor returns the background's flat color: the solid color for
// tag 0, and the first stop's color for tag 1. Pipelines that do not
// evaluate gradients (the quad pipeline in this version) use this.
func (b Background) SolidColor() RGBA {
	if b.Tag == BackgroundLinearGradient {
		return b.Stops[0].Color.RGBA()
	}
	return b.Solid.RGBA()
}

// ColorAt evaluates the background at a point. For gradients, bounds is
// the rectangle the gradient spans; the axis is normalized by whichever
// bounds dimension dominates the gradient direction, compressing the
// perpendicular axis proportionally so gradients on non-square bounds
// remain visually uniform.
func (b Background) ColorAt(point Point, bounds Bounds) RGBA {
	if b.Tag != BackgroundLinearGradient {
		return b.Solid.RGBA()
	}

	radians := (math32.Mod(b.Angle, 360) - 90) * math32.Pi / 180
	sin, cos := math32.Sincos(radians)
	direction := Point{X: cos, Y: sin}

	// Expand the short side to match the long side.
	if bounds.Size.Width > bounds.Size.Height {
		if bounds.Size.Width > gradientEpsilon {
			direction.Y *= bounds.Size.Height / bounds.Size.Width
		}
	} else {
		if bounds.Size.Height > gradientEpsilon {
			direction.X *= bounds.Size.Width / bounds.Size.Height
		}
	}

	t := b.gradientT(point, bounds, direction)

	stop0, stop1 := b.stopColors()
	mixed := stop0.Lerp(stop1, t)

	switch b.Space {
	case ColorSpaceOklab:
		return LinearToSRGBColor(OklabToLinearSRGB(mixed))
	case ColorSpaceLinear:
		return LinearToSRGBColor(mixed)
	default:
		return mixed
	}
}

// gradientT projects a point onto the gradient axis and maps it into [0, 1]
// through the two stop percentages.
func (b Background) gradientT(point Point, bounds Bounds, direction Point) float32 {
	length := direction.Length()
	if length < gradientEpsilon {
		return 0
	}

	centerToPoint := point.Sub(bounds.Center())
	half := bounds.HalfSize()
	t := centerToPoint.Dot(direction) / length

	// Normalize along whichever output axis the gradient leans toward.
	if math32.Abs(direction.X) > math32.Abs(direction.Y) {
		if bounds.Size.Width < gradientEpsilon {
			return 0
		}
		t = (t + half.X) / bounds.Size.Width
	} else {
		if bounds.Size.Height < gradientEpsilon {
			return 0
		}
		t = (t + half.Y) / bounds.Size.Height
	}

	span := b.Stops[1].Percentage - b.Stops[0].Percentage
	if span < gradientEpsilon {
		if t < b.Stops[0].Percentage {
			return 0
		}
		return 1
	}
	return saturate((t - b.Stops[0].Percentage) / span)
}

// stopColors converts both stop colors into the declared interpolation
// space.
func (b Background) stopColors() (RGBA, RGBA) {
	c0 := b.Stops[0].Color.RGBA()
	c1 := b.Stops[1].Color.RGBA()
	switch b.Space {
	case ColorSpaceOklab:
		return LinearSRGBToOklab(SRGBToLinearColor(c0)), LinearSRGBToOklab(SRGBToLinearColor(c1))
	case ColorSpaceLinear:
		return SRGBToLinearColor(c0), SRGBToLinearColor(c1)
	default:
		return c0, c1
	}
}
