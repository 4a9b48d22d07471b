package prim

import (
	"image/color"

	"github.com/chewxy/math32"
)

// Hsla is the canonical source-of-truth color representation for all style
// fields. Hue is a fraction of a full turn; every component is normalized
// to [0, 1]. Conversion to RGBA happens lazily at evaluation time.
type Hsla struct {
	H, S, L, A float32
}

// RGBA represents a color with float32 components in [0, 1].
// Whether the components are straight or premultiplied depends on context;
// evaluators produce straight alpha unless BlendColor is told otherwise.
type RGBA struct {
	R, G, B, A float32
}

// RGBA converts an HSL color to RGB using the standard sextant formulation:
// chroma c = (1-|2l-1|)*s, intermediate x = c*(1-|((6h) mod 2)-1|), and
// lightness offset m = l - c/2.
//
// Hue is not wrapped before the sextant selection: the chain of comparisons
// ends in a plain else, so any hue outside [0, 1) — including negative
// values — takes the last sextant's formula. Callers are expected to supply
// normalized hue; the fall-through keeps the conversion bit-identical to
// the fragment shader it mirrors.
func (c Hsla) RGBA() RGBA {
	h := c.H * 6
	chroma := (1 - math32.Abs(2*c.L-1)) * c.S
	x := chroma * (1 - math32.Abs(math32.Mod(h, 2)-1))
	m := c.L - chroma/2

	var r, g, b float32
	switch {
	case h < 1:
		r, g, b = chroma, x, 0
	case h < 2:
		r, g, b = x, chroma, 0
	case h < 3:
		r, g, b = 0, chroma, x
	case h < 4:
		r, g, b = 0, x, chroma
	case h < 5:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	return RGBA{R: r + m, G: g + m, B: b + m, A: c.A}
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: clampU8(c.R),
		G: clampU8(c.G),
		B: clampU8(c.B),
		A: clampU8(c.A),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	return RGBA{
		R: float32(r) / 65535,
		G: float32(g) / 65535,
		B: float32(b) / 65535,
		A: float32(a) / 65535,
	}
}

// Premultiply returns a premultiplied copy of the color.
func (c RGBA) Premultiply() RGBA {
	return RGBA{R: c.R * c.A, G: c.G * c.A, B: c.B * c.A, A: c.A}
}

// Unpremultiply returns a straight-alpha copy of a premultiplied color.
func (c RGBA) Unpremultiply() RGBA {
	if c.A == 0 {
		return RGBA{}
	}
	return RGBA{R: c.R / c.A, G: c.G / c.A, B: c.B / c.A, A: c.A}
}

// Lerp performs component-wise linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float32) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// SRGBToLinear converts an sRGB-encoded component to linear light (EOTF).
// Input and output are in [0, 1]. Alpha channels must not pass through this.
func SRGBToLinear(s float32) float32 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math32.Pow((s+0.055)/1.055, 2.4)
}

// LinearToSRGB converts a linear-light component to sRGB encoding (OETF).
// Input and output are in [0, 1].
func LinearToSRGB(l float32) float32 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math32.Pow(l, 1/2.4) - 0.055
}

// SRGBToLinearColor converts the RGB components of a color from sRGB to
// linear light. Alpha is never gamma-encoded and passes through untouched.
func SRGBToLinearColor(c RGBA) RGBA {
	return RGBA{
		R: SRGBToLinear(c.R),
		G: SRGBToLinear(c.G),
		B: SRGBToLinear(c.B),
		A: c.A,
	}
}

// LinearToSRGBColor converts the RGB components of a color from linear
// light to sRGB encoding. Alpha passes through untouched.
func LinearToSRGBColor(c RGBA) RGBA {
	return RGBA{
		R: LinearToSRGB(c.R),
		G: LinearToSRGB(c.G),
		B: LinearToSRGB(c.B),
		A: c.A,
	}
}

// LinearSRGBToOklab converts a linear-sRGB color to the Oklab perceptual
// color space. The result stores L, a, b in the R, G, B fields; alpha
// passes through. Coefficients are the published Oklab matrices.
func LinearSRGBToOklab(c RGBA) RGBA {
	l := 0.4122214708*c.R + 0.5363325363*c.G + 0.0514459929*c.B
	m := 0.2119034982*c.R + 0.6806995451*c.G + 0.1073969566*c.B
	s := 0.0883024619*c.R + 0.2817188376*c.G + 0.6299787005*c.B

	l = math32.Cbrt(l)
	m = math32.Cbrt(m)
	s = math32.Cbrt(s)

	return RGBA{
		R: 0.2104542553*l + 0.7936177850*m - 0.0040720468*s,
		G: 1.9779984951*l - 2.4285922050*m + 0.4505937099*s,
		B: 0.0259040371*l + 0.7827717662*m - 0.8086757660*s,
		A: c.A,
	}
}

// OklabToLinearSRGB converts an Oklab color (L, a, b in the R, G, B fields)
// back to linear sRGB. Alpha passes through.
func OklabToLinearSRGB(c RGBA) RGBA {
	l := c.R + 0.3963377774*c.G + 0.2158037573*c.B
	m := c.R - 0.1055613458*c.G - 0.0638541728*c.B
	s := c.R - 0.0894841775*c.G - 1.2914855480*c.B

	l = l * l * l
	m = m * m * m
	s = s * s * s

	return RGBA{
		R: 4.0767416621*l - 3.3077115913*m + 0.2309699292*s,
		G: -1.2684380046*l + 2.6097574011*m - 0.3413193965*s,
		B: -0.0041960863*l - 0.7034186147*m + 1.7076147010*s,
		A: c.A,
	}
}

// clampU8 converts a [0, 1] float component to a uint8, clamping overshoot.
func clampU8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// saturate clamps a value to [0, 1].
func saturate(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
