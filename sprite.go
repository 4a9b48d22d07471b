package prim

// MonochromeSprite is a single-channel sprite, typically a glyph: the atlas
// sample provides coverage and the primitive's color provides the paint.
type MonochromeSprite struct {
	Order          uint32
	Bounds         Bounds
	ContentMask    Bounds
	Color          Hsla
	Tile           AtlasTile
	Transformation TransformationMatrix
}

// colorAt combines a sampled coverage value with the sprite's flat color.
// The caller samples the atlas before the clip test; the sample's alpha
// carries the coverage.
func (s *MonochromeSprite) colorAt(sample RGBA, color RGBA, premultiplied bool) RGBA {
	return BlendColor(color, sample.A, premultiplied)
}

// PolychromeSprite is a full-color sprite such as an image or an emoji
// glyph.
//
// CornerRadii is carried in the record for forward compatibility with
// rounded sprite clipping but is reserved: no evaluator consumes it yet.
type PolychromeSprite struct {
	Order          uint32
	Bounds         Bounds
	ContentMask    Bounds
	CornerRadii    Corners
	Tile           AtlasTile
	Grayscale      bool
	Opacity        float32
	Transformation TransformationMatrix
}

// grayscaleWeights are the Rec. 709 luminance coefficients.
var grayscaleWeights = RGBA{R: 0.2126, G: 0.7152, B: 0.0722}

// colorAt produces the sprite's contribution from an atlas sample. With
// Grayscale set, the sampled RGB collapses to its luminance while the
// sampled alpha is preserved; Opacity scales the final alpha.
func (s *PolychromeSprite) colorAt(sample RGBA, premultiplied bool) RGBA {
	color := sample
	if s.Grayscale {
		lum := sample.R*grayscaleWeights.R + sample.G*grayscaleWeights.G + sample.B*grayscaleWeights.B
		color = RGBA{R: lum, G: lum, B: lum, A: sample.A}
	}
	return BlendColor(color, s.Opacity, premultiplied)
}

// tileUV maps a point inside the sprite's bounds to the normalized atlas
// coordinate of the corresponding texel within the sprite's tile.
func tileUV(point Point, bounds Bounds, tile AtlasTile, atlasW, atlasH int) (u, v float32) {
	if bounds.Size.Width <= 0 || bounds.Size.Height <= 0 {
		return 0, 0
	}
	unitX := (point.X - bounds.Origin.X) / bounds.Size.Width
	unitY := (point.Y - bounds.Origin.Y) / bounds.Size.Height

	tileW := float32(tile.Bounds.Dx())
	tileH := float32(tile.Bounds.Dy())
	u = (float32(tile.Bounds.Min.X) + unitX*tileW) / float32(atlasW)
	v = (float32(tile.Bounds.Min.Y) + unitY*tileH) / float32(atlasH)
	return u, v
}
