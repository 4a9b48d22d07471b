package prim

import (
	"errors"
	"image"

	"github.com/chewxy/math32"
	"github.com/gogpu/gputypes"
	xdraw "golang.org/x/image/draw"
)

// Common errors for atlas construction.
var (
	// ErrEmptyAtlas is returned when an atlas image has no pixels.
	ErrEmptyAtlas = errors.New("prim: atlas image is empty")
)

// AtlasTextureID identifies a texture owned by the external atlas system.
type AtlasTextureID uint32

// TileID identifies a tile within an atlas texture.
type TileID uint32

// AtlasTile is an opaque reference into an atlas texture: which texture,
// which tile, and the tile's integer-pixel rectangle within that texture.
// The backing image is owned entirely by the external atlas system; this
// package only derives normalized sample coordinates from it.
type AtlasTile struct {
	Texture AtlasTextureID
	Tile    TileID
	Bounds  image.Rectangle
}

// Atlas is the sampling capability the sprite pipelines require from the
// external atlas system: a filtered color lookup at a normalized [0,1]²
// coordinate, plus the texture's pixel dimensions and format.
//
// Implementations must be safe for concurrent Sample calls; the renderer
// samples from many tiles in parallel.
type Atlas interface {
	// Size returns the texture dimensions in pixels.
	Size() (width, height int)
	// Format returns the texture's pixel format.
	Format() gputypes.TextureFormat
	// Sample returns the bilinearly filtered color at (u, v).
	// Coordinates outside [0, 1] clamp to the edge.
	Sample(u, v float32) RGBA
}

// ImageAtlas is a color atlas backed by an *image.NRGBA (straight alpha),
// sampled bilinearly. It serves the polychrome sprite pipeline.
type ImageAtlas struct {
	img *image.NRGBA
}

// NewImageAtlas builds a color atlas from any image. Sources that are not
// already straight-alpha NRGBA are converted once at construction.
func NewImageAtlas(src image.Image) (*ImageAtlas, error) {
	if src == nil || src.Bounds().Empty() {
		return nil, ErrEmptyAtlas
	}
	nrgba, ok := src.(*image.NRGBA)
	if !ok || nrgba.Bounds().Min != (image.Point{}) {
		b := src.Bounds()
		converted := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		xdraw.Copy(converted, image.Point{}, src, b, xdraw.Src, nil)
		nrgba = converted
	}
	return &ImageAtlas{img: nrgba}, nil
}

// Size returns the texture dimensions in pixels.
func (a *ImageAtlas) Size() (int, int) {
	b := a.img.Bounds()
	return b.Dx(), b.Dy()
}

// Format returns the RGBA8 texture format tag.
func (a *ImageAtlas) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Sample returns the bilinearly filtered color at normalized (u, v).
func (a *ImageAtlas) Sample(u, v float32) RGBA {
	w, h := a.Size()
	x0, y0, x1, y1, tx, ty := bilinearFootprint(u, v, w, h)

	c00 := rgbaAt(a.img, x0, y0)
	c10 := rgbaAt(a.img, x1, y0)
	c01 := rgbaAt(a.img, x0, y1)
	c11 := rgbaAt(a.img, x1, y1)

	top := c00.Lerp(c10, tx)
	bottom := c01.Lerp(c11, tx)
	return top.Lerp(bottom, ty)
}

// AlphaAtlas is a single-channel coverage atlas backed by an *image.Alpha,
// as produced by glyph rasterizers. It serves the monochrome sprite
// pipeline; samples carry the coverage in the alpha component.
type AlphaAtlas struct {
	img *image.Alpha
}

// NewAlphaAtlas builds a coverage atlas from an alpha image.
func NewAlphaAtlas(src *image.Alpha) (*AlphaAtlas, error) {
	if src == nil || src.Bounds().Empty() {
		return nil, ErrEmptyAtlas
	}
	return &AlphaAtlas{img: src}, nil
}

// Size returns the texture dimensions in pixels.
func (a *AlphaAtlas) Size() (int, int) {
	b := a.img.Bounds()
	return b.Dx(), b.Dy()
}

// Format returns the single-channel texture format tag.
func (a *AlphaAtlas) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatR8Unorm
}

// Sample returns the bilinearly filtered coverage at normalized (u, v),
// in the alpha component.
func (a *AlphaAtlas) Sample(u, v float32) RGBA {
	w, h := a.Size()
	x0, y0, x1, y1, tx, ty := bilinearFootprint(u, v, w, h)
	b := a.img.Bounds()

	v00 := float32(a.img.AlphaAt(b.Min.X+x0, b.Min.Y+y0).A) / 255
	v10 := float32(a.img.AlphaAt(b.Min.X+x1, b.Min.Y+y0).A) / 255
	v01 := float32(a.img.AlphaAt(b.Min.X+x0, b.Min.Y+y1).A) / 255
	v11 := float32(a.img.AlphaAt(b.Min.X+x1, b.Min.Y+y1).A) / 255

	top := v00 + (v10-v00)*tx
	bottom := v01 + (v11-v01)*tx
	coverage := top + (bottom-top)*ty
	return RGBA{A: coverage}
}

// bilinearFootprint converts normalized coordinates into the four texel
// indices and fractional weights of a bilinear sample. The half-texel
// offset centers the footprint on texel centers; indices clamp to edges.
func bilinearFootprint(u, v float32, w, h int) (x0, y0, x1, y1 int, tx, ty float32) {
	fx := u*float32(w) - 0.5
	fy := v*float32(h) - 0.5

	fx0 := math32.Floor(fx)
	fy0 := math32.Floor(fy)
	tx = fx - fx0
	ty = fy - fy0

	x0 = clampInt(int(fx0), 0, w-1)
	y0 = clampInt(int(fy0), 0, h-1)
	x1 = clampInt(int(fx0)+1, 0, w-1)
	y1 = clampInt(int(fy0)+1, 0, h-1)
	return
}

// rgbaAt reads a pixel as straight-alpha float components.
func rgbaAt(img *image.NRGBA, x, y int) RGBA {
	b := img.Bounds()
	c := img.NRGBAAt(b.Min.X+x, b.Min.Y+y)
	return RGBA{
		R: float32(c.R) / 255,
		G: float32(c.G) / 255,
		B: float32(c.B) / 255,
		A: float32(c.A) / 255,
	}
}

// clampInt restricts x to [lo, hi].
func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
