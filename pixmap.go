package prim

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/gogpu/gputypes"
)

// Pixmap is the CPU render target: a straight-alpha RGBA8 pixel buffer with
// the same layout a TextureFormatRGBA8Unorm texture would have. It is the
// destination of every renderer draw call and can be exported as a standard
// image.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA, straight alpha, row-major
}

// NewPixmap creates a pixmap of the given size, fully transparent.
// Non-positive dimensions yield an empty pixmap.
func NewPixmap(width, height int) *Pixmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the pixmap width in pixels.
func (p *Pixmap) Width() int { return p.width }

// Height returns the pixmap height in pixels.
func (p *Pixmap) Height() int { return p.height }

// Data returns the underlying pixel buffer: 4 bytes per pixel, RGBA order,
// straight alpha. The slice aliases the pixmap's storage.
func (p *Pixmap) Data() []uint8 { return p.data }

// Format returns the pixel format tag describing the buffer layout.
func (p *Pixmap) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	r := clampU8(c.R)
	g := clampU8(c.G)
	b := clampU8(c.B)
	a := clampU8(c.A)
	for i := 0; i < len(p.data); i += 4 {
		p.data[i] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// SetPixel overwrites the pixel at (x, y). Out-of-range coordinates are
// ignored.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || y < 0 || x >= p.width || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i] = clampU8(c.R)
	p.data[i+1] = clampU8(c.G)
	p.data[i+2] = clampU8(c.B)
	p.data[i+3] = clampU8(c.A)
}

// GetPixel reads the pixel at (x, y) as straight-alpha float components.
// Out-of-range coordinates return transparent black.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || y < 0 || x >= p.width || y >= p.height {
		return RGBA{}
	}
	i := (y*p.width + x) * 4
	return RGBA{
		R: float32(p.data[i]) / 255,
		G: float32(p.data[i+1]) / 255,
		B: float32(p.data[i+2]) / 255,
		A: float32(p.data[i+3]) / 255,
	}
}

// blendPixel composites src over the pixel at (x, y). When srcPremultiplied
// is set, src's color components are already scaled by its alpha and the
// standard premultiplied over operator applies; otherwise src is straight
// alpha. The stored result is always straight alpha.
func (p *Pixmap) blendPixel(x, y int, src RGBA, srcPremultiplied bool) {
	if x < 0 || y < 0 || x >= p.width || y >= p.height {
		return
	}
	if src.A <= 0 {
		return
	}
	dst := p.GetPixel(x, y)

	var out RGBA
	if srcPremultiplied {
		out = OverPremultiplied(dst.Premultiply(), src).Unpremultiply()
	} else {
		out = Over(dst, src)
	}
	p.SetPixel(x, y, out)
}

// ToImage copies the pixmap into a new *image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// SavePNG writes the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, p.ToImage())
}

// ColorModel implements image.Image.
func (p *Pixmap) ColorModel() color.Model { return color.NRGBAModel }

// Bounds implements image.Image.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// At implements image.Image.
func (p *Pixmap) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= p.width || y >= p.height {
		return color.NRGBA{}
	}
	i := (y*p.width + x) * 4
	return color.NRGBA{
		R: p.data[i],
		G: p.data[i+1],
		B: p.data[i+2],
		A: p.data[i+3],
	}
}
