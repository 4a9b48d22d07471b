// Package parallel provides tile-based parallel rendering infrastructure
// for gogpu/prim.
//
// The render target is divided into 64x64 pixel tiles that are processed
// independently in parallel. Tiles own disjoint pixel rectangles, so
// workers never write the same pixel; within a tile, primitives are
// evaluated strictly in submission order, which preserves ordered
// compositing without locks.
package parallel

// Tile size constants.
const (
	// TileSize is the width and height of a tile in pixels.
	// 64 pixels keeps a full RGBA tile at 16KB (fits L1 cache) and
	// matches the granularity used by vello and tiny-skia.
	TileSize = 64
)

// Tile is one rectangular region of the render target. Edge tiles may be
// smaller than TileSize when the target is not evenly divisible.
type Tile struct {
	// X is the tile column index (0-based).
	X int

	// Y is the tile row index (0-based).
	Y int

	// Width is the actual width in pixels.
	Width int

	// Height is the actual height in pixels.
	Height int
}

// Bounds returns the tile's pixel rectangle in target space as
// (x, y, width, height), where x, y is the top-left corner.
func (t *Tile) Bounds() (x, y, w, h int) {
	return t.X * TileSize, t.Y * TileSize, t.Width, t.Height
}

// Intersects reports whether the tile overlaps the target-space rectangle
// [x0, x1) x [y0, y1).
func (t *Tile) Intersects(x0, y0, x1, y1 int) bool {
	tx, ty, tw, th := t.Bounds()
	return x0 < tx+tw && x1 > tx && y0 < ty+th && y1 > ty
}

// Clip returns the intersection of the tile's rectangle with
// [x0, x1) x [y0, y1), as a half-open target-space rectangle. The result
// is empty (cx0 >= cx1 or cy0 >= cy1) when they do not overlap.
func (t *Tile) Clip(x0, y0, x1, y1 int) (cx0, cy0, cx1, cy1 int) {
	tx, ty, tw, th := t.Bounds()
	cx0 = max(x0, tx)
	cy0 = max(y0, ty)
	cx1 = min(x1, tx+tw)
	cy1 = min(y1, ty+th)
	return
}

// Tiles divides a width x height target into a row-major list of tiles.
// Non-positive dimensions yield no tiles.
func Tiles(width, height int) []Tile {
	if width <= 0 || height <= 0 {
		return nil
	}
	cols := (width + TileSize - 1) / TileSize
	rows := (height + TileSize - 1) / TileSize

	tiles := make([]Tile, 0, cols*rows)
	for ty := 0; ty < rows; ty++ {
		for tx := 0; tx < cols; tx++ {
			w := min(TileSize, width-tx*TileSize)
			h := min(TileSize, height-ty*TileSize)
			tiles = append(tiles, Tile{X: tx, Y: ty, Width: w, Height: h})
		}
	}
	return tiles
}
