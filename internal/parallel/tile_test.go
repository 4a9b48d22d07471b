package parallel

import "testing"

func TestTiles(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantCount     int
	}{
		{"single partial tile", 10, 10, 1},
		{"exactly one tile", 64, 64, 1},
		{"one pixel over", 65, 64, 2},
		{"grid", 200, 130, 4 * 3},
		{"zero size", 0, 100, 0},
		{"negative size", -5, 100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tiles := Tiles(tt.width, tt.height)
			if len(tiles) != tt.wantCount {
				t.Errorf("Tiles(%d, %d) = %d tiles, want %d",
					tt.width, tt.height, len(tiles), tt.wantCount)
			}
		})
	}
}

func TestTilesCoverTarget(t *testing.T) {
	const width, height = 200, 130
	tiles := Tiles(width, height)

	// Every pixel belongs to exactly one tile.
	covered := make([]int, width*height)
	for _, tile := range tiles {
		x, y, w, h := tile.Bounds()
		for py := y; py < y+h; py++ {
			for px := x; px < x+w; px++ {
				if px < 0 || px >= width || py < 0 || py >= height {
					t.Fatalf("tile (%d,%d) covers out-of-range pixel (%d,%d)", tile.X, tile.Y, px, py)
				}
				covered[py*width+px]++
			}
		}
	}
	for i, n := range covered {
		if n != 1 {
			t.Fatalf("pixel %d covered %d times", i, n)
		}
	}
}

func TestTileEdgeSizes(t *testing.T) {
	tiles := Tiles(100, 100)
	if len(tiles) != 4 {
		t.Fatalf("got %d tiles, want 4", len(tiles))
	}
	// Row-major: the last tile is the bottom-right partial tile.
	last := tiles[3]
	if last.Width != 36 || last.Height != 36 {
		t.Errorf("edge tile size = (%d, %d), want (36, 36)", last.Width, last.Height)
	}
}

func TestTileIntersects(t *testing.T) {
	tile := Tile{X: 1, Y: 1, Width: 64, Height: 64} // covers [64,128) x [64,128)

	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           bool
	}{
		{"fully inside", 70, 70, 80, 80, true},
		{"overlapping corner", 120, 120, 200, 200, true},
		{"disjoint", 0, 0, 64, 64, false},
		{"touching edge", 0, 64, 64, 128, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tile.Intersects(tt.x0, tt.y0, tt.x1, tt.y1); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTileClip(t *testing.T) {
	tile := Tile{X: 0, Y: 0, Width: 64, Height: 64}

	x0, y0, x1, y1 := tile.Clip(32, 32, 100, 100)
	if x0 != 32 || y0 != 32 || x1 != 64 || y1 != 64 {
		t.Errorf("Clip = (%d, %d, %d, %d), want (32, 32, 64, 64)", x0, y0, x1, y1)
	}

	// Disjoint rectangles clip to an empty range.
	x0, _, x1, _ = tile.Clip(100, 100, 200, 200)
	if x0 < x1 {
		t.Errorf("disjoint Clip produced non-empty range (%d, %d)", x0, x1)
	}
}
