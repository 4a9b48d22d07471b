package prim

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/prim/internal/parallel"
)

// Advisory per-call batch limits, mirroring the instance-buffer capacities
// of the GPU path. Batches beyond the limit are truncated with a warning.
const (
	maxPrimitivesPerBatch   = 4096
	maxPathVerticesPerBatch = 65536
)

// Params are the per-frame globals threaded through every draw call:
// the logical viewport size (primitives outside it are clipped) and
// whether evaluator output is premultiplied by alpha.
type Params struct {
	ViewportSize       Size
	PremultipliedAlpha bool
}

// DefaultParams returns the default frame parameters: an 800x600 viewport
// with straight-alpha output.
func DefaultParams() Params {
	return Params{ViewportSize: Size{Width: 800, Height: 600}}
}

// Renderer rasterizes primitive batches into a Pixmap.
//
// The target is divided into 64x64 tiles processed in parallel by a worker
// pool; within each tile, primitives composite strictly in slice order, so
// output is deterministic and independent of the worker count. A Renderer
// is safe for sequential reuse across frames; draw calls themselves must
// not run concurrently against the same Pixmap.
type Renderer struct {
	pool *parallel.WorkerPool
}

// NewRenderer creates a renderer with one worker per CPU.
func NewRenderer() *Renderer {
	return NewRendererWithWorkers(0)
}

// NewRendererWithWorkers creates a renderer with the given number of
// workers. If workers is 0 or negative, GOMAXPROCS is used.
func NewRendererWithWorkers(workers int) *Renderer {
	return &Renderer{pool: parallel.NewWorkerPool(workers)}
}

// Close shuts down the renderer's worker pool. The renderer must not be
// used after Close.
func (r *Renderer) Close() {
	r.pool.Close()
}

// Workers returns the number of workers in the renderer's pool.
func (r *Renderer) Workers() int {
	return r.pool.Workers()
}

// tileJob is one primitive's rasterization work: its clipped integer pixel
// rectangle and the per-pixel evaluator. Jobs composite in slice order
// within each tile.
type tileJob struct {
	x0, y0, x1, y1 int
	pixel          func(x, y int, pt Point)
}

// runTiles executes jobs across the target's tiles in parallel. Tiles own
// disjoint pixel rectangles, so jobs write without synchronization; the
// in-order loop per tile preserves painter's-algorithm compositing.
func (r *Renderer) runTiles(dst *Pixmap, jobs []tileJob) {
	if len(jobs) == 0 {
		return
	}
	tiles := parallel.Tiles(dst.Width(), dst.Height())
	work := make([]func(), 0, len(tiles))
	for i := range tiles {
		tile := tiles[i]
		covered := false
		for _, j := range jobs {
			if tile.Intersects(j.x0, j.y0, j.x1, j.y1) {
				covered = true
				break
			}
		}
		if !covered {
			continue
		}
		work = append(work, func() {
			for _, j := range jobs {
				cx0, cy0, cx1, cy1 := tile.Clip(j.x0, j.y0, j.x1, j.y1)
				for y := cy0; y < cy1; y++ {
					for x := cx0; x < cx1; x++ {
						j.pixel(x, y, Point{X: float32(x) + 0.5, Y: float32(y) + 0.5})
					}
				}
			}
		})
	}
	Logger().Debug("rasterizing batch", "jobs", len(jobs), "tiles", len(work))
	r.pool.ExecuteAll(work)
}

// deviceRect converts a logical rectangle into the half-open integer pixel
// rectangle it covers, clipped to the viewport and the target. Reports
// false when nothing is covered.
func deviceRect(b Bounds, params Params, dst *Pixmap) (x0, y0, x1, y1 int, ok bool) {
	viewport := NewBounds(0, 0, params.ViewportSize.Width, params.ViewportSize.Height)
	b = b.Intersect(viewport)
	if b.IsEmpty() {
		return 0, 0, 0, 0, false
	}
	x0 = max(int(math32.Floor(b.Origin.X)), 0)
	y0 = max(int(math32.Floor(b.Origin.Y)), 0)
	x1 = min(int(math32.Ceil(b.Right())), dst.Width())
	y1 = min(int(math32.Ceil(b.Bottom())), dst.Height())
	return x0, y0, x1, y1, x0 < x1 && y0 < y1
}

// truncateBatch enforces the advisory batch limit, logging a warning when
// primitives are dropped.
func truncateBatch[T any](kind string, items []T, limit int) []T {
	if len(items) <= limit {
		return items
	}
	Logger().Warn("batch exceeds limit, truncating",
		"kind", kind, "count", len(items), "max", limit)
	return items[:limit]
}

// DrawQuads rasterizes a batch of quads into dst in slice order.
func (r *Renderer) DrawQuads(dst *Pixmap, params Params, quads []Quad) {
	quads = truncateBatch("quads", quads, maxPrimitivesPerBatch)

	jobs := make([]tileJob, 0, len(quads))
	for i := range quads {
		q := &quads[i]
		x0, y0, x1, y1, ok := deviceRect(q.Bounds.Intersect(q.ContentMask), params, dst)
		if !ok {
			continue
		}
		v := q.prepare()
		jobs = append(jobs, tileJob{x0, y0, x1, y1, func(x, y int, pt Point) {
			if !distanceFromClip(pt, q.ContentMask).Inside() {
				return
			}
			c := q.colorAt(pt, v, params.PremultipliedAlpha)
			dst.blendPixel(x, y, c, params.PremultipliedAlpha)
		}})
	}
	r.runTiles(dst, jobs)
}

// DrawShadows rasterizes a batch of drop shadows into dst in slice order.
func (r *Renderer) DrawShadows(dst *Pixmap, params Params, shadows []Shadow) {
	shadows = truncateBatch("shadows", shadows, maxPrimitivesPerBatch)

	jobs := make([]tileJob, 0, len(shadows))
	for i := range shadows {
		s := &shadows[i]
		x0, y0, x1, y1, ok := deviceRect(s.expandedBounds().Intersect(s.ContentMask), params, dst)
		if !ok {
			continue
		}
		color := s.Color.RGBA()
		jobs = append(jobs, tileJob{x0, y0, x1, y1, func(x, y int, pt Point) {
			if !distanceFromClip(pt, s.ContentMask).Inside() {
				return
			}
			c := s.colorAt(pt, color, params.PremultipliedAlpha)
			dst.blendPixel(x, y, c, params.PremultipliedAlpha)
		}})
	}
	r.runTiles(dst, jobs)
}

// DrawMonochromeSprites rasterizes single-channel sprites, sampling
// coverage from atlas, in slice order.
func (r *Renderer) DrawMonochromeSprites(dst *Pixmap, params Params, atlas Atlas, sprites []MonochromeSprite) {
	sprites = truncateBatch("monochrome sprites", sprites, maxPrimitivesPerBatch)
	atlasW, atlasH := atlas.Size()

	jobs := make([]tileJob, 0, len(sprites))
	for i := range sprites {
		s := &sprites[i]
		renderBounds, inverse, ok := spriteGeometry(s.Bounds, s.Transformation)
		if !ok {
			continue
		}
		x0, y0, x1, y1, ok := deviceRect(renderBounds.Intersect(s.ContentMask), params, dst)
		if !ok {
			continue
		}
		color := s.Color.RGBA()
		jobs = append(jobs, tileJob{x0, y0, x1, y1, func(x, y int, pt Point) {
			local := inverse.Apply(pt)
			u, v := tileUV(local, s.Bounds, s.Tile, atlasW, atlasH)
			// Sampling happens unconditionally before any discard, like
			// the uniform-control-flow ordering of the fragment stage.
			sample := atlas.Sample(u, v)
			if !s.Bounds.Contains(local) || !distanceFromClip(pt, s.ContentMask).Inside() {
				return
			}
			c := s.colorAt(sample, color, params.PremultipliedAlpha)
			dst.blendPixel(x, y, c, params.PremultipliedAlpha)
		}})
	}
	r.runTiles(dst, jobs)
}

// DrawPolychromeSprites rasterizes full-color sprites from atlas in slice
// order.
func (r *Renderer) DrawPolychromeSprites(dst *Pixmap, params Params, atlas Atlas, sprites []PolychromeSprite) {
	sprites = truncateBatch("polychrome sprites", sprites, maxPrimitivesPerBatch)
	atlasW, atlasH := atlas.Size()

	jobs := make([]tileJob, 0, len(sprites))
	for i := range sprites {
		s := &sprites[i]
		renderBounds, inverse, ok := spriteGeometry(s.Bounds, s.Transformation)
		if !ok {
			continue
		}
		x0, y0, x1, y1, ok := deviceRect(renderBounds.Intersect(s.ContentMask), params, dst)
		if !ok {
			continue
		}
		jobs = append(jobs, tileJob{x0, y0, x1, y1, func(x, y int, pt Point) {
			local := inverse.Apply(pt)
			u, v := tileUV(local, s.Bounds, s.Tile, atlasW, atlasH)
			sample := atlas.Sample(u, v)
			if !s.Bounds.Contains(local) || !distanceFromClip(pt, s.ContentMask).Inside() {
				return
			}
			c := s.colorAt(sample, params.PremultipliedAlpha)
			dst.blendPixel(x, y, c, params.PremultipliedAlpha)
		}})
	}
	r.runTiles(dst, jobs)
}

// spriteGeometry resolves a sprite's transformation into the rectangle it
// covers on the target and the inverse mapping from target space back to
// the sprite's untransformed bounds. Singular transforms draw nothing.
func spriteGeometry(bounds Bounds, m TransformationMatrix) (Bounds, TransformationMatrix, bool) {
	if m.IsIdentity() {
		return bounds, m, true
	}
	inverse, ok := m.Inverse()
	if !ok {
		return Bounds{}, m, false
	}

	corners := [4]Point{
		m.Apply(bounds.Origin),
		m.Apply(Point{X: bounds.Right(), Y: bounds.Origin.Y}),
		m.Apply(Point{X: bounds.Origin.X, Y: bounds.Bottom()}),
		m.Apply(Point{X: bounds.Right(), Y: bounds.Bottom()}),
	}
	minX, minY := corners[0].X, corners[0].Y
	maxX, maxY := minX, minY
	for _, c := range corners[1:] {
		minX = math32.Min(minX, c.X)
		minY = math32.Min(minY, c.Y)
		maxX = math32.Max(maxX, c.X)
		maxY = math32.Max(maxY, c.Y)
	}
	return NewBounds(minX, minY, maxX-minX, maxY-minY), inverse, true
}

// DrawPaths rasterizes a batch of path triangles given as consecutive
// vertex triples, in slice order. A trailing partial triple is ignored.
func (r *Renderer) DrawPaths(dst *Pixmap, params Params, vertices []PathVertex) {
	vertices = truncateBatch("path vertices", vertices, maxPathVerticesPerBatch)
	if rem := len(vertices) % 3; rem != 0 {
		Logger().Debug("path batch is not a whole number of triangles",
			"vertices", len(vertices), "dropped", rem)
		vertices = vertices[:len(vertices)-rem]
	}

	jobs := make([]tileJob, 0, len(vertices)/3)
	for i := 0; i+2 < len(vertices); i += 3 {
		tri := newPathTriangle(vertices[i], vertices[i+1], vertices[i+2])
		if tri.degenerate {
			continue
		}
		x0, y0, x1, y1, ok := deviceRect(tri.bounds().Intersect(tri.v0.ContentMask), params, dst)
		if !ok {
			continue
		}
		t := tri
		jobs = append(jobs, tileJob{x0, y0, x1, y1, func(x, y int, pt Point) {
			w0, w1, w2, inside := t.weights(pt)
			if !inside {
				return
			}
			if !distanceFromClip(pt, t.v0.ContentMask).Inside() {
				return
			}
			coverage := t.coverageAt(w0, w1, w2)
			if coverage <= 0 {
				return
			}
			base := t.v0.Background.ColorAt(pt, t.v0.Bounds)
			c := BlendColor(base, coverage, params.PremultipliedAlpha)
			dst.blendPixel(x, y, c, params.PremultipliedAlpha)
		}})
	}
	r.runTiles(dst, jobs)
}

// DrawUnderlines rasterizes a batch of underlines into dst in slice order.
func (r *Renderer) DrawUnderlines(dst *Pixmap, params Params, underlines []Underline) {
	underlines = truncateBatch("underlines", underlines, maxPrimitivesPerBatch)

	jobs := make([]tileJob, 0, len(underlines))
	for i := range underlines {
		u := &underlines[i]
		x0, y0, x1, y1, ok := deviceRect(u.renderBounds().Intersect(u.ContentMask), params, dst)
		if !ok {
			continue
		}
		color := u.Color.RGBA()
		jobs = append(jobs, tileJob{x0, y0, x1, y1, func(x, y int, pt Point) {
			if !distanceFromClip(pt, u.ContentMask).Inside() {
				return
			}
			c := u.colorAt(pt, color, params.PremultipliedAlpha)
			dst.blendPixel(x, y, c, params.PremultipliedAlpha)
		}})
	}
	r.runTiles(dst, jobs)
}
