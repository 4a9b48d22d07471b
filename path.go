package prim

import "github.com/chewxy/math32"

// PathVertex is one vertex of a filled vector path. Vertices arrive in
// triples forming triangles; each vertex carries an auxiliary (s, t)
// coordinate for implicit quadratic-bezier coverage alongside its output
// position.
//
// The implicit test is the classic f(s,t) = s² − t: a point is inside the
// curve's filled side when f < 0. Interior triangles use constant (s, t)
// with a vanishing gradient, which the evaluator treats as solid.
type PathVertex struct {
	Order       uint32
	XY          Point
	ST          Point
	ContentMask Bounds
	Bounds      Bounds
	Background  Background
}

// pathGradientEpsilon is the |∇f| threshold below which the geometry is
// locally flat (straight-edge segments encoded as degenerate curves) and
// coverage is forced to 1.
const pathGradientEpsilon = 1e-4

// pathTriangle is the geometry stage's expansion of three consecutive path
// vertices: winding-normalized vertices, edge-ownership flags, and the
// exact screen-space derivatives of (s, t), which stand in for the
// hardware derivative instructions of the fragment pipeline.
type pathTriangle struct {
	v0, v1, v2 PathVertex

	invDet     float32
	degenerate bool

	// Edge inclusivity under the top-left fill rule. A pixel center lying
	// exactly on an edge shared by two triangles must belong to exactly
	// one of them, or translucent fills double-blend along the seam.
	// edge0 is opposite v0 (v1->v2), edge1 opposite v1 (v2->v0), edge2
	// opposite v2 (v0->v1).
	edge0In, edge1In, edge2In bool

	// Screen-space derivatives of the interpolated (s, t).
	dsdx, dsdy, dtdx, dtdy float32
}

// newPathTriangle prepares a triangle from three vertices. Winding is
// normalized so edge functions are positive inside; triangles with
// collinear or coincident vertices are marked degenerate and skipped.
func newPathTriangle(v0, v1, v2 PathVertex) pathTriangle {
	e1 := v1.XY.Sub(v0.XY)
	e2 := v2.XY.Sub(v0.XY)
	det := e1.X*e2.Y - e2.X*e1.Y
	if det < 0 {
		v1, v2 = v2, v1
		e1, e2 = e2, e1
		det = -det
	}

	tri := pathTriangle{v0: v0, v1: v1, v2: v2}
	if det < 1e-12 {
		tri.degenerate = true
		return tri
	}
	inv := 1 / det
	tri.invDet = inv

	tri.edge0In = topLeftEdge(v1.XY, v2.XY)
	tri.edge1In = topLeftEdge(v2.XY, v0.XY)
	tri.edge2In = topLeftEdge(v0.XY, v1.XY)

	ds1 := v1.ST.X - v0.ST.X
	ds2 := v2.ST.X - v0.ST.X
	dt1 := v1.ST.Y - v0.ST.Y
	dt2 := v2.ST.Y - v0.ST.Y

	tri.dsdx = (ds1*e2.Y - ds2*e1.Y) * inv
	tri.dsdy = (ds2*e1.X - ds1*e2.X) * inv
	tri.dtdx = (dt1*e2.Y - dt2*e1.Y) * inv
	tri.dtdy = (dt2*e1.X - dt1*e2.X) * inv
	return tri
}

// topLeftEdge reports whether the directed edge a->b owns the pixels that
// fall exactly on it. With y growing downward and positive winding, each
// edge direction and its reverse split ownership: edges going down, and
// horizontal edges going left, are inclusive.
func topLeftEdge(a, b Point) bool {
	d := b.Sub(a)
	return d.Y > 0 || (d.Y == 0 && d.X < 0)
}

// bounds returns the triangle's bounding rectangle.
func (t *pathTriangle) bounds() Bounds {
	minX := math32.Min(t.v0.XY.X, math32.Min(t.v1.XY.X, t.v2.XY.X))
	maxX := math32.Max(t.v0.XY.X, math32.Max(t.v1.XY.X, t.v2.XY.X))
	minY := math32.Min(t.v0.XY.Y, math32.Min(t.v1.XY.Y, t.v2.XY.Y))
	maxY := math32.Max(t.v0.XY.Y, math32.Max(t.v1.XY.Y, t.v2.XY.Y))
	return NewBounds(minX, minY, maxX-minX, maxY-minY)
}

// weights evaluates the triangle's edge functions at a point, returning
// the barycentric weights and whether the point belongs to this triangle.
// Containment uses the raw edge values, which are exact for the grid-like
// coordinates tessellators emit, so shared-edge ownership does not wobble
// with the normalization divide.
func (t *pathTriangle) weights(point Point) (w0, w1, w2 float32, inside bool) {
	e0 := (t.v2.XY.X-t.v1.XY.X)*(point.Y-t.v1.XY.Y) - (t.v2.XY.Y-t.v1.XY.Y)*(point.X-t.v1.XY.X)
	e1 := (t.v0.XY.X-t.v2.XY.X)*(point.Y-t.v2.XY.Y) - (t.v0.XY.Y-t.v2.XY.Y)*(point.X-t.v2.XY.X)
	e2 := (t.v1.XY.X-t.v0.XY.X)*(point.Y-t.v0.XY.Y) - (t.v1.XY.Y-t.v0.XY.Y)*(point.X-t.v0.XY.X)

	inside = (e0 > 0 || (e0 == 0 && t.edge0In)) &&
		(e1 > 0 || (e1 == 0 && t.edge1In)) &&
		(e2 > 0 || (e2 == 0 && t.edge2In))

	w0 = e0 * t.invDet
	w1 = e1 * t.invDet
	w2 = e2 * t.invDet
	return
}

// coverageAt evaluates the implicit-curve coverage from barycentric
// weights of a point inside the triangle. The signed distance f/|∇f| feeds
// the shared 0.5-pixel ramp; a near-degenerate gradient means locally flat
// geometry and full coverage.
func (t *pathTriangle) coverageAt(w0, w1, w2 float32) float32 {
	s := w0*t.v0.ST.X + w1*t.v1.ST.X + w2*t.v2.ST.X
	tt := w0*t.v0.ST.Y + w1*t.v1.ST.Y + w2*t.v2.ST.Y

	f := s*s - tt
	gradX := 2*s*t.dsdx - t.dtdx
	gradY := 2*s*t.dsdy - t.dtdy
	gradLen := math32.Sqrt(gradX*gradX + gradY*gradY)

	if gradLen < pathGradientEpsilon {
		return 1
	}
	return sdfCoverage(f / gradLen)
}
