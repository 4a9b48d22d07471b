package prim

import "github.com/chewxy/math32"

// Point represents a 2D position or displacement in logical pixels.
type Point struct {
	X, Y float32
}

// Pt is a convenience function to create a Point.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float32) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float32 {
	return p.X*q.X + p.Y*q.Y
}

// Length returns the length of the vector.
func (p Point) Length() float32 {
	return math32.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Abs returns the component-wise absolute value.
func (p Point) Abs() Point {
	return Point{X: math32.Abs(p.X), Y: math32.Abs(p.Y)}
}

// Size represents a width and height in logical pixels.
type Size struct {
	Width, Height float32
}

// Bounds is an axis-aligned rectangle given by origin and size.
// Sizes are expected to be non-negative; zero-area bounds are legal and
// degenerate to no coverage.
type Bounds struct {
	Origin Point
	Size   Size
}

// NewBounds creates a Bounds from origin and size components.
func NewBounds(x, y, w, h float32) Bounds {
	return Bounds{Origin: Point{X: x, Y: y}, Size: Size{Width: w, Height: h}}
}

// Right returns the right edge x-coordinate.
func (b Bounds) Right() float32 {
	return b.Origin.X + b.Size.Width
}

// Bottom returns the bottom edge y-coordinate.
func (b Bounds) Bottom() float32 {
	return b.Origin.Y + b.Size.Height
}

// Center returns the center point of the bounds.
func (b Bounds) Center() Point {
	return Point{
		X: b.Origin.X + b.Size.Width/2,
		Y: b.Origin.Y + b.Size.Height/2,
	}
}

// HalfSize returns half the size as a Point.
func (b Bounds) HalfSize() Point {
	return Point{X: b.Size.Width / 2, Y: b.Size.Height / 2}
}

// Contains reports whether the point lies inside the bounds.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.Origin.X && p.X <= b.Right() &&
		p.Y >= b.Origin.Y && p.Y <= b.Bottom()
}

// IsEmpty reports whether the bounds have zero or negative area.
func (b Bounds) IsEmpty() bool {
	return b.Size.Width <= 0 || b.Size.Height <= 0
}

// Intersect returns the intersection of two bounds.
// Returns empty bounds if they do not overlap.
func (b Bounds) Intersect(other Bounds) Bounds {
	x0 := math32.Max(b.Origin.X, other.Origin.X)
	y0 := math32.Max(b.Origin.Y, other.Origin.Y)
	x1 := math32.Min(b.Right(), other.Right())
	y1 := math32.Min(b.Bottom(), other.Bottom())

	if x1 <= x0 || y1 <= y0 {
		return Bounds{}
	}
	return NewBounds(x0, y0, x1-x0, y1-y0)
}

// Dilate returns the bounds expanded outward by amount on all sides.
// Shadow and wavy-underline geometry stages use this to make room for
// the blur penumbra and the wave amplitude.
func (b Bounds) Dilate(amount float32) Bounds {
	return NewBounds(
		b.Origin.X-amount,
		b.Origin.Y-amount,
		b.Size.Width+2*amount,
		b.Size.Height+2*amount,
	)
}

// dilateY expands the bounds vertically only.
func (b Bounds) dilateY(amount float32) Bounds {
	return NewBounds(
		b.Origin.X,
		b.Origin.Y-amount,
		b.Size.Width,
		b.Size.Height+2*amount,
	)
}

// Corners holds four independent corner radii. A radius of 0 means a
// square corner. Radii are selected per-pixel by the quadrant sign of a
// point relative to the shape center (see PickCornerRadius).
type Corners struct {
	TopLeft, TopRight, BottomRight, BottomLeft float32
}

// IsZero reports whether all four radii are zero.
func (c Corners) IsZero() bool {
	return c.TopLeft == 0 && c.TopRight == 0 && c.BottomRight == 0 && c.BottomLeft == 0
}

// UniformCorners creates Corners with the same radius on all four corners.
func UniformCorners(radius float32) Corners {
	return Corners{TopLeft: radius, TopRight: radius, BottomRight: radius, BottomLeft: radius}
}

// Edges holds four independent border widths. A width of 0 means no
// border on that side.
type Edges struct {
	Top, Right, Bottom, Left float32
}

// IsZero reports whether all four widths are zero.
func (e Edges) IsZero() bool {
	return e.Top == 0 && e.Right == 0 && e.Bottom == 0 && e.Left == 0
}

// UniformEdges creates Edges with the same width on all four sides.
func UniformEdges(width float32) Edges {
	return Edges{Top: width, Right: width, Bottom: width, Left: width}
}

// DevicePosition is a 4-component homogeneous position in normalized
// device coordinates, as produced by the vertex stage of each pipeline.
type DevicePosition struct {
	X, Y, Z, W float32
}

// ToDevicePosition maps a unit-quad vertex in [0,1]² through a primitive's
// bounds into normalized device coordinates. Logical coordinates have a
// top-left origin, so Y is flipped: device = pos/viewport*(2,-2) + (-1,1).
func ToDevicePosition(unit Point, bounds Bounds, viewport Size) DevicePosition {
	position := Point{
		X: unit.X*bounds.Size.Width + bounds.Origin.X,
		Y: unit.Y*bounds.Size.Height + bounds.Origin.Y,
	}
	return DevicePosition{
		X: position.X/viewport.Width*2 - 1,
		Y: position.Y/viewport.Height*-2 + 1,
		Z: 0,
		W: 1,
	}
}

// ClipDistances holds the signed distances from a point to the four edges
// of a clip rectangle. A negative component means the point is outside the
// clip on that side.
type ClipDistances struct {
	Left, Right, Top, Bottom float32
}

// Inside reports whether all four distances are non-negative.
func (d ClipDistances) Inside() bool {
	return d.Left >= 0 && d.Right >= 0 && d.Top >= 0 && d.Bottom >= 0
}

// DistanceFromClipRect projects a unit-quad vertex through bounds and
// returns its signed distances to the clip rectangle's edges.
func DistanceFromClipRect(unit Point, bounds, clip Bounds) ClipDistances {
	position := Point{
		X: unit.X*bounds.Size.Width + bounds.Origin.X,
		Y: unit.Y*bounds.Size.Height + bounds.Origin.Y,
	}
	return distanceFromClip(position, clip)
}

// distanceFromClip is the point form used by the per-pixel loops.
func distanceFromClip(point Point, clip Bounds) ClipDistances {
	return ClipDistances{
		Left:   point.X - clip.Origin.X,
		Right:  clip.Right() - point.X,
		Top:    point.Y - clip.Origin.Y,
		Bottom: clip.Bottom() - point.Y,
	}
}
