package prim

import "github.com/chewxy/math32"

// Quad is a filled, optionally bordered, optionally rounded rectangle.
// It is the workhorse primitive of the renderer: panels, buttons, cursors,
// selections, and dividers are all quads.
//
// Only solid backgrounds (tag 0) are evaluated by the quad pipeline in this
// version; a gradient background falls back to its first stop's color.
type Quad struct {
	Order        uint32
	Bounds       Bounds
	ContentMask  Bounds
	Background   Background
	BorderColor  Hsla
	CornerRadii  Corners
	BorderWidths Edges
}

// quadVarying carries the per-instance flat values computed once by the
// geometry stage and consumed for every covered pixel.
type quadVarying struct {
	background  RGBA
	borderColor RGBA
}

// prepare computes the quad's flat colors.
func (q *Quad) prepare() quadVarying {
	return quadVarying{
		background:  q.Background.SolidColor(),
		borderColor: q.BorderColor.RGBA(),
	}
}

// colorAt evaluates the quad at a point, returning the contribution with
// coverage already applied via BlendColor.
//
// The evaluation is built from two signed distance fields: the outer SDF
// measures distance to the rounded outside edge, the inner SDF measures
// distance inward from the border's inner boundary. Coverage ramps over a
// 0.5-pixel band at both boundaries.
func (q *Quad) colorAt(point Point, v quadVarying, premultiplied bool) RGBA {
	unrounded := q.CornerRadii.IsZero()

	halfSize := q.Bounds.HalfSize()
	centerToPoint := point.Sub(q.Bounds.Center())

	// Fast path: no border and square corners reduce to the plain rect
	// ramp. The ramp, not a constant, so pixel centers past fractional
	// bounds still fall off to zero within the antialias band.
	if unrounded && q.BorderWidths.IsZero() {
		edgeToPoint := centerToPoint.Abs().Sub(halfSize)
		distance := math32.Max(edgeToPoint.X, edgeToPoint.Y)
		return BlendColor(v.background, sdfCoverage(distance), premultiplied)
	}
	cornerRadius := PickCornerRadius(centerToPoint, q.CornerRadii)

	// Border widths of the two sides nearest the point.
	border := Point{
		X: pick32(centerToPoint.X > 0, q.BorderWidths.Right, q.BorderWidths.Left),
		Y: pick32(centerToPoint.Y > 0, q.BorderWidths.Bottom, q.BorderWidths.Top),
	}

	// Distance past the outer edges along each axis; negative inside.
	cornerToPoint := centerToPoint.Abs().Sub(halfSize)
	// Vector from the point to the center of the corner circle; both
	// components positive only within the rounded-corner region.
	cornerCenterToPoint := cornerToPoint.Add(Point{X: cornerRadius, Y: cornerRadius})
	rounded := cornerCenterToPoint.X > 0 && cornerCenterToPoint.Y > 0

	// Distance past the border's inner edges along each axis.
	innerCornerToPoint := cornerToPoint.Add(border)

	// Fast path: strictly inside the inner border edge by more than the
	// antialias band, clear of the rounded-corner region.
	if !rounded &&
		innerCornerToPoint.X < -antialiasThreshold &&
		innerCornerToPoint.Y < -antialiasThreshold {
		return BlendColor(v.background, 1, premultiplied)
	}

	// Signed distance to the outside edge; negative inside the quad.
	var outerSDF float32
	if rounded {
		outerSDF = cornerCenterToPoint.Length() - cornerRadius
	} else {
		outerSDF = math32.Max(cornerToPoint.X, cornerToPoint.Y)
	}

	// Border width governing the point's region: in corner regions the
	// wider of the two adjacent sides, on straight runs the side whose
	// inner edge the point is nearest.
	var borderWidth float32
	switch {
	case rounded:
		borderWidth = math32.Max(border.X, border.Y)
	case innerCornerToPoint.Y > innerCornerToPoint.X:
		borderWidth = border.Y
	default:
		borderWidth = border.X
	}

	color := v.background
	if borderWidth > 0 {
		// Signed distance inward from the border's inner edge; positive
		// inside the fill, negative within the border.
		var innerSDF float32
		if rounded {
			innerSDF = -(outerSDF + borderWidth)
		} else {
			innerSDF = -math32.Max(innerCornerToPoint.X, innerCornerToPoint.Y)
		}

		if math32.Max(innerSDF, outerSDF) < antialiasThreshold {
			blended := Over(v.background, v.borderColor)
			color = v.background.Lerp(blended, sdfCoverage(innerSDF))
		}
	}

	return BlendColor(color, sdfCoverage(outerSDF), premultiplied)
}

// pick32 returns a when cond holds, otherwise b.
func pick32(cond bool, a, b float32) float32 {
	if cond {
		return a
	}
	return b
}
