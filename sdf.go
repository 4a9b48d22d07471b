package prim

import "github.com/chewxy/math32"

// antialiasThreshold is the signed-distance range over which coverage ramps
// between 0 and 1. 0.5 is the minimum distance between a pixel center and
// an edge passing through the pixel; together with the saturate clamp it is
// the sole anti-aliasing mechanism in this package (no multisampling).
const antialiasThreshold = 0.5

// PickCornerRadius selects the corner radius for the quadrant that contains
// centerToPoint, the vector from the shape center to the evaluated point.
func PickCornerRadius(centerToPoint Point, corners Corners) float32 {
	if centerToPoint.X < 0 {
		if centerToPoint.Y < 0 {
			return corners.TopLeft
		}
		return corners.BottomLeft
	}
	if centerToPoint.Y < 0 {
		return corners.TopRight
	}
	return corners.BottomRight
}

// RoundedRectSDF returns the signed distance from a point to the boundary
// of an axis-aligned rounded rectangle centered at the origin. The distance
// is negative inside the shape and positive outside.
//
// cornerRadius applies to the quadrant containing centerToPoint; use
// PickCornerRadius when radii differ per corner.
func RoundedRectSDF(centerToPoint, halfSize Point, cornerRadius float32) float32 {
	cornerCenterToPoint := Point{
		X: math32.Abs(centerToPoint.X) - halfSize.X + cornerRadius,
		Y: math32.Abs(centerToPoint.Y) - halfSize.Y + cornerRadius,
	}
	if cornerCenterToPoint.X > 0 && cornerCenterToPoint.Y > 0 {
		// Rounded corner region: Euclidean distance to the inset circle.
		return cornerCenterToPoint.Length() - cornerRadius
	}
	// Straight edge region.
	return math32.Max(cornerCenterToPoint.X, cornerCenterToPoint.Y) - cornerRadius
}

// sdfCoverage converts a signed distance into an anti-aliased coverage
// value using the 0.5-pixel ramp shared by every pipeline.
func sdfCoverage(distance float32) float32 {
	return saturate(antialiasThreshold - distance)
}
