package prim

import "golang.org/x/image/math/f64"

// TransformationMatrix is a 2x2 rotation/scale matrix plus a 2D translation,
// applied to sprite geometry. Perspective and other non-affine transforms
// are not representable, by design.
//
// The batching layer applies the transform when positioning sprites; the
// per-pixel evaluators consume already-transformed geometry.
type TransformationMatrix struct {
	RotationScale [2][2]float32
	Translation   [2]float32
}

// IdentityTransform returns the identity transformation.
func IdentityTransform() TransformationMatrix {
	return TransformationMatrix{
		RotationScale: [2][2]float32{{1, 0}, {0, 1}},
	}
}

// ScaleTransform returns a transformation scaling by sx and sy.
func ScaleTransform(sx, sy float32) TransformationMatrix {
	return TransformationMatrix{
		RotationScale: [2][2]float32{{sx, 0}, {0, sy}},
	}
}

// TranslateTransform returns a transformation translating by (tx, ty).
func TranslateTransform(tx, ty float32) TransformationMatrix {
	return TransformationMatrix{
		RotationScale: [2][2]float32{{1, 0}, {0, 1}},
		Translation:   [2]float32{tx, ty},
	}
}

// IsIdentity reports whether the transform is exactly the identity.
func (m TransformationMatrix) IsIdentity() bool {
	return m == IdentityTransform()
}

// Apply transforms a point: rotation/scale first, then translation.
func (m TransformationMatrix) Apply(p Point) Point {
	return Point{
		X: m.RotationScale[0][0]*p.X + m.RotationScale[0][1]*p.Y + m.Translation[0],
		Y: m.RotationScale[1][0]*p.X + m.RotationScale[1][1]*p.Y + m.Translation[1],
	}
}

// Mul composes two transforms; the receiver is applied after other.
func (m TransformationMatrix) Mul(other TransformationMatrix) TransformationMatrix {
	var out TransformationMatrix
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			out.RotationScale[i][j] = m.RotationScale[i][0]*other.RotationScale[0][j] +
				m.RotationScale[i][1]*other.RotationScale[1][j]
		}
		out.Translation[i] = m.RotationScale[i][0]*other.Translation[0] +
			m.RotationScale[i][1]*other.Translation[1] +
			m.Translation[i]
	}
	return out
}

// Inverse returns the inverse transformation and true, or the identity and
// false when the rotation/scale part is singular. The renderer maps
// destination pixels back through the inverse to sample sprite tiles.
func (m TransformationMatrix) Inverse() (TransformationMatrix, bool) {
	a, b := m.RotationScale[0][0], m.RotationScale[0][1]
	c, d := m.RotationScale[1][0], m.RotationScale[1][1]
	det := a*d - b*c
	if det == 0 {
		return IdentityTransform(), false
	}
	inv := 1 / det
	out := TransformationMatrix{
		RotationScale: [2][2]float32{
			{d * inv, -b * inv},
			{-c * inv, a * inv},
		},
	}
	out.Translation[0] = -(out.RotationScale[0][0]*m.Translation[0] + out.RotationScale[0][1]*m.Translation[1])
	out.Translation[1] = -(out.RotationScale[1][0]*m.Translation[0] + out.RotationScale[1][1]*m.Translation[1])
	return out, true
}

// Aff3 converts the transform to the row-major affine form used by
// golang.org/x/image/draw transformers.
func (m TransformationMatrix) Aff3() f64.Aff3 {
	return f64.Aff3{
		float64(m.RotationScale[0][0]), float64(m.RotationScale[0][1]), float64(m.Translation[0]),
		float64(m.RotationScale[1][0]), float64(m.RotationScale[1][1]), float64(m.Translation[1]),
	}
}
