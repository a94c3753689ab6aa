package bezier

import (
	"math"
)

// Affine describes an affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// Hosts typically use it to move a curve's control points from a local
// coordinate space into the space of its parent, see [Curve.Transform].
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// FlipY is a transform that is flipped on the y-axis. Useful for converting
// between y-up and y-down spaces.
var FlipY = Affine{1, 0, 0, -1, 0, 0}

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x and y.
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// Translate creates an affine transform representing translation.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// Rotate creates an affine transform representing rotation by th radians.
//
// A positive angle rotates the positive X direction into positive Y. In a
// Y-up coordinate system that is anti-clockwise.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// Mul returns the transform that applies o first and aff second.
func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// Then returns the transform that applies aff first and o second.
func (aff Affine) Then(o Affine) Affine {
	return o.Mul(aff)
}

// Determinant computes the determinant.
func (aff Affine) Determinant() float64 {
	return aff.N0*aff.N3 - aff.N1*aff.N2
}

// Invert computes the inverse transform.
//
// Produces NaN values when the determinant is zero.
func (aff Affine) Invert() Affine {
	invDet := 1 / aff.Determinant()
	return Affine{
		+invDet * aff.N3,
		-invDet * aff.N1,
		-invDet * aff.N2,
		+invDet * aff.N0,
		+invDet * (aff.N2*aff.N5 - aff.N3*aff.N4),
		+invDet * (aff.N1*aff.N4 - aff.N0*aff.N5),
	}
}

// Translation returns the translation component of the transform.
func (aff Affine) Translation() Vec2 {
	return Vec2{
		X: aff.N4,
		Y: aff.N5,
	}
}
