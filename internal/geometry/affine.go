// Package geometry fits a source image into the display box and rasterizes it
// under the edit transform (rotation about the buffer centre, then flips).
package geometry

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Affine represents a 2D affine transformation matrix.
//
//	| a  b  c |
//	| d  e  f |
//	| 0  0  1 |
type Affine struct {
	a, b, c float64 // x' = ax + by + c
	d, e, f float64 // y' = dx + ey + f
}

// Identity returns the identity transformation.
func Identity() Affine {
	return Affine{a: 1, e: 1}
}

// Translate returns a translation by (tx, ty).
func Translate(tx, ty float64) Affine {
	return Affine{a: 1, c: tx, e: 1, f: ty}
}

// Scale returns a scaling by (sx, sy) around the origin.
// Negative values flip.
func Scale(sx, sy float64) Affine {
	return Affine{a: sx, e: sy}
}

// Rotate returns a rotation by angle radians around the origin. With y
// pointing down, positive angles turn clockwise on screen.
func Rotate(angle float64) Affine {
	sin, cos := math.Sincos(angle)
	return Affine{
		a: cos, b: -sin,
		d: sin, e: cos,
	}
}

// RotateDegrees is Rotate for whole degrees. Quarter turns are exact.
func RotateDegrees(degrees int) Affine {
	degrees = NormalizeDegrees(degrees)
	switch degrees {
	case 0:
		return Identity()
	case 90:
		return Affine{b: -1, d: 1}
	case 180:
		return Affine{a: -1, e: -1}
	case 270:
		return Affine{b: 1, d: -1}
	}
	return Rotate(float64(degrees) * math.Pi / 180)
}

// NormalizeDegrees maps any angle to [0, 360).
func NormalizeDegrees(degrees int) int {
	return ((degrees % 360) + 360) % 360
}

// Multiply returns a*other: other is applied first, then a.
func (a Affine) Multiply(other Affine) Affine {
	return Affine{
		a: a.a*other.a + a.b*other.d,
		b: a.a*other.b + a.b*other.e,
		c: a.a*other.c + a.b*other.f + a.c,
		d: a.d*other.a + a.e*other.d,
		e: a.d*other.b + a.e*other.e,
		f: a.d*other.c + a.e*other.f + a.f,
	}
}

// Invert returns the inverse transformation.
// Returns false if the matrix is singular.
func (a Affine) Invert() (Affine, bool) {
	det := a.a*a.e - a.b*a.d
	if math.Abs(det) < 1e-10 {
		return Affine{}, false
	}

	invDet := 1.0 / det
	return Affine{
		a: a.e * invDet,
		b: -a.b * invDet,
		c: (a.b*a.f - a.c*a.e) * invDet,
		d: -a.d * invDet,
		e: a.a * invDet,
		f: (a.c*a.d - a.a*a.f) * invDet,
	}, true
}

// TransformPoint applies the transformation to (x, y).
func (a Affine) TransformPoint(x, y float64) (float64, float64) {
	return a.a*x + a.b*y + a.c, a.d*x + a.e*y + a.f
}

// Aff3 returns the matrix in the layout used by golang.org/x/image/draw.
func (a Affine) Aff3() f64.Aff3 {
	return f64.Aff3{a.a, a.b, a.c, a.d, a.e, a.f}
}

// Matrix returns the mapping from source pixel space to buffer pixel space:
// the source is scaled to dstW×dstH, rotated by degrees about the buffer
// centre, then mirrored horizontally and/or vertically about the centre.
func Matrix(srcW, srcH, dstW, dstH, degrees int, flipH, flipV bool) Affine {
	cx, cy := float64(dstW)/2, float64(dstH)/2

	sx, sy := 1.0, 1.0
	if flipH {
		sx = -1
	}
	if flipV {
		sy = -1
	}

	fit := Scale(float64(dstW)/float64(srcW), float64(dstH)/float64(srcH))

	return Translate(cx, cy).
		Multiply(RotateDegrees(degrees)).
		Multiply(Scale(sx, sy)).
		Multiply(Translate(-cx, -cy)).
		Multiply(fit)
}
