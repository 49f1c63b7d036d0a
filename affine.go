package fractal

import (
	"iter"
)

// Affine is a 2D affine transform in column-major order. The coefficients
// (a, b, c, d, e, f) stand for the augmented matrix
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// Transforms compose right to left: a.Mul(b) applies b first.
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// Scale returns a transform scaling x and y independently.
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// Translate returns a transform moving points by v.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// SegmentMap creates the affine transform that takes the unit segment
// (0, 0)→(1, 0) onto the directed segment p0→p1. It scales by |p1−p0|,
// rotates by the angle of p1−p0 and translates by p0, all without
// trigonometry: with d = p1−p0 the linear part is the rotation-scale matrix
//
//	| d.X −d.Y |
//	| d.Y  d.X |
//
// When p0 == p1 the linear part is zero and every point maps onto p0.
func SegmentMap(p0, p1 Point) Affine {
	d := p1.Sub(p0)
	return Affine{d.X, d.Y, -d.Y, d.X, p0.X, p0.Y}
}

// MapToSegment places m, given in the frame where the segment (0, 0)→(1, 0)
// is the unit, onto the directed segment p0→p1. Treating points as complex
// numbers, this computes m·(p1−p0) + p0.
//
// It is equivalent to m.Transform(SegmentMap(p0, p1)).
func MapToSegment(m, p0, p1 Point) Point {
	return p0.Translate(Vec2(m).CMul(p1.Sub(p0)))
}

// Mul returns the composition of aff and o, applying o first.
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

// ThenScale returns aff followed by Scale(x, y).
func (aff Affine) ThenScale(x, y float64) Affine {
	return Scale(x, y).Mul(aff)
}

// ThenTranslate returns aff followed by Translate(v).
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}

// Determinant returns the determinant of the linear part. For a [SegmentMap]
// it is the squared length of the segment, and zero only for a degenerate one.
func (aff Affine) Determinant() float64 {
	return aff.N0*aff.N3 - aff.N1*aff.N2
}

// FitRect creates a transform that maps src into dst, preserving the aspect
// ratio of src and centering it in dst. The y axis is flipped, so that src is
// interpreted as y-up and dst as y-down, as is the case when mapping a
// mathematical viewport onto an image.
//
// src must have non-zero width and height.
func FitRect(src, dst Rect) Affine {
	src, dst = src.Abs(), dst.Abs()
	s := min(dst.Width()/src.Width(), dst.Height()/src.Height())
	c := src.Center()
	return Translate(Vec2(c).Negate()).
		ThenScale(s, -s).
		ThenTranslate(Vec2(dst.Center()))
}

// Transform lazily applies aff to every element of seq.
func Transform[T interface{ Transform(Affine) T }](seq iter.Seq[T], aff Affine) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !yield(v.Transform(aff)) {
				break
			}
		}
	}
}
