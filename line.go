package fractal

import (
	"iter"
)

// Line represents a directed line segment. Every edge of a polyline is a Line.
type Line struct {
	/// The line's start point.
	P0 Point
	/// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P0.Distance(l.P1)
}

// IsDegenerate reports whether the line's start and end points coincide, in
// which case [Line.Place] collapses every motif point onto P0.
func (l Line) IsDegenerate() bool {
	return l.Map().Determinant() == 0
}

func (l Line) Transform(aff Affine) Line {
	return Line{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}

func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

// Map returns the affine transform that places the unit segment
// (0, 0)→(1, 0) onto l. See [SegmentMap].
func (l Line) Map() Affine {
	return SegmentMap(l.P0, l.P1)
}

// Place maps m, given relative to the unit segment, onto l. See
// [MapToSegment].
func (l Line) Place(m Point) Point {
	return MapToSegment(m, l.P0, l.P1)
}

// Edges returns the consecutive segments of the polyline pts, in order. A
// sequence of n points has n−1 edges.
func Edges(pts []Point) iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for i := 1; i < len(pts); i++ {
			if !yield(Line{pts[i-1], pts[i]}) {
				return
			}
		}
	}
}
