package fractal

import (
	"fmt"
	"iter"
	"slices"
)

// Polygon is the polyline of generation zero. It may be open, describing a
// path, or closed, in which case its first and last points are equal.
//
// Polygons are immutable and may be shared. The zero value is not a valid
// polygon; use [NewPolygon].
type Polygon struct {
	pts []Point
}

// NewPolygon returns the polygon with the given points. It returns an error
// wrapping [ErrTooFewPoints] or [ErrNonFinite] for invalid input.
func NewPolygon(pts ...Point) (Polygon, error) {
	if len(pts) < 2 {
		return Polygon{}, fmt.Errorf("invalid polygon: %w", ErrTooFewPoints)
	}
	for i, pt := range pts {
		if !pt.IsFinite() {
			return Polygon{}, fmt.Errorf("invalid polygon: point %d %s: %w", i, pt, ErrNonFinite)
		}
	}
	return Polygon{pts: slices.Clone(pts)}, nil
}

// MustPolygon is like [NewPolygon] but panics on invalid input.
func MustPolygon(pts ...Point) Polygon {
	p, err := NewPolygon(pts...)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Polygon) Len() int { return len(p.pts) }

// Points returns a copy of the polygon's points.
func (p Polygon) Points() []Point { return slices.Clone(p.pts) }

func (p Polygon) All() iter.Seq[Point] { return slices.Values(p.pts) }

// Edges returns the polygon's segments in order.
func (p Polygon) Edges() iter.Seq[Line] { return Edges(p.pts) }

// DegenerateEdges counts the edges whose endpoints coincide. Every motif
// substituted into such an edge collapses to a point.
func (p Polygon) DegenerateEdges() int {
	var n int
	for l := range p.Edges() {
		if l.IsDegenerate() {
			n++
		}
	}
	return n
}

// Closed reports whether the first and last points are equal.
func (p Polygon) Closed() bool {
	return len(p.pts) > 1 && p.pts[0] == p.pts[len(p.pts)-1]
}

// BoundingBox returns the extent of the polygon's points.
func (p Polygon) BoundingBox() Rect {
	r, _ := BoundingBoxOf(p.All())
	return r
}
