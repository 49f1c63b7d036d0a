package fractal

import (
	"fmt"
	"iter"
	"slices"
)

// Generator is the motif that replaces every segment of a curve in each
// generation. Its points are given relative to the unit segment
// (0, 0)→(1, 0): the first point is always (0, 0) and the last one (1, 0), so
// that a mapped copy of the motif starts and ends exactly at the endpoints of
// the segment it replaces.
//
// A generator with only two points is the identity generator: substituting it
// leaves a curve unchanged.
//
// Generators are immutable and may be shared. The zero value is not a valid
// generator; use [NewGenerator].
type Generator struct {
	pts []Point
}

// NewGenerator returns the generator with the given points. It returns an
// error wrapping [ErrTooFewPoints], [ErrGeneratorStart], [ErrGeneratorEnd] or
// [ErrNonFinite] if the points don't describe a valid motif.
func NewGenerator(pts ...Point) (Generator, error) {
	if len(pts) < 2 {
		return Generator{}, fmt.Errorf("invalid generator: %w", ErrTooFewPoints)
	}
	for i, pt := range pts {
		if !pt.IsFinite() {
			return Generator{}, fmt.Errorf("invalid generator: point %d %s: %w", i, pt, ErrNonFinite)
		}
	}
	if pts[0] != Pt(0, 0) {
		return Generator{}, fmt.Errorf("invalid generator: first point is %s: %w", pts[0], ErrGeneratorStart)
	}
	if last := pts[len(pts)-1]; last != Pt(1, 0) {
		return Generator{}, fmt.Errorf("invalid generator: last point is %s: %w", last, ErrGeneratorEnd)
	}
	return Generator{pts: slices.Clone(pts)}, nil
}

// MustGenerator is like [NewGenerator] but panics on invalid input. It is
// intended for generators known at compile time.
func MustGenerator(pts ...Point) Generator {
	g, err := NewGenerator(pts...)
	if err != nil {
		panic(err)
	}
	return g
}

// Len returns the number of points in the motif, including both endpoints.
func (g Generator) Len() int { return len(g.pts) }

// Points returns a copy of the motif's points.
func (g Generator) Points() []Point { return slices.Clone(g.pts) }

// All returns the motif's points in order.
func (g Generator) All() iter.Seq[Point] { return slices.Values(g.pts) }

// interior returns the points strictly between the motif's endpoints. The
// returned slice aliases g and must not be modified.
func (g Generator) interior() []Point {
	return g.pts[1 : len(g.pts)-1]
}

// IsIdentity reports whether g consists of only its two endpoints.
func (g Generator) IsIdentity() bool { return len(g.pts) == 2 }

// MaxLateral returns the largest y coordinate among the motif's points, which
// is the greatest excursion of the motif to the left of the segment it
// replaces. Because the motif starts at (0, 0), the result is never negative.
func (g Generator) MaxLateral() float64 {
	var m float64
	for _, pt := range g.pts {
		m = max(m, pt.Y)
	}
	return m
}

// Place returns the motif mapped onto the segment l.
func (g Generator) Place(l Line) []Point {
	out := make([]Point, len(g.pts))
	for i, m := range g.pts {
		out[i] = l.Place(m)
	}
	return out
}
