package catalog

import (
	"math"

	fractal "github.com/jorge-antares/fractal-generator"
)

// Koch returns the generator of the Koch curve: the middle third of a segment
// is replaced by the two upper sides of an equilateral triangle.
func Koch() fractal.Generator {
	return fractal.MustGenerator(
		fractal.Pt(0, 0),
		fractal.Pt(1.0/3, 0),
		fractal.Pt(0.5, math.Sqrt(3)/6),
		fractal.Pt(2.0/3, 0),
		fractal.Pt(1, 0),
	)
}

// SquareWave returns the generator that replaces the middle third of a
// segment with three sides of a square.
func SquareWave() fractal.Generator {
	return fractal.MustGenerator(
		fractal.Pt(0, 0),
		fractal.Pt(1.0/3, 0),
		fractal.Pt(1.0/3, 1.0/3),
		fractal.Pt(2.0/3, 1.0/3),
		fractal.Pt(2.0/3, 0),
		fractal.Pt(1, 0),
	)
}

// Peak returns a Koch-like generator whose spike is a third of the segment
// high. It is the default generator.
func Peak() fractal.Generator {
	return fractal.MustGenerator(
		fractal.Pt(0, 0),
		fractal.Pt(1.0/3, 0),
		fractal.Pt(0.5, 1.0/3),
		fractal.Pt(2.0/3, 0),
		fractal.Pt(1, 0),
	)
}

// Identity returns the generator that leaves every segment unchanged.
func Identity() fractal.Generator {
	return fractal.MustGenerator(fractal.Pt(0, 0), fractal.Pt(1, 0))
}

// Line returns the unit segment from (0, 0) to (1, 0). It is the default
// polygon.
func Line() fractal.Polygon {
	return fractal.MustPolygon(fractal.Pt(0, 0), fractal.Pt(1, 0))
}

// Triangle returns the closed equilateral triangle with unit sides standing on
// the unit segment, traversed clockwise so that generators bulge outwards.
func Triangle() fractal.Polygon {
	return fractal.MustPolygon(
		fractal.Pt(0, 0),
		fractal.Pt(0.5, math.Sqrt(3)/2),
		fractal.Pt(1, 0),
		fractal.Pt(0, 0),
	)
}

// Square returns the closed unit square hanging below the unit segment,
// traversed clockwise.
func Square() fractal.Polygon {
	return fractal.MustPolygon(
		fractal.Pt(0, 0),
		fractal.Pt(1, 0),
		fractal.Pt(1, -1),
		fractal.Pt(0, -1),
		fractal.Pt(0, 0),
	)
}
