package fractal

import (
	"iter"
	"math"
	"slices"
)

// Fractal is a curve that evolves by substitution. It starts out as its base
// [Polygon] and, with every generation, replaces each of its segments with a
// copy of its [Generator] mapped onto that segment.
//
// A Fractal owns its current points; no method returns them without copying.
// It is not safe for concurrent use.
type Fractal struct {
	gen  Generator
	base Polygon
	pts  []Point
	iter int
}

// New returns the fractal of generation zero for poly and gen.
//
// Both poly and gen must have been created with their respective
// constructors.
func New(poly Polygon, gen Generator) *Fractal {
	return &Fractal{
		gen:  gen,
		base: poly,
		pts:  poly.pts,
	}
}

// Step advances the fractal by one generation.
//
// The new curve starts with the current first point. Then, for every segment
// in order, it contains the interior points of the generator mapped onto the
// segment, followed by the segment's end point. Vertices of the current
// generation therefore remain vertices of the next one, and a curve with P
// points grows to 1 + (P−1)·(G−1) points, where G is the length of the
// generator.
//
// Segments whose endpoints coincide map all generator points onto that single
// point.
func (f *Fractal) Step() {
	interior := f.gen.interior()
	next := make([]Point, 0, nextLen(len(f.pts), f.gen.Len()))
	next = append(next, f.pts[0])
	for l := range Edges(f.pts) {
		for _, m := range interior {
			next = append(next, l.Place(m))
		}
		next = append(next, l.P1)
	}
	f.pts = next
	f.iter++
}

// Iterate advances the fractal by n generations. Iterating zero or a negative
// number of times does nothing.
//
// The number of points grows exponentially with n; see [PointCount] for
// bounding it before iterating.
func (f *Fractal) Iterate(n int) {
	n = max(n, 0)
	if f.gen.IsIdentity() {
		// Substituting a bare segment reproduces every curve unchanged.
		f.iter += n
		return
	}
	for range n {
		f.Step()
	}
}

// Iteration returns the number of generations the fractal has advanced by.
func (f *Fractal) Iteration() int { return f.iter }

// Len returns the number of points of the current generation.
func (f *Fractal) Len() int { return len(f.pts) }

// Generator returns the fractal's generator.
func (f *Fractal) Generator() Generator { return f.gen }

// Base returns the fractal's polygon of generation zero.
func (f *Fractal) Base() Polygon { return f.base }

// Closed reports whether the current curve's first and last points are equal.
// A fractal with a closed base polygon remains closed in every generation.
func (f *Fractal) Closed() bool {
	return f.pts[0] == f.pts[len(f.pts)-1]
}

// Points returns a copy of the points of the current generation.
func (f *Fractal) Points() []Point { return slices.Clone(f.pts) }

// All returns the points of the current generation in order. The sequence
// stays bound to the generation current at the time of the call.
func (f *Fractal) All() iter.Seq[Point] { return slices.Values(f.pts) }

// XY returns the coordinates of the current generation as two parallel slices.
func (f *Fractal) XY() (xs, ys []float64) {
	xs = make([]float64, len(f.pts))
	ys = make([]float64, len(f.pts))
	for i, pt := range f.pts {
		xs[i], ys[i] = pt.Splat()
	}
	return xs, ys
}

// PathElements returns the current generation as a polyline path, closed if
// the curve is closed.
func (f *Fractal) PathElements() iter.Seq[PathElement] {
	return PolylineElements(f.pts, f.Closed())
}

// Bounds returns the generation-independent display window of the fractal.
// See the package-level [Bounds].
func (f *Fractal) Bounds() Rect {
	return Bounds(f.gen, f.base)
}

// BoundingBox returns the actual extent of the current generation. Unlike
// [Fractal.Bounds], it changes between generations.
func (f *Fractal) BoundingBox() Rect {
	r, _ := BoundingBoxOf(f.All())
	return r
}

// Length returns the length of the current curve, the sum of its edge
// lengths.
func (f *Fractal) Length() float64 {
	var sum float64
	for l := range Edges(f.pts) {
		sum += l.Length()
	}
	return sum
}

func nextLen(p, g int) int {
	return 1 + (p-1)*(g-1)
}

// PointCount returns the number of points a curve of p points has after n
// substitutions with a generator of g points. Counts that don't fit in an int
// saturate at [math.MaxInt].
func PointCount(p, g, n int) int {
	if g <= 2 {
		return p
	}
	for range max(n, 0) {
		if p-1 > (math.MaxInt-1)/(g-1) {
			return math.MaxInt
		}
		p = nextLen(p, g)
	}
	return p
}
