// Package fractal generates self-similar plane curves by geometric
// substitution. Starting from a base [Polygon], every generation replaces each
// straight segment of the curve with a copy of a [Generator] motif that has
// been scaled, rotated and translated onto that segment.
//
// # Generators and polygons
//
// A generator describes how a single segment is replaced. Its points are
// expressed relative to the unit segment from (0, 0) to (1, 0), and it must
// start and end at exactly those two points. The classic Koch generator, for
// example, is
//
//	(0, 0), (1/3, 0), (1/2, √3/6), (2/3, 0), (1, 0)
//
// A polygon is the curve of generation zero, such as a single line or a
// closed triangle. Both are immutable values, validated once by
// [NewGenerator] and [NewPolygon].
//
// # Substitution
//
// [MapToSegment] places a motif point onto a segment p0→p1. Treating points as
// complex numbers, it computes m·(p1−p0) + p0: a scale by the segment's length
// and a rotation by its angle, followed by a translation. [SegmentMap] returns
// the same mapping as an [Affine] transform.
//
// A [Fractal] owns the current curve. [Fractal.Step] produces the next
// generation, and [Fractal.Iterate] applies any number of steps. A curve of P
// points substituted with a generator of G points has 1 + (P−1)·(G−1) points,
// so memory use grows exponentially with the number of generations. Use
// [PointCount] to bound it beforehand.
//
// # Display bounds
//
// [Bounds] computes a viewport that is the same for every generation, so that
// a series of renderings at increasing depth share a common scale. Curves are
// expressed in a y-up coordinate system; [FitRect] maps a viewport onto a
// y-down image.
package fractal
