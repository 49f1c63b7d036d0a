package fractal

// boundsMarginFactor widens the motif's lateral excursion into the display
// margin.
const boundsMarginFactor = 1.1

// Bounds returns a display window for every generation of the fractal built
// from poly and gen. It is the bounding box of poly, inflated on all sides by
// 1.1 times the motif's [Generator.MaxLateral].
//
// The result does not depend on the generation, so that a series of
// renderings at increasing depth shares the same scale. It is an
// approximation: the margin is computed in the motif's unit frame and is not
// scaled by edge length, nor does it account for excursions that compound
// across generations.
func Bounds(gen Generator, poly Polygon) Rect {
	margin := boundsMarginFactor * gen.MaxLateral()
	return poly.BoundingBox().Inflate(margin, margin)
}
