package fractal

import (
	"slices"
	"testing"
)

func TestBoundingBoxOf(t *testing.T) {
	pts := []Point{Pt(1, 2), Pt(-3, 5), Pt(4, -1)}
	r, ok := BoundingBoxOf(slices.Values(pts))
	if !ok {
		t.Fatal("expected a bounding box")
	}
	diff(t, Rect{-3, -1, 4, 5}, r)

	if _, ok := BoundingBoxOf(slices.Values([]Point(nil))); ok {
		t.Error("got a bounding box for no points")
	}

	r, _ = BoundingBoxOf(slices.Values([]Point{Pt(2, 2)}))
	if !r.IsEmpty() {
		t.Errorf("bounding box of one point should be empty, got %s", r)
	}
}

func TestRectRanges(t *testing.T) {
	r := NewRectFromPoints(Pt(3, 4), Pt(-1, 0)).Inflate(0.5, 1)
	x0, x1 := r.XRange()
	y0, y1 := r.YRange()
	diff(t, []float64{-1.5, 3.5, -1, 5}, []float64{x0, x1, y0, y1})
	diff(t, Sz(5, 6), r.Size())
}

func TestRectContains(t *testing.T) {
	r := NewRectFromOrigin(Pt(0, 0), Sz(2, 1))
	for _, pt := range []Point{Pt(0, 0), Pt(2, 1), Pt(1, 0.5)} {
		if !r.Contains(pt) {
			t.Errorf("%s should contain %s", r, pt)
		}
	}
	if r.Contains(Pt(2.1, 0)) {
		t.Errorf("%s should not contain (2.1, 0)", r)
	}
}
