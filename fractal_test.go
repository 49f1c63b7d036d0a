package fractal

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

var (
	testKoch     = MustGenerator(Pt(0, 0), Pt(1.0/3, 0), Pt(0.5, 0.1443), Pt(2.0/3, 0), Pt(1, 0))
	testSquare   = MustGenerator(Pt(0, 0), Pt(1.0/3, 0), Pt(1.0/3, 1.0/3), Pt(2.0/3, 1.0/3), Pt(2.0/3, 0), Pt(1, 0))
	testIdentity = MustGenerator(Pt(0, 0), Pt(1, 0))

	testLine     = MustPolygon(Pt(0, 0), Pt(1, 0))
	testTriangle = MustPolygon(Pt(0, 0), Pt(0.5, 0.866), Pt(1, 0), Pt(0, 0))
	testSquarePo = MustPolygon(Pt(0, 0), Pt(1, 0), Pt(1, -1), Pt(0, -1), Pt(0, 0))
)

func TestPointCountLaw(t *testing.T) {
	for _, gen := range []Generator{testKoch, testSquare, testIdentity} {
		for _, poly := range []Polygon{testLine, testTriangle, testSquarePo} {
			f := New(poly, gen)
			for k := range 5 {
				p := f.Len()
				f.Step()
				if want := 1 + (p-1)*(gen.Len()-1); f.Len() != want {
					t.Fatalf("generation %d: got %d points, want %d", k+1, f.Len(), want)
				}
				if f.Iteration() != k+1 {
					t.Fatalf("got iteration %d, want %d", f.Iteration(), k+1)
				}
				if want := PointCount(poly.Len(), gen.Len(), k+1); f.Len() != want {
					t.Fatalf("PointCount: got %d, want %d", want, f.Len())
				}
			}
		}
	}

	f := New(testLine, testKoch)
	f.Step()
	if f.Len() != 5 {
		t.Errorf("generation 1: got %d points, want 5", f.Len())
	}
	f.Step()
	if f.Len() != 17 {
		t.Errorf("generation 2: got %d points, want 17", f.Len())
	}
}

func TestIterateZero(t *testing.T) {
	f := New(testTriangle, testKoch)
	f.Iterate(0)
	f.Iterate(-3)
	if f.Iteration() != 0 {
		t.Errorf("got iteration %d, want 0", f.Iteration())
	}
	diff(t, testTriangle.Points(), f.Points())
}

func TestIterateMatchesSteps(t *testing.T) {
	a := New(testSquarePo, testSquare)
	a.Iterate(3)
	b := New(testSquarePo, testSquare)
	b.Step()
	b.Step()
	b.Step()
	diff(t, a.Points(), b.Points())
	diff(t, 3, a.Iteration())
}

func TestVerticesArePreserved(t *testing.T) {
	f := New(testTriangle, testKoch)
	for range 3 {
		prev := f.Points()
		f.Step()
		cur := f.Points()
		stride := f.Generator().Len() - 1
		for i, pt := range prev {
			if got := cur[i*stride]; got != pt {
				t.Fatalf("vertex %d moved from %s to %s", i, pt, got)
			}
		}
	}
}

func TestSubstitutionPlacesMotif(t *testing.T) {
	const epsilon = 1e-12
	f := New(testSquarePo, testSquare)
	base := testSquarePo.Points()
	f.Step()
	got := f.Points()
	stride := testSquare.Len() - 1
	i := 0
	for l := range testSquarePo.Edges() {
		want := testSquare.Place(l)
		for j, pt := range want {
			assertNear(t, got[i*stride+j], pt, epsilon)
		}
		i++
	}
	if i != len(base)-1 {
		t.Fatalf("got %d edges, want %d", i, len(base)-1)
	}
}

func TestIdentityGenerator(t *testing.T) {
	for _, poly := range []Polygon{testLine, testTriangle, testSquarePo} {
		f := New(poly, testIdentity)
		f.Iterate(10)
		diff(t, poly.Points(), f.Points())
		diff(t, 10, f.Iteration())
	}

	// Iterating the identity does no work, however large n is.
	f := New(testTriangle, testIdentity)
	f.Iterate(2_000_000_000)
	diff(t, testTriangle.Points(), f.Points())
	diff(t, 2_000_000_000, f.Iteration())
	f.Step()
	diff(t, testTriangle.Points(), f.Points())
	diff(t, 2_000_000_001, f.Iteration())
}

func TestClosedStaysClosed(t *testing.T) {
	f := New(testSquarePo, testKoch)
	for range 4 {
		f.Step()
		if !f.Closed() {
			t.Fatalf("generation %d is not closed", f.Iteration())
		}
	}
	f = New(testLine, testKoch)
	f.Iterate(3)
	if f.Closed() {
		t.Error("open line became closed")
	}
}

func TestTriangleKochScenario(t *testing.T) {
	f := New(testTriangle, testKoch)
	f.Step()
	if f.Len() != 13 {
		t.Fatalf("got %d points, want 13", f.Len())
	}
	pts := f.Points()
	if pts[0] != pts[len(pts)-1] {
		t.Errorf("first point %s != last point %s", pts[0], pts[len(pts)-1])
	}
	edges := 0
	for range Edges(pts) {
		edges++
	}
	if edges != 12 {
		t.Errorf("got %d segments, want 12", edges)
	}
}

func TestBoundsStable(t *testing.T) {
	f := New(testTriangle, testKoch)
	b0 := f.Bounds()
	f.Iterate(5)
	diff(t, b0, f.Bounds())

	margin := 1.1 * 0.1443
	want := Rect{-margin, -margin, 1 + margin, 0.866 + margin}
	diff(t, want, b0, cmpopts.EquateApprox(0, 1e-12))
}

func TestBoundsFromOriginalDefaults(t *testing.T) {
	gen := MustGenerator(Pt(0, 0), Pt(1.0/3, 0), Pt(0.5, 1.0/3), Pt(2.0/3, 0), Pt(1, 0))
	b := Bounds(gen, testLine)
	m := 1.1 / 3
	x0, x1 := b.XRange()
	y0, y1 := b.YRange()
	diff(t, []float64{-m, 1 + m, -m, m}, []float64{x0, x1, y0, y1}, cmpopts.EquateApprox(0, 1e-12))

	// The Koch curve proper stays within its display window.
	koch := MustGenerator(Pt(0, 0), Pt(1.0/3, 0), Pt(0.5, math.Sqrt(3)/6), Pt(2.0/3, 0), Pt(1, 0))
	f := New(testLine, koch)
	f.Iterate(4)
	b = f.Bounds()
	bb := f.BoundingBox()
	if !b.Contains(bb.Origin()) || !b.Contains(Pt(bb.X1, bb.Y1)) {
		t.Errorf("bounding box %s exceeds bounds %s", bb, b)
	}
}

func TestDegenerateSegment(t *testing.T) {
	poly := MustPolygon(Pt(1, 1), Pt(1, 1), Pt(2, 1))
	diff(t, 1, poly.DegenerateEdges())
	diff(t, 0, testTriangle.DegenerateEdges())
	f := New(poly, testKoch)
	f.Iterate(2)
	for i, pt := range f.Points() {
		if !pt.IsFinite() {
			t.Fatalf("point %d is %s", i, pt)
		}
	}
	// The first segment collapses onto its start point.
	stride := (testKoch.Len() - 1) * (testKoch.Len() - 1)
	for i, pt := range f.Points()[:stride+1] {
		if pt != Pt(1, 1) {
			t.Fatalf("point %d is %s, want (1, 1)", i, pt)
		}
	}
}

func TestLengthGrowth(t *testing.T) {
	// Every step replaces a segment by five of a third of its length.
	f := New(testLine, testSquare)
	var got []float64
	for range 3 {
		got = append(got, f.Length())
		f.Step()
	}
	diff(t, []float64{1, 5.0 / 3, 25.0 / 9}, got, cmpopts.EquateApprox(0, 1e-12))

	diff(t, 0.0, New(MustPolygon(Pt(1, 1), Pt(1, 1)), testKoch).Length())
}

func TestOutputsDoNotAlias(t *testing.T) {
	f := New(testLine, testKoch)
	pts := f.Points()
	pts[0] = Pt(42, 42)
	if f.Points()[0] != Pt(0, 0) {
		t.Error("modifying Points result changed the fractal")
	}

	f.Step()
	xs, ys := f.XY()
	if len(xs) != f.Len() || len(ys) != f.Len() {
		t.Fatalf("got %d xs and %d ys, want %d", len(xs), len(ys), f.Len())
	}
	for i, pt := range f.Points() {
		if xs[i] != pt.X || ys[i] != pt.Y {
			t.Errorf("coordinate %d: got (%g, %g), want %s", i, xs[i], ys[i], pt)
		}
	}
	// Stepping must not disturb the base polygon.
	diff(t, []Point{Pt(0, 0), Pt(1, 0)}, f.Base().Points())
}

func TestPathElements(t *testing.T) {
	f := New(testSquarePo, testIdentity)
	var kinds []PathElementKind
	for el := range f.PathElements() {
		kinds = append(kinds, el.Kind)
	}
	want := []PathElementKind{MoveToKind, LineToKind, LineToKind, LineToKind, LineToKind, ClosePathKind}
	diff(t, want, kinds)

	f = New(testLine, testIdentity)
	kinds = kinds[:0]
	for el := range f.PathElements() {
		kinds = append(kinds, el.Kind)
	}
	diff(t, []PathElementKind{MoveToKind, LineToKind}, kinds)
}

func TestPointCountSaturates(t *testing.T) {
	if got := PointCount(2, 5, 1000); got != math.MaxInt {
		t.Errorf("got %d, want MaxInt", got)
	}
	if got := PointCount(5, 2, 1000); got != 5 {
		t.Errorf("got %d, want 5", got)
	}
	if got := PointCount(4, 5, 0); got != 4 {
		t.Errorf("got %d, want 4", got)
	}
}
