package fractal

import (
	"fmt"
	"iter"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Close off the path.
	ClosePathKind
)

// PathElement is a drawing command of a polyline path, akin to the commands of
// graphics APIs like PostScript. A valid path has MoveTo at the beginning of
// each subpath.
type PathElement struct {
	Kind PathElementKind
	P0   Point
}

func (el PathElement) String() string {
	switch el.Kind {
	case MoveToKind:
		return fmt.Sprintf("MoveTo(%s)", el.P0)
	case LineToKind:
		return fmt.Sprintf("LineTo(%s)", el.P0)
	case ClosePathKind:
		return "ClosePath()"
	default:
		return "InvalidPathElement"
	}
}

func (el PathElement) Transform(aff Affine) PathElement {
	switch el.Kind {
	case MoveToKind:
		return MoveTo(el.P0.Transform(aff))
	case LineToKind:
		return LineTo(el.P0.Transform(aff))
	case ClosePathKind:
		return ClosePath()
	default:
		return PathElement{}
	}
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// PolylineElements returns the path elements drawing a connected polyline
// through pts. If closed is true and pts has at least two points, the path
// ends in a ClosePath element.
func PolylineElements(pts []Point, closed bool) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if len(pts) == 0 {
			return
		}
		if !yield(MoveTo(pts[0])) {
			return
		}
		for _, pt := range pts[1:] {
			if !yield(LineTo(pt)) {
				return
			}
		}
		if closed && len(pts) > 1 {
			yield(ClosePath())
		}
	}
}
