package fractal

import "errors"

var (
	// ErrTooFewPoints is returned when a generator or polygon has fewer than
	// two points.
	ErrTooFewPoints = errors.New("fewer than two points")
	// ErrGeneratorStart is returned when a generator does not start at (0, 0).
	ErrGeneratorStart = errors.New("generator does not start at (0, 0)")
	// ErrGeneratorEnd is returned when a generator does not end at (1, 0).
	ErrGeneratorEnd = errors.New("generator does not end at (1, 0)")
	// ErrNonFinite is returned for coordinates that are infinite or NaN.
	ErrNonFinite = errors.New("non-finite coordinate")
)
