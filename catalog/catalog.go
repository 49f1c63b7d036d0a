// Package catalog provides named generators and polygons, both built in and
// loaded from YAML files.
//
// A catalog file has two optional top-level maps, from names to lists of
// [x, y] pairs:
//
//	generators:
//	  dragon: [[0, 0], [0.5, 0.5], [1, 0]]
//	  koch: [[0, 0], ["1/3", 0], [0.5, 0.288675], ["2/3", 0], [1, 0]]
//	polygons:
//	  diamond: [[0, 0], [1, 1], [2, 0], [1, -1], [0, 0]]
//
// Coordinates are numbers, numeric strings or fractions written as "a/b".
// Every entry is validated when the file is loaded.
package catalog

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	fractal "github.com/jorge-antares/fractal-generator"
)

// Names of the built-in entries.
const (
	DefaultGenerator = "peak"
	DefaultPolygon   = "line"
)

// ErrUnknown is returned when looking up a name that is not in the catalog.
var ErrUnknown = errors.New("unknown name")

// Catalog maps names to generators and polygons. The zero value is an empty
// catalog ready for use.
type Catalog struct {
	generators map[string]fractal.Generator
	polygons   map[string]fractal.Polygon
}

// Builtin returns a new catalog holding the built-in shapes: the generators
// "koch", "square", "peak" and "identity" and the polygons "line",
// "triangle" and "square".
func Builtin() *Catalog {
	c := &Catalog{}
	c.AddGenerator("koch", Koch())
	c.AddGenerator("square", SquareWave())
	c.AddGenerator(DefaultGenerator, Peak())
	c.AddGenerator("identity", Identity())
	c.AddPolygon(DefaultPolygon, Line())
	c.AddPolygon("triangle", Triangle())
	c.AddPolygon("square", Square())
	return c
}

// AddGenerator adds g under name, replacing any generator of the same name.
func (c *Catalog) AddGenerator(name string, g fractal.Generator) {
	if c.generators == nil {
		c.generators = map[string]fractal.Generator{}
	}
	c.generators[name] = g
}

// AddPolygon adds p under name, replacing any polygon of the same name.
func (c *Catalog) AddPolygon(name string, p fractal.Polygon) {
	if c.polygons == nil {
		c.polygons = map[string]fractal.Polygon{}
	}
	c.polygons[name] = p
}

func (c *Catalog) Generator(name string) (fractal.Generator, error) {
	g, ok := c.generators[name]
	if !ok {
		return fractal.Generator{}, fmt.Errorf("generator %q: %w", name, ErrUnknown)
	}
	return g, nil
}

func (c *Catalog) Polygon(name string) (fractal.Polygon, error) {
	p, ok := c.polygons[name]
	if !ok {
		return fractal.Polygon{}, fmt.Errorf("polygon %q: %w", name, ErrUnknown)
	}
	return p, nil
}

// GeneratorNames returns the sorted names of all generators.
func (c *Catalog) GeneratorNames() []string {
	return slices.Sorted(maps.Keys(c.generators))
}

// PolygonNames returns the sorted names of all polygons.
func (c *Catalog) PolygonNames() []string {
	return slices.Sorted(maps.Keys(c.polygons))
}

// Merge adds all entries of o to c. Entries of o take precedence.
func (c *Catalog) Merge(o *Catalog) {
	for name, g := range o.generators {
		c.AddGenerator(name, g)
	}
	for name, p := range o.polygons {
		c.AddPolygon(name, p)
	}
}

// Fractal returns the generation-zero fractal built from the named polygon and
// generator.
func (c *Catalog) Fractal(polygon, generator string) (*fractal.Fractal, error) {
	p, err := c.Polygon(polygon)
	if err != nil {
		return nil, err
	}
	g, err := c.Generator(generator)
	if err != nil {
		return nil, err
	}
	return fractal.New(p, g), nil
}
