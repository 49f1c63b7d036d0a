package catalog

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	fractal "github.com/jorge-antares/fractal-generator"
)

type file struct {
	Generators map[string][][]any `yaml:"generators"`
	Polygons   map[string][][]any `yaml:"polygons"`
}

// Load reads a catalog file from r. An empty document yields an empty
// catalog.
func Load(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f file
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	c := &Catalog{}
	for _, name := range slices.Sorted(maps.Keys(f.Generators)) {
		pts, err := parsePoints(f.Generators[name])
		if err != nil {
			return nil, fmt.Errorf("generator %q: %w", name, err)
		}
		g, err := fractal.NewGenerator(pts...)
		if err != nil {
			return nil, fmt.Errorf("generator %q: %w", name, err)
		}
		c.AddGenerator(name, g)
	}
	for _, name := range slices.Sorted(maps.Keys(f.Polygons)) {
		pts, err := parsePoints(f.Polygons[name])
		if err != nil {
			return nil, fmt.Errorf("polygon %q: %w", name, err)
		}
		p, err := fractal.NewPolygon(pts...)
		if err != nil {
			return nil, fmt.Errorf("polygon %q: %w", name, err)
		}
		c.AddPolygon(name, p)
	}
	return c, nil
}

// LoadFile reads the catalog file at path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func parsePoints(raw [][]any) ([]fractal.Point, error) {
	pts := make([]fractal.Point, 0, len(raw))
	for i, pair := range raw {
		if len(pair) != 2 {
			return nil, fmt.Errorf("point %d: want [x, y], got %d values", i, len(pair))
		}
		x, err := parseCoord(pair[0])
		if err != nil {
			return nil, fmt.Errorf("point %d: x: %w", i, err)
		}
		y, err := parseCoord(pair[1])
		if err != nil {
			return nil, fmt.Errorf("point %d: y: %w", i, err)
		}
		pts = append(pts, fractal.Pt(x, y))
	}
	return pts, nil
}

// parseCoord converts a YAML scalar to a coordinate. Besides numbers and
// numeric strings it accepts fractions such as "1/3".
func parseCoord(v any) (float64, error) {
	switch v := v.(type) {
	case nil:
		return 0, errors.New("missing coordinate")
	case bool:
		return 0, fmt.Errorf("invalid coordinate %v", v)
	case string:
		s := strings.TrimSpace(v)
		if num, den, ok := strings.Cut(s, "/"); ok {
			n, err := cast.ToFloat64E(strings.TrimSpace(num))
			if err != nil {
				return 0, err
			}
			d, err := cast.ToFloat64E(strings.TrimSpace(den))
			if err != nil {
				return 0, err
			}
			if d == 0 {
				return 0, fmt.Errorf("invalid coordinate %q: division by zero", v)
			}
			return n / d, nil
		}
		return cast.ToFloat64E(s)
	default:
		return cast.ToFloat64E(v)
	}
}
