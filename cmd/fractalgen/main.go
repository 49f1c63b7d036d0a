// Command fractalgen draws self-similar curves generated by substituting a
// motif into every segment of a polygon.
//
// Usage:
//
//	fractalgen [flags]
//
// For example, to draw the fourth generation of the Koch snowflake:
//
//	fractalgen -shape triangle -generator koch -n 4 -o snowflake.png
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	fractal "github.com/jorge-antares/fractal-generator"
	"github.com/jorge-antares/fractal-generator/catalog"
	"github.com/jorge-antares/fractal-generator/render"
)

// maxGenerations bounds -n. Generators other than the identity exceed any
// sensible -max-points long before this.
const maxGenerations = 100

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		slog.Error("fractalgen failed", "err", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("fractalgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		shape     = fs.String("shape", catalog.DefaultPolygon, "polygon of generation zero")
		generator = fs.String("generator", catalog.DefaultGenerator, "motif substituted into every segment")
		catFile   = fs.String("catalog", "", "YAML file with additional generators and polygons")
		n         = fs.Int("n", 5, "number of generations, 0 to 100")
		output    = fs.String("o", "fractal.png", "output file (.png, .jpg or .svg)")
		all       = fs.Bool("all", false, "write every generation from 0 to n, numbering the output files")
		size      = fs.Int("size", 1000, "length of the longer image side in pixels")
		width     = fs.Float64("width", 0.5, "line width in pixels")
		color     = fs.String("color", "#0000ff", "stroke color")
		bg        = fs.String("background", "#ffffff", "background color")
		quality   = fs.Int("quality", 90, "JPEG quality")
		label     = fs.Bool("label", false, "print the generation and point count onto raster images")
		maxPoints = fs.Int("max-points", 5_000_000, "refuse to compute generations with more points than this")
		list      = fs.Bool("list", false, "list available generators and polygons and exit")
		verbose   = fs.Bool("v", false, "verbose logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	render.SetLogger(logger)

	cat := catalog.Builtin()
	if *catFile != "" {
		extra, err := catalog.LoadFile(*catFile)
		if err != nil {
			return err
		}
		cat.Merge(extra)
		logger.Debug("loaded catalog", "path", *catFile)
	}

	if *list {
		fmt.Fprintf(stdout, "generators: %s\n", strings.Join(cat.GeneratorNames(), ", "))
		fmt.Fprintf(stdout, "polygons: %s\n", strings.Join(cat.PolygonNames(), ", "))
		return nil
	}

	if *n < 0 || *n > maxGenerations {
		return fmt.Errorf("invalid number of generations %d, must be between 0 and %d", *n, maxGenerations)
	}
	f, err := cat.Fractal(*shape, *generator)
	if err != nil {
		return err
	}
	if k := f.Base().DegenerateEdges(); k > 0 {
		logger.Warn("polygon has zero-length edges, motifs on them collapse to a point", "shape", *shape, "edges", k)
	}
	if count := fractal.PointCount(f.Len(), f.Generator().Len(), *n); count > *maxPoints {
		return fmt.Errorf("generation %d of %s/%s has %d points, more than the limit of %d", *n, *shape, *generator, count, *maxPoints)
	}

	opts := render.Options{
		Size:       *size,
		LineWidth:  *width,
		Stroke:     *color,
		Background: *bg,
		Label:      *label,
		FontSize:   max(10, float64(*size)/60),
		Quality:    *quality,
	}
	logger.Debug("fractal",
		"shape", *shape,
		"generator", *generator,
		"generations", *n,
		"bounds", f.Bounds().String())

	if !*all {
		f.Iterate(*n)
		return render.WriteFile(*output, f, opts)
	}
	for {
		if err := render.WriteFile(numbered(*output, f.Iteration()), f, opts); err != nil {
			return err
		}
		if f.Iteration() == *n {
			return nil
		}
		f.Step()
	}
}

// numbered inserts "-i" before the extension of path.
func numbered(path string, i int) string {
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(path, ext), i, ext)
}
