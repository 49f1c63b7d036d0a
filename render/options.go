package render

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gogpu/gg/recording"
)

// Format is an output file format.
type Format int

const (
	PNG Format = iota + 1
	JPEG
	SVG
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case JPEG:
		return "jpeg"
	case SVG:
		return "svg"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// backend is the name of the recording backend that encodes f.
func (f Format) backend() string {
	if f == SVG {
		return "svg"
	}
	return "raster"
}

// Available reports whether the recording backend for f is linked into the
// program. PNG and JPEG are always available.
func (f Format) Available() bool {
	return recording.IsRegistered(f.backend())
}

// FormatFromPath determines the output format from the extension of path.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return PNG, nil
	case ".jpg", ".jpeg":
		return JPEG, nil
	case ".svg":
		return SVG, nil
	default:
		return 0, fmt.Errorf("unsupported output format %q", ext)
	}
}

// Options control the appearance of a rendered fractal.
type Options struct {
	// Size is the length in pixels of the longer side of the output. The
	// shorter side follows from the aspect ratio of the fractal's bounds.
	Size int
	// LineWidth is the stroke width in pixels.
	LineWidth float64
	// Stroke and Background are hex colors, such as "#0000ff".
	Stroke     string
	Background string
	// Label draws the generation and point count in the top left corner of
	// raster outputs.
	Label bool
	// FontSize of the label, in pixels.
	FontSize float64
	// Quality of JPEG outputs, 1 to 100.
	Quality int
}

// DefaultOptions returns a thin blue line on white, 1000 pixels across.
func DefaultOptions() Options {
	return Options{
		Size:       1000,
		LineWidth:  0.5,
		Stroke:     "#0000ff",
		Background: "#ffffff",
		FontSize:   14,
		Quality:    90,
	}
}

func (o Options) validate() error {
	if o.Size <= 0 {
		return fmt.Errorf("invalid size %d", o.Size)
	}
	if o.LineWidth <= 0 {
		return fmt.Errorf("invalid line width %g", o.LineWidth)
	}
	if o.Quality < 1 || o.Quality > 100 {
		return fmt.Errorf("invalid JPEG quality %d", o.Quality)
	}
	return nil
}
