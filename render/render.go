// Package render draws fractals to raster images and SVG documents.
//
// Every generation of a fractal is drawn into the viewport given by
// [fractal.Fractal.Bounds], preserving its aspect ratio, so that renderings at
// different depths share a common scale. Drawing is recorded once with
// [Record] and played back to a gg recording backend: the built-in raster
// backend for PNG and JPEG, and the backend registered as "svg" for SVG.
package render

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	"github.com/gogpu/gg/recording/backends/raster"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	fractal "github.com/jorge-antares/fractal-generator"
)

var (
	// ErrEmptyBounds is returned for fractals whose bounds have neither width
	// nor height.
	ErrEmptyBounds = errors.New("fractal bounds are empty")
	// ErrNoBackend is returned when the recording backend for an output
	// format has not been linked into the program.
	ErrNoBackend = errors.New("no recording backend for format")
)

// canvas is the pixel grid a fractal is drawn onto, along with the transform
// from the fractal's y-up coordinates to y-down pixel coordinates.
type canvas struct {
	w, h int
	aff  fractal.Affine
}

func newCanvas(f *fractal.Fractal, size int) (canvas, error) {
	b := f.Bounds()
	// Bounds that are flat in one direction, such as a straight line drawn
	// with the identity generator, get a square viewport.
	if b.IsEmpty() {
		switch {
		case b.Width() == 0 && b.Height() == 0:
			return canvas{}, ErrEmptyBounds
		case b.Width() == 0:
			b = b.Inflate(b.Height()/2, 0)
		default:
			b = b.Inflate(0, b.Width()/2)
		}
	}
	sz := b.Size()
	scale := float64(size) / sz.MaxSide()
	w := max(1, int(math.Round(sz.Width*scale)))
	h := max(1, int(math.Round(sz.Height*scale)))
	c := canvas{
		w:   w,
		h:   h,
		aff: fractal.FitRect(b, fractal.NewRectFromOrigin(fractal.Pt(0, 0), fractal.Sz(float64(w), float64(h)))),
	}
	Logger().Debug("canvas",
		"bounds", b.String(),
		"width", w,
		"height", h,
		"scale", scale)
	return c, nil
}

// Record draws the current generation of f into a recording sized according
// to opts. The recording can be played back to any registered backend.
func Record(f *fractal.Fractal, opts Options) (*recording.Recording, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	stroke, err := parseColor(opts.Stroke)
	if err != nil {
		return nil, err
	}
	bg, err := parseColor(opts.Background)
	if err != nil {
		return nil, err
	}
	c, err := newCanvas(f, opts.Size)
	if err != nil {
		return nil, err
	}
	Logger().Debug("record",
		"stroke", hexColor(stroke),
		"background", hexColor(bg),
		"points", f.Len())

	rec := recording.NewRecorder(c.w, c.h)
	rec.SetFillRGBA(bg.R, bg.G, bg.B, bg.A)
	rec.FillRectangle(0, 0, float64(c.w), float64(c.h))
	rec.SetStrokeRGBA(stroke.R, stroke.G, stroke.B, stroke.A)
	rec.SetLineWidth(opts.LineWidth)
	rec.SetLineJoin(recording.LineJoinRound)
	rec.SetLineCap(recording.LineCapRound)
	for el := range fractal.Transform(f.PathElements(), c.aff) {
		switch el.Kind {
		case fractal.MoveToKind:
			rec.MoveTo(el.P0.Splat())
		case fractal.LineToKind:
			rec.LineTo(el.P0.Splat())
		case fractal.ClosePathKind:
			rec.ClosePath()
		}
	}
	rec.Stroke()
	return rec.FinishRecording(), nil
}

// Raster draws the current generation of f onto a new drawing context sized
// according to opts. The caller must close the returned context.
func Raster(f *fractal.Fractal, opts Options) (*gg.Context, error) {
	r, err := Record(f, opts)
	if err != nil {
		return nil, err
	}
	b := raster.NewBackend()
	if err := r.Playback(b); err != nil {
		return nil, fmt.Errorf("play back fractal: %w", err)
	}

	// The raster backend does not draw text, so the label goes directly onto
	// the played back image.
	dc := gg.NewContextForImage(b.Image())
	if opts.Label {
		if err := drawLabel(dc, f, opts.FontSize); err != nil {
			_ = dc.Close()
			return nil, err
		}
	}
	return dc, nil
}

func drawLabel(dc *gg.Context, f *fractal.Fractal, size float64) error {
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return fmt.Errorf("load label font: %w", err)
	}
	defer func() { _ = source.Close() }()

	dc.SetFont(source.Face(size))
	dc.SetRGB(0.3, 0.3, 0.3)
	dc.DrawString(fmt.Sprintf("generation %d, %d points", f.Iteration(), f.Len()), size/2, size*1.5)
	return nil
}

// Encode writes the current generation of f to w in the given format.
func Encode(w io.Writer, f *fractal.Fractal, format Format, opts Options) error {
	if format == SVG {
		return WriteSVG(w, f, opts)
	}

	dc, err := Raster(f, opts)
	if err != nil {
		return err
	}
	defer func() { _ = dc.Close() }()

	switch format {
	case PNG:
		return dc.EncodePNG(w)
	case JPEG:
		return dc.EncodeJPEG(w, opts.Quality)
	default:
		return fmt.Errorf("unsupported format %s", format)
	}
}

// WriteFile renders f to the file at path, choosing the format from the
// file's extension.
func WriteFile(path string, f *fractal.Fractal, opts Options) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if !format.Available() {
		return fmt.Errorf("%w %s", ErrNoBackend, format)
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	if err := Encode(out, f, format, opts); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	Logger().Info("wrote fractal",
		"path", path,
		"format", format.String(),
		"generation", f.Iteration(),
		"points", f.Len(),
		"length", f.Length())
	return nil
}
