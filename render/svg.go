package render

import (
	"fmt"
	"io"

	"github.com/gogpu/gg/recording"

	fractal "github.com/jorge-antares/fractal-generator"
)

// WriteSVG writes the current generation of f to w as an SVG document, using
// the same viewport as [Raster]. The label and JPEG quality options are
// ignored.
//
// The document is produced by the recording backend registered as "svg",
// which programs link in by importing github.com/gogpu/gg-svg. Without it,
// WriteSVG returns [ErrNoBackend].
func WriteSVG(w io.Writer, f *fractal.Fractal, opts Options) error {
	r, err := Record(f, opts)
	if err != nil {
		return err
	}
	b, err := recording.NewBackend(SVG.backend())
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrNoBackend, SVG, err)
	}
	wb, ok := b.(recording.WriterBackend)
	if !ok {
		return fmt.Errorf("%s backend %T cannot write to a stream", SVG, b)
	}
	if err := r.Playback(wb); err != nil {
		return fmt.Errorf("play back fractal: %w", err)
	}
	_, err = wb.WriteTo(w)
	return err
}
