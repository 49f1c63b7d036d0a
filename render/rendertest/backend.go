// Package rendertest provides a recording backend for testing programs that
// write SVG output without linking in a real SVG backend.
package rendertest

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	"github.com/gogpu/gg/text"
)

// Backend writes every stroked path of a recording as a line of SVG path
// data, such as "M1,2 L3,4 Z". Filled rectangles are written as
// "rect x y w h". Everything else is ignored.
type Backend struct {
	buf bytes.Buffer
}

var _ recording.WriterBackend = (*Backend)(nil)

func (b *Backend) Begin(width, height int) error {
	b.buf.Reset()
	fmt.Fprintf(&b.buf, "size %d %d\n", width, height)
	return nil
}

func (b *Backend) End() error { return nil }

func (b *Backend) Save()                                                  {}
func (b *Backend) Restore()                                               {}
func (b *Backend) SetTransform(recording.Matrix)                          {}
func (b *Backend) SetClip(*gg.Path, recording.FillRule)                   {}
func (b *Backend) ClearClip()                                             {}
func (b *Backend) FillPath(*gg.Path, recording.Brush, recording.FillRule) {}

func (b *Backend) StrokePath(path *gg.Path, _ recording.Brush, _ recording.Stroke) {
	if path == nil {
		return
	}
	for i, el := range path.Elements() {
		if i > 0 {
			b.buf.WriteByte(' ')
		}
		switch el := el.(type) {
		case gg.MoveTo:
			fmt.Fprintf(&b.buf, "M%g,%g", el.Point.X, el.Point.Y)
		case gg.LineTo:
			fmt.Fprintf(&b.buf, "L%g,%g", el.Point.X, el.Point.Y)
		case gg.Close:
			b.buf.WriteByte('Z')
		default:
			fmt.Fprintf(&b.buf, "?%T", el)
		}
	}
	b.buf.WriteByte('\n')
}

func (b *Backend) FillRect(rect recording.Rect, _ recording.Brush) {
	fmt.Fprintf(&b.buf, "rect %g %g %g %g\n", rect.MinX, rect.MinY, rect.Width(), rect.Height())
}

func (b *Backend) DrawImage(image.Image, recording.Rect, recording.Rect, recording.ImageOptions) {}

func (b *Backend) DrawText(string, float64, float64, text.Face, recording.Brush) {}

// WriteTo writes the paths played back since the last call to Begin.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.buf.Bytes())
	return int64(n), err
}

// RegisterSVG registers a [Backend] as the "svg" recording backend for the
// duration of the test. The test is skipped if a real SVG backend has been
// linked in.
func RegisterSVG(tb testing.TB) {
	tb.Helper()
	if recording.IsRegistered("svg") {
		tb.Skip("svg recording backend already registered")
	}
	recording.Register("svg", func() recording.Backend { return new(Backend) })
	tb.Cleanup(func() { recording.Unregister("svg") })
}
