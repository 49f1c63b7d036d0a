package render

import (
	"fmt"
	"strings"

	"github.com/gogpu/gg"
)

// parseColor parses "#rgb", "#rgba", "#rrggbb" or "#rrggbbaa", with or
// without the leading '#'. Unlike gg.Hex, it rejects malformed input.
func parseColor(s string) (gg.RGBA, error) {
	h := strings.TrimPrefix(s, "#")
	switch len(h) {
	case 3, 4, 6, 8:
	default:
		return gg.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	for _, r := range h {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return gg.RGBA{}, fmt.Errorf("invalid color %q", s)
		}
	}
	return gg.Hex(h), nil
}

// hexColor formats c as "#rrggbb", dropping alpha.
func hexColor(c gg.RGBA) string {
	to8 := func(v float64) int { return int(min(max(v, 0), 1)*255 + 0.5) }
	return fmt.Sprintf("#%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B))
}
