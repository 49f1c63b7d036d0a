//go:build ggsvg

package main

// Building with -tags ggsvg links in the SVG recording backend, enabling
// .svg output.
import _ "github.com/gogpu/gg-svg"
