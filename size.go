package fractal

import (
	"fmt"
)

type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size x×y.
func Sz(w, h float64) Size {
	return Size{
		Width:  w,
		Height: h,
	}
}

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

func (sz Size) AsVec2() Vec2 {
	return Vec2{
		X: sz.Width,
		Y: sz.Height,
	}
}

func (sz Size) MaxSide() float64 {
	return max(sz.Width, sz.Height)
}
