package gg

import "math"

// Shader is an opaque per-draw object that produces source pixels for a
// span (§3, §4.5). Its lifetime spans one draw call: the canvas calls
// SetContext when the draw starts and again before shading each span.
type Shader interface {
	// IsOpaque reports whether every pixel this shader produces has full
	// alpha, letting the blitter skip blending and overwrite directly.
	IsOpaque() bool

	// SetContext composes the shader's own local transform with ctm and
	// caches the inverse for shadeRow. It returns false if the composite
	// matrix is singular, which aborts the one draw call using it (§4.9).
	SetContext(ctm Matrix) bool

	// ShadeRow fills row[0:count] with source pixels for device pixels
	// (x,y), (x+1,y), ..., (x+count-1, y). Must only be called after a
	// successful SetContext.
	ShadeRow(x, y, count int, row []Pixel)
}

// TileMode controls how a bitmap or gradient shader samples outside its
// natural [0,1] (or [0,dimension)) domain (§4.5).
type TileMode int

const (
	TileClamp TileMode = iota
	TileRepeat
	TileMirror
)

// clampUnit pins x into [0, bound-1], flooring.
func clampUnit(x float64, bound int) int {
	switch {
	case x < 0:
		return 0
	case x > float64(bound-1):
		return bound - 1
	default:
		return int(x)
	}
}

// repeatUnit wraps x/bound into [0,bound) by its fractional part.
func repeatUnit(x float64, bound int) int {
	pinned := x / float64(bound)
	frac := pinned - math.Floor(pinned)
	return int(frac * float64(bound))
}

// mirrorUnit reflects x/bound back and forth across [0,bound), producing
// the original's asymmetric-about-negative-x quirk verbatim: it floors
// abs(pinned) to pick parity, not pinned itself, so e.g. pinned=-0.5 and
// pinned=0.5 both land in the "even" (non-reflected) branch (§9).
func mirrorUnit(x float64, bound int) int {
	pinned := x / float64(bound)
	p := int(math.Floor(math.Abs(pinned)))
	if p%2 == 0 {
		frac := pinned - math.Floor(pinned)
		return int(frac * float64(bound))
	}
	return int((math.Ceil(pinned) - pinned) * float64(bound))
}

// pinToUnit clamps x into [0,1].
func pinToUnit(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}
