package gg

import "math"

// linearGradientShader interpolates colors along the segment p0->p1 (§4.5),
// grounded on original_source/linear_gradient.cpp.
type linearGradientShader struct {
	colors    []RGBA
	colorDiff []RGBA
	unit      Matrix
	tileMode  TileMode

	inverseCTM Matrix
}

// NewLinearGradient returns a shader whose unit transform maps unit-x to the
// segment p0->p1 and unit-y to its perpendicular, or nil if colors is empty
// (§4.9).
func NewLinearGradient(p0, p1 Point, colors []RGBA, mode TileMode) Shader {
	if len(colors) < 1 {
		return nil
	}
	diffs := make([]RGBA, len(colors)-1)
	for i := range diffs {
		diffs[i] = RGBA{
			R: colors[i+1].R - colors[i].R,
			G: colors[i+1].G - colors[i].G,
			B: colors[i+1].B - colors[i].B,
			A: colors[i+1].A - colors[i].A,
		}
	}
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	unit := Matrix{A: dx, B: -dy, C: p0.X, D: dy, E: dx, F: p0.Y}
	return &linearGradientShader{colors: colors, colorDiff: diffs, unit: unit, tileMode: mode}
}

func (s *linearGradientShader) IsOpaque() bool {
	for _, c := range s.colors {
		if c.A != 1 {
			return false
		}
	}
	return true
}

func (s *linearGradientShader) SetContext(ctm Matrix) bool {
	inv, ok := Concat(ctm, s.unit).Invert()
	if !ok {
		return false
	}
	s.inverseCTM = inv
	return true
}

func (s *linearGradientShader) ShadeRow(x, y, count int, row []Pixel) {
	p := s.inverseCTM.TransformPoint(Point{X: float64(x) + 0.5, Y: float64(y) + 0.5})

	if len(s.colors) == 1 {
		pix := s.colors[0].ToPixel()
		for i := 0; i < count; i++ {
			row[i] = pix
		}
		return
	}

	n := len(s.colors)
	for i := 0; i < count; i++ {
		var t float64
		switch s.tileMode {
		case TileMirror:
			t = mirrorScalar(p.X, n)
		case TileRepeat:
			t = repeatScalar(p.X, n)
		default:
			t = pinToUnit(p.X) * float64(n-1)
		}

		j := int(math.Floor(t))
		if j >= n-1 {
			j = n - 2
		}
		frac := t - float64(j)

		c := s.colors[j]
		if frac != 0 {
			c = RGBA{
				R: c.R + frac*s.colorDiff[j].R,
				G: c.G + frac*s.colorDiff[j].G,
				B: c.B + frac*s.colorDiff[j].B,
				A: c.A + frac*s.colorDiff[j].A,
			}
		}
		row[i] = c.ToPixel()

		p.X += s.inverseCTM.A
	}
}

// repeatScalar wraps x into [0,n-1] by its fractional part, the gradient's
// analogue of the bitmap shader's repeat tiling (§4.5).
func repeatScalar(x float64, n int) float64 {
	return (x - math.Floor(x)) * float64(n-1)
}

// mirrorScalar reflects x across the gradient's [0,n-1] domain; |x| parity
// picks the branch, matching mirrorUnit's asymmetric-about-negative-x quirk
// (§9).
func mirrorScalar(x float64, n int) float64 {
	p := int(math.Floor(math.Abs(x)))
	if p%2 == 0 {
		return (x - math.Floor(x)) * float64(n-1)
	}
	return (math.Ceil(x) - x) * float64(n-1)
}
