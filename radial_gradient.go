package gg

import "math"

// radialGradientShader interpolates colors by distance from a center point
// (§4.5), grounded on original_source/radial_gradient.h.
type radialGradientShader struct {
	center   Point
	radius   float64
	colors   []RGBA
	unit     Matrix
	tileMode TileMode

	inverseCTM Matrix
}

// NewRadialGradient returns a shader that interpolates colors outward from
// center by distance/radius, or nil if colors is empty (§4.9).
func NewRadialGradient(center Point, radius float64, colors []RGBA, mode TileMode) Shader {
	if len(colors) < 1 {
		return nil
	}
	unit := Matrix{A: 1, B: 0, C: center.X, D: 0, E: 1, F: center.Y}
	return &radialGradientShader{center: center, radius: radius, colors: colors, unit: unit, tileMode: mode}
}

func (s *radialGradientShader) IsOpaque() bool {
	return false
}

func (s *radialGradientShader) SetContext(ctm Matrix) bool {
	inv, ok := Concat(ctm, s.unit).Invert()
	if !ok {
		return false
	}
	s.inverseCTM = inv
	return true
}

func (s *radialGradientShader) ShadeRow(x, y, count int, row []Pixel) {
	p := s.inverseCTM.TransformPoint(Point{X: float64(x) + 0.5, Y: float64(y) + 0.5})
	dx := s.inverseCTM.A
	dy := s.inverseCTM.D

	n := len(s.colors)
	if n == 1 {
		pix := s.colors[0].ToPixel()
		for i := 0; i < count; i++ {
			row[i] = pix
		}
		return
	}

	for i := 0; i < count; i++ {
		t := math.Sqrt(p.X*p.X+p.Y*p.Y) / s.radius

		switch s.tileMode {
		case TileClamp:
			t = pinToUnit(t)
		case TileRepeat:
			t -= math.Floor(t)
		case TileMirror:
			if int(math.Floor(t))%2 == 0 {
				t -= math.Floor(t)
			} else {
				t = 1 - (t - math.Floor(t))
			}
		}

		idx := int(math.Floor(float64(n-1) * t))
		if idx >= n-1 {
			idx = n - 2
		}
		if idx < 0 {
			idx = 0
		}
		position := 1 / float64(n-1)
		j := float64(idx) * position

		local := pinToUnit((t - j) / position)
		next := idx
		if idx+1 < n {
			next = idx + 1
		}
		c0, c1 := s.colors[idx], s.colors[next]
		c := RGBA{
			R: c0.R*(1-local) + c1.R*local,
			G: c0.G*(1-local) + c1.G*local,
			B: c0.B*(1-local) + c1.B*local,
			A: c0.A*(1-local) + c1.A*local,
		}
		row[i] = c.ToPixel()

		p.X += dx
		p.Y += dy
	}
}
