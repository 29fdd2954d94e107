package gg

// triangleShader interpolates per-vertex colors across a triangle using
// barycentric-style affine interpolation in the triangle's own u,v basis
// (§4.5), grounded on original_source/triangle_shader.h.
type triangleShader struct {
	unit       Matrix
	color0     RGBA
	colorDiff1 RGBA
	colorDiff2 RGBA

	inverseCTM Matrix
}

// NewTriangleShader returns a shader that linearly interpolates the three
// per-vertex colors across the triangle pts.
func NewTriangleShader(pts [3]Point, colors [3]RGBA) Shader {
	u := Point{X: pts[1].X - pts[0].X, Y: pts[1].Y - pts[0].Y}
	v := Point{X: pts[2].X - pts[0].X, Y: pts[2].Y - pts[0].Y}
	unit := Matrix{A: u.X, B: v.X, C: pts[0].X, D: u.Y, E: v.Y, F: pts[0].Y}

	diff := func(a, b RGBA) RGBA {
		return RGBA{R: b.R - a.R, G: b.G - a.G, B: b.B - a.B, A: b.A - a.A}
	}

	return &triangleShader{
		unit:       unit,
		color0:     colors[0],
		colorDiff1: diff(colors[0], colors[1]),
		colorDiff2: diff(colors[0], colors[2]),
	}
}

func (s *triangleShader) IsOpaque() bool {
	return s.color0.A == 1 &&
		s.color0.A+s.colorDiff1.A == 1 &&
		s.color0.A+s.colorDiff2.A == 1
}

func (s *triangleShader) SetContext(ctm Matrix) bool {
	inv, ok := Concat(ctm, s.unit).Invert()
	if !ok {
		return false
	}
	s.inverseCTM = inv
	return true
}

func colorAddScaled(c, d RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + d.R*t,
		G: c.G + d.G*t,
		B: c.B + d.B*t,
		A: c.A + d.A*t,
	}
}

func (s *triangleShader) ShadeRow(x, y, count int, row []Pixel) {
	p := s.inverseCTM.TransformPoint(Point{X: float64(x) + 0.5, Y: float64(y) + 0.5})

	color := colorAddScaled(colorAddScaled(s.color0, s.colorDiff1, p.X), s.colorDiff2, p.Y)
	inc := colorAddScaled(colorAddScaled(RGBA{}, s.colorDiff1, s.inverseCTM.A), s.colorDiff2, s.inverseCTM.D)

	for i := 0; i < count; i++ {
		row[i] = color.ToPixel()
		color = RGBA{
			R: color.R + inc.R,
			G: color.G + inc.G,
			B: color.B + inc.B,
			A: color.A + inc.A,
		}
	}
}
