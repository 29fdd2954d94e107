package gg

import "github.com/gogpu/gg/internal/blend"

// combinedShader multiplies the per-channel output of two shaders (§4.5),
// grounded on original_source/combined_shader.h. drawMesh's texture mapping
// uses this to combine a bitmap shader (wrapped in a proxy) with a triangle
// color shader.
type combinedShader struct {
	shader0, shader1 Shader
}

// NewCombinedShader returns a shader producing shader0's and shader1's
// pixels multiplied channel-wise.
func NewCombinedShader(shader0, shader1 Shader) Shader {
	return &combinedShader{shader0: shader0, shader1: shader1}
}

func (s *combinedShader) IsOpaque() bool {
	return s.shader0.IsOpaque() && s.shader1.IsOpaque()
}

func (s *combinedShader) SetContext(ctm Matrix) bool {
	return s.shader0.SetContext(ctm) && s.shader1.SetContext(ctm)
}

func (s *combinedShader) ShadeRow(x, y, count int, row []Pixel) {
	row0 := make([]Pixel, count)
	row1 := make([]Pixel, count)
	s.shader0.ShadeRow(x, y, count, row0)
	s.shader1.ShadeRow(x, y, count, row1)
	for i := 0; i < count; i++ {
		row[i] = blend.MultiplyPixels(row0[i], row1[i])
	}
}
