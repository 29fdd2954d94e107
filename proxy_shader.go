package gg

// proxyShader wraps another shader with an extra local transform applied
// before the CTM (§4.5), grounded on original_source/proxy_shader.h. Used
// by drawMesh's texture mapping to compose a bitmap shader's local inverse
// with the triangle's device-to-texture basis change.
type proxyShader struct {
	real  Shader
	extra Matrix
}

// NewProxyShader returns a shader equivalent to real, but evaluated with
// ctm*extra in place of ctm.
func NewProxyShader(real Shader, extra Matrix) Shader {
	return &proxyShader{real: real, extra: extra}
}

func (s *proxyShader) IsOpaque() bool { return s.real.IsOpaque() }

func (s *proxyShader) SetContext(ctm Matrix) bool {
	return s.real.SetContext(Concat(ctm, s.extra))
}

func (s *proxyShader) ShadeRow(x, y, count int, row []Pixel) {
	s.real.ShadeRow(x, y, count, row)
}
