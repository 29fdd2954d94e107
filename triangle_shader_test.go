package gg

import "testing"

func TestTriangleShaderVertexColors(t *testing.T) {
	pts := [3]Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}}
	colors := [3]RGBA{Red, Green, Blue}
	s := NewTriangleShader(pts, colors)
	if !s.SetContext(Identity()) {
		t.Fatal("SetContext failed")
	}

	row := make([]Pixel, 1)
	s.ShadeRow(0, 0, 1, row) // near pts[0]
	got := PixelToRGBA(row[0])
	if got.R < 0.85 {
		t.Errorf("corner near pts[0] = %+v, want mostly red", got)
	}
}

func TestTriangleShaderIsOpaque(t *testing.T) {
	pts := [3]Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}}
	opaque := NewTriangleShader(pts, [3]RGBA{Red, Green, Blue})
	if !opaque.IsOpaque() {
		t.Error("fully opaque vertex colors reported non-opaque")
	}

	translucent := NewTriangleShader(pts, [3]RGBA{Red, RGBA2(0, 1, 0, 0.5), Blue})
	if translucent.IsOpaque() {
		t.Error("translucent vertex color reported opaque")
	}
}

func TestTriangleShaderSetContextSingularFails(t *testing.T) {
	degenerate := [3]Point{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 0}}
	s := NewTriangleShader(degenerate, [3]RGBA{Red, Green, Blue})
	if s.SetContext(Identity()) {
		t.Error("a degenerate triangle should make the unit matrix singular")
	}
}
