package gg

import "testing"

func TestNewRadialGradientNilOnEmptyColors(t *testing.T) {
	if g := NewRadialGradient(Point{}, 5, nil, TileClamp); g != nil {
		t.Error("NewRadialGradient with no colors should return nil")
	}
}

func TestRadialGradientIsNeverOpaque(t *testing.T) {
	g := NewRadialGradient(Point{}, 5, []RGBA{Black, White}, TileClamp)
	if g.IsOpaque() {
		t.Error("radial gradient always reports non-opaque per its source")
	}
}

func TestRadialGradientNearCenterIsMostlyFirstColor(t *testing.T) {
	g := NewRadialGradient(Point{X: 5, Y: 5}, 100, []RGBA{Red, Blue}, TileClamp)
	if !g.SetContext(Identity()) {
		t.Fatal("SetContext failed")
	}
	row := make([]Pixel, 1)
	g.ShadeRow(4, 4, 1, row) // close to center relative to a large radius
	got := PixelToRGBA(row[0])
	if got.R < 0.9 || got.B > 0.1 {
		t.Errorf("near-center color = %+v, want mostly red", got)
	}
}

func TestRadialGradientClampBeyondRadiusIsLastColor(t *testing.T) {
	g := NewRadialGradient(Point{X: 0, Y: 0}, 1, []RGBA{Red, Blue}, TileClamp)
	if !g.SetContext(Identity()) {
		t.Fatal("SetContext failed")
	}
	row := make([]Pixel, 1)
	g.ShadeRow(1000, 0, 1, row)
	if row[0] != Blue.ToPixel() {
		t.Errorf("far pixel = %#x, want blue (clamped to t=1)", row[0])
	}
}

func TestRadialGradientSingleColorConstant(t *testing.T) {
	g := NewRadialGradient(Point{}, 5, []RGBA{Green}, TileClamp)
	if !g.SetContext(Identity()) {
		t.Fatal("SetContext failed")
	}
	row := make([]Pixel, 3)
	g.ShadeRow(0, 0, 3, row)
	want := Green.ToPixel()
	for i, got := range row {
		if got != want {
			t.Errorf("row[%d] = %#x, want %#x", i, got, want)
		}
	}
}
