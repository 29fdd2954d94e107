package gg

import "testing"

func TestNewLinearGradientNilOnEmptyColors(t *testing.T) {
	if g := NewLinearGradient(Point{}, Point{X: 1}, nil, TileClamp); g != nil {
		t.Error("NewLinearGradient with no colors should return nil")
	}
}

func TestLinearGradientSingleColorIsConstant(t *testing.T) {
	g := NewLinearGradient(Point{}, Point{X: 10}, []RGBA{Red}, TileClamp)
	if !g.SetContext(Identity()) {
		t.Fatal("SetContext failed")
	}
	row := make([]Pixel, 3)
	g.ShadeRow(0, 0, 3, row)
	want := Red.ToPixel()
	for i, got := range row {
		if got != want {
			t.Errorf("row[%d] = %#x, want %#x", i, got, want)
		}
	}
}

func TestLinearGradientEndpointsMatchInputColors(t *testing.T) {
	g := NewLinearGradient(Point{X: 0, Y: 0}, Point{X: 10, Y: 0}, []RGBA{Black, White}, TileClamp)
	if !g.SetContext(Identity()) {
		t.Fatal("SetContext failed")
	}
	row := make([]Pixel, 1)

	g.ShadeRow(-100, 0, 1, row) // far left of the segment, clamp pins to t=0
	if row[0] != Black.ToPixel() {
		t.Errorf("clamp-left pixel = %#x, want black", row[0])
	}

	g.ShadeRow(1000, 0, 1, row) // far right, clamp pins to t=1
	if row[0] != White.ToPixel() {
		t.Errorf("clamp-right pixel = %#x, want white", row[0])
	}
}

func TestLinearGradientIsOpaque(t *testing.T) {
	g := NewLinearGradient(Point{}, Point{X: 1}, []RGBA{Black, White}, TileClamp)
	if !g.IsOpaque() {
		t.Error("opaque-colors gradient reported non-opaque")
	}
	g2 := NewLinearGradient(Point{}, Point{X: 1}, []RGBA{Black, RGBA2(1, 1, 1, 0.5)}, TileClamp)
	if g2.IsOpaque() {
		t.Error("translucent-colors gradient reported opaque")
	}
}

func TestLinearGradientSetContextSingularFails(t *testing.T) {
	g := NewLinearGradient(Point{X: 0}, Point{X: 0}, []RGBA{Black, White}, TileClamp)
	if g.SetContext(Identity()) {
		t.Error("a zero-length gradient segment should make the unit matrix singular")
	}
}
