package gg

import "testing"

func TestCanvasClearFillsBitmap(t *testing.T) {
	bmp := NewBitmap(4, 4)
	c := NewCanvas(bmp)
	c.Clear(Red)

	want := Red.ToPixel()
	for _, p := range bmp.Pixels() {
		if p != want {
			t.Fatalf("pixel = %#x, want %#x", p, want)
		}
	}
}

func TestCanvasDrawRectFillsExpectedRegion(t *testing.T) {
	bmp := NewBitmap(10, 10)
	c := NewCanvas(bmp)

	paint := NewPaint()
	paint.Color = Blue
	paint.BlendMode = BlendSrc
	c.DrawRect(Rect{Left: 2, Top: 2, Right: 6, Bottom: 6}, paint)

	inside := bmp.At(3, 3)
	if inside != Blue.ToPixel() {
		t.Errorf("inside pixel = %#x, want blue", inside)
	}
	outside := bmp.At(8, 8)
	if outside != Transparent.ToPixel() {
		t.Errorf("outside pixel = %#x, want transparent", outside)
	}
}

func TestCanvasDrawRectRespectsCTM(t *testing.T) {
	bmp := NewBitmap(20, 20)
	c := NewCanvas(bmp)
	c.Translate(10, 10)

	paint := NewPaint()
	paint.Color = Green
	paint.BlendMode = BlendSrc
	c.DrawRect(Rect{Left: 0, Top: 0, Right: 4, Bottom: 4}, paint)

	if bmp.At(12, 12) != Green.ToPixel() {
		t.Error("translated rect should paint near (10,10)-(14,14)")
	}
	if bmp.At(2, 2) != Transparent.ToPixel() {
		t.Error("origin-relative rect should not paint before translation")
	}
}

func TestCanvasSaveRestoreRoundTripsCTM(t *testing.T) {
	bmp := NewBitmap(4, 4)
	c := NewCanvas(bmp)
	before := c.CTM()
	c.Save()
	c.Translate(5, 5)
	c.Restore()
	if c.CTM() != before {
		t.Errorf("CTM after save/restore = %+v, want %+v", c.CTM(), before)
	}
}

func TestCanvasRestoreOnEmptyStackIsNoop(t *testing.T) {
	bmp := NewBitmap(4, 4)
	c := NewCanvas(bmp)
	before := c.CTM()
	c.Restore()
	if c.CTM() != before {
		t.Error("Restore on empty stack should not change the CTM")
	}
}

func TestCanvasDrawPathFillsNonZeroWinding(t *testing.T) {
	bmp := NewBitmap(10, 10)
	c := NewCanvas(bmp)

	p := NewPath()
	p.AddRect(Rect{Left: 1, Top: 1, Right: 8, Bottom: 8})

	paint := NewPaint()
	paint.Color = White
	paint.BlendMode = BlendSrc
	c.DrawPath(p, paint)

	if bmp.At(4, 4) != White.ToPixel() {
		t.Error("interior of filled rect path should be white")
	}
	if bmp.At(0, 0) != Transparent.ToPixel() {
		t.Error("outside the rect path should stay transparent")
	}
}

func TestCanvasDrawConvexPolygonTooFewEdgesIsNoop(t *testing.T) {
	bmp := NewBitmap(4, 4)
	c := NewCanvas(bmp)
	paint := NewPaint()
	paint.Color = Red
	// A degenerate polygon (all points coincide) should produce no edges
	// and leave the bitmap untouched.
	c.DrawConvexPolygon([]Point{{X: 1, Y: 1}, {X: 1, Y: 1}}, paint)
	for _, p := range bmp.Pixels() {
		if p != Transparent.ToPixel() {
			t.Fatal("degenerate polygon should not paint any pixel")
		}
	}
}

func TestCanvasDrawMeshWithColorsUsesTriangleShader(t *testing.T) {
	bmp := NewBitmap(10, 10)
	c := NewCanvas(bmp)

	verts := []Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}}
	colors := []RGBA{Red, Red, Red}
	indices := []int{0, 1, 2}

	paint := NewPaint()
	paint.BlendMode = BlendSrc
	c.DrawMesh(verts, colors, nil, indices, paint)

	if bmp.At(1, 1) != Red.ToPixel() {
		t.Errorf("uniform-red triangle pixel = %#x, want red", bmp.At(1, 1))
	}
}

func TestCanvasDrawMeshWithColorsAndTexsUsesCombinedShaderAndBlendMode(t *testing.T) {
	bmp := NewBitmap(10, 10)
	c := NewCanvas(bmp)

	verts := []Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}}
	colors := []RGBA{Red, Red, Red}
	texs := []Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	indices := []int{0, 1, 2}

	// A white shader, multiplied against the per-vertex red colors, should
	// leave red untouched. The shader reports itself non-opaque so blit goes
	// through the blend mode: red only appears if drawCombinedTriangle
	// actually threads the paint's blend mode through instead of defaulting
	// to BlendClear (which would drop the draw to transparent black).
	white := &constShader{pixel: White.ToPixel(), opaque: false}
	paint := NewPaint()
	paint.Shader = white
	paint.BlendMode = BlendSrc
	c.DrawMesh(verts, colors, texs, indices, paint)

	if bmp.At(1, 1) != Red.ToPixel() {
		t.Errorf("combined-shader triangle pixel = %#x, want red", bmp.At(1, 1))
	}
}

func TestCanvasDrawQuadSubdividesIntoMesh(t *testing.T) {
	bmp := NewBitmap(10, 10)
	c := NewCanvas(bmp)

	verts := [4]Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	colors := [4]RGBA{Red, Red, Red, Red}

	paint := NewPaint()
	paint.BlendMode = BlendSrc
	c.DrawQuad(verts, colors, true, [4]Point{}, false, 1, paint)

	if bmp.At(5, 5) != Red.ToPixel() {
		t.Errorf("quad center pixel = %#x, want red", bmp.At(5, 5))
	}
}

func TestCanvasBlitClipsToDeviceBounds(t *testing.T) {
	bmp := NewBitmap(4, 4)
	c := NewCanvas(bmp)
	paint := NewPaint()
	paint.Color = Red
	paint.BlendMode = BlendSrc
	// A rect far larger than the device should clip rather than panic.
	c.DrawRect(Rect{Left: -5, Top: -5, Right: 20, Bottom: 20}, paint)
	if bmp.At(0, 0) != Red.ToPixel() {
		t.Error("oversized rect should still fill the visible device area")
	}
}
