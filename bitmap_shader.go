package gg

// bitmapShader samples a source Bitmap through an application-supplied
// local inverse transform composed with the inverse of the CTM (§4.5),
// grounded on original_source/bitmap_shader.cpp.
type bitmapShader struct {
	bitmap       *Bitmap
	localInverse Matrix
	tileMode     TileMode

	inverseCTM Matrix
}

// NewBitmapShader returns a shader that samples bitmap, or nil if bitmap has
// no pixel storage (§4.9, createBitmapShader's null-input contract).
func NewBitmapShader(bitmap *Bitmap, localInverse Matrix, mode TileMode) Shader {
	if bitmap == nil || !bitmap.HasPixels() {
		return nil
	}
	return &bitmapShader{bitmap: bitmap, localInverse: localInverse, tileMode: mode}
}

func (s *bitmapShader) IsOpaque() bool {
	for _, p := range s.bitmap.Pixels() {
		if p>>24&0xFF != 0xFF {
			return false
		}
	}
	return true
}

func (s *bitmapShader) SetContext(ctm Matrix) bool {
	inv, ok := ctm.Invert()
	if !ok {
		return false
	}
	s.inverseCTM = Concat(s.localInverse, inv)
	return true
}

func (s *bitmapShader) ShadeRow(x, y, count int, row []Pixel) {
	p := s.inverseCTM.TransformPoint(Point{X: float64(x) + 0.5, Y: float64(y) + 0.5})

	w, h := s.bitmap.Width(), s.bitmap.Height()
	for i := 0; i < count; i++ {
		var sx, sy int
		switch s.tileMode {
		case TileMirror:
			sx = mirrorUnit(p.X, w)
			sy = mirrorUnit(p.Y, h)
		case TileRepeat:
			sx = repeatUnit(p.X, w)
			sy = repeatUnit(p.Y, h)
		default: // TileClamp
			sx = clampUnit(p.X, w)
			sy = clampUnit(p.Y, h)
		}
		row[i] = s.bitmap.At(sx, sy)

		p.X += s.inverseCTM.A
		p.Y += s.inverseCTM.D
	}
}
