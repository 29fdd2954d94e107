package gg

import (
	"image"
	"image/color"
)

// Bitmap is the target pixel buffer a Canvas draws into (§3): width, height,
// a row stride in pixels, and a mutable array of premultiplied packed
// pixels. A Canvas borrows a Bitmap for its lifetime; the Bitmap owns the
// pixel storage, not the Canvas (§5).
type Bitmap struct {
	width  int
	height int
	stride int
	pix    []Pixel
}

// NewBitmap allocates a Bitmap with the given dimensions, cleared to
// transparent black. Stride equals width; there is no padding between rows.
func NewBitmap(width, height int) *Bitmap {
	if width < 0 || height < 0 {
		width, height = 0, 0
	}
	return &Bitmap{
		width:  width,
		height: height,
		stride: width,
		pix:    make([]Pixel, width*height),
	}
}

// Width returns the bitmap's width in pixels.
func (b *Bitmap) Width() int { return b.width }

// Height returns the bitmap's height in pixels.
func (b *Bitmap) Height() int { return b.height }

// Stride returns the row stride in pixels.
func (b *Bitmap) Stride() int { return b.stride }

// Pixels returns the raw backing array of packed premultiplied pixels, row
// major with the bitmap's stride. Callers that mutate it directly are
// responsible for keeping values premultiplied.
func (b *Bitmap) Pixels() []Pixel { return b.pix }

// HasPixels reports whether the bitmap has backing storage. Factories that
// take a Bitmap return nil when this is false (§4.9).
func (b *Bitmap) HasPixels() bool { return len(b.pix) > 0 }

// RowOffset returns the index into Pixels() of row y's first pixel.
func (b *Bitmap) RowOffset(y int) int { return y * b.stride }

// At returns the packed pixel at (x,y), or 0 (transparent) if out of bounds.
func (b *Bitmap) At(x, y int) Pixel {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0
	}
	return b.pix[b.RowOffset(y)+x]
}

// Set writes a premultiplied pixel at (x,y). Out-of-bounds writes are
// silently dropped.
func (b *Bitmap) Set(x, y int, p Pixel) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.pix[b.RowOffset(y)+x] = p
}

// Clear writes every pixel to the premultiplied representation of c (§4.7).
func (b *Bitmap) Clear(c RGBA) {
	p := c.ToPixel()
	for y := 0; y < b.height; y++ {
		row := b.pix[b.RowOffset(y) : b.RowOffset(y)+b.width]
		for i := range row {
			row[i] = p
		}
	}
}

// imageAdapter presents a Bitmap as a standard image.Image, for
// interoperability with the rest of the Go image ecosystem.
type imageAdapter struct{ b *Bitmap }

// AsImage returns an image.Image view over b. Reads go through PixelToRGBA,
// so the view reflects subsequent mutations of b.
func (b *Bitmap) AsImage() image.Image { return imageAdapter{b} }

func (a imageAdapter) Bounds() image.Rectangle {
	return image.Rect(0, 0, a.b.width, a.b.height)
}

func (a imageAdapter) ColorModel() color.Model { return color.NRGBAModel }

func (a imageAdapter) At(x, y int) color.Color {
	return PixelToRGBA(a.b.At(x, y)).Color()
}

// ToImage copies the bitmap into a fresh *image.RGBA (premultiplied, per
// image.RGBA's own convention).
func (b *Bitmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			p := b.At(x, y)
			i := img.PixOffset(x, y)
			img.Pix[i+0] = uint8(p >> 16 & 0xFF)
			img.Pix[i+1] = uint8(p >> 8 & 0xFF)
			img.Pix[i+2] = uint8(p & 0xFF)
			img.Pix[i+3] = uint8(p >> 24 & 0xFF)
		}
	}
	return img
}

// BitmapFromImage copies an in-memory image.Image into a new Bitmap.
func BitmapFromImage(img image.Image) *Bitmap {
	bounds := img.Bounds()
	b := NewBitmap(bounds.Dx(), bounds.Dy())
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			b.Set(x, y, FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y)).ToPixel())
		}
	}
	return b
}
