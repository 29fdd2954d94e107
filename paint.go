package gg

import "github.com/gogpu/gg/internal/blend"

// BlendMode is one of the twelve Porter-Duff compositing operators (§4.6).
type BlendMode = blend.Mode

const (
	BlendClear   = blend.Clear
	BlendSrc     = blend.Src
	BlendDst     = blend.Dst
	BlendSrcOver = blend.SrcOver
	BlendDstOver = blend.DstOver
	BlendSrcIn   = blend.SrcIn
	BlendDstIn   = blend.DstIn
	BlendSrcOut  = blend.SrcOut
	BlendDstOut  = blend.DstOut
	BlendSrcAtop = blend.SrcAtop
	BlendDstAtop = blend.DstAtop
	BlendXor     = blend.Xor
)

// Paint carries everything a draw call needs to turn a span into pixels
// (§4.7): a shader, or failing that a constant color, and a blend mode.
type Paint struct {
	Color     RGBA
	Shader    Shader
	BlendMode BlendMode
}

// NewPaint returns a Paint that fills with opaque black using BlendSrcOver,
// the default compositing mode.
func NewPaint() *Paint {
	return &Paint{Color: Black, BlendMode: BlendSrcOver}
}

// pixel returns the paint's constant premultiplied fill pixel, used when
// no shader is attached.
func (p *Paint) pixel() Pixel {
	return p.Color.ToPixel()
}
