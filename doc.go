// Package gg implements a CPU-only 2D software rasterizer: paths built
// from lines and Bezier curves, filled via scanline edge conversion, and
// composited onto a Bitmap through shaders and Porter-Duff blending.
//
// # Overview
//
// A Canvas wraps a Bitmap and a transform stack. Drawing a path or convex
// polygon maps its points through the current transform, flattens curves
// into line segments, builds scanline edges, scan-converts them into
// horizontal spans, and blits each span either as a constant color or
// through a Shader.
//
//	bmp := gg.NewBitmap(512, 512)
//	c := gg.NewCanvas(bmp)
//	c.Clear(gg.White)
//
//	p := gg.NewPath()
//	p.AddCircle(256, 256, 100)
//
//	paint := gg.NewPaint()
//	paint.Color = gg.Red
//	c.DrawPath(p, paint)
//
// # Architecture
//
//   - Public API: Canvas, Path, Matrix, Point, Bitmap, Paint, Shader
//   - internal/raster: edge construction and scan conversion
//   - internal/blend: Porter-Duff compositing and fixed-point pixel math
//
// # Coordinate system
//
// Origin (0,0) at top-left, X increases right, Y increases down. Angles
// are in radians, with 0 pointing right and increasing clockwise (since Y
// grows downward).
//
// # Pixel format
//
// All pixels are premultiplied, packed 32-bit ARGB (Pixel = uint32). RGBA
// colors are unpremultiplied float64 components in [0,1] until converted
// with ToPixel.
//
// # Scope
//
// This package is single-threaded and produces no anti-aliasing: edges
// are rounded to the nearest device pixel before scan conversion. It does
// not perform text layout, subpixel-accurate stroking, gamma-correct
// compositing, or file I/O; callers that need an image.Image get one via
// Bitmap.AsImage or Bitmap.ToImage.
package gg
