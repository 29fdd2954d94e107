package gg

import (
	"github.com/gogpu/gg/internal/blend"
	"github.com/gogpu/gg/internal/raster"
)

// Canvas dispatches drawing calls onto a borrowed target Bitmap (§4.7),
// grounded on original_source/main.cpp's MyCanvas. The Canvas owns its
// transform stack; it does not own the Bitmap's pixel storage (§5).
type Canvas struct {
	device *Bitmap
	ctm    Matrix
	stack  []Matrix
}

// NewCanvas returns a Canvas that draws into device, with the identity CTM.
func NewCanvas(device *Bitmap) *Canvas {
	return &Canvas{device: device, ctm: Identity()}
}

// Save pushes a copy of the current transform onto the stack.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.ctm)
}

// Restore pops the most recently saved transform. It is a no-op if the
// stack is empty.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.ctm = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Concat composes m onto the current transform: subsequent draws behave as
// though m were applied first.
func (c *Canvas) Concat(m Matrix) {
	c.ctm = Concat(c.ctm, m)
}

// Translate concatenates a translation onto the current transform.
func (c *Canvas) Translate(x, y float64) { c.Concat(Translate(x, y)) }

// Scale concatenates a scale onto the current transform.
func (c *Canvas) Scale(x, y float64) { c.Concat(Scale(x, y)) }

// Rotate concatenates a rotation (radians) onto the current transform.
func (c *Canvas) Rotate(angle float64) { c.Concat(Rotate(angle)) }

// CTM returns the canvas's current transform.
func (c *Canvas) CTM() Matrix { return c.ctm }

// Clear writes every pixel of the target bitmap to the premultiplied
// representation of color, ignoring the CTM (§4.7).
func (c *Canvas) Clear(color RGBA) {
	c.device.Clear(color)
}

// DrawRect fills an axis-aligned rectangle under the CTM, in the fixed
// corner order bottom-left, top-left, top-right, bottom-right (§4.7,
// original_source/main.cpp drawRect).
func (c *Canvas) DrawRect(r Rect, paint *Paint) {
	pts := []Point{
		{X: r.Left, Y: r.Bottom},
		{X: r.Left, Y: r.Top},
		{X: r.Right, Y: r.Top},
		{X: r.Right, Y: r.Bottom},
	}
	c.DrawConvexPolygon(pts, paint)
}

// DrawConvexPolygon fills a convex polygon using the simple two-edge scan
// algorithm (§4.8). Behavior is undefined for non-convex input; callers
// that can't guarantee convexity should use DrawPath instead.
func (c *Canvas) DrawConvexPolygon(points []Point, paint *Paint) {
	mapped := make([]Point, len(points))
	c.ctm.MapPoints(mapped, points)

	edges := raster.Build(toRasterPoints(mapped), c.device.Width(), c.device.Height())
	if len(edges) < 2 {
		Logger().Debug("drawConvexPolygon: too few surviving edges, dropping draw", "points", len(points))
		return
	}
	raster.SortByTopThenX(edges)

	shader, mode, skip := c.resolvePaint(paint)
	if skip {
		return
	}
	if shader != nil {
		if !shader.SetContext(c.ctm) {
			Logger().Warn("drawConvexPolygon: singular shader transform, dropping draw")
			return
		}
	}

	raster.ScanConvex(edges, func(s raster.Span) {
		c.blit(s.L, s.R, s.Y, shader, mode, paint.pixel())
	})
}

// DrawPath fills an arbitrary path (possibly multiple subpaths, possibly
// self-intersecting) using the non-zero-winding complex scan (§4.8).
func (c *Canvas) DrawPath(path *Path, paint *Paint) {
	mapped := path.Transform(c.ctm)

	var edges []raster.Edge
	for _, sub := range mapped.subpaths() {
		edges = append(edges, raster.Build(toRasterPoints(sub), c.device.Width(), c.device.Height())...)
	}
	if len(edges) < 2 {
		Logger().Debug("drawPath: too few surviving edges, dropping draw")
		return
	}

	shader, mode, skip := c.resolvePaint(paint)
	if skip {
		return
	}
	if shader != nil {
		if !shader.SetContext(c.ctm) {
			Logger().Warn("drawPath: singular shader transform, dropping draw")
			return
		}
	}

	raster.ScanComplex(edges, func(s raster.Span) {
		c.blit(s.L, s.R, s.Y, shader, mode, paint.pixel())
	})
}

// DrawMesh fills a set of triangles, each indices[3*i:3*i+3] into verts
// (and, when present, colors/texs), dispatching per-triangle the way
// original_source/main.cpp's drawMesh does: vertex colors only use a
// TriangleShader, a shader plus texture coordinates wrap it in a
// ProxyShader, and both combined multiply a TriangleShader with the
// wrapped texture shader via CombinedShader (§4.7's mesh supplement).
func (c *Canvas) DrawMesh(verts []Point, colors []RGBA, texs []Point, indices []int, paint *Paint) {
	for n := 0; n+2 < len(indices); n += 3 {
		i0, i1, i2 := indices[n], indices[n+1], indices[n+2]
		tri := [3]Point{verts[i0], verts[i1], verts[i2]}

		switch {
		case colors != nil && texs != nil:
			triColors := [3]RGBA{colors[i0], colors[i1], colors[i2]}
			triTexs := [3]Point{texs[i0], texs[i1], texs[i2]}
			c.drawCombinedTriangle(tri, triColors, triTexs, paint.Shader, paint.BlendMode)

		case colors != nil:
			triColors := [3]RGBA{colors[i0], colors[i1], colors[i2]}
			c.DrawConvexPolygon(tri[:], &Paint{Shader: NewTriangleShader(tri, triColors), BlendMode: paint.BlendMode})

		case texs != nil && paint.Shader != nil:
			triTexs := [3]Point{texs[i0], texs[i1], texs[i2]}
			c.drawTriangleWithTex(tri, triTexs, paint.Shader, paint.BlendMode)
		}
	}
}

// drawTriangleWithTex wraps shader in a ProxyShader that remaps texture
// space onto the triangle's device-space basis (original_source/main.cpp
// drawTriangleWithTex).
func (c *Canvas) drawTriangleWithTex(tri [3]Point, texs [3]Point, shader Shader, mode BlendMode) {
	p := computeBasis(tri)
	tm := computeBasis(texs)
	invT, ok := tm.Invert()
	if !ok {
		return
	}
	proxy := NewProxyShader(shader, Concat(p, invT))
	c.DrawConvexPolygon(tri[:], &Paint{Shader: proxy, BlendMode: mode})
}

// drawCombinedTriangle multiplies a per-vertex-color TriangleShader with a
// texture-mapped ProxyShader (original_source/main.cpp drawCombinedTriangle).
func (c *Canvas) drawCombinedTriangle(tri [3]Point, colors [3]RGBA, texs [3]Point, shader Shader, mode BlendMode) {
	if shader == nil {
		return
	}
	p := computeBasis(tri)
	tm := computeBasis(texs)
	invT, ok := tm.Invert()
	if !ok {
		return
	}
	combined := NewCombinedShader(NewTriangleShader(tri, colors), NewProxyShader(shader, Concat(p, invT)))
	c.DrawConvexPolygon(tri[:], &Paint{Shader: combined, BlendMode: mode})
}

// computeBasis builds the affine map that sends the unit triangle
// (0,0),(1,0),(0,1) onto pts (original_source/main.cpp computeBasis).
func computeBasis(pts [3]Point) Matrix {
	return Matrix{
		A: pts[1].X - pts[0].X, B: pts[2].X - pts[0].X, C: pts[0].X,
		D: pts[1].Y - pts[0].Y, E: pts[2].Y - pts[0].Y, F: pts[0].Y,
	}
}

// DrawQuad subdivides a bilinear quad into a (level+1)x(level+1) grid of
// sub-quads, each drawn as two triangles via DrawMesh (§4.7's mesh
// supplement, original_source/main.cpp drawQuad). colors is used only when
// hasColors is true and texs only when hasTexs is true; otherwise that
// attribute is left out of the mesh.
func (c *Canvas) DrawQuad(verts [4]Point, colors [4]RGBA, hasColors bool, texs [4]Point, hasTexs bool, level int, paint *Paint) {
	indices := []int{0, 1, 3, 1, 2, 3}
	n := level + 1

	for u := 0; u <= level; u++ {
		u0 := float64(u) / float64(n)
		u1 := float64(u+1) / float64(n)
		for v := 0; v <= level; v++ {
			v0 := float64(v) / float64(n)
			v1 := float64(v+1) / float64(n)

			dividedVerts := []Point{
				dividePoint(verts, u0, v0),
				dividePoint(verts, u1, v0),
				dividePoint(verts, u1, v1),
				dividePoint(verts, u0, v1),
			}

			var dividedColors []RGBA
			if hasColors {
				dividedColors = []RGBA{
					divideColor(colors, u0, v0),
					divideColor(colors, u1, v0),
					divideColor(colors, u1, v1),
					divideColor(colors, u0, v1),
				}
			}

			var dividedTexs []Point
			if hasTexs {
				dividedTexs = []Point{
					dividePoint(texs, u0, v0),
					dividePoint(texs, u1, v0),
					dividePoint(texs, u1, v1),
					dividePoint(texs, u0, v1),
				}
			}

			c.DrawMesh(dividedVerts, dividedColors, dividedTexs, indices, paint)
		}
	}
}

// dividePoint bilinearly interpolates the 4 corners of a quad (in the
// order bottom-left-ish 0,1,2,3 as original_source/main.cpp lays them out)
// at parameter (u,v).
func dividePoint(pts [4]Point, u, v float64) Point {
	top := lerpPoint(pts[0], pts[1], u)
	bottom := lerpPoint(pts[3], pts[2], u)
	return lerpPoint(top, bottom, v)
}

func lerpPoint(a, b Point, t float64) Point {
	return Point{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)}
}

// divideColor bilinearly interpolates the 4 corner colors of a quad at
// parameter (u,v).
func divideColor(colors [4]RGBA, u, v float64) RGBA {
	top := colors[0].Lerp(colors[1], u)
	bottom := colors[3].Lerp(colors[2], u)
	return top.Lerp(bottom, v)
}

// resolvePaint applies the mode-simplification rule and reports whether the
// whole draw should be skipped (§4.6, §4.9).
func (c *Canvas) resolvePaint(paint *Paint) (shader Shader, mode BlendMode, skip bool) {
	alpha := paint.Color.A
	if paint.Shader != nil {
		alpha = 1 // shader-driven alpha is resolved per pixel, not here
	}
	simplified, skip := blend.Simplify(paint.BlendMode, alpha == 0)
	return paint.Shader, simplified, skip
}

// blit writes pixels [xLeft,xRight) on row y, either a constant color
// (no shader) or shader output, blending through mode unless the shader
// reports full opacity (§4.7, original_source/main.cpp blit).
func (c *Canvas) blit(xLeft, xRight, y int, shader Shader, mode BlendMode, src Pixel) {
	if xLeft < 0 {
		xLeft = 0
	}
	if xRight > c.device.Width() {
		xRight = c.device.Width()
	}
	if xLeft >= xRight || y < 0 || y >= c.device.Height() {
		return
	}

	if shader == nil {
		row := c.device.Pixels()[c.device.RowOffset(y)+xLeft : c.device.RowOffset(y)+xRight]
		for i := range row {
			row[i] = blend.Blend(src, row[i], mode)
		}
		return
	}

	if !shader.SetContext(c.ctm) {
		return
	}
	n := xRight - xLeft
	storage := make([]Pixel, n)
	shader.ShadeRow(xLeft, y, n, storage)

	row := c.device.Pixels()[c.device.RowOffset(y)+xLeft : c.device.RowOffset(y)+xRight]
	if shader.IsOpaque() {
		copy(row, storage)
		return
	}
	for i := range row {
		row[i] = blend.Blend(storage[i], row[i], mode)
	}
}

func toRasterPoints(pts []Point) []raster.Point {
	out := make([]raster.Point, len(pts))
	for i, p := range pts {
		out[i] = raster.Point{X: p.X, Y: p.Y}
	}
	return out
}
