package gg

import "math"

// Rect is an axis-aligned rectangle with left <= right and top <= bottom
// (§3). Degenerate rects with zero width or height are valid.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// NewRect builds a Rect from two corner points, normalizing so that
// Left<=Right and Top<=Bottom regardless of argument order.
func NewRect(p0, p1 Point) Rect {
	return Rect{
		Left:   math.Min(p0.X, p1.X),
		Top:    math.Min(p0.Y, p1.Y),
		Right:  math.Max(p0.X, p1.X),
		Bottom: math.Max(p0.Y, p1.Y),
	}
}

// Width returns Right-Left.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns Bottom-Top.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Union returns the smallest Rect containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Left:   math.Min(r.Left, other.Left),
		Top:    math.Min(r.Top, other.Top),
		Right:  math.Max(r.Right, other.Right),
		Bottom: math.Max(r.Bottom, other.Bottom),
	}
}

// Corners returns the rect's four corners in the fixed order top-left,
// top-right, bottom-right, bottom-left. Path.AddRect uses this order;
// Canvas.DrawRect uses its own bottom-left-first order.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{X: r.Left, Y: r.Top},
		{X: r.Right, Y: r.Top},
		{X: r.Right, Y: r.Bottom},
		{X: r.Left, Y: r.Bottom},
	}
}

// flattenTolerance is the fixed curve-flattening tolerance in device
// pixels (§4.3).
const flattenTolerance = 0.25

// quadSegments returns how many line segments a quadratic Bezier (a,b,c)
// should be flattened into, derived from the second difference of its
// control polygon: E = (a - 2b + c)/4.
func quadSegments(a, b, c Point) int {
	e := Point{
		X: (a.X - 2*b.X + c.X) / 4,
		Y: (a.Y - 2*b.Y + c.Y) / 4,
	}
	mag := e.Length()
	n := int(math.Ceil(math.Sqrt(mag / flattenTolerance)))
	if n < 1 {
		n = 1
	}
	return n
}

// cubicSegments returns how many line segments a cubic Bezier (a,b,c,d)
// should be flattened into: E is the componentwise max of the two control
// polygon second differences, then segments = ceil(sqrt(3|E|/(4*tol))).
func cubicSegments(a, b, c, d Point) int {
	e1 := Point{X: a.X - 2*b.X + c.X, Y: a.Y - 2*b.Y + c.Y}
	e2 := Point{X: b.X - 2*c.X + d.X, Y: b.Y - 2*c.Y + d.Y}
	e := Point{X: math.Max(math.Abs(e1.X), math.Abs(e2.X)), Y: math.Max(math.Abs(e1.Y), math.Abs(e2.Y))}
	mag := e.Length()
	n := int(math.Ceil(math.Sqrt(3 * mag / (4 * flattenTolerance))))
	if n < 1 {
		n = 1
	}
	return n
}

// evalQuad evaluates a quadratic Bezier (a,b,c) at t via de Casteljau,
// returning the intermediate points (ab, bc) alongside the final point so
// callers can reuse them for subdivision as well as evaluation (§4.3).
func evalQuad(a, b, c Point, t float64) (ab, bc, abc Point) {
	ab = a.Lerp(b, t)
	bc = b.Lerp(c, t)
	abc = ab.Lerp(bc, t)
	return
}

// evalCubic evaluates a cubic Bezier (a,b,c,d) at t via de Casteljau,
// returning the two intermediate quadratic evaluations (abc, bcd) and the
// final point.
func evalCubic(a, b, c, d Point, t float64) (abc, bcd, abcd Point) {
	ab := a.Lerp(b, t)
	bc := b.Lerp(c, t)
	cd := c.Lerp(d, t)
	abc = ab.Lerp(bc, t)
	bcd = bc.Lerp(cd, t)
	abcd = abc.Lerp(bcd, t)
	return
}

// flattenQuad appends line-segment endpoints approximating the quadratic
// Bezier (a,b,c) to dst, not including the starting point a (the caller's
// "current point" already holds it).
func flattenQuad(dst []Point, a, b, c Point) []Point {
	n := quadSegments(a, b, c)
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		_, _, p := evalQuad(a, b, c, t)
		dst = append(dst, p)
	}
	return dst
}

// flattenCubic appends line-segment endpoints approximating the cubic
// Bezier (a,b,c,d) to dst, not including the starting point a.
func flattenCubic(dst []Point, a, b, c, d Point) []Point {
	n := cubicSegments(a, b, c, d)
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		_, _, p := evalCubic(a, b, c, d, t)
		dst = append(dst, p)
	}
	return dst
}

// quadExtremaT returns the parameter values in (0,1) where the quadratic
// Bezier (a,b,c)'s derivative is zero on each axis, for tight bounds
// (original_source/path.cpp bounds()).
func quadExtremaT(a, b, c Point) []float64 {
	var ts []float64
	addAxis := func(a0, b0, c0 float64) {
		// derivative of (1-t)^2*a0 + 2(1-t)t*b0 + t^2*c0 is linear in t:
		// 2*((b0-a0) + t*(a0-2*b0+c0)); root at t = (a0-b0)/(a0-2*b0+c0).
		denom := a0 - 2*b0 + c0
		if denom == 0 {
			return
		}
		t := (a0 - b0) / denom
		if t > 0 && t < 1 {
			ts = append(ts, t)
		}
	}
	addAxis(a.X, b.X, c.X)
	addAxis(a.Y, b.Y, c.Y)
	return ts
}

// cubicExtremaT returns the parameter values in (0,1) where the cubic
// Bezier (a,b,c,d)'s derivative is zero on each axis.
func cubicExtremaT(a, b, c, d Point) []float64 {
	var ts []float64
	addAxis := func(a0, b0, c0, d0 float64) {
		// derivative is quadratic: 3*[(1-t)^2*(b0-a0) + 2(1-t)t*(c0-b0) + t^2*(d0-c0)]
		qa := (d0 - c0) - 2*(c0-b0) + (b0 - a0)
		qb := 2 * ((c0 - b0) - (b0 - a0))
		qc := b0 - a0
		for _, t := range solveQuadraticUnit(qa, qb, qc) {
			ts = append(ts, t)
		}
	}
	addAxis(a.X, b.X, c.X, d.X)
	addAxis(a.Y, b.Y, c.Y, d.Y)
	return ts
}

// solveQuadraticUnit solves a*t^2+b*t+c=0 and returns the real roots
// strictly inside (0,1).
func solveQuadraticUnit(a, b, c float64) []float64 {
	var roots []float64
	const eps = 1e-12
	if math.Abs(a) < eps {
		if math.Abs(b) < eps {
			return nil
		}
		t := -c / b
		if t > 0 && t < 1 {
			roots = append(roots, t)
		}
		return roots
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	for _, t := range [2]float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)} {
		if t > 0 && t < 1 {
			roots = append(roots, t)
		}
	}
	return roots
}
