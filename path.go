package gg

// Verb identifies how many points a path element consumes (§3).
type Verb uint8

const (
	Move Verb = iota
	Line
	Quad
	Cubic
)

// circleMagic is the cubic-Bezier control-point offset fraction that best
// approximates a quarter circle (original_source/path.cpp addCircle).
const circleMagic = 0.5519150244935105707435627

// Path is a mutable sequence of verbs and their points (§3). Points and
// Verbs are parallel: each non-Move verb also implicitly continues from the
// path's current point, which Move sets.
type Path struct {
	Points  []Point
	Verbs   []Verb
	start   Point
	current Point
	hasCur  bool
}

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo begins a new subpath at (x,y).
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.Verbs = append(p.Verbs, Move)
	p.Points = append(p.Points, pt)
	p.start = pt
	p.current = pt
	p.hasCur = true
}

// LineTo appends a line from the current point to (x,y).
func (p *Path) LineTo(x, y float64) {
	if !p.hasCur {
		p.MoveTo(x, y)
		return
	}
	pt := Pt(x, y)
	p.Verbs = append(p.Verbs, Line)
	p.Points = append(p.Points, pt)
	p.current = pt
}

// QuadTo appends a quadratic Bezier from the current point through control
// (cx,cy) to (x,y).
func (p *Path) QuadTo(cx, cy, x, y float64) {
	if !p.hasCur {
		p.MoveTo(cx, cy)
	}
	ctrl, pt := Pt(cx, cy), Pt(x, y)
	p.Verbs = append(p.Verbs, Quad)
	p.Points = append(p.Points, ctrl, pt)
	p.current = pt
}

// CubicTo appends a cubic Bezier from the current point through controls
// (c1x,c1y) and (c2x,c2y) to (x,y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	if !p.hasCur {
		p.MoveTo(c1x, c1y)
	}
	c1, c2, pt := Pt(c1x, c1y), Pt(c2x, c2y), Pt(x, y)
	p.Verbs = append(p.Verbs, Cubic)
	p.Points = append(p.Points, c1, c2, pt)
	p.current = pt
}

// Reset clears the path back to empty.
func (p *Path) Reset() {
	p.Points = p.Points[:0]
	p.Verbs = p.Verbs[:0]
	p.start = Point{}
	p.current = Point{}
	p.hasCur = false
}

// AddRect appends a closed rectangle as four line segments, in the fixed
// corner order top-left, top-right, bottom-right, bottom-left (Rect.Corners;
// the canvas's DrawRect starts at bottom-left instead).
func (p *Path) AddRect(r Rect) {
	c := r.Corners()
	p.MoveTo(c[0].X, c[0].Y)
	p.LineTo(c[1].X, c[1].Y)
	p.LineTo(c[2].X, c[2].Y)
	p.LineTo(c[3].X, c[3].Y)
	p.LineTo(c[0].X, c[0].Y)
}

// AddPolygon appends a closed polygon through pts.
func (p *Path) AddPolygon(pts []Point) {
	if len(pts) == 0 {
		return
	}
	p.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	p.LineTo(pts[0].X, pts[0].Y)
}

// AddCircle appends a circle of the given radius centered at (cx,cy),
// built from four cubic Bezier quarter-arcs (original_source/path.cpp).
func (p *Path) AddCircle(cx, cy, radius float64) {
	k := radius * circleMagic
	p.MoveTo(cx+radius, cy)
	p.CubicTo(cx+radius, cy+k, cx+k, cy+radius, cx, cy+radius)
	p.CubicTo(cx-k, cy+radius, cx-radius, cy+k, cx-radius, cy)
	p.CubicTo(cx-radius, cy-k, cx-k, cy-radius, cx, cy-radius)
	p.CubicTo(cx+k, cy-radius, cx+radius, cy-k, cx+radius, cy)
}

// Transform returns a new path with m applied to every point.
func (p *Path) Transform(m Matrix) *Path {
	out := &Path{
		Points: make([]Point, len(p.Points)),
		Verbs:  append([]Verb(nil), p.Verbs...),
	}
	m.MapPoints(out.Points, p.Points)
	return out
}

// pathIter walks verbs and yields, for each non-Move verb, the small tuple
// of points including the implicit starting point (§3: Line→2 pts,
// Quad→3 pts, Cubic→4 pts).
type pathIter struct {
	path    *Path
	vi, pi  int
	current Point
}

func newPathIter(p *Path) *pathIter {
	return &pathIter{path: p}
}

// next returns the verb and its points, or ok=false when exhausted.
func (it *pathIter) next() (verb Verb, pts []Point, ok bool) {
	for it.vi < len(it.path.Verbs) {
		v := it.path.Verbs[it.vi]
		it.vi++
		switch v {
		case Move:
			it.current = it.path.Points[it.pi]
			it.pi++
			continue
		case Line:
			p1 := it.path.Points[it.pi]
			it.pi++
			pts = []Point{it.current, p1}
			it.current = p1
			return Line, pts, true
		case Quad:
			c := it.path.Points[it.pi]
			p2 := it.path.Points[it.pi+1]
			it.pi += 2
			pts = []Point{it.current, c, p2}
			it.current = p2
			return Quad, pts, true
		case Cubic:
			c1 := it.path.Points[it.pi]
			c2 := it.path.Points[it.pi+1]
			p3 := it.path.Points[it.pi+2]
			it.pi += 3
			pts = []Point{it.current, c1, c2, p3}
			it.current = p3
			return Cubic, pts, true
		}
	}
	return 0, nil, false
}

// Bounds returns the tight axis-aligned bounding box of the path, including
// curve extrema rather than just control points (original_source/path.cpp
// bounds()).
func (p *Path) Bounds() Rect {
	if len(p.Points) == 0 {
		return Rect{}
	}
	first := p.Points[0]
	bounds := Rect{Left: first.X, Top: first.Y, Right: first.X, Bottom: first.Y}
	grow := func(pt Point) {
		bounds = bounds.Union(Rect{Left: pt.X, Top: pt.Y, Right: pt.X, Bottom: pt.Y})
	}

	it := newPathIter(p)
	for {
		verb, pts, ok := it.next()
		if !ok {
			break
		}
		// Only the on-curve endpoints; control points off the curve do not
		// extend the bounds.
		grow(pts[0])
		grow(pts[len(pts)-1])
		switch verb {
		case Quad:
			for _, t := range quadExtremaT(pts[0], pts[1], pts[2]) {
				_, _, e := evalQuad(pts[0], pts[1], pts[2], t)
				grow(e)
			}
		case Cubic:
			for _, t := range cubicExtremaT(pts[0], pts[1], pts[2], pts[3]) {
				_, _, e := evalCubic(pts[0], pts[1], pts[2], pts[3], t)
				grow(e)
			}
		}
	}
	return bounds
}

// subpaths returns, for each Move-delimited subpath, its points with curves
// flattened into line segments; subpaths with fewer than two points are
// dropped. Most canvas draws are single-subpath, but drawPath must close
// each subpath independently for winding to be correct.
func (p *Path) subpaths() [][]Point {
	var subpaths [][]Point
	var current []Point
	pi := 0
	for _, v := range p.Verbs {
		switch v {
		case Move:
			if len(current) > 1 {
				subpaths = append(subpaths, current)
			}
			current = []Point{p.Points[pi]}
			pi++
		case Line:
			current = append(current, p.Points[pi])
			pi++
		case Quad:
			current = flattenQuad(current, current[len(current)-1], p.Points[pi], p.Points[pi+1])
			pi += 2
		case Cubic:
			current = flattenCubic(current, current[len(current)-1], p.Points[pi], p.Points[pi+1], p.Points[pi+2])
			pi += 3
		}
	}
	if len(current) > 1 {
		subpaths = append(subpaths, current)
	}
	return subpaths
}
