// Package raster builds scanline edges from flattened polygon points and
// scan-converts them into horizontal spans (§4.4, §4.8).
package raster

import (
	"math"
	"sort"
)

// Point is the minimal 2D point this package needs; callers convert from
// their own point type at the call boundary so this package stays free of
// a dependency on the root package.
type Point struct {
	X, Y float64
}

// Edge is a clipped line segment ready for scan conversion (§3).
type Edge struct {
	M, B     float64 // x(y) = M*y + B
	Top, Bot int     // top-inclusive, bottom-exclusive device rows
	CurrX    float64 // x at row Top+0.5, pre-stepped
	Wind     int8    // +1 or -1
}

// roundHalfUp rounds y half-up. makeEdge is only ever called with
// already-clipped, non-negative y values, so no negative special case is
// needed here (contrast with color.go's roundHalfUp).
func roundHalfUp(y float64) int {
	return int(math.Floor(y + 0.5))
}

// makeEdge builds an Edge from a segment, returning ok=false for
// degenerate (horizontal after rounding) segments (§4.4).
func makeEdge(p0, p1 Point, wind int8) (Edge, bool) {
	if p0.Y > p1.Y {
		p0, p1 = p1, p0
	}
	top := roundHalfUp(p0.Y)
	bot := roundHalfUp(p1.Y)
	if top == bot {
		return Edge{}, false
	}
	m := (p1.X - p0.X) / (p1.Y - p0.Y)
	b := p0.X - p0.Y*m
	return Edge{
		M:     m,
		B:     b,
		Top:   top,
		Bot:   bot,
		CurrX: m*(float64(top)+0.5) + b,
		Wind:  wind,
	}, true
}

// clipSegment clips one segment (p0,p1) to the device rect [0,width]x[0,height],
// preserving winding, producing zero to three edges (§4.4,
// original_source/edges.h clipEdges). A segment that straddles the left or
// right device boundary contributes both the clipped on-device edge and an
// auxiliary vertical edge projecting the off-device y-range onto the
// boundary, so the winding count for rows in that off-device range still
// reflects the segment that would otherwise be clipped away entirely. A
// segment that straddles both side boundaries contributes one auxiliary
// edge on each side plus the clipped edge.
func clipSegment(width, height int, p0, p1 Point) []Edge {
	if p0.Y == p1.Y {
		return nil
	}

	var wind int8 = 1
	if p0.Y > p1.Y {
		p0, p1 = p1, p0
		wind = -1
	}

	h := float64(height)
	w := float64(width)

	if p1.Y <= 0 || p0.Y >= h {
		return nil
	}

	m := (p1.X - p0.X) / (p1.Y - p0.Y)
	b := p0.X - p0.Y*m

	if p0.Y < 0 {
		p0 = Point{X: b, Y: 0}
	}
	if p1.Y > h {
		p1 = Point{X: m*h + b, Y: h}
	}

	if p0.X > p1.X {
		p0, p1 = p1, p0
	}

	if p1.X <= 0 {
		if e, ok := makeEdge(Point{X: 0, Y: p0.Y}, Point{X: 0, Y: p1.Y}, wind); ok {
			return []Edge{e}
		}
		return nil
	}
	if p0.X >= w {
		if e, ok := makeEdge(Point{X: w, Y: p0.Y}, Point{X: w, Y: p1.Y}, wind); ok {
			return []Edge{e}
		}
		return nil
	}

	var edges []Edge

	if p0.X < 0 {
		newY := -b / m
		if e, ok := makeEdge(Point{X: 0, Y: p0.Y}, Point{X: 0, Y: newY}, wind); ok {
			edges = append(edges, e)
		}
		p0 = Point{X: 0, Y: newY}
	}
	if p1.X > w {
		newY := (w - b) / m
		if e, ok := makeEdge(Point{X: w, Y: p1.Y}, Point{X: w, Y: newY}, wind); ok {
			edges = append(edges, e)
		}
		p1 = Point{X: w, Y: newY}
	}

	if e, ok := makeEdge(p0, p1, wind); ok {
		edges = append(edges, e)
	}
	return edges
}

// Build clips and constructs edges for the closed polygon described by pts
// (each consecutive pair, wrapping from the last point to the first, is one
// segment), against a width x height device rect.
func Build(pts []Point, width, height int) []Edge {
	if len(pts) < 2 {
		return nil
	}
	edges := make([]Edge, 0, len(pts))
	for i := range pts {
		p0 := pts[i]
		p1 := pts[(i+1)%len(pts)]
		edges = append(edges, clipSegment(width, height, p0, p1)...)
	}
	return edges
}

// SortByTopThenX sorts edges by top row, then by CurrX, then by slope —
// the order scan conversion depends on (original_source/edges.h compareEdges).
func SortByTopThenX(edges []Edge) {
	sort.Slice(edges, func(i, j int) bool {
		a, b := edges[i], edges[j]
		if a.Top != b.Top {
			return a.Top < b.Top
		}
		if a.CurrX != b.CurrX {
			return a.CurrX < b.CurrX
		}
		return a.M < b.M
	})
}

// SortByX sorts edges by their current x only, used to re-sort the active
// set between scanline rows.
func SortByX(edges []Edge) {
	sort.Slice(edges, func(i, j int) bool {
		return edges[i].CurrX < edges[j].CurrX
	})
}
