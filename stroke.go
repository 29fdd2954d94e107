package gg

import "math"

// StrokeToPath expands a polyline of width into a fillable outline (non-zero
// winding), supplementing the spec's fill-only pipeline with the original
// source's stroke feature (original_source/final.cpp addLine/strokePolygon).
// Each segment becomes a rectangle offset perpendicular to it by width/2,
// plus a circular join at each vertex so consecutive segments meet cleanly.
// closed additionally strokes the segment from the last point back to the
// first.
func StrokeToPath(points []Point, width float64, closed bool) *Path {
	path := NewPath()
	for i := 0; i+1 < len(points); i++ {
		addStrokeLine(path, points[i], points[i+1], width)
	}
	if closed && len(points) > 1 {
		addStrokeLine(path, points[0], points[len(points)-1], width)
	}
	return path
}

// addStrokeLine appends one segment's rectangle-plus-end-caps outline to
// path, in the source's exact order: swap so p0.X <= p1.X, build the
// perpendicular unit vector, emit the offset rectangle, then a full circle
// at each endpoint to round the join.
func addStrokeLine(path *Path, p0, p1 Point, width float64) {
	if p0.X > p1.X {
		p0, p1 = p1, p0
	}

	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	distance := width / 2

	ux, uy := -dy, dx
	length := math.Sqrt(ux*ux + uy*uy)
	if length != 0 {
		ux, uy = ux/length, uy/length
	}
	ox, oy := ux*distance, uy*distance

	path.MoveTo(p0.X+ox, p0.Y+oy)
	path.LineTo(p0.X-ox, p0.Y-oy)
	path.LineTo(p1.X-ox, p1.Y-oy)
	path.LineTo(p1.X+ox, p1.Y+oy)
	path.AddCircle(p0.X, p0.Y, distance)
	path.AddCircle(p1.X, p1.Y, distance)
}
