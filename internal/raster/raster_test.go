package raster

import "testing"

func square(x0, y0, x1, y1 float64) []Point {
	return []Point{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}

func TestBuildAndScanConvexSquare(t *testing.T) {
	edges := Build(square(2, 2, 8, 6), 10, 10)
	if len(edges) == 0 {
		t.Fatal("Build returned no edges for a square fully inside the device")
	}

	var spans []Span
	ScanConvex(edges, func(s Span) { spans = append(spans, s) })

	if len(spans) != 4 {
		t.Fatalf("got %d spans, want 4 (rows 2..5)", len(spans))
	}
	for _, s := range spans {
		if s.L != 2 || s.R != 8 {
			t.Errorf("span %+v: want L=2 R=8", s)
		}
		if s.Y < 2 || s.Y > 5 {
			t.Errorf("span %+v: row out of expected range", s)
		}
	}
}

func TestBuildClipsOffscreenSegmentsToSide(t *testing.T) {
	// A square that's entirely to the left of the device: its two horizontal
	// sides are dropped and its two vertical sides are each replaced by a
	// vertical edge at x=0; the two overlapping vertical edges of opposite
	// winding cancel to produce no visible span.
	edges := Build(square(-10, 2, -5, 6), 10, 10)
	if len(edges) != 2 {
		t.Fatalf("got %d edges, want 2 (both vertical sides projected)", len(edges))
	}
	var spans []Span
	ScanComplex(edges, func(s Span) { spans = append(spans, s) })
	if len(spans) != 0 {
		t.Errorf("offscreen square produced %d visible spans, want 0", len(spans))
	}
}

func TestBuildClipsPartialStraddleProducesAuxiliaryEdge(t *testing.T) {
	// A segment straddling the left device boundary must contribute both
	// the clipped on-device edge and an auxiliary vertical edge covering
	// the off-device y-range, so its winding isn't lost for those rows.
	edges := clipSegment(10, 10, Point{X: -5, Y: 2}, Point{X: 5, Y: 6})
	if len(edges) != 2 {
		t.Fatalf("got %d edges, want 2 (auxiliary + clipped)", len(edges))
	}

	// The auxiliary vertical edge runs along x=0 from y=2 to the
	// boundary-crossing y (where the original segment reaches x=0): at
	// x=-5,y=2 -> x=5,y=6, x=0 is reached at y=4.
	aux := edges[0]
	if aux.M != 0 || aux.B != 0 {
		t.Errorf("auxiliary edge = %+v, want vertical at x=0", aux)
	}
	if aux.Top != 2 || aux.Bot != 4 {
		t.Errorf("auxiliary edge rows = [%d,%d), want [2,4)", aux.Top, aux.Bot)
	}

	// The clipped main edge covers the on-device remainder, y=4..6.
	main := edges[1]
	if main.Top != 4 || main.Bot != 6 {
		t.Errorf("clipped edge rows = [%d,%d), want [4,6)", main.Top, main.Bot)
	}
}

func TestScanComplexNonZeroWindingSquare(t *testing.T) {
	edges := Build(square(1, 1, 5, 5), 10, 10)
	var spans []Span
	ScanComplex(edges, func(s Span) { spans = append(spans, s) })
	if len(spans) != 4 {
		t.Fatalf("got %d spans, want 4", len(spans))
	}
	for _, s := range spans {
		if s.L != 1 || s.R != 5 {
			t.Errorf("span %+v: want L=1 R=5", s)
		}
	}
}

func TestScanComplexOverlappingSquaresUnion(t *testing.T) {
	// Two overlapping same-winding squares: the overlap region should still
	// be filled once per row (non-zero winding rule), producing one span
	// per row spanning the union in x.
	edges := append(Build(square(0, 0, 4, 4), 10, 10), Build(square(2, 0, 6, 4), 10, 10)...)
	var spans []Span
	ScanComplex(edges, func(s Span) { spans = append(spans, s) })
	for _, s := range spans {
		if s.L != 0 || s.R != 6 {
			t.Errorf("union span %+v: want L=0 R=6", s)
		}
	}
}
