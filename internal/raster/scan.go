package raster

import "math"

// Span is a horizontal run [L,R) at row Y to be blitted (§4.8).
type Span struct {
	L, R, Y int
}

func round(x float64) int {
	return int(math.Floor(x + 0.5))
}

// ScanConvex walks a sorted edge list with the simple two-edge algorithm
// valid only for convex polygons, where exactly two edges cross every row
// (§4.8). emit is called once per non-empty span.
func ScanConvex(edges []Edge, emit func(Span)) {
	if len(edges) < 2 {
		return
	}
	SortByTopThenX(edges)

	left, right := edges[0], edges[1]
	next := 2

	maxBottom := left.Bot
	for _, e := range edges {
		if e.Bot > maxBottom {
			maxBottom = e.Bot
		}
	}

	for y := edges[0].Top; y < maxBottom; y++ {
		if y >= left.Bot && next < len(edges) {
			left = edges[next]
			next++
		}
		if y >= right.Bot && next < len(edges) {
			right = edges[next]
			next++
		}

		l, r := round(left.CurrX), round(right.CurrX)
		if l > r {
			l, r = r, l
		}
		if l < r {
			emit(Span{L: l, R: r, Y: y})
		}

		left.CurrX += left.M
		right.CurrX += right.M
	}
}

// ScanComplex runs the non-zero-winding sweep over edges (need not be
// sorted on entry) and emits spans row by row until no edges remain
// (§4.8).
func ScanComplex(edges []Edge, emit func(Span)) {
	if len(edges) == 0 {
		return
	}

	active := make([]Edge, 0, len(edges))
	remaining := append([]Edge(nil), edges...)
	SortByTopThenX(remaining)

	y := remaining[0].Top
	ri := 0

	for {
		for ri < len(remaining) && remaining[ri].Top <= y {
			active = append(active, remaining[ri])
			ri++
		}
		if len(active) == 0 {
			if ri >= len(remaining) {
				break
			}
			// Skip the empty rows down to the next pending edge.
			y = remaining[ri].Top
			continue
		}

		SortByX(active)

		wind := 0
		left := 0
		haveLeft := false
		for _, e := range active {
			if e.Top > y || e.Bot <= y {
				continue
			}
			prev := wind
			wind += int(e.Wind)
			switch {
			case prev == 0 && wind != 0:
				left = round(e.CurrX)
				haveLeft = true
			case prev != 0 && wind == 0:
				if haveLeft {
					r := round(e.CurrX)
					if left < r {
						emit(Span{L: left, R: r, Y: y})
					}
					haveLeft = false
				}
			}
		}

		kept := active[:0]
		for _, e := range active {
			if e.Bot == y+1 {
				continue
			}
			e.CurrX += e.M
			kept = append(kept, e)
		}
		active = kept

		y++
		if len(active) == 0 && ri >= len(remaining) {
			break
		}
	}
}
