package astar

import "github.com/katalvlaran/gridpath/gridgraph"

// Chebyshev returns max(|Δrow|, |Δcol|). With unit cost in all eight
// directions it never overestimates and is consistent, which A* needs for
// its optimality guarantee.
func Chebyshev(a, b gridgraph.Coord) float64 {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}
	if dr > dc {
		return float64(dr)
	}

	return float64(dc)
}
