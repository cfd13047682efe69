package render

import "github.com/katalvlaran/gridpath/gridgraph"

// Point is a position in cell units; (0,0) is the top-left corner of the grid.
type Point struct {
	X, Y float64
}

// Segment is one straight stroke of the path overlay.
type Segment struct {
	From, To Point
}

// Center returns the center of cell c in cell units.
func Center(c gridgraph.Coord) Point {
	return Point{X: float64(c.Col) + 0.5, Y: float64(c.Row) + 0.5}
}

// Segments builds the smoothed overlay for a start→goal route (endpoints
// included, as returned by astar.Route). Every interior cell contributes one
// segment from its center to the midpoint between the centers of the cells
// before and after it. Routes shorter than three cells have no interior and
// yield nil.
func Segments(route []gridgraph.Coord) []Segment {
	if len(route) < 3 {
		return nil
	}
	segs := make([]Segment, 0, len(route)-2)
	for i := 1; i < len(route)-1; i++ {
		prev, next := Center(route[i-1]), Center(route[i+1])
		segs = append(segs, Segment{
			From: Center(route[i]),
			To:   Point{X: (prev.X + next.X) / 2, Y: (prev.Y + next.Y) / 2},
		})
	}

	return segs
}

// Glyph picks the box-drawing rune that best follows the route through its
// i-th cell, judged from the direction between the neighbors on either side.
// Endpoints use their single neighbor. It returns 0 for routes of fewer than
// two cells or an index outside the route.
func Glyph(route []gridgraph.Coord, i int) rune {
	if len(route) < 2 || i < 0 || i >= len(route) {
		return 0
	}
	a, b := i-1, i+1
	if a < 0 {
		a = i
	}
	if b >= len(route) {
		b = i
	}
	dr := sign(route[b].Row - route[a].Row)
	dc := sign(route[b].Col - route[a].Col)
	switch {
	case dr == 0:
		return '─'
	case dc == 0:
		return '│'
	case dr == dc:
		return '╲'
	default:
		return '╱'
	}
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}

	return 0
}
