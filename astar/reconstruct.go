package astar

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Reconstruct unwinds cameFrom from goal, marking every intermediate cell Path
// and calling the OnStep hook once per cell so the unwind can be animated.
//
// The returned slice runs from the cell next to the goal back to the cell next
// to the start; neither endpoint is included. It is empty when start == goal,
// and also when goal has no predecessor (search did not find it), which is not an error.
//
// Errors: ErrGridNil, ErrPredecessorCycle, ErrAborted (context done mid-unwind),
// gridgraph.ErrOutOfBounds for a came-from entry outside g.
func Reconstruct(g *gridgraph.Grid, cameFrom map[gridgraph.Coord]gridgraph.Coord, goal gridgraph.Coord, opts ...Option) ([]gridgraph.Coord, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	cfg := buildOptions(opts)

	path := make([]gridgraph.Coord, 0)
	cur := goal
	for steps := 0; ; steps++ {
		prev, ok := cameFrom[cur]
		if !ok {
			break
		}
		if steps > len(cameFrom) {
			return path, fmt.Errorf("%w: at (%d,%d)", ErrPredecessorCycle, cur.Row, cur.Col)
		}
		// prev without a predecessor of its own is the start; stop before it.
		if _, more := cameFrom[prev]; !more {
			break
		}

		select {
		case <-cfg.Ctx.Done():
			return path, fmt.Errorf("%w: %w", ErrAborted, cfg.Ctx.Err())
		default:
		}

		if err := g.SetStatus(prev, gridgraph.Path); err != nil {
			return path, err
		}
		path = append(path, prev)
		cfg.OnStep()
		cur = prev
	}

	return path, nil
}

// Route returns the full start→goal route, endpoints included, without touching
// any grid. A goal with no predecessor yields a single-cell route.
// Renderers use it to draw overlays; a cyclic map is cut after len(cameFrom)+1 cells.
func Route(cameFrom map[gridgraph.Coord]gridgraph.Coord, goal gridgraph.Coord) []gridgraph.Coord {
	route := []gridgraph.Coord{goal}
	for cur := goal; len(route) <= len(cameFrom); {
		prev, ok := cameFrom[cur]
		if !ok {
			break
		}
		route = append(route, prev)
		cur = prev
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}

	return route
}
