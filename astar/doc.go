// Package astar provides best-first (A*) search over a gridgraph.Grid,
// returning the predecessor map, goal cost and the exact expansion order.
//
// What
//
//   - Unit edge cost in all eight directions; Chebyshev heuristic.
//   - Frontier ordered by (f, insertion sequence): ties on f are broken
//     first-in first-out, which together with the grid's fixed neighbor
//     order makes every run on the same grid identical.
//   - Cells are tagged Frontier when discovered and Visited when expanded;
//     Start and Goal tags are restored when the search returns.
//   - Reconstruct unwinds the predecessor map into a route, tagging Path cells.
//
// Visualization port
//
//	WithOnStep registers a zero-argument hook called after every expansion and
//	every reconstruction step. The hook runs synchronously on the caller's
//	goroutine; it may repaint, sleep, or poll input. To stop a long search,
//	cancel the context given to WithContext: it is checked at the top of each
//	iteration.
//
// Usage
//
//	g := gridgraph.New(50)
//	// ... paint obstacles ...
//	g.RefreshNeighbors()
//	res, err := astar.Search(g, start, goal,
//	    astar.WithContext(ctx),
//	    astar.WithOnStep(redraw),
//	)
//	if err != nil {
//	    // ErrGridNil, ErrStartOutOfBounds, ErrGoalOutOfBounds or ErrAborted
//	}
//	if res.Found {
//	    path, _ := astar.Reconstruct(g, res.CameFrom, goal, astar.WithOnStep(redraw))
//	    _ = path
//	}
//
// Complexity (C = N² cells)
//
//   - Time:   O(C log C)
//   - Memory: O(C)
//
// Errors
//
//   - ErrGridNil           nil grid.
//   - ErrStartOutOfBounds  start outside the grid.
//   - ErrGoalOutOfBounds   goal outside the grid.
//   - ErrAborted           context done; wraps the context error.
//   - ErrPredecessorCycle  Reconstruct given a looping predecessor map.
package astar
