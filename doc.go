// Package gridpath is an interactive grid pathfinding visualizer built around
// a small, deterministic A* core.
//
// What is inside
//
//	gridgraph/     N×N cell grid: status tags, fixed 8-neighbor order, frozen
//	               adjacency, pixel→cell mapping and the interactive Painter
//	astar/         A* with the Chebyshev heuristic, (f, seq) FIFO tie-break,
//	               context abort, step hook, path reconstruction
//	bfs/           unit-cost breadth-first search; the optimality oracle
//	render/        status palette, tcell terminal renderer, PNG snapshots (gg)
//	audio/         beep tones when a search ends
//	viz/           the interactive shell: event loop, painting, animated search
//	cmd/astarviz/  the binary
//
// Why
//
//   - Every move, diagonal included, costs 1, so Chebyshev distance is an exact
//     lower bound and A* returns shortest routes.
//   - Neighbors are enumerated Down, Up, Right, Left, Up-Left, Up-Right,
//     Down-Left, Down-Right and equal-f ties expand first-in first-out, so the
//     same board always animates the same way.
//
// Quick example:
//
//	g := gridgraph.New(5)
//	start, goal := gridgraph.Coord{Row: 0, Col: 0}, gridgraph.Coord{Row: 4, Col: 4}
//	g.RefreshNeighbors()
//	res, _ := astar.Search(g, start, goal)
//	path, _ := astar.Reconstruct(g, res.CameFrom, goal)
//	// res.Cost == 4, path == [{3 3} {2 2} {1 1}]
//
//	go run ./cmd/astarviz -size 40 -delay 10ms -snapshots shots
package gridpath
