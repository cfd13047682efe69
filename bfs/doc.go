// Package bfs provides breadth-first search over a gridgraph.Grid,
// returning unit-cost shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore cells in non-decreasing move count from a start cell.
//   - Moves follow gridgraph adjacency: eight directions, obstacles skipped,
//     every move (diagonal included) costs 1.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from cell → distance (moves) from start
//   - Parent: map from cell → its predecessor in the BFS tree
//   - OnVisit hook may abort the traversal with an error.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Under unit cost BFS depth is the exact shortest distance, which makes it
//     the reference oracle for A* optimality and heuristic admissibility.
//     The astar tests use it that way; nothing else in the module depends on it.
//
// Determinism
//
//	Neighbors are enqueued in the grid's fixed order (Down, Up, Right, Left,
//	Up-Left, Up-Right, Down-Left, Down-Right), so the visit sequence is fully reproducible.
//
// Complexity (C = N² cells)
//
//   - Time:   O(C)   (each cell and each of its ≤8 moves seen at most once)
//   - Memory: O(C)   (queue, Depth map, Parent map, visited set)
//
// Usage
//
//	res, err := bfs.BFS(g, gridgraph.Coord{Row: 0, Col: 0},
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(10),
//	)
//	if err != nil {
//	    // ErrGridNil, ErrStartOutOfBounds, ErrOptionViolation, context or hook errors
//	}
//	path, err := res.PathTo(goal)
//
// Errors
//
//   - ErrGridNil           if the grid pointer is nil.
//   - ErrStartOutOfBounds  if the start cell is outside the grid.
//   - ErrOptionViolation   if invalid Option (e.g. negative MaxDepth).
//   - ErrUnreachable       from PathTo for cells never reached.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
