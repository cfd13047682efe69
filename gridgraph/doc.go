// Package gridgraph treats a square grid of tagged cells as an implicit
// 8-connected graph for pathfinding.
//
// What:
//
//   - Grid holds an N×N row-major array of Status tags (Free, Start, Goal,
//     Obstacle, Frontier, Visited, Path).
//   - NeighborsOf derives, on demand, the up-to-8 in-bounds non-obstacle
//     neighbors of a cell in a fixed order: Down, Up, Right, Left, Up-Left,
//     Up-Right, Down-Left, Down-Right.
//   - RefreshNeighbors freezes that adjacency for every cell before a search,
//     so obstacle edits made between searches are picked up.
//   - Painter applies the interactive editing rules: first paint is Start,
//     second is Goal, everything after is an Obstacle; erase resets a cell.
//
// Why:
//
//   - The fixed neighbor order is what makes A* tie-breaking reproducible.
//   - Keeping status as a tag (not a color) lets any renderer pick its own palette.
//
// Complexity:
//
//   - NeighborsOf:      O(1) (at most 8 probes).
//   - RefreshNeighbors: O(N²), Memory: O(N²).
//   - ClearSearch/Reset: O(N²).
//
// Errors:
//
//   - ErrOutOfBounds:   SetStatus called with a coordinate outside the grid.
//   - ErrInvalidStatus: SetStatus called with an undeclared Status.
//
// Concurrency: a Grid is not safe for concurrent use. The host owns it on a
// single goroutine and must not mutate it while a search is running.
package gridgraph
