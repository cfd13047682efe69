// Package gridgraph provides the N×N cell grid used by the pathfinding engine.
// It supports:
//
//   - Per-cell Status tags with bounds-checked mutation
//   - Fresh or frozen 8-directional adjacency that skips Obstacle cells
//   - Pixel-to-cell translation for hosts that deal in screen coordinates
//
// Cells outside [0,N)×[0,N) read as Obstacle, so callers never step off the grid.
package gridgraph

import "fmt"

// Grid is a square array of cells. The zero value is not usable; call New.
// cells is row-major: cells[row*size+col].
// adjacency is nil until RefreshNeighbors runs and is then frozen until the next refresh.
type Grid struct {
	size      int
	cells     []Status
	adjacency [][]Coord
}

// New creates an n×n grid of Free cells. There is no failure mode:
// n < 1 falls back to DefaultSize.
// Complexity: O(n²) time and memory.
func New(n int) *Grid {
	if n < 1 {
		n = DefaultSize
	}

	return &Grid{
		size:  n,
		cells: make([]Status, n*n),
	}
}

// Size returns N, the side length of the grid.
func (g *Grid) Size() int {
	return g.size
}

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.size && c.Col >= 0 && c.Col < g.size
}

// At returns the status of c. Out-of-bounds coordinates read as Obstacle.
func (g *Grid) At(c Coord) Status {
	if !g.InBounds(c) {
		return Obstacle
	}

	return g.cells[g.index(c)]
}

// SetStatus overwrites the status of a single cell.
// It does not enforce the single-Start/single-Goal rule or the
// Start/Goal-versus-Obstacle rule; Painter does that for interactive hosts.
func (g *Grid) SetStatus(c Coord, s Status) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, c.Row, c.Col, g.size, g.size)
	}
	if !s.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidStatus, s)
	}
	g.cells[g.index(c)] = s

	return nil
}

// NeighborsOf computes, freshly, the in-bounds non-Obstacle neighbors of c
// in the fixed order Down, Up, Right, Left, Up-Left, Up-Right, Down-Left, Down-Right.
// Complexity: O(1).
func (g *Grid) NeighborsOf(c Coord) []Coord {
	out := make([]Coord, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := Coord{Row: c.Row + d[0], Col: c.Col + d[1]}
		if !g.InBounds(n) || g.cells[g.index(n)] == Obstacle {
			continue
		}
		out = append(out, n)
	}

	return out
}

// RefreshNeighbors recomputes and freezes the adjacency of every cell.
// Hosts call it once before each search so obstacle edits are reflected.
// Complexity: O(N²) time and memory.
func (g *Grid) RefreshNeighbors() {
	adj := make([][]Coord, len(g.cells))
	for i := range g.cells {
		adj[i] = g.NeighborsOf(g.Coordinate(i))
	}
	g.adjacency = adj
}

// Neighbors returns the frozen adjacency of c captured by the last RefreshNeighbors.
// If the grid was never refreshed it falls back to NeighborsOf.
func (g *Grid) Neighbors(c Coord) []Coord {
	if g.adjacency == nil {
		return g.NeighborsOf(c)
	}
	if !g.InBounds(c) {
		return nil
	}

	return g.adjacency[g.index(c)]
}

// ClearSearch turns Frontier, Visited and Path cells back into Free,
// keeping Start, Goal and Obstacle cells.
func (g *Grid) ClearSearch() {
	for i, s := range g.cells {
		switch s {
		case Frontier, Visited, Path:
			g.cells[i] = Free
		}
	}
}

// Reset turns every cell Free and drops the frozen adjacency.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = Free
	}
	g.adjacency = nil
}

// Count returns the number of cells holding s.
func (g *Grid) Count(s Status) int {
	n := 0
	for _, v := range g.cells {
		if v == s {
			n++
		}
	}

	return n
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(c Coord, s Status)) {
	for i, s := range g.cells {
		fn(g.Coordinate(i), s)
	}
}

// index maps c to its row-major index: Row*size + Col.
// Complexity: O(1).
func (g *Grid) index(c Coord) int {
	return c.Row*g.size + c.Col
}

// Index maps an in-bounds coordinate to its row-major index.
// Dense per-cell tables (scores, handles) are sized Size()*Size().
func (g *Grid) Index(c Coord) int {
	return g.index(c)
}

// Coordinate converts a row-major index back to a Coord.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.size, Col: idx % g.size}
}

// CoordinateFromPixel floor-divides a pixel position into a cell coordinate,
// given the width and height of one cell. The result is not bounds-checked:
// hosts often have panels outside the grid, so the caller must call InBounds.
// Negative pixels map to negative coordinates.
func CoordinateFromPixel(x, y, cellW, cellH int) Coord {
	if cellW < 1 {
		cellW = 1
	}
	if cellH < 1 {
		cellH = 1
	}

	return Coord{Row: floorDiv(y, cellH), Col: floorDiv(x, cellW)}
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}
