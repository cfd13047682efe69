package gridgraph

// DefaultSize is the side length used when a grid is created without an explicit size.
const DefaultSize = 50

// Status tags a single cell. Color is a rendering concern and is derived
// from Status by the render package, never stored here.
type Status uint8

const (
	// Free is an open, unexplored cell.
	Free Status = iota
	// Start marks the search origin. At most one cell holds it.
	Start
	// Goal marks the search target. At most one cell holds it.
	Goal
	// Obstacle cells are never adjacent to anything.
	Obstacle
	// Frontier marks cells discovered but not yet expanded.
	Frontier
	// Visited marks expanded cells.
	Visited
	// Path marks cells on the reconstructed route.
	Path
)

// statusNames is indexed by Status.
var statusNames = [...]string{
	Free:     "free",
	Start:    "start",
	Goal:     "goal",
	Obstacle: "obstacle",
	Frontier: "frontier",
	Visited:  "visited",
	Path:     "path",
}

// Valid reports whether s is one of the declared tags.
func (s Status) Valid() bool {
	return int(s) < len(statusNames)
}

// String returns the lower-case tag name.
func (s Status) String() string {
	if !s.Valid() {
		return "unknown"
	}

	return statusNames[s]
}

// Coord addresses a cell. Row grows downward, Col grows rightward.
type Coord struct {
	Row, Col int
}

// neighborOffsets lists (dRow, dCol) in the fixed enumeration order:
// Down, Up, Right, Left, Up-Left, Up-Right, Down-Left, Down-Right.
// Search tie-breaking depends on this order; do not reorder.
var neighborOffsets = [8][2]int{
	{1, 0},   // Down
	{-1, 0},  // Up
	{0, 1},   // Right
	{0, -1},  // Left
	{-1, -1}, // Up-Left
	{-1, 1},  // Up-Right
	{1, -1},  // Down-Left
	{1, 1},   // Down-Right
}

// NeighborOffsets returns a copy of the fixed neighbor enumeration order.
func NeighborOffsets() [8][2]int {
	return neighborOffsets
}
