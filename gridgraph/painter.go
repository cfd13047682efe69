package gridgraph

// Painter applies interactive editing rules on top of a Grid:
//
//  1. The first accepted paint places Start.
//  2. The second places Goal.
//  3. Every later paint places an Obstacle.
//
// Start and Goal are never painted onto an Obstacle, and an Obstacle is never
// painted onto Start or Goal; such requests are silently rejected.
// Erase resets a cell to Free and drops its Start/Goal designation.
type Painter struct {
	grid  *Grid
	start *Coord
	goal  *Coord
}

// NewPainter wraps g. Any Start/Goal already on the grid is ignored;
// hosts create the painter together with a fresh grid.
func NewPainter(g *Grid) *Painter {
	return &Painter{grid: g}
}

// Paint applies the left-button rule at c and reports whether the grid changed.
// Out-of-bounds coordinates are ignored.
func (p *Painter) Paint(c Coord) bool {
	if !p.grid.InBounds(c) {
		return false
	}
	cur := p.grid.At(c)

	switch {
	case p.start == nil && !p.isGoal(c):
		if cur == Obstacle {
			return false
		}
		p.start = &c
		return p.set(c, Start)

	case p.goal == nil && !p.isStart(c):
		if cur == Obstacle {
			return false
		}
		p.goal = &c
		return p.set(c, Goal)

	case !p.isStart(c) && !p.isGoal(c):
		if cur == Obstacle {
			return false
		}
		return p.set(c, Obstacle)
	}

	return false
}

// Erase applies the right-button rule at c: the cell becomes Free and,
// if it held Start or Goal, that designation is cleared.
func (p *Painter) Erase(c Coord) bool {
	if !p.grid.InBounds(c) {
		return false
	}
	if p.isStart(c) {
		p.start = nil
	}
	if p.isGoal(c) {
		p.goal = nil
	}
	if p.grid.At(c) == Free {
		return false
	}

	return p.set(c, Free)
}

// Start returns the current start cell, if any.
func (p *Painter) Start() (Coord, bool) {
	if p.start == nil {
		return Coord{}, false
	}

	return *p.start, true
}

// Goal returns the current goal cell, if any.
func (p *Painter) Goal() (Coord, bool) {
	if p.goal == nil {
		return Coord{}, false
	}

	return *p.goal, true
}

// Ready reports whether both Start and Goal are placed, the precondition
// for launching a search.
func (p *Painter) Ready() bool {
	return p.start != nil && p.goal != nil
}

// Clear resets the whole grid and forgets Start and Goal.
func (p *Painter) Clear() {
	p.grid.Reset()
	p.start, p.goal = nil, nil
}

func (p *Painter) isStart(c Coord) bool { return p.start != nil && *p.start == c }
func (p *Painter) isGoal(c Coord) bool  { return p.goal != nil && *p.goal == c }

// set never fails for in-bounds coordinates and declared statuses.
func (p *Painter) set(c Coord, s Status) bool {
	if p.grid.At(c) == s {
		return false
	}

	return p.grid.SetStatus(c, s) == nil
}
