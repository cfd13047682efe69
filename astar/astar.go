// Package astar implements A* search on a gridgraph.Grid with unit edge cost
// in all eight directions and the Chebyshev heuristic.
//
// Notes on implementation choices:
//
//   - The frontier is a min-heap keyed on (f, seq). seq grows monotonically as
//     cells enter the frontier, so equal-f cells expand first-in first-out.
//   - A cell already in the frontier whose cost improves is re-keyed in place
//     (heap.Fix) and keeps its original seq.
//   - Per-cell scores live in dense row-major slices; came-from is a map because
//     it is handed to the caller.
//   - Cell statuses are updated as the search runs (Frontier, Visited) so a host
//     can render progress from the OnStep hook.
package astar

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Search runs A* from start to goal on g.
//
// Preconditions: the caller refreshed g's neighbor lists (g.RefreshNeighbors)
// after the last obstacle edit, and does not mutate g until Search returns.
//
// Returns:
//
//   - (*Result{Found: true}, nil) when the goal is expanded. Start == Goal succeeds immediately.
//   - (*Result{Found: false}, nil) when the frontier empties; no path exists.
//   - (*Result{Found: false}, err) wrapping ErrAborted and the context error when
//     the context is done at the top of an iteration.
//   - (nil, err) for ErrGridNil, ErrStartOutOfBounds or ErrGoalOutOfBounds.
//
// Start and Goal markers are restored on every exit path.
//
// Complexity:
//
//   - Time:  O(N² log N²) worst case (each cell enters the frontier a bounded number of times).
//   - Space: O(N²).
func Search(g *gridgraph.Grid, start, goal gridgraph.Coord, opts ...Option) (*Result, error) {
	// 1) Validate inputs.
	if g == nil {
		return nil, ErrGridNil
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrStartOutOfBounds, start.Row, start.Col)
	}
	if !g.InBounds(goal) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrGoalOutOfBounds, goal.Row, goal.Col)
	}

	// 2) Allocate search state sized to the grid.
	cells := g.Size() * g.Size()
	r := &runner{
		g:       g,
		opts:    buildOptions(opts),
		start:   start,
		goal:    goal,
		gScore:  make([]float64, cells),
		fScore:  make([]float64, cells),
		handles: make([]*frontierItem, cells),
		open:    mapset.New[gridgraph.Coord](),
		queue:   make(frontier, 0, g.Size()*4),
		res:     newResult(cells / 4),
	}

	// 3) Seed and run.
	r.init()
	defer r.restoreMarkers()

	return r.res, r.process()
}

// runner holds the mutable state of a single Search; it is discarded afterwards.
type runner struct {
	g       *gridgraph.Grid
	opts    Options
	start   gridgraph.Coord
	goal    gridgraph.Coord
	gScore  []float64                   // best known cost from start, +Inf if unreached
	fScore  []float64                   // gScore + heuristic, +Inf if unreached
	handles []*frontierItem             // heap entry per cell while it is in the frontier
	open    mapset.Set[gridgraph.Coord] // frontier membership
	queue   frontier
	seq     int
	res     *Result
}

// init sets every score to +Inf, then seeds the frontier with start at seq 0.
func (r *runner) init() {
	inf := math.Inf(1)
	for i := range r.gScore {
		r.gScore[i] = inf
		r.fScore[i] = inf
	}

	si := r.g.Index(r.start)
	r.gScore[si] = 0
	r.fScore[si] = Chebyshev(r.start, r.goal)

	heap.Init(&r.queue)
	item := &frontierItem{cell: r.start, f: r.fScore[si], seq: r.seq}
	heap.Push(&r.queue, item)
	r.handles[si] = item
	r.open.Put(r.start)
}

// process is the main loop. Each iteration:
//  1. checks the abort signal,
//  2. pops the (f, seq)-minimal cell,
//  3. returns on the goal,
//  4. relaxes neighbors in the grid's fixed order,
//  5. reports the step, then marks the cell Visited (start excepted).
func (r *runner) process() error {
	ctx := r.opts.Ctx
	for r.queue.Len() > 0 {
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", ErrAborted, ctx.Err())
		default:
		}

		item := heap.Pop(&r.queue).(*frontierItem)
		cur := item.cell
		ci := r.g.Index(cur)
		r.open.Remove(cur)
		r.handles[ci] = nil
		r.res.Expanded = append(r.res.Expanded, cur)

		if cur == r.goal {
			r.res.Found = true
			r.res.Cost = r.gScore[ci]
			r.restoreMarkers()
			r.opts.OnStep()
			return nil
		}

		r.relax(cur, ci)
		r.opts.OnStep()

		if cur != r.start {
			r.mark(cur, gridgraph.Visited)
		}
	}

	return nil
}

// relax tries to improve every neighbor of cur through cur at unit cost.
// Diagonal moves cost the same as orthogonal ones.
func (r *runner) relax(cur gridgraph.Coord, ci int) {
	for _, nb := range r.g.Neighbors(cur) {
		ni := r.g.Index(nb)
		tentative := r.gScore[ci] + 1
		if tentative >= r.gScore[ni] {
			continue
		}

		r.res.CameFrom[nb] = cur
		r.gScore[ni] = tentative
		r.fScore[ni] = tentative + Chebyshev(nb, r.goal)

		if r.open.Has(nb) {
			item := r.handles[ni]
			item.f = r.fScore[ni]
			heap.Fix(&r.queue, item.index)
			continue
		}

		r.seq++
		item := &frontierItem{cell: nb, f: r.fScore[ni], seq: r.seq}
		heap.Push(&r.queue, item)
		r.handles[ni] = item
		r.open.Put(nb)
		r.res.Discovered = append(r.res.Discovered, nb)
		r.mark(nb, gridgraph.Frontier)
	}
}

// restoreMarkers puts the Goal then the Start tag back, so Start wins when they coincide.
func (r *runner) restoreMarkers() {
	r.mark(r.goal, gridgraph.Goal)
	r.mark(r.start, gridgraph.Start)
}

// mark cannot fail: every coordinate reaching it is in bounds.
func (r *runner) mark(c gridgraph.Coord, s gridgraph.Status) {
	_ = r.g.SetStatus(c, s)
}
