package bfs

import (
	"context"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	cell  gridgraph.Coord
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	grid    *gridgraph.Grid
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited mapset.Set[gridgraph.Coord]
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Adjacency is computed fresh (Grid.NeighborsOf), so BFS always sees current obstacles.
// Returns ErrGridNil or ErrStartOutOfBounds for invalid input,
// ErrOptionViolation for bad options, context errors, or any OnVisit error.
func BFS(g *gridgraph.Grid, start gridgraph.Coord, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start cell
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrStartOutOfBounds, start.Row, start.Col)
	}

	// Prepare walker
	n := g.Size() * g.Size()
	w := &walker{
		grid:    g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: mapset.New[gridgraph.Coord](),
		res: &BFSResult{
			Order:  make([]gridgraph.Coord, 0, n),
			Depth:  make(map[gridgraph.Coord]int, n),
			Parent: make(map[gridgraph.Coord]gridgraph.Coord, n),
		},
	}

	// Seed queue with start cell (no parent)
	w.enqueue(start, 0, nil)
	// Main loop
	return w.res, w.loop()
}

// enqueue marks c visited at depth d, records its parent and adds it to the queue.
func (w *walker) enqueue(c gridgraph.Coord, d int, parent *gridgraph.Coord) {
	w.visited.Put(c)
	w.res.Depth[c] = d
	if parent != nil {
		w.res.Parent[c] = *parent
	}
	w.queue = append(w.queue, queueItem{cell: c, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// visit records the cell in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.cell)
	if err := w.opts.OnVisit(item.cell, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at (%d,%d): %w", item.cell.Row, item.cell.Col, err)
	}

	return nil
}

// enqueueNeighbors applies MaxDepth and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.grid.NeighborsOf(item.cell) {
		if !w.visited.Has(nbr) {
			parent := item.cell
			w.enqueue(nbr, nextDepth, &parent)
		}
	}
}
