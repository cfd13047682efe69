package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartOutOfBounds is returned when the start coordinate is outside the grid.
	ErrStartOutOfBounds = errors.New("bfs: start out of bounds")

	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrUnreachable is returned by PathTo for a cell the search never reached.
	ErrUnreachable = errors.New("bfs: no path")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a cell. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(c gridgraph.Coord, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no-op OnVisit hook
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:      context.Background(),
		OnVisit:  func(gridgraph.Coord, int) error { return nil },
		MaxDepth: 0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(c gridgraph.Coord, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: cells visited, in visit sequence.
//   - Depth: map from cell to its distance (in moves) from the start.
//   - Parent: map from cell to its predecessor in the BFS tree.
type BFSResult struct {
	Order  []gridgraph.Coord
	Depth  map[gridgraph.Coord]int
	Parent map[gridgraph.Coord]gridgraph.Coord
}

// PathTo reconstructs the path from the start cell to dest, both included.
// Returns ErrUnreachable if dest was not reached.
func (r *BFSResult) PathTo(dest gridgraph.Coord) ([]gridgraph.Coord, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w to (%d,%d)", ErrUnreachable, dest.Row, dest.Col)
	}
	// build reversed path
	path := []gridgraph.Coord{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
