// Package astar defines options, results and sentinel errors
// for A* search over a gridgraph.Grid.
package astar

import (
	"context"
	"errors"
	"math"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors returned by Search and Reconstruct.
var (
	// ErrGridNil indicates that a nil *gridgraph.Grid was passed.
	ErrGridNil = errors.New("astar: grid is nil")

	// ErrStartOutOfBounds indicates the start coordinate lies outside the grid.
	ErrStartOutOfBounds = errors.New("astar: start out of bounds")

	// ErrGoalOutOfBounds indicates the goal coordinate lies outside the grid.
	ErrGoalOutOfBounds = errors.New("astar: goal out of bounds")

	// ErrAborted indicates the search stopped because its context was done.
	ErrAborted = errors.New("astar: search aborted")

	// ErrPredecessorCycle indicates a came-from map that loops back on itself.
	ErrPredecessorCycle = errors.New("astar: predecessor cycle")
)

// StepFunc is the visualization port: a zero-argument hook invoked after every
// expansion and every reconstruction step so a host can repaint. It may be a no-op.
type StepFunc func()

// Options holds the knobs shared by Search and Reconstruct.
type Options struct {
	// Ctx is the abort signal, checked at the top of every search iteration.
	Ctx context.Context

	// OnStep is called after each step. Never nil after DefaultOptions.
	OnStep StepFunc
}

// Option configures Search or Reconstruct via functional arguments.
type Option func(*Options)

// DefaultOptions returns a background context and a no-op step hook.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		OnStep: func() {},
	}
}

// WithContext sets the abort signal. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnStep registers the visualization hook. A nil fn is ignored.
func WithOnStep(fn StepFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Result holds the outcome of one Search:
//   - Found: whether the goal was expanded.
//   - CameFrom: predecessor of every reached cell (absent for start).
//   - Cost: best known cost of the goal, +Inf when it was never reached.
//   - Expanded: cells in the order they were popped from the frontier.
//   - Discovered: cells in the order they were pushed onto the frontier.
type Result struct {
	Found      bool
	CameFrom   map[gridgraph.Coord]gridgraph.Coord
	Cost       float64
	Expanded   []gridgraph.Coord
	Discovered []gridgraph.Coord
}

func newResult(capacity int) *Result {
	return &Result{
		CameFrom:   make(map[gridgraph.Coord]gridgraph.Coord, capacity),
		Cost:       math.Inf(1),
		Expanded:   make([]gridgraph.Coord, 0, capacity),
		Discovered: make([]gridgraph.Coord, 0, capacity),
	}
}
