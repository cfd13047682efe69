package viz

import (
	"time"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/render"
)

// Defaults for Config.
const (
	DefaultCellWidth = 2
	DefaultStepDelay = 5 * time.Millisecond
)

// Notifier receives the outcome of every completed search. audio.Player
// satisfies it.
type Notifier interface {
	Found()
	NotFound()
}

type nopNotifier struct{}

func (nopNotifier) Found()    {}
func (nopNotifier) NotFound() {}

// Config holds the App settings.
type Config struct {
	// Size is the grid side N.
	Size int

	// CellWidth is the number of terminal columns per grid cell.
	CellWidth int

	// StepDelay is slept after every search step so the animation is visible.
	// Zero disables it.
	StepDelay time.Duration

	// Notifier is told whether a path was found. Never nil after DefaultConfig.
	Notifier Notifier

	// SnapshotDir receives PNG snapshots; empty disables the 'p' key.
	SnapshotDir string

	// SnapshotCellPx is the pixel side of one cell in snapshots.
	SnapshotCellPx int
}

// Option configures an App via functional arguments.
// Out-of-range values are ignored and the default is kept.
type Option func(*Config)

// DefaultConfig returns a 50×50 grid, two columns per cell, a 5ms step delay,
// no sound and no snapshots.
func DefaultConfig() Config {
	return Config{
		Size:           gridgraph.DefaultSize,
		CellWidth:      DefaultCellWidth,
		StepDelay:      DefaultStepDelay,
		Notifier:       nopNotifier{},
		SnapshotCellPx: render.DefaultCellPx,
	}
}

// WithSize sets the grid side; n < 1 is ignored.
func WithSize(n int) Option {
	return func(c *Config) {
		if n >= 1 {
			c.Size = n
		}
	}
}

// WithCellWidth sets the columns per cell; w < 1 is ignored.
func WithCellWidth(w int) Option {
	return func(c *Config) {
		if w >= 1 {
			c.CellWidth = w
		}
	}
}

// WithStepDelay sets the animation delay; negative values are ignored.
func WithStepDelay(d time.Duration) Option {
	return func(c *Config) {
		if d >= 0 {
			c.StepDelay = d
		}
	}
}

// WithNotifier registers the search outcome listener; nil is ignored.
func WithNotifier(n Notifier) Option {
	return func(c *Config) {
		if n != nil {
			c.Notifier = n
		}
	}
}

// WithSnapshotDir enables PNG snapshots into dir.
func WithSnapshotDir(dir string) Option {
	return func(c *Config) {
		c.SnapshotDir = dir
	}
}

// WithSnapshotCellPx sets the snapshot cell size; px < 1 is ignored.
func WithSnapshotCellPx(px int) Option {
	return func(c *Config) {
		if px >= 1 {
			c.SnapshotCellPx = px
		}
	}
}
