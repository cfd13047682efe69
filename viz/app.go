package viz

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/render"
)

// Status line texts.
const (
	msgPlaceStart = "place the start"
	msgPlaceGoal  = "place the goal"
	msgReady      = "press Enter to search"
	msgSearching  = "searching..."
	msgAborted    = "search aborted"
	msgCleared    = "grid cleared"
	msgNoSnapDir  = "snapshots disabled (run with -snapshots DIR)"
)

// eventBuffer bounds the pump channel; tcell keeps its own queue behind it.
const eventBuffer = 100

// App is one interactive session.
type App struct {
	cfg     Config
	screen  tcell.Screen
	grid    *gridgraph.Grid
	painter *gridgraph.Painter
	term    *render.Terminal

	events    chan tcell.Event
	ctx       context.Context
	cancel    context.CancelFunc // cancels the running search, nil when idle
	route     []gridgraph.Coord  // start→goal overlay of the last successful search
	status    string
	quit      bool
	snapshots int
}

// New builds an App on an initialized screen.
func New(screen tcell.Screen, opts ...Option) *App {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	g := gridgraph.New(cfg.Size)

	return &App{
		cfg:     cfg,
		screen:  screen,
		grid:    g,
		painter: gridgraph.NewPainter(g),
		term:    render.NewTerminal(screen, cfg.CellWidth),
		events:  make(chan tcell.Event, eventBuffer),
		ctx:     context.Background(),
		status:  msgPlaceStart,
	}
}

// Grid exposes the grid for inspection.
func (a *App) Grid() *gridgraph.Grid { return a.grid }

// Route returns the overlay route of the last successful search, or nil.
func (a *App) Route() []gridgraph.Coord { return a.route }

// Status returns the current status line.
func (a *App) Status() string { return a.status }

// Config returns the effective configuration.
func (a *App) Config() Config { return a.cfg }

// Run pumps events until the user quits or ctx is done.
// It returns nil on a user quit and ctx.Err() otherwise.
func (a *App) Run(ctx context.Context) error {
	a.ctx = ctx
	a.screen.EnableMouse()
	a.Draw()

	done := make(chan struct{})
	defer close(done)
	go a.pump(done)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-a.events:
			if !a.HandleEvent(ev) {
				return nil
			}
			a.Draw()
		}
	}
}

// pump forwards tcell events until the screen is finalized or Run returns.
func (a *App) pump(done <-chan struct{}) {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case a.events <- ev:
		case <-done:
			return
		}
	}
}

// HandleEvent applies one input event and reports whether the app should keep running.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			a.quit = true
		case tcell.KeyEnter:
			a.Search()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				a.quit = true
			case 'c':
				a.Clear()
			case 'p':
				a.Snapshot()
			}
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		c := a.term.CoordAt(x, y)
		if !a.grid.InBounds(c) {
			break
		}
		switch btn := ev.Buttons(); {
		case btn&tcell.Button1 != 0:
			a.edit(a.painter.Paint(c))
		case btn&tcell.Button2 != 0:
			a.edit(a.painter.Erase(c))
		}

	case *tcell.EventResize:
		a.screen.Sync()
	}

	return !a.quit
}

// edit refreshes the hints after a grid change; the stale overlay is dropped.
func (a *App) edit(changed bool) {
	if !changed {
		return
	}
	a.route = nil
	a.status = a.hint()
}

func (a *App) hint() string {
	switch {
	case !a.hasStart():
		return msgPlaceStart
	case !a.hasGoal():
		return msgPlaceGoal
	}

	return msgReady
}

func (a *App) hasStart() bool {
	_, ok := a.painter.Start()
	return ok
}

func (a *App) hasGoal() bool {
	_, ok := a.painter.Goal()
	return ok
}

// Search clears the previous exploration, refreshes adjacency and runs one
// animated A* search followed, on success, by one reconstruction.
func (a *App) Search() {
	if !a.painter.Ready() {
		a.status = a.hint()
		return
	}
	start, _ := a.painter.Start()
	goal, _ := a.painter.Goal()

	a.grid.ClearSearch()
	a.grid.RefreshNeighbors()
	a.route = nil
	a.status = msgSearching

	ctx, cancel := context.WithCancel(a.ctx)
	a.cancel = cancel
	defer func() {
		cancel()
		a.cancel = nil
	}()
	opts := []astar.Option{astar.WithContext(ctx), astar.WithOnStep(a.step)}

	began := time.Now()
	res, err := astar.Search(a.grid, start, goal, opts...)
	if err != nil {
		a.fail(err)
		return
	}
	if !res.Found {
		a.status = fmt.Sprintf("no path (%d cells expanded)", len(res.Expanded))
		log.Printf("search %v→%v: no path, %d expanded in %v", start, goal, len(res.Expanded), time.Since(began))
		a.cfg.Notifier.NotFound()
		return
	}

	if _, err := astar.Reconstruct(a.grid, res.CameFrom, goal, opts...); err != nil {
		a.fail(err)
		return
	}
	a.route = astar.Route(res.CameFrom, goal)
	a.status = fmt.Sprintf("path found: %d moves (%d cells expanded)", int(res.Cost), len(res.Expanded))
	log.Printf("search %v→%v: cost %v, %d expanded in %v", start, goal, res.Cost, len(res.Expanded), time.Since(began))
	a.cfg.Notifier.Found()
}

func (a *App) fail(err error) {
	if errors.Is(err, astar.ErrAborted) {
		a.status = msgAborted
	} else {
		a.status = "search failed: " + err.Error()
	}
	log.Printf("search: %v", err)
}

// step is the search's visualization hook: repaint, pause, then look at input.
func (a *App) step() {
	a.Draw()
	if a.cfg.StepDelay > 0 {
		time.Sleep(a.cfg.StepDelay)
	}
	a.drain()
}

// drain handles queued events while a search runs. Only quit and resize are
// honored; edits would invalidate the frozen adjacency and are dropped.
func (a *App) drain() {
	for {
		select {
		case ev := <-a.events:
			a.handleDuringSearch(ev)
		default:
			return
		}
	}
}

func (a *App) handleDuringSearch(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			a.quit = true
			if a.cancel != nil {
				a.cancel()
			}
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
}

// Clear resets the grid and forgets Start and Goal.
func (a *App) Clear() {
	a.painter.Clear()
	a.route = nil
	a.status = msgCleared
}

// Snapshot writes the current grid and overlay as a numbered PNG into the
// snapshot directory and returns its path.
func (a *App) Snapshot() (string, error) {
	if a.cfg.SnapshotDir == "" {
		a.status = msgNoSnapDir
		return "", nil
	}
	if err := os.MkdirAll(a.cfg.SnapshotDir, 0o755); err != nil {
		a.status = "snapshot failed: " + err.Error()
		log.Printf("snapshot: %v", err)
		return "", err
	}
	a.snapshots++
	path := filepath.Join(a.cfg.SnapshotDir, fmt.Sprintf("grid-%03d.png", a.snapshots))
	if err := render.SavePNG(path, a.grid, a.route, a.cfg.SnapshotCellPx); err != nil {
		a.status = "snapshot failed: " + err.Error()
		log.Printf("snapshot: %v", err)
		return "", err
	}
	a.status = "saved " + path
	log.Printf("snapshot saved to %s", path)

	return path, nil
}

// Draw repaints the frame and flushes it.
func (a *App) Draw() {
	a.term.Draw(a.grid, a.route, a.status)
	a.term.Show()
}
