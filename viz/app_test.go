package viz

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// recorder counts search outcomes.
type recorder struct {
	found, notFound int
}

func (r *recorder) Found()    { r.found++ }
func (r *recorder) NotFound() { r.notFound++ }

func newTestApp(t *testing.T, opts ...Option) (*App, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(120, 40)
	t.Cleanup(s.Fini)

	base := []Option{WithSize(5), WithCellWidth(2), WithStepDelay(0)}
	return New(s, append(base, opts...)...), s
}

func key(k tcell.Key) *tcell.EventKey { return tcell.NewEventKey(k, 0, tcell.ModNone) }
func char(r rune) *tcell.EventKey    { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

// click presses btn over grid cell c (cell width 2).
func click(a *App, c gridgraph.Coord, btn tcell.ButtonMask) bool {
	return a.HandleEvent(tcell.NewEventMouse(c.Col*2, c.Row, btn, tcell.ModNone))
}

//----------------------------------------------------------------------------//
// configuration
//----------------------------------------------------------------------------//

func TestConfig_Options(t *testing.T) {
	def := DefaultConfig()
	assert.Equal(t, gridgraph.DefaultSize, def.Size)
	assert.Equal(t, DefaultCellWidth, def.CellWidth)
	assert.Equal(t, DefaultStepDelay, def.StepDelay)
	assert.NotNil(t, def.Notifier)
	assert.Empty(t, def.SnapshotDir)

	cfg := DefaultConfig()
	for _, opt := range []Option{
		WithSize(0), WithCellWidth(-1), WithStepDelay(-time.Second),
		WithNotifier(nil), WithSnapshotCellPx(0),
	} {
		opt(&cfg)
	}
	assert.Equal(t, def.Size, cfg.Size, "invalid values keep defaults")
	assert.Equal(t, def.CellWidth, cfg.CellWidth)
	assert.Equal(t, def.StepDelay, cfg.StepDelay)
	assert.Equal(t, def.Notifier, cfg.Notifier)
	assert.Equal(t, def.SnapshotCellPx, cfg.SnapshotCellPx)

	a, _ := newTestApp(t, WithSnapshotDir("shots"), WithSnapshotCellPx(4))
	assert.Equal(t, 5, a.Grid().Size())
	assert.Equal(t, "shots", a.Config().SnapshotDir)
	assert.Equal(t, 4, a.Config().SnapshotCellPx)
}

//----------------------------------------------------------------------------//
// editing
//----------------------------------------------------------------------------//

func TestHandleEvent_Painting(t *testing.T) {
	a, _ := newTestApp(t)
	g := a.Grid()
	assert.Equal(t, msgPlaceStart, a.Status())

	assert.True(t, click(a, gridgraph.Coord{Row: 0, Col: 0}, tcell.Button1))
	assert.Equal(t, gridgraph.Start, g.At(gridgraph.Coord{Row: 0, Col: 0}))
	assert.Equal(t, msgPlaceGoal, a.Status())

	click(a, gridgraph.Coord{Row: 4, Col: 4}, tcell.Button1)
	assert.Equal(t, gridgraph.Goal, g.At(gridgraph.Coord{Row: 4, Col: 4}))
	assert.Equal(t, msgReady, a.Status())

	click(a, gridgraph.Coord{Row: 2, Col: 2}, tcell.Button1)
	assert.Equal(t, gridgraph.Obstacle, g.At(gridgraph.Coord{Row: 2, Col: 2}))

	// second column of a cell hits the same cell
	a.HandleEvent(tcell.NewEventMouse(2*2+1, 2, tcell.Button2, tcell.ModNone))
	assert.Equal(t, gridgraph.Free, g.At(gridgraph.Coord{Row: 2, Col: 2}))

	click(a, gridgraph.Coord{Row: 0, Col: 0}, tcell.Button2)
	assert.Equal(t, gridgraph.Free, g.At(gridgraph.Coord{Row: 0, Col: 0}))
	assert.Equal(t, msgPlaceStart, a.Status())
}

func TestHandleEvent_OutsideGridIgnored(t *testing.T) {
	a, _ := newTestApp(t)
	before := a.Grid().Count(gridgraph.Free)

	assert.True(t, a.HandleEvent(tcell.NewEventMouse(0, 6, tcell.Button1, tcell.ModNone)), "panel row")
	assert.True(t, a.HandleEvent(tcell.NewEventMouse(40, 0, tcell.Button1, tcell.ModNone)), "right of the grid")
	assert.Equal(t, before, a.Grid().Count(gridgraph.Free))
	assert.Equal(t, msgPlaceStart, a.Status())
}

func TestHandleEvent_Quit(t *testing.T) {
	for name, ev := range map[string]tcell.Event{
		"q":      char('q'),
		"Esc":    key(tcell.KeyEscape),
		"Ctrl-C": key(tcell.KeyCtrlC),
	} {
		t.Run(name, func(t *testing.T) {
			a, _ := newTestApp(t)
			assert.False(t, a.HandleEvent(ev))
		})
	}
	a, _ := newTestApp(t)
	assert.True(t, a.HandleEvent(char('x')), "unbound keys are ignored")
}

func TestHandleEvent_Clear(t *testing.T) {
	a, _ := newTestApp(t)
	click(a, gridgraph.Coord{Row: 0, Col: 0}, tcell.Button1)
	click(a, gridgraph.Coord{Row: 1, Col: 1}, tcell.Button1)
	click(a, gridgraph.Coord{Row: 2, Col: 2}, tcell.Button1)

	a.HandleEvent(char('c'))
	assert.Equal(t, 25, a.Grid().Count(gridgraph.Free))
	assert.Equal(t, msgCleared, a.Status())

	click(a, gridgraph.Coord{Row: 3, Col: 3}, tcell.Button1)
	assert.Equal(t, gridgraph.Start, a.Grid().At(gridgraph.Coord{Row: 3, Col: 3}), "next paint places a new start")
}

//----------------------------------------------------------------------------//
// search
//----------------------------------------------------------------------------//

func TestSearch_NotReady(t *testing.T) {
	a, _ := newTestApp(t)
	click(a, gridgraph.Coord{Row: 0, Col: 0}, tcell.Button1)
	a.HandleEvent(key(tcell.KeyEnter))
	assert.Equal(t, msgPlaceGoal, a.Status())
	assert.Zero(t, a.Grid().Count(gridgraph.Visited))
}

func TestSearch_Found(t *testing.T) {
	rec := &recorder{}
	a, screen := newTestApp(t, WithNotifier(rec))
	click(a, gridgraph.Coord{Row: 0, Col: 0}, tcell.Button1)
	click(a, gridgraph.Coord{Row: 4, Col: 4}, tcell.Button1)

	assert.True(t, a.HandleEvent(key(tcell.KeyEnter)))
	assert.Equal(t, 1, rec.found)
	assert.Zero(t, rec.notFound)
	assert.True(t, strings.HasPrefix(a.Status(), "path found: 4 moves"), a.Status())
	assert.Equal(t, []gridgraph.Coord{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}, {Row: 3, Col: 3}, {Row: 4, Col: 4}}, a.Route())
	assert.Equal(t, 3, a.Grid().Count(gridgraph.Path))

	a.Draw()
	r, _, _, _ := screen.GetContent(2, 1)
	assert.Equal(t, '╲', r, "overlay drawn through (1,1)")
}

func TestSearch_RepeatClearsPreviousRun(t *testing.T) {
	a, _ := newTestApp(t)
	click(a, gridgraph.Coord{Row: 0, Col: 0}, tcell.Button1)
	click(a, gridgraph.Coord{Row: 4, Col: 4}, tcell.Button1)
	a.HandleEvent(key(tcell.KeyEnter))
	first := a.Route()

	// a wall edit between runs is picked up by the refreshed adjacency
	click(a, gridgraph.Coord{Row: 2, Col: 2}, tcell.Button1)
	assert.Nil(t, a.Route(), "edits drop the stale overlay")
	a.HandleEvent(key(tcell.KeyEnter))

	assert.NotEqual(t, first, a.Route())
	assert.NotContains(t, a.Route(), gridgraph.Coord{Row: 2, Col: 2})
	assert.Equal(t, gridgraph.Obstacle, a.Grid().At(gridgraph.Coord{Row: 2, Col: 2}))
}

func TestSearch_NoPath(t *testing.T) {
	rec := &recorder{}
	a, _ := newTestApp(t, WithNotifier(rec))
	click(a, gridgraph.Coord{Row: 0, Col: 0}, tcell.Button1)
	click(a, gridgraph.Coord{Row: 4, Col: 4}, tcell.Button1)
	for col := 0; col < 5; col++ {
		click(a, gridgraph.Coord{Row: 2, Col: col}, tcell.Button1)
	}

	a.HandleEvent(key(tcell.KeyEnter))
	assert.Equal(t, 1, rec.notFound)
	assert.Zero(t, rec.found)
	assert.Equal(t, "no path (10 cells expanded)", a.Status())
	assert.Nil(t, a.Route())
	assert.Zero(t, a.Grid().Count(gridgraph.Path))
	assert.Equal(t, 9, a.Grid().Count(gridgraph.Visited), "explored cells stay visible")
}

func TestSearch_QuitAborts(t *testing.T) {
	rec := &recorder{}
	a, _ := newTestApp(t, WithNotifier(rec))
	click(a, gridgraph.Coord{Row: 0, Col: 0}, tcell.Button1)
	click(a, gridgraph.Coord{Row: 4, Col: 4}, tcell.Button1)

	// queued before Enter, seen by the first step hook
	a.events <- char('q')
	assert.False(t, a.HandleEvent(key(tcell.KeyEnter)))
	assert.Equal(t, msgAborted, a.Status())
	assert.Zero(t, rec.found+rec.notFound)
	assert.Equal(t, gridgraph.Start, a.Grid().At(gridgraph.Coord{Row: 0, Col: 0}))
	assert.Equal(t, gridgraph.Goal, a.Grid().At(gridgraph.Coord{Row: 4, Col: 4}))
}

func TestSearch_EditsDuringSearchDropped(t *testing.T) {
	a, _ := newTestApp(t)
	click(a, gridgraph.Coord{Row: 0, Col: 0}, tcell.Button1)
	click(a, gridgraph.Coord{Row: 4, Col: 4}, tcell.Button1)

	a.events <- tcell.NewEventMouse(2*2, 2, tcell.Button1, tcell.ModNone)
	a.HandleEvent(key(tcell.KeyEnter))
	assert.NotEqual(t, gridgraph.Obstacle, a.Grid().At(gridgraph.Coord{Row: 2, Col: 2}))
	assert.True(t, strings.HasPrefix(a.Status(), "path found"))
}

//----------------------------------------------------------------------------//
// snapshots
//----------------------------------------------------------------------------//

func TestSnapshot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	a, _ := newTestApp(t, WithSnapshotDir(dir))
	click(a, gridgraph.Coord{Row: 0, Col: 0}, tcell.Button1)

	a.HandleEvent(char('p'))
	want := filepath.Join(dir, "grid-001.png")
	assert.Equal(t, "saved "+want, a.Status())
	_, err := os.Stat(want)
	require.NoError(t, err)

	path, err := a.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "grid-002.png"), path)
}

func TestSnapshot_Disabled(t *testing.T) {
	a, _ := newTestApp(t)
	a.HandleEvent(char('p'))
	assert.Equal(t, msgNoSnapDir, a.Status())
}

//----------------------------------------------------------------------------//
// event loop
//----------------------------------------------------------------------------//

func runAsync(a *App, ctx context.Context) <-chan error {
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	return done
}

func TestRun_QuitKey(t *testing.T) {
	a, screen := newTestApp(t)
	done := runAsync(a, context.Background())
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after q")
	}
}

func TestRun_ContextCancel(t *testing.T) {
	a, _ := newTestApp(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := runAsync(a, ctx)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
