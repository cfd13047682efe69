// Command astarviz is an interactive A* pathfinding visualizer for the terminal.
//
// Paint a start, a goal and walls with the mouse, press Enter and watch the
// search expand frame by frame.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/audio"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/render"
	"github.com/katalvlaran/gridpath/viz"
)

var (
	sizeFlag      = flag.Int("size", gridgraph.DefaultSize, "Grid side N (N×N cells)")
	cellFlag      = flag.Int("cell", viz.DefaultCellWidth, "Terminal columns per grid cell")
	delayFlag     = flag.Duration("delay", viz.DefaultStepDelay, "Pause after every search step")
	soundFlag     = flag.Bool("sound", false, "Play a tone when a search finishes")
	debugFlag     = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
	snapshotsFlag = flag.String("snapshots", "", "Directory for PNG snapshots taken with 'p'")
	snapPxFlag    = flag.Int("snapshot-px", render.DefaultCellPx, "Pixel size of one cell in snapshots")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "astarviz: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: put the terminal back before printing the stack
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nastarviz crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	opts := flagOptions()
	if *soundFlag {
		player := audio.NewPlayer()
		if err := player.Init(); err != nil {
			// Non-fatal, the visualizer runs silently
			log.Printf("audio initialization failed: %v", err)
		} else {
			defer player.Close()
			opts = append(opts, viz.WithNotifier(player))
		}
	}

	app := viz.New(screen, opts...)
	cfg := app.Config()
	w, h := screen.Size()
	needW, needH := render.NewTerminal(screen, cfg.CellWidth).Extent(cfg.Size)
	if w < needW || h < needH {
		log.Printf("terminal %dx%d is smaller than the %dx%d needed; cells past the edge are hidden", w, h, needW, needH)
	}
	log.Printf("starting: %d×%d grid, %d col/cell, step delay %v", cfg.Size, cfg.Size, cfg.CellWidth, cfg.StepDelay)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	log.Printf("exiting")

	return nil
}

// flagOptions maps the parsed command line onto viz options.
func flagOptions() []viz.Option {
	return []viz.Option{
		viz.WithSize(*sizeFlag),
		viz.WithCellWidth(*cellFlag),
		viz.WithStepDelay(*delayFlag),
		viz.WithSnapshotDir(*snapshotsFlag),
		viz.WithSnapshotCellPx(*snapPxFlag),
	}
}
