package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Base colors. The status palette and the fixed roles below are built from them.
var (
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black  = color.RGBA{A: 255}
	Green  = color.RGBA{G: 255, A: 255}
	Red    = color.RGBA{R: 255, A: 255}
	Blue   = color.RGBA{B: 255, A: 255}
	Yellow = color.RGBA{R: 255, G: 255, A: 255}
	Grey   = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	Purple = color.RGBA{R: 128, B: 128, A: 255}
)

// Fixed roles outside the status palette.
var (
	GridLine = Black
	Overlay  = Red
	Panel    = Grey
)

// palette is indexed by gridgraph.Status.
var palette = [...]color.RGBA{
	gridgraph.Free:     White,
	gridgraph.Start:    Green,
	gridgraph.Goal:     Red,
	gridgraph.Obstacle: Black,
	gridgraph.Frontier: Blue,
	gridgraph.Visited:  Yellow,
	gridgraph.Path:     Purple,
}

// Color returns the display color of s. Unknown tags render as Free.
func Color(s gridgraph.Status) color.RGBA {
	if int(s) >= len(palette) {
		return palette[gridgraph.Free]
	}

	return palette[s]
}

// TermColor converts an RGBA palette entry to a true-color tcell.Color.
func TermColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// CellStyle is the tcell style of a grid cell: status background, grid-line foreground.
func CellStyle(s gridgraph.Status) tcell.Style {
	return tcell.StyleDefault.
		Background(TermColor(Color(s))).
		Foreground(TermColor(GridLine))
}
