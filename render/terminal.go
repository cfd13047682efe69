package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Instructions is the first panel line under the grid.
const Instructions = "L-click: start/goal/wall  R-click: erase  Enter: search  c: clear  p: snapshot  q: quit"

// PanelRows is the number of terminal rows drawn under the grid.
const PanelRows = 2

// gridLineRune draws the right edge of a cell.
const gridLineRune = '▕'

// Terminal draws a grid onto a tcell.Screen. Each grid cell occupies
// cellWidth columns on one row; the rightmost column carries the vertical
// grid line and every cell is underlined to form the horizontal ones.
type Terminal struct {
	screen    tcell.Screen
	cellWidth int
}

// NewTerminal binds a renderer to screen. cellWidth < 1 is raised to 1.
func NewTerminal(screen tcell.Screen, cellWidth int) *Terminal {
	if cellWidth < 1 {
		cellWidth = 1
	}

	return &Terminal{screen: screen, cellWidth: cellWidth}
}

// CellWidth returns the number of columns per grid cell.
func (t *Terminal) CellWidth() int {
	return t.cellWidth
}

// Extent returns the screen area, in columns and rows, needed for an n×n grid
// including the panel.
func (t *Terminal) Extent(n int) (w, h int) {
	return n * t.cellWidth, n + PanelRows
}

// CoordAt maps a screen cell to the grid coordinate under it. The result may be
// out of bounds (panel rows, columns past the grid); callers check InBounds.
func (t *Terminal) CoordAt(x, y int) gridgraph.Coord {
	return gridgraph.CoordinateFromPixel(x, y, t.cellWidth, 1)
}

// Draw repaints the whole frame: every cell, the route overlay (start→goal,
// endpoints included; nil for none) and the two panel lines.
func (t *Terminal) Draw(g *gridgraph.Grid, route []gridgraph.Coord, status string) {
	t.screen.Clear()

	g.Each(func(c gridgraph.Coord, s gridgraph.Status) {
		t.drawCell(c, s, 0)
	})

	// Endpoints keep their own color; only the interior gets glyphs.
	for i := 1; i < len(route)-1; i++ {
		c := route[i]
		t.drawCell(c, g.At(c), Glyph(route, i))
	}

	n := g.Size()
	t.drawText(0, n, Instructions, tcell.StyleDefault.Foreground(TermColor(White)).Background(TermColor(Panel)))
	t.drawText(0, n+1, status, tcell.StyleDefault)
}

// Show flushes pending changes to the terminal.
func (t *Terminal) Show() {
	t.screen.Show()
}

// drawCell fills the columns of c. A non-zero glyph is drawn in the cell's
// middle column in the overlay color.
func (t *Terminal) drawCell(c gridgraph.Coord, s gridgraph.Status, glyph rune) {
	style := CellStyle(s).Underline(true)
	x0 := c.Col * t.cellWidth
	for dx := 0; dx < t.cellWidth; dx++ {
		r := ' '
		if dx == t.cellWidth-1 && t.cellWidth > 1 {
			r = gridLineRune
		}
		t.screen.SetContent(x0+dx, c.Row, r, nil, style)
	}
	if glyph != 0 {
		mid := (t.cellWidth - 1) / 2
		t.screen.SetContent(x0+mid, c.Row, glyph, nil, style.Foreground(TermColor(Overlay)))
	}
}

// drawText writes s from (x, y), clipped to the screen width.
func (t *Terminal) drawText(x, y int, s string, style tcell.Style) {
	w, _ := t.screen.Size()
	for _, r := range s {
		if x >= w {
			return
		}
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
