package render

import (
	"errors"
	"image"
	"io"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// DefaultCellPx is the pixel side of one cell in snapshots (800px for a 50×50 grid).
const DefaultCellPx = 16

// overlayWidth is the stroke width of the route overlay in pixels.
const overlayWidth = 3

// ErrNilGrid is returned when a snapshot is requested for a nil grid.
var ErrNilGrid = errors.New("render: grid is nil")

// Snapshot rasterizes g: status-colored cells, black grid lines and the
// smoothed route overlay. cellPx < 1 falls back to DefaultCellPx.
func Snapshot(g *gridgraph.Grid, route []gridgraph.Coord, cellPx int) (image.Image, error) {
	dc, err := paint(g, route, cellPx)
	if err != nil {
		return nil, err
	}

	return dc.Image(), nil
}

// WritePNG encodes the snapshot of g to w.
func WritePNG(w io.Writer, g *gridgraph.Grid, route []gridgraph.Coord, cellPx int) error {
	dc, err := paint(g, route, cellPx)
	if err != nil {
		return err
	}

	return dc.EncodePNG(w)
}

// SavePNG writes the snapshot of g to the file at path.
func SavePNG(path string, g *gridgraph.Grid, route []gridgraph.Coord, cellPx int) error {
	dc, err := paint(g, route, cellPx)
	if err != nil {
		return err
	}

	return dc.SavePNG(path)
}

// paint draws in three passes: cells, grid lines, overlay.
func paint(g *gridgraph.Grid, route []gridgraph.Coord, cellPx int) (*gg.Context, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if cellPx < 1 {
		cellPx = DefaultCellPx
	}
	px := float64(cellPx)
	side := g.Size() * cellPx
	dc := gg.NewContext(side, side)

	dc.SetColor(Color(gridgraph.Free))
	dc.Clear()
	g.Each(func(c gridgraph.Coord, s gridgraph.Status) {
		if s == gridgraph.Free {
			return
		}
		dc.DrawRectangle(float64(c.Col)*px, float64(c.Row)*px, px, px)
		dc.SetColor(Color(s))
		dc.Fill()
	})

	dc.SetColor(GridLine)
	dc.SetLineWidth(1)
	for i := 0; i < g.Size(); i++ {
		v := float64(i) * px
		dc.DrawLine(0, v, float64(side), v)
		dc.DrawLine(v, 0, v, float64(side))
	}
	dc.Stroke()

	segs := Segments(route)
	if len(segs) > 0 {
		dc.SetColor(Overlay)
		dc.SetLineWidth(overlayWidth)
		for _, s := range segs {
			dc.DrawLine(s.From.X*px, s.From.Y*px, s.To.X*px, s.To.Y*px)
		}
		dc.Stroke()
	}

	return dc, nil
}
