// Package render turns a gridgraph.Grid into pixels or terminal cells.
//
// What
//
//   - Palette: Status → RGB color. Color is never stored on the grid; it is
//     derived here at draw time.
//   - Terminal: draws the grid, the path overlay and an instructions/status
//     panel onto a tcell.Screen, and maps screen cells back to grid coordinates.
//   - Segments: the smoothed path overlay, one segment per interior route cell
//     from its center to the midpoint of its two route neighbors.
//   - Snapshot / WritePNG / SavePNG: raster export of the same picture through
//     github.com/fogleman/gg.
//
// Coordinates
//
//	Row is the vertical axis and Col the horizontal one everywhere in this
//	package. Overlay geometry is expressed in cell units, (Col+0.5, Row+0.5)
//	being the center of a cell; callers scale it to pixels or columns.
//
// Errors
//
//   - ErrNilGrid from the snapshot functions.
//   - I/O errors from WritePNG and SavePNG are returned unwrapped.
package render
