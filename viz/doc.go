// Package viz is the interactive shell around the pathfinding core.
//
// An App owns a tcell.Screen, the grid and its Painter. Mouse input edits the
// grid, Enter runs one A* search with an animated step hook, and the result is
// left on screen until the next edit or search.
//
// Concurrency
//
//	Run starts one goroutine that only forwards tcell events into a channel.
//	The grid is read and written exclusively from the goroutine calling Run
//	(or HandleEvent). During a search the step hook drains that channel, so a
//	quit request cancels the search context and the search stops at its next
//	iteration.
//
// Keys
//
//	Enter      search
//	c          clear the grid
//	p          save a PNG snapshot (requires WithSnapshotDir)
//	q Esc ^C   quit
package viz
