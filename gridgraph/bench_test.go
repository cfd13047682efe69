package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// BenchmarkRefreshNeighbors measures freezing adjacency on a 200×200 grid
// with roughly 25% obstacles.
func BenchmarkRefreshNeighbors(b *testing.B) {
	const n = 200
	r := rand.New(rand.NewSource(42))
	g := gridgraph.New(n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if r.Intn(4) == 0 {
				_ = g.SetStatus(gridgraph.Coord{Row: row, Col: col}, gridgraph.Obstacle)
			}
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.RefreshNeighbors()
	}
}

// BenchmarkNeighborsOf measures a single fresh neighbor computation.
func BenchmarkNeighborsOf(b *testing.B) {
	g := gridgraph.New(gridgraph.DefaultSize)
	c := gridgraph.Coord{Row: 25, Col: 25}
	for i := 0; i < b.N; i++ {
		_ = g.NeighborsOf(c)
	}
}
