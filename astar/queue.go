package astar

import "github.com/katalvlaran/gridpath/gridgraph"

// frontierItem is one entry of the open set.
// seq is assigned once, when the cell enters the frontier, and never changes.
type frontierItem struct {
	cell  gridgraph.Coord
	f     float64
	seq   int
	index int // position in the heap, maintained by Swap/Push/Pop
}

// frontier is a min-heap ordered by (f, seq): lower f first, and among equal f
// the earlier insertion wins. The sequence number is what makes expansion order
// reproducible regardless of how cells with equal cost are stored.
type frontier []*frontierItem

// Len returns the number of items in the heap.
func (q frontier) Len() int { return len(q) }

// Less compares the composite key (f, seq).
func (q frontier) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}

	return q[i].seq < q[j].seq
}

// Swap swaps two elements and keeps their index fields current.
func (q frontier) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

// Push adds x onto the heap. Called by heap.Push; x must be *frontierItem.
func (q *frontier) Push(x interface{}) {
	item := x.(*frontierItem)
	item.index = len(*q)
	*q = append(*q, item)
}

// Pop removes the last element. Called by heap.Pop.
func (q *frontier) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*q = old[:n-1]

	return item
}
