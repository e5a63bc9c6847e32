// Package pathing computes weighted reachability over a tile grid. It drives
// the pruning step every cavern-style generator runs before placing the exit:
// floor tiles that cannot be walked to from the start are sealed off, and the
// farthest reachable floor tile becomes the stairs.
package pathing

import (
	"container/heap"
	"math"

	"github.com/samdwyer/delve/internal/world"
)

const (
	// MaxCost caps accumulated path cost; tiles beyond it are treated as
	// unreachable. Generous for an 80x43 map.
	MaxCost = 200.0

	cardinalCost = 1.0
)

var diagonalCost = math.Sqrt2

// Unreachable is the sentinel distance for tiles with no path from the start.
func Unreachable() float64 {
	return math.Inf(1)
}

// DistanceField computes single-source shortest-path distances from startIdx
// over the 8-directional tile graph. Cardinal steps cost 1.0 and diagonal
// steps cost sqrt(2); exploration stops past MaxCost. Unreached tiles hold
// +Inf. The grid's Blocked array must be current (PopulateBlocked).
func DistanceField(g *world.Grid, startIdx int) []float64 {
	dist := make([]float64, len(g.Tiles))
	for i := range dist {
		dist[i] = Unreachable()
	}
	dist[startIdx] = 0

	pq := &costHeap{{idx: startIdx, cost: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(costEntry)
		// Lazy decrease-key: skip stale entries.
		if cur.cost > dist[cur.idx] {
			continue
		}
		if cur.cost > MaxCost {
			continue
		}

		x, y := g.Coords(cur.idx)
		for _, n := range neighbors(g, x, y) {
			next := cur.cost + n.cost
			if next < dist[n.idx] && next <= MaxCost {
				dist[n.idx] = next
				heap.Push(pq, costEntry{idx: n.idx, cost: next})
			}
		}
	}

	return dist
}

type costEntry struct {
	idx  int
	cost float64
}

type costHeap []costEntry

func (h costHeap) Len() int            { return len(h) }
func (h costHeap) Less(i, j int) bool  { return h[i].cost < h[j].cost }
func (h costHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *costHeap) Push(x interface{}) { *h = append(*h, x.(costEntry)) }
func (h *costHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

func neighbors(g *world.Grid, x, y int) []costEntry {
	out := make([]costEntry, 0, 8)

	add := func(nx, ny int, cost float64) {
		if g.IsWalkable(nx, ny) {
			out = append(out, costEntry{idx: g.Index(nx, ny), cost: cost})
		}
	}

	add(x-1, y, cardinalCost)
	add(x+1, y, cardinalCost)
	add(x, y-1, cardinalCost)
	add(x, y+1, cardinalCost)

	add(x-1, y-1, diagonalCost)
	add(x+1, y-1, diagonalCost)
	add(x-1, y+1, diagonalCost)
	add(x+1, y+1, diagonalCost)

	return out
}
