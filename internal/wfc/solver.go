package wfc

import (
	"math/rand"
	"sort"

	"github.com/samdwyer/delve/internal/world"
)

const unfilled = -1

// Solver fills a chunk-slot grid from a constraint table, one slot per
// Iteration call. It never backtracks: a contradiction flips Possible to
// false and the caller restarts with a fresh Solver.
type Solver struct {
	constraints []MapChunk
	chunkSize   int
	chunks      []int
	chunksX     int
	chunksY     int
	remaining   []slot
	// Possible stays true unless a slot's candidate set intersects empty.
	Possible bool
}

type slot struct {
	idx       int
	neighbors int
}

// NewSolver prepares a solver for a target grid. The chunk-slot grid is the
// target's dimensions floor-divided by chunkSize; every slot starts
// outstanding.
func NewSolver(constraints []MapChunk, chunkSize int, g *world.Grid) *Solver {
	chunksX := g.Width / chunkSize
	chunksY := g.Height / chunkSize

	s := &Solver{
		constraints: constraints,
		chunkSize:   chunkSize,
		chunks:      make([]int, chunksX*chunksY),
		chunksX:     chunksX,
		chunksY:     chunksY,
		remaining:   make([]slot, 0, chunksX*chunksY),
		Possible:    true,
	}
	for i := range s.chunks {
		s.chunks[i] = unfilled
		s.remaining = append(s.remaining, slot{idx: i})
	}
	return s
}

func (s *Solver) chunkIdx(x, y int) int {
	return y*s.chunksX + x
}

func (s *Solver) countFilledNeighbors(x, y int) int {
	n := 0
	if x > 0 && s.chunks[s.chunkIdx(x-1, y)] != unfilled {
		n++
	}
	if x < s.chunksX-1 && s.chunks[s.chunkIdx(x+1, y)] != unfilled {
		n++
	}
	if y > 0 && s.chunks[s.chunkIdx(x, y-1)] != unfilled {
		n++
	}
	if y < s.chunksY-1 && s.chunks[s.chunkIdx(x, y+1)] != unfilled {
		n++
	}
	return n
}

// Iteration advances exactly one slot and reports whether the solve is done,
// either because every slot is filled or because a contradiction was hit
// (check Possible). Outstanding slots are prioritized by filled-neighbor
// count so growth stays connected; the first slot of a run is uniform
// random.
func (s *Solver) Iteration(g *world.Grid, rng *rand.Rand) bool {
	if len(s.remaining) == 0 {
		return true
	}

	anyNeighbors := false
	for i := range s.remaining {
		x := s.remaining[i].idx % s.chunksX
		y := s.remaining[i].idx / s.chunksX
		n := s.countFilledNeighbors(x, y)
		s.remaining[i].neighbors = n
		if n > 0 {
			anyNeighbors = true
		}
	}
	sort.SliceStable(s.remaining, func(i, j int) bool {
		return s.remaining[i].neighbors > s.remaining[j].neighbors
	})

	pick := 0
	if !anyNeighbors {
		pick = rng.Intn(len(s.remaining))
	}
	chunkIdx := s.remaining[pick].idx
	s.remaining = append(s.remaining[:pick], s.remaining[pick+1:]...)

	x := chunkIdx % s.chunksX
	y := chunkIdx / s.chunksX

	// Each filled neighbor contributes the compatibility list for the side
	// of it that faces this slot.
	var options [][]int
	if x > 0 {
		if p := s.chunks[s.chunkIdx(x-1, y)]; p != unfilled {
			options = append(options, s.constraints[p].CompatibleWith[East])
		}
	}
	if x < s.chunksX-1 {
		if p := s.chunks[s.chunkIdx(x+1, y)]; p != unfilled {
			options = append(options, s.constraints[p].CompatibleWith[West])
		}
	}
	if y > 0 {
		if p := s.chunks[s.chunkIdx(x, y-1)]; p != unfilled {
			options = append(options, s.constraints[p].CompatibleWith[South])
		}
	}
	if y < s.chunksY-1 {
		if p := s.chunks[s.chunkIdx(x, y+1)]; p != unfilled {
			options = append(options, s.constraints[p].CompatibleWith[North])
		}
	}

	var chosen int
	if len(options) == 0 {
		chosen = rng.Intn(len(s.constraints))
	} else {
		candidates := intersect(options)
		if len(candidates) == 0 {
			s.Possible = false
			return true
		}
		chosen = candidates[rng.Intn(len(candidates))]
	}

	s.chunks[chunkIdx] = chosen
	s.stamp(g, chosen, x, y)
	return false
}

// stamp blits the chosen pattern into the grid at the slot's tile offset.
func (s *Solver) stamp(g *world.Grid, pattern, chunkX, chunkY int) {
	left := chunkX * s.chunkSize
	top := chunkY * s.chunkSize

	i := 0
	for y := top; y < top+s.chunkSize; y++ {
		for x := left; x < left+s.chunkSize; x++ {
			g.Tiles[g.Index(x, y)] = s.constraints[pattern].Pattern[i]
			i++
		}
	}
}

// PlacedPattern returns the pattern index filled into the chunk slot at
// (x, y), or -1 while the slot is outstanding.
func (s *Solver) PlacedPattern(x, y int) int {
	return s.chunks[s.chunkIdx(x, y)]
}

// Dimensions returns the chunk-slot grid size.
func (s *Solver) Dimensions() (int, int) {
	return s.chunksX, s.chunksY
}

// intersect returns the values present in every list, preserving the first
// list's order.
func intersect(lists [][]int) []int {
	if len(lists) == 1 {
		out := make([]int, len(lists[0]))
		copy(out, lists[0])
		return out
	}

	var out []int
	for _, candidate := range lists[0] {
		inAll := true
		for _, other := range lists[1:] {
			if !contains(other, candidate) {
				inAll = false
				break
			}
		}
		if inAll {
			out = append(out, candidate)
		}
	}
	return out
}

func contains(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
