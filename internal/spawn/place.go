package spawn

import (
	"math/rand"

	"github.com/samdwyer/delve/internal/world"
)

// maxSpawnsPerArea bounds how crowded a single region can get before the
// depth bonus.
const maxSpawnsPerArea = 4

// Region places entities on a spawn region's floor tiles. The spawn count is
// 1d(maxSpawnsPerArea+3) + depth - 4, clamped to the region size; tiles are
// drawn without replacement so nothing stacks.
func Region(rng *rand.Rand, sp Spawner, g *world.Grid, tiles []int, depth int) {
	if len(tiles) == 0 {
		return
	}
	table := DepthTable(depth)

	num := rng.Intn(maxSpawnsPerArea+3) + 1 + depth - 4
	if num > len(tiles) {
		num = len(tiles)
	}
	if num <= 0 {
		return
	}

	candidates := make([]int, len(tiles))
	copy(candidates, tiles)

	for i := 0; i < num; i++ {
		pick := 0
		if len(candidates) > 1 {
			pick = rng.Intn(len(candidates))
		}
		idx := candidates[pick]
		candidates = append(candidates[:pick], candidates[pick+1:]...)

		kind := table.Roll(rng)
		if kind == "" {
			continue
		}
		x, y := g.Coords(idx)
		sp.Spawn(kind, x, y)
	}
}

// Room places entities inside a room rect, treating its interior floor tiles
// as one region.
func Room(rng *rand.Rand, sp Spawner, g *world.Grid, room world.Rect, depth int) {
	var targets []int
	for y := room.Y1 + 1; y < room.Y2; y++ {
		for x := room.X1 + 1; x < room.X2; x++ {
			idx := g.Index(x, y)
			if g.Tiles[idx] == world.TileFloor {
				targets = append(targets, idx)
			}
		}
	}
	Region(rng, sp, g, targets, depth)
}
