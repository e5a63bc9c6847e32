package mapgen

import (
	"math/rand"
	"sort"

	"github.com/samdwyer/delve/internal/pathing"
	"github.com/samdwyer/delve/internal/region"
	"github.com/samdwyer/delve/internal/spawn"
	"github.com/samdwyer/delve/internal/world"
)

// baseBuilder carries the state every strategy shares: the in-progress grid,
// the chosen start, and either spawn regions or rooms for entity placement.
type baseBuilder struct {
	grid     *world.Grid
	start    world.Position
	depth    int
	areas    region.Map
	rooms    []world.Rect
	snapshot SnapshotFunc
}

func newBaseBuilder(depth int, fill world.Tile) baseBuilder {
	return baseBuilder{
		grid:  world.NewGrid(world.DefaultWidth, world.DefaultHeight, depth, fill),
		depth: depth,
	}
}

// Map returns an independent snapshot of the builder's grid. Callers can
// never mutate build progress through it.
func (b *baseBuilder) Map() *world.Grid {
	return b.grid.Clone()
}

func (b *baseBuilder) StartingPosition() world.Position {
	return b.start
}

func (b *baseBuilder) SetSnapshotFunc(fn SnapshotFunc) {
	b.snapshot = fn
}

func (b *baseBuilder) takeSnapshot() {
	if b.snapshot == nil {
		return
	}
	snap := b.grid.Clone()
	for i := range snap.Revealed {
		snap.Revealed[i] = true
		snap.Visible[i] = true
	}
	b.snapshot(snap)
}

// Spawn hands spawn areas to the collaborator: per noise region when the
// strategy partitioned one, else per room, skipping the start room. Region
// ids are visited in sorted order so a seeded run spawns identically.
func (b *baseBuilder) Spawn(rng *rand.Rand, sp spawn.Spawner) {
	if len(b.areas) > 0 {
		ids := make([]int, 0, len(b.areas))
		for id := range b.areas {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		for _, id := range ids {
			spawn.Region(rng, sp, b.grid, b.areas[id], b.depth)
		}
		return
	}

	for i, room := range b.rooms {
		if i == 0 {
			continue
		}
		spawn.Room(rng, sp, b.grid, room, b.depth)
	}
}

// finishOpenLayout is the shared post-pass for cavern-style strategies:
// prune floor unreachable from the start, drop the stairs on the farthest
// tile, and partition the survivors into spawn regions.
func (b *baseBuilder) finishOpenLayout(rng *rand.Rand) error {
	startIdx := b.grid.Index(b.start.X, b.start.Y)

	exitIdx, err := pathing.PruneAndFindExit(b.grid, startIdx)
	if err != nil {
		return err
	}
	b.takeSnapshot()

	b.grid.Tiles[exitIdx] = world.TileStairsDown
	b.takeSnapshot()

	b.areas = region.Partition(b.grid, rng)
	b.grid.PopulateBlocked()
	return nil
}

// startWalkingLeft sets the start to the first floor tile at or left of the
// map center, the convention cavern strategies share.
func (b *baseBuilder) startWalkingLeft() error {
	b.start = world.Position{X: b.grid.Width / 2, Y: b.grid.Height / 2}
	for b.grid.Tiles[b.grid.Index(b.start.X, b.start.Y)] != world.TileFloor {
		b.start.X--
		if b.start.X < 1 {
			return ErrNoStartTile
		}
	}
	return nil
}

// placeStairsAt marks the exit for room-based strategies, which guarantee
// connectivity by construction.
func (b *baseBuilder) placeStairsAt(p world.Position) {
	b.grid.Tiles[b.grid.Index(p.X, p.Y)] = world.TileStairsDown
	b.grid.PopulateBlocked()
}
