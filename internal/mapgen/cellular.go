package mapgen

import (
	"context"
	"math/rand"

	"github.com/samdwyer/delve/internal/world"
)

const (
	cellularFloorChance = 55 // percent of interior tiles seeded as floor
	cellularPasses      = 15
)

// CellularAutomataBuilder seeds the interior with random noise and smooths
// it with repeated 8-neighbor majority passes, yielding natural caverns.
// Disconnected pockets are pruned afterwards.
type CellularAutomataBuilder struct {
	baseBuilder
}

// NewCellularAutomata creates the builder for the given depth.
func NewCellularAutomata(depth int) *CellularAutomataBuilder {
	return &CellularAutomataBuilder{baseBuilder: newBaseBuilder(depth, world.TileWall)}
}

func (b *CellularAutomataBuilder) Name() string { return "cellular-automata" }

func (b *CellularAutomataBuilder) Build(ctx context.Context, rng *rand.Rand) error {
	g := b.grid

	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			if rng.Intn(100)+1 > 100-cellularFloorChance {
				g.Tiles[g.Index(x, y)] = world.TileFloor
			} else {
				g.Tiles[g.Index(x, y)] = world.TileWall
			}
		}
	}
	b.takeSnapshot()

	for pass := 0; pass < cellularPasses; pass++ {
		next := make([]world.Tile, len(g.Tiles))
		copy(next, g.Tiles)

		for y := 1; y < g.Height-1; y++ {
			for x := 1; x < g.Width-1; x++ {
				idx := g.Index(x, y)
				walls := 0
				for _, n := range [8]int{
					idx - 1, idx + 1,
					idx - g.Width, idx + g.Width,
					idx - g.Width - 1, idx - g.Width + 1,
					idx + g.Width - 1, idx + g.Width + 1,
				} {
					if g.Tiles[n] == world.TileWall {
						walls++
					}
				}

				if walls > 4 || walls == 0 {
					next[idx] = world.TileWall
				} else {
					next[idx] = world.TileFloor
				}
			}
		}

		g.Tiles = next
		b.takeSnapshot()
	}

	if err := b.startWalkingLeft(); err != nil {
		return err
	}
	return b.finishOpenLayout(rng)
}
