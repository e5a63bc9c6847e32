package mapgen

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/samdwyer/delve/internal/world"
)

// maxDiggers is the hard ceiling on walker releases. Reaching it means the
// floor-fraction target is unattainable with the configured lifetime.
const maxDiggers = 20000

// DrunkSpawnMode controls where each new walker starts.
type DrunkSpawnMode uint8

const (
	// DrunkSpawnStart releases every walker from the map center.
	DrunkSpawnStart DrunkSpawnMode = iota
	// DrunkSpawnRandom releases walkers from random tiles after the first.
	DrunkSpawnRandom
)

// DrunkardSettings tune a drunkard-walk variant.
type DrunkardSettings struct {
	SpawnMode    DrunkSpawnMode
	Lifetime     int
	FloorPercent float64
}

// DrunkardWalkBuilder carves winding caves by releasing bounded-lifetime
// random walkers that turn wall into floor until enough of the map is open.
type DrunkardWalkBuilder struct {
	baseBuilder
	name     string
	settings DrunkardSettings
}

// NewDrunkardWalk creates a builder with explicit settings.
func NewDrunkardWalk(depth int, name string, settings DrunkardSettings) *DrunkardWalkBuilder {
	return &DrunkardWalkBuilder{
		baseBuilder: newBaseBuilder(depth, world.TileWall),
		name:        name,
		settings:    settings,
	}
}

// NewDrunkardOpenArea carves a wide-open cave from the center.
func NewDrunkardOpenArea(depth int) *DrunkardWalkBuilder {
	return NewDrunkardWalk(depth, "drunkard-open-area", DrunkardSettings{
		SpawnMode:    DrunkSpawnStart,
		Lifetime:     400,
		FloorPercent: 0.5,
	})
}

// NewDrunkardOpenHalls carves broad halls from scattered origins.
func NewDrunkardOpenHalls(depth int) *DrunkardWalkBuilder {
	return NewDrunkardWalk(depth, "drunkard-open-halls", DrunkardSettings{
		SpawnMode:    DrunkSpawnRandom,
		Lifetime:     400,
		FloorPercent: 0.5,
	})
}

// NewDrunkardWindingPassages carves tight winding passages.
func NewDrunkardWindingPassages(depth int) *DrunkardWalkBuilder {
	return NewDrunkardWalk(depth, "drunkard-winding-passages", DrunkardSettings{
		SpawnMode:    DrunkSpawnStart,
		Lifetime:     100,
		FloorPercent: 0.4,
	})
}

func (b *DrunkardWalkBuilder) Name() string { return b.name }

func (b *DrunkardWalkBuilder) Build(ctx context.Context, rng *rand.Rand) error {
	g := b.grid

	b.start = world.Position{X: g.Width / 2, Y: g.Height / 2}
	g.Tiles[g.Index(b.start.X, b.start.Y)] = world.TileFloor

	desired := int(b.settings.FloorPercent * float64(g.Width*g.Height))
	floorCount := g.CountFloor()
	diggers := 0

	for floorCount < desired {
		if diggers >= maxDiggers {
			return fmt.Errorf("%w: %d walkers at %d/%d floor tiles",
				ErrIterationBudget, diggers, floorCount, desired)
		}

		x, y := b.start.X, b.start.Y
		if b.settings.SpawnMode == DrunkSpawnRandom && diggers > 0 {
			x = rng.Intn(g.Width-3) + 2
			y = rng.Intn(g.Height-3) + 2
		}

		carved := false
		for life := b.settings.Lifetime; life > 0; life-- {
			idx := g.Index(x, y)
			if g.Tiles[idx] == world.TileWall {
				g.Tiles[idx] = world.TilePlaceholder
				carved = true
			}

			switch rng.Intn(4) {
			case 0:
				if x > 2 {
					x--
				}
			case 1:
				if x < g.Width-2 {
					x++
				}
			case 2:
				if y > 2 {
					y--
				}
			default:
				if y < g.Height-2 {
					y++
				}
			}
		}

		if carved {
			b.takeSnapshot()
			for i, t := range g.Tiles {
				if t == world.TilePlaceholder {
					g.Tiles[i] = world.TileFloor
				}
			}
		}

		diggers++
		floorCount = g.CountFloor()
	}

	return b.finishOpenLayout(rng)
}
