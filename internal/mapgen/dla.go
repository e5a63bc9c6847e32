package mapgen

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/samdwyer/delve/internal/world"
)

// maxDLAWalkers caps digger releases, same role as the drunkard ceiling.
const maxDLAWalkers = 50000

// DLAAlgorithm selects how diffusion-limited-aggregation diggers move.
type DLAAlgorithm uint8

const (
	// DLAWalkInwards drops diggers on random tiles walking randomly until
	// they strike existing floor; the tile just before contact is painted.
	DLAWalkInwards DLAAlgorithm = iota
	// DLAWalkOutwards walks diggers out from the seed until they step off
	// the floor; the contact tile itself is painted.
	DLAWalkOutwards
	// DLACentralAttractor marches diggers along a straight line toward the
	// center until they strike floor.
	DLACentralAttractor
)

// DLABuilder grows organic blob caverns by accreting floor where random
// walkers first touch the existing open area.
type DLABuilder struct {
	baseBuilder
	name         string
	algorithm    DLAAlgorithm
	brushSize    int
	symmetry     Symmetry
	floorPercent float64
}

// NewDLA creates a fully-parameterized DLA builder.
func NewDLA(depth int, name string, algorithm DLAAlgorithm, brushSize int, symmetry Symmetry) *DLABuilder {
	return &DLABuilder{
		baseBuilder:  newBaseBuilder(depth, world.TileWall),
		name:         name,
		algorithm:    algorithm,
		brushSize:    brushSize,
		symmetry:     symmetry,
		floorPercent: 0.25,
	}
}

// NewDLAWalkInwards grows thin tendrils from the center.
func NewDLAWalkInwards(depth int) *DLABuilder {
	return NewDLA(depth, "dla-walk-inwards", DLAWalkInwards, 1, SymmetryNone)
}

// NewDLAWalkOutwards grows a broad central blob.
func NewDLAWalkOutwards(depth int) *DLABuilder {
	return NewDLA(depth, "dla-walk-outwards", DLAWalkOutwards, 2, SymmetryNone)
}

// NewDLACentralAttractor pulls accretion lines through the center.
func NewDLACentralAttractor(depth int) *DLABuilder {
	return NewDLA(depth, "dla-central-attractor", DLACentralAttractor, 2, SymmetryNone)
}

// NewDLAInsectoid mirrors central-attractor growth across the vertical
// axis, giving bilaterally symmetric caverns.
func NewDLAInsectoid(depth int) *DLABuilder {
	return NewDLA(depth, "dla-insectoid", DLACentralAttractor, 2, SymmetryHorizontal)
}

func (b *DLABuilder) Name() string { return b.name }

func (b *DLABuilder) Build(ctx context.Context, rng *rand.Rand) error {
	g := b.grid

	// Seed a plus-shaped blob at the center.
	b.start = world.Position{X: g.Width / 2, Y: g.Height / 2}
	seed := g.Index(b.start.X, b.start.Y)
	g.Tiles[seed] = world.TileFloor
	g.Tiles[seed-1] = world.TileFloor
	g.Tiles[seed+1] = world.TileFloor
	g.Tiles[seed-g.Width] = world.TileFloor
	g.Tiles[seed+g.Width] = world.TileFloor

	desired := int(b.floorPercent * float64(g.Width*g.Height))
	floorCount := g.CountFloor()
	walkers := 0

	for floorCount < desired {
		if walkers >= maxDLAWalkers {
			return fmt.Errorf("%w: %d DLA walkers at %d/%d floor tiles",
				ErrIterationBudget, walkers, floorCount, desired)
		}

		switch b.algorithm {
		case DLAWalkInwards:
			x, y := randomInteriorTile(g, rng)
			prevX, prevY := x, y
			for g.Tiles[g.Index(x, y)] == world.TileWall {
				prevX, prevY = x, y
				x, y = staggerStep(g, rng, x, y)
			}
			paint(g, b.symmetry, b.brushSize, prevX, prevY)

		case DLAWalkOutwards:
			x, y := b.start.X, b.start.Y
			for g.Tiles[g.Index(x, y)] == world.TileFloor {
				x, y = staggerStep(g, rng, x, y)
			}
			paint(g, b.symmetry, b.brushSize, x, y)

		case DLACentralAttractor:
			x, y := randomInteriorTile(g, rng)
			prevX, prevY := x, y
			path := bresenhamLine(x, y, b.start.X, b.start.Y)
			for g.Tiles[g.Index(x, y)] == world.TileWall && len(path) > 0 {
				prevX, prevY = x, y
				x, y = path[0].X, path[0].Y
				path = path[1:]
			}
			paint(g, b.symmetry, b.brushSize, prevX, prevY)
		}

		walkers++
		if walkers%50 == 0 {
			b.takeSnapshot()
		}
		floorCount = g.CountFloor()
	}

	return b.finishOpenLayout(rng)
}

func randomInteriorTile(g *world.Grid, rng *rand.Rand) (int, int) {
	return rng.Intn(g.Width-3) + 2, rng.Intn(g.Height-3) + 2
}

func staggerStep(g *world.Grid, rng *rand.Rand, x, y int) (int, int) {
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
	return x, y
}
