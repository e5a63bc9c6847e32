package mapgen

import (
	"context"
	"math/rand"

	"github.com/samdwyer/delve/internal/world"
)

const voronoiSeedCount = 64

// VoronoiMetric is the distance function used to assign tiles to seeds.
type VoronoiMetric uint8

const (
	// MetricPythagoras compares squared euclidean distances.
	MetricPythagoras VoronoiMetric = iota
	// MetricManhattan sums axis distances.
	MetricManhattan
	// MetricChebyshev takes the larger axis distance.
	MetricChebyshev
)

// VoronoiBuilder scatters seed points, assigns every tile to its nearest
// seed, and opens floor inside cell interiors: a tile is carved when fewer
// than two of its cardinal neighbors belong to a different cell, leaving
// cell borders as walls.
type VoronoiBuilder struct {
	baseBuilder
	name   string
	metric VoronoiMetric
}

// NewVoronoi creates a builder with an explicit metric.
func NewVoronoi(depth int, name string, metric VoronoiMetric) *VoronoiBuilder {
	return &VoronoiBuilder{
		baseBuilder: newBaseBuilder(depth, world.TileWall),
		name:        name,
		metric:      metric,
	}
}

// NewVoronoiPythagoras uses squared euclidean distance.
func NewVoronoiPythagoras(depth int) *VoronoiBuilder {
	return NewVoronoi(depth, "voronoi-pythagoras", MetricPythagoras)
}

// NewVoronoiManhattan uses manhattan distance, giving diamond-shaped cells.
func NewVoronoiManhattan(depth int) *VoronoiBuilder {
	return NewVoronoi(depth, "voronoi-manhattan", MetricManhattan)
}

// NewVoronoiChebyshev uses chebyshev distance, giving square-ish cells.
func NewVoronoiChebyshev(depth int) *VoronoiBuilder {
	return NewVoronoi(depth, "voronoi-chebyshev", MetricChebyshev)
}

func (b *VoronoiBuilder) Name() string { return b.name }

func (b *VoronoiBuilder) Build(ctx context.Context, rng *rand.Rand) error {
	g := b.grid

	seeds := make([]world.Position, 0, voronoiSeedCount)
	taken := make(map[int]bool, voronoiSeedCount)
	for len(seeds) < voronoiSeedCount {
		p := world.Position{X: rng.Intn(g.Width-2) + 1, Y: rng.Intn(g.Height-2) + 1}
		idx := g.Index(p.X, p.Y)
		if taken[idx] {
			continue
		}
		taken[idx] = true
		seeds = append(seeds, p)
	}

	membership := make([]int, len(g.Tiles))
	for i := range membership {
		x, y := g.Coords(i)
		best := 0
		bestDist := b.distance(x, y, seeds[0])
		for s := 1; s < len(seeds); s++ {
			if d := b.distance(x, y, seeds[s]); d < bestDist {
				best = s
				bestDist = d
			}
		}
		membership[i] = best
	}

	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			idx := g.Index(x, y)
			mine := membership[idx]

			foreign := 0
			if membership[g.Index(x-1, y)] != mine {
				foreign++
			}
			if membership[g.Index(x+1, y)] != mine {
				foreign++
			}
			if membership[g.Index(x, y-1)] != mine {
				foreign++
			}
			if membership[g.Index(x, y+1)] != mine {
				foreign++
			}

			if foreign < 2 {
				g.Tiles[idx] = world.TileFloor
			}
		}
		b.takeSnapshot()
	}

	if err := b.startWalkingLeft(); err != nil {
		return err
	}
	return b.finishOpenLayout(rng)
}

func (b *VoronoiBuilder) distance(x, y int, seed world.Position) int {
	dx := abs(x - seed.X)
	dy := abs(y - seed.Y)

	switch b.metric {
	case MetricManhattan:
		return dx + dy
	case MetricChebyshev:
		return max(dx, dy)
	default:
		return dx*dx + dy*dy
	}
}
