package mapgen

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/delve/internal/spawn"
	"github.com/samdwyer/delve/internal/telemetry"
	"github.com/samdwyer/delve/internal/world"
)

const (
	// buildAttempts bounds how many strategies Generate will try before
	// giving up. Open-layout strategies can legitimately fail (a cellular
	// pass with no floor, a contradicted collapse) and a fresh roll almost
	// always succeeds.
	buildAttempts = 5
	// One build in three re-derives its layout through wave function
	// collapse instead of using the strategy's output directly.
	collapseChance = 3
)

// Options control a single level generation.
type Options struct {
	Depth int
	// Strategy forces a named strategy. When empty a strategy is picked at
	// random and may additionally be wrapped in a collapse pass.
	Strategy string
	// Snapshot, when set, receives a copy of the working grid after each
	// visible generation step.
	Snapshot SnapshotFunc
	// Spawner receives entity placements for the finished level. Nil skips
	// spawning.
	Spawner spawn.Spawner
}

// Result is a finished level.
type Result struct {
	ID       string
	Strategy string
	Grid     *world.Grid
	Start    world.Position
}

// Generate builds one level, retrying with fresh strategies on failure.
func Generate(ctx context.Context, rng *rand.Rand, opts Options) (*Result, error) {
	tracer := telemetry.Tracer("mapgen")
	ctx, span := tracer.Start(ctx, "mapgen.generate")
	defer span.End()

	id := uuid.NewString()
	span.SetAttributes(
		attribute.String("map.id", id),
		attribute.Int("map.depth", opts.Depth),
	)

	var lastErr error
	for attempt := 0; attempt < buildAttempts; attempt++ {
		name := opts.Strategy
		if name == "" {
			name = randomStrategy(rng)
		}
		builder, err := NewStrategy(name, opts.Depth)
		if err != nil {
			return nil, err
		}
		if opts.Strategy == "" && rng.Intn(collapseChance) == 0 {
			builder = NewCollapse(opts.Depth, builder)
		}
		if opts.Snapshot != nil {
			builder.SetSnapshotFunc(opts.Snapshot)
		}

		if err := builder.Build(ctx, rng); err != nil {
			lastErr = err
			span.SetAttributes(attribute.Int("map.retries", attempt+1))
			continue
		}
		if opts.Spawner != nil {
			builder.Spawn(rng, opts.Spawner)
		}

		grid := builder.Map()
		span.SetAttributes(
			attribute.String("map.strategy", builder.Name()),
			attribute.Int("map.floor_tiles", grid.CountFloor()),
		)
		return &Result{
			ID:       id,
			Strategy: builder.Name(),
			Grid:     grid,
			Start:    builder.StartingPosition(),
		}, nil
	}

	span.SetAttributes(attribute.Bool("failed", true))
	return nil, fmt.Errorf("generating level at depth %d: %w", opts.Depth, lastErr)
}
