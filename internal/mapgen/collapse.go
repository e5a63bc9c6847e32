package mapgen

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/cenkalti/backoff/v5"

	"github.com/samdwyer/delve/internal/wfc"
	"github.com/samdwyer/delve/internal/world"
)

const (
	collapseChunkSize = 8
	// solveRetryBudget bounds full solver restarts per build. The solver
	// never backtracks, so contradictions are expected occasionally; a
	// budget this size makes a genuinely unsatisfiable table fail loudly
	// instead of spinning forever.
	solveRetryBudget = 50
)

var errSolveContradiction = errors.New("solver hit a contradiction")

// CollapseBuilder re-derives another builder's finished layout through wave
// function collapse: the source grid is chopped into chunk patterns and a
// fresh grid is solved from their adjacency constraints. The result keeps
// the source's texture but none of its geometry.
type CollapseBuilder struct {
	baseBuilder
	source Builder
}

// NewCollapse wraps an unbuilt source builder.
func NewCollapse(depth int, source Builder) *CollapseBuilder {
	return &CollapseBuilder{
		baseBuilder: newBaseBuilder(depth, world.TileWall),
		source:      source,
	}
}

func (b *CollapseBuilder) Name() string { return "wfc/" + b.source.Name() }

func (b *CollapseBuilder) Build(ctx context.Context, rng *rand.Rand) error {
	if err := b.source.Build(ctx, rng); err != nil {
		return fmt.Errorf("building collapse source: %w", err)
	}

	src := b.source.Map()
	// The source's stairs are just another floor tile for pattern purposes.
	for i, t := range src.Tiles {
		if t == world.TileStairsDown {
			src.Tiles[i] = world.TileFloor
		}
	}

	patterns := wfc.BuildPatterns(src, collapseChunkSize, true, true)
	constraints := wfc.PatternsToConstraints(patterns, collapseChunkSize)

	solve := func() (struct{}, error) {
		fresh := world.NewGrid(b.grid.Width, b.grid.Height, b.depth, world.TileWall)
		solver := wfc.NewSolver(constraints, collapseChunkSize, fresh)
		for !solver.Iteration(fresh, rng) {
			if b.snapshot != nil {
				b.grid = fresh
				b.takeSnapshot()
			}
		}
		if !solver.Possible {
			return struct{}{}, errSolveContradiction
		}
		b.grid = fresh
		return struct{}{}, nil
	}

	if _, err := backoff.Retry(ctx, solve,
		backoff.WithBackOff(&backoff.ZeroBackOff{}),
		backoff.WithMaxTries(solveRetryBudget),
	); err != nil {
		return fmt.Errorf("%w: %d attempts on %q", ErrContradiction, solveRetryBudget, b.source.Name())
	}
	b.takeSnapshot()

	if err := b.startWalkingLeft(); err != nil {
		return err
	}
	return b.finishOpenLayout(rng)
}
