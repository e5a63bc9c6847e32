// Package mapgen builds dungeon levels. Each strategy owns a fresh grid,
// carves it with one generation algorithm, guarantees a reachable start and
// a single exit, and records where entities may spawn. The orchestrator in
// Generate picks a strategy at random per descent and sometimes re-derives
// its layout through wave function collapse.
package mapgen

import (
	"context"
	"math/rand"

	"github.com/samdwyer/delve/internal/spawn"
	"github.com/samdwyer/delve/internal/world"
)

// SnapshotFunc observes intermediate grid states during a build. It exists
// for dev visualization only; builders call it with independent copies, so
// observers can never touch algorithm state. Nil disables snapshotting.
type SnapshotFunc func(*world.Grid)

// Builder is one level-generation algorithm. Build runs once per instance;
// afterwards Map returns an independent copy of the finished grid,
// StartingPosition a floor tile from which every remaining floor tile is
// reachable, and Spawn hands the level's spawn areas to the collaborator.
type Builder interface {
	Name() string
	Build(ctx context.Context, rng *rand.Rand) error
	Map() *world.Grid
	StartingPosition() world.Position
	Spawn(rng *rand.Rand, sp spawn.Spawner)
	SetSnapshotFunc(fn SnapshotFunc)
}
