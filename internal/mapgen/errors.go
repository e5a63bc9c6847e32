package mapgen

import "errors"

var (
	// ErrNoRoomsPlaced means a room-based strategy exhausted its placement
	// attempts without carving a single room. The attempt is unusable.
	ErrNoRoomsPlaced = errors.New("mapgen: no rooms placed within attempt budget")

	// ErrIterationBudget means a probabilistically-terminating carve loop
	// overran its hard ceiling, which points at broken parameters rather
	// than bad luck.
	ErrIterationBudget = errors.New("mapgen: carve loop exceeded iteration budget")

	// ErrNoStartTile means no floor tile could be found for the player
	// start, walking left from the map center.
	ErrNoStartTile = errors.New("mapgen: no floor tile available for start position")

	// ErrContradiction means constraint solving kept dead-ending within its
	// retry budget.
	ErrContradiction = errors.New("mapgen: constraint solve exhausted retry budget")
)
