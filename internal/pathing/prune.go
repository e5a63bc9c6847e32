package pathing

import (
	"errors"
	"math"

	"github.com/samdwyer/delve/internal/world"
)

// ErrNoReachableFloor means pruning left no floor tile reachable from the
// start other than the start itself, so no valid exit exists. The attempt is
// unplayable and must be regenerated.
var ErrNoReachableFloor = errors.New("pathing: no reachable floor tiles from start")

// PruneAndFindExit seals every floor tile that cannot be reached from
// startIdx (converting it to wall) and returns the index of the reachable
// floor tile farthest from the start, the natural spot for the stairs.
func PruneAndFindExit(g *world.Grid, startIdx int) (int, error) {
	g.PopulateBlocked()
	dist := DistanceField(g, startIdx)

	exitIdx := -1
	exitDist := 0.0

	for i, t := range g.Tiles {
		if t != world.TileFloor {
			continue
		}
		d := dist[i]
		if math.IsInf(d, 1) {
			g.Tiles[i] = world.TileWall
			continue
		}
		if i != startIdx && d > exitDist {
			exitIdx = i
			exitDist = d
		}
	}

	if exitIdx < 0 {
		return 0, ErrNoReachableFloor
	}
	return exitIdx, nil
}
