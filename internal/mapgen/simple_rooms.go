package mapgen

import (
	"context"
	"math/rand"

	"github.com/samdwyer/delve/internal/world"
)

const (
	simpleMaxRooms    = 30
	simpleMinRoomSize = 6
	simpleMaxRoomSize = 10
)

// SimpleRoomsBuilder rejection-samples non-overlapping rooms and links their
// centers with L-shaped corridors. Corridors make every room reachable by
// construction, so no pruning pass runs. Corridor corners are not always
// fully walled; the runtime treats stray wall gaps next to void as solid.
type SimpleRoomsBuilder struct {
	baseBuilder
}

// NewSimpleRooms creates the builder for the given depth.
func NewSimpleRooms(depth int) *SimpleRoomsBuilder {
	return &SimpleRoomsBuilder{baseBuilder: newBaseBuilder(depth, world.TileVoid)}
}

func (b *SimpleRoomsBuilder) Name() string { return "simple-rooms" }

func (b *SimpleRoomsBuilder) Build(ctx context.Context, rng *rand.Rand) error {
	for attempt := 0; attempt < simpleMaxRooms; attempt++ {
		w := rollRange(rng, simpleMinRoomSize, simpleMaxRoomSize)
		h := rollRange(rng, simpleMinRoomSize, simpleMaxRoomSize)
		x := rng.Intn(b.grid.Width - w - 1)
		y := rng.Intn(b.grid.Height - h - 1)

		candidate := world.NewRect(x, y, w, h)
		overlaps := false
		for _, other := range b.rooms {
			if candidate.Intersects(other, 0) {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}

		applyRoom(b.grid, candidate)
		b.rooms = append(b.rooms, candidate)
		b.takeSnapshot()
	}

	if len(b.rooms) == 0 {
		return ErrNoRoomsPlaced
	}

	for i := 1; i < len(b.rooms); i++ {
		prev := b.rooms[i-1].Center()
		cur := b.rooms[i].Center()

		if rng.Intn(2) == 1 {
			applyHorizontalTunnel(b.grid, prev.X, cur.X, prev.Y)
			applyVerticalTunnel(b.grid, prev.Y, cur.Y, cur.X)
		} else {
			applyVerticalTunnel(b.grid, prev.Y, cur.Y, prev.X)
			applyHorizontalTunnel(b.grid, prev.X, cur.X, cur.Y)
		}
		b.takeSnapshot()
	}

	b.start = b.rooms[0].Center()
	b.placeStairsAt(b.rooms[len(b.rooms)-1].Center())
	b.takeSnapshot()
	return nil
}
