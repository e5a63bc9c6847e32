package mapgen

import (
	"context"
	"math/rand"
	"sort"

	"github.com/samdwyer/delve/internal/world"
)

const bspRoomAttempts = 240

// BSPDungeonBuilder subdivides the map into quadrants, drops inset rooms
// into randomly chosen partitions when a margin-checked space test passes,
// and joins the rooms left-to-right with jittered corridors.
type BSPDungeonBuilder struct {
	baseBuilder
	rects []world.Rect
}

// NewBSPDungeon creates the builder for the given depth.
func NewBSPDungeon(depth int) *BSPDungeonBuilder {
	return &BSPDungeonBuilder{baseBuilder: newBaseBuilder(depth, world.TileVoid)}
}

func (b *BSPDungeonBuilder) Name() string { return "bsp-dungeon" }

func (b *BSPDungeonBuilder) Build(ctx context.Context, rng *rand.Rand) error {
	b.rects = b.rects[:0]
	root := world.Rect{X1: 2, Y1: 2, X2: b.grid.Width - 5, Y2: b.grid.Height - 5}
	b.rects = append(b.rects, root)
	b.addSubrects(root)

	for attempt := 0; attempt < bspRoomAttempts; attempt++ {
		rect := b.randomRect(rng)
		candidate := b.randomSubRect(rect, rng)

		if !b.roomFits(candidate) {
			continue
		}
		applyRoom(b.grid, candidate)
		b.rooms = append(b.rooms, candidate)
		b.addSubrects(rect)
		b.takeSnapshot()
	}

	if len(b.rooms) == 0 {
		return ErrNoRoomsPlaced
	}

	sort.Slice(b.rooms, func(i, j int) bool { return b.rooms[i].X1 < b.rooms[j].X1 })

	for i := 0; i+1 < len(b.rooms); i++ {
		room, next := b.rooms[i], b.rooms[i+1]
		startX := room.X1 + rng.Intn(room.Width())
		startY := room.Y1 + rng.Intn(room.Height())
		endX := next.X1 + rng.Intn(next.Width())
		endY := next.Y1 + rng.Intn(next.Height())
		drawCorridor(b.grid, startX, startY, endX, endY)
		b.takeSnapshot()
	}

	b.start = b.rooms[0].Center()
	b.placeStairsAt(b.rooms[len(b.rooms)-1].Center())
	b.takeSnapshot()
	return nil
}

// addSubrects splits a rect into its four quadrants and queues them as
// future room partitions.
func (b *BSPDungeonBuilder) addSubrects(rect world.Rect) {
	halfW := max(rect.Width()/2, 1)
	halfH := max(rect.Height()/2, 1)

	b.rects = append(b.rects,
		world.NewRect(rect.X1, rect.Y1, halfW, halfH),
		world.NewRect(rect.X1, rect.Y1+halfH, halfW, halfH),
		world.NewRect(rect.X1+halfW, rect.Y1, halfW, halfH),
		world.NewRect(rect.X1+halfW, rect.Y1+halfH, halfW, halfH),
	)
}

func (b *BSPDungeonBuilder) randomRect(rng *rand.Rand) world.Rect {
	if len(b.rects) == 1 {
		return b.rects[0]
	}
	return b.rects[rng.Intn(len(b.rects))]
}

// randomSubRect shrinks a partition to a random room candidate, jittered
// away from the partition corner.
func (b *BSPDungeonBuilder) randomSubRect(rect world.Rect, rng *rand.Rand) world.Rect {
	result := rect
	w := max(3, rng.Intn(min(rect.Width(), 10))) + 1
	h := max(3, rng.Intn(min(rect.Height(), 10))) + 1

	result.X1 += rng.Intn(6)
	result.Y1 += rng.Intn(6)
	result.X2 = result.X1 + w
	result.Y2 = result.Y1 + h
	return result
}

// roomFits requires the candidate, expanded by a margin, to sit on solid
// tiles strictly inside the map border.
func (b *BSPDungeonBuilder) roomFits(rect world.Rect) bool {
	expanded := rect
	expanded.X1 -= 2
	expanded.X2 += 2
	expanded.Y1 -= 2
	expanded.Y2 += 1

	for y := expanded.Y1; y <= expanded.Y2; y++ {
		for x := expanded.X1; x <= expanded.X2; x++ {
			if x < 1 || x > b.grid.Width-2 || y < 1 || y > b.grid.Height-2 {
				return false
			}
			if !b.grid.IsVoidOrWall(x, y) {
				return false
			}
		}
	}
	return true
}
