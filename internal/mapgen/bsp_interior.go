package mapgen

import (
	"context"
	"math/rand"

	"github.com/samdwyer/delve/internal/world"
)

const interiorMinRoomSize = 8

// BSPInteriorBuilder recursively splits the whole interior along random axes
// down to a minimum size, carves every leaf wall-to-wall as floor, and cuts
// corridors between successive leaves. The result has no dead space at all.
type BSPInteriorBuilder struct {
	baseBuilder
	rects []world.Rect
}

// NewBSPInterior creates the builder for the given depth.
func NewBSPInterior(depth int) *BSPInteriorBuilder {
	return &BSPInteriorBuilder{baseBuilder: newBaseBuilder(depth, world.TileWall)}
}

func (b *BSPInteriorBuilder) Name() string { return "bsp-interior" }

func (b *BSPInteriorBuilder) Build(ctx context.Context, rng *rand.Rand) error {
	b.rects = b.rects[:0]
	root := world.NewRect(1, 1, b.grid.Width-2, b.grid.Height-2)
	b.rects = append(b.rects, root)
	b.splitInto(root, rng)

	for _, room := range b.rects {
		b.rooms = append(b.rooms, room)
		for y := room.Y1; y < room.Y2; y++ {
			for x := room.X1; x < room.X2; x++ {
				if x > 0 && x < b.grid.Width-1 && y > 0 && y < b.grid.Height-1 {
					b.grid.Tiles[b.grid.Index(x, y)] = world.TileFloor
				}
			}
		}
		b.takeSnapshot()
	}

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

// splitInto replaces the last queued rect with a random binary split,
// recursing while halves stay above the minimum size.
func (b *BSPInteriorBuilder) splitInto(rect world.Rect, rng *rand.Rand) {
	if len(b.rects) > 0 {
		b.rects = b.rects[:len(b.rects)-1]
	}

	width := rect.Width()
	height := rect.Height()
	halfW := width / 2
	halfH := height / 2

	if rng.Intn(4) < 2 {
		h1 := world.NewRect(rect.X1, rect.Y1, halfW-1, height)
		b.rects = append(b.rects, h1)
		if halfW > interiorMinRoomSize {
			b.splitInto(h1, rng)
		}
		h2 := world.NewRect(rect.X1+halfW, rect.Y1, halfW, height)
		b.rects = append(b.rects, h2)
		if halfW > interiorMinRoomSize {
			b.splitInto(h2, rng)
		}
	} else {
		v1 := world.NewRect(rect.X1, rect.Y1, width, halfH-1)
		b.rects = append(b.rects, v1)
		if halfH > interiorMinRoomSize {
			b.splitInto(v1, rng)
		}
		v2 := world.NewRect(rect.X1, rect.Y1+halfH, width, halfH)
		b.rects = append(b.rects, v2)
		if halfH > interiorMinRoomSize {
			b.splitInto(v2, rng)
		}
	}
}
