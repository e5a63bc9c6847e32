package region

import (
	"math/rand"
	"testing"

	"github.com/samdwyer/delve/internal/world"
)

func TestPartitionCoversEveryInteriorFloorOnce(t *testing.T) {
	g := world.NewGrid(40, 30, 1, world.TileWall)
	rng := rand.New(rand.NewSource(99))
	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			if rng.Intn(100) < 60 {
				g.Tiles[g.Index(x, y)] = world.TileFloor
			}
		}
	}

	areas := Partition(g, rand.New(rand.NewSource(7)))

	seen := make(map[int]int)
	for id, tiles := range areas {
		if len(tiles) == 0 {
			t.Errorf("region %d is empty", id)
		}
		for _, idx := range tiles {
			seen[idx]++
			if g.Tiles[idx] != world.TileFloor {
				t.Errorf("region %d contains non-floor tile %d", id, idx)
			}
		}
	}

	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			idx := g.Index(x, y)
			if g.Tiles[idx] != world.TileFloor {
				continue
			}
			if seen[idx] != 1 {
				t.Fatalf("interior floor tile %d assigned to %d regions, want 1", idx, seen[idx])
			}
		}
	}
}

func TestPartitionDeterministicUnderSeed(t *testing.T) {
	g := world.NewGrid(30, 20, 1, world.TileFloor)

	a := Partition(g, rand.New(rand.NewSource(42)))
	b := Partition(g, rand.New(rand.NewSource(42)))

	if len(a) != len(b) {
		t.Fatalf("region counts differ: %d != %d", len(a), len(b))
	}
	for id, tiles := range a {
		other, ok := b[id]
		if !ok || len(other) != len(tiles) {
			t.Fatalf("region %d differs between identically seeded runs", id)
		}
	}
}
