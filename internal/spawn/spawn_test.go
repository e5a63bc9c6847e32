package spawn

import (
	"math/rand"
	"testing"

	"github.com/samdwyer/delve/internal/world"
)

type recorder struct {
	spawned []spawnedAt
}

type spawnedAt struct {
	kind string
	x, y int
}

func (r *recorder) Spawn(kind string, x, y int) {
	r.spawned = append(r.spawned, spawnedAt{kind: kind, x: x, y: y})
}

func TestTableRollDeterministic(t *testing.T) {
	table := DepthTable(3)

	rng1 := rand.New(rand.NewSource(12345))
	rng2 := rand.New(rand.NewSource(12345))
	for i := 0; i < 20; i++ {
		a, b := table.Roll(rng1), table.Roll(rng2)
		if a != b {
			t.Fatalf("roll %d mismatch: %s != %s", i, a, b)
		}
		if a == "" {
			t.Fatal("non-empty table rolled nothing")
		}
	}
}

func TestTableDepthGating(t *testing.T) {
	// At depth 1 longsword and tower-shield carry weight 0 and are never
	// eligible.
	table := DepthTable(1)
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		kind := table.Roll(rng)
		if kind == "longsword" || kind == "tower-shield" {
			t.Fatalf("depth-gated kind %q rolled at depth 1", kind)
		}
	}
}

func TestRegionSpawnsOnRegionTilesWithoutStacking(t *testing.T) {
	g := world.NewGrid(20, 20, 5, world.TileWall)
	var tiles []int
	for y := 2; y < 10; y++ {
		for x := 2; x < 10; x++ {
			idx := g.Index(x, y)
			g.Tiles[idx] = world.TileFloor
			tiles = append(tiles, idx)
		}
	}

	rec := &recorder{}
	Region(rand.New(rand.NewSource(8)), rec, g, tiles, 5)

	if len(rec.spawned) == 0 {
		t.Fatal("depth-5 region of 64 tiles should spawn something")
	}

	inRegion := make(map[int]bool, len(tiles))
	for _, idx := range tiles {
		inRegion[idx] = true
	}
	used := make(map[int]bool)
	for _, s := range rec.spawned {
		idx := g.Index(s.x, s.y)
		if !inRegion[idx] {
			t.Errorf("spawned %s at (%d,%d), outside the region", s.kind, s.x, s.y)
		}
		if used[idx] {
			t.Errorf("two entities stacked on tile %d", idx)
		}
		used[idx] = true
	}
}

func TestRegionEmptyIsNoop(t *testing.T) {
	g := world.NewGrid(10, 10, 1, world.TileWall)
	rec := &recorder{}
	Region(rand.New(rand.NewSource(1)), rec, g, nil, 1)
	if len(rec.spawned) != 0 {
		t.Error("empty region must not spawn")
	}
}
