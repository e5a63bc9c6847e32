package mapgen

import (
	"context"
	"math/rand"
	"testing"

	"github.com/samdwyer/delve/internal/world"
)

type recordedSpawn struct {
	kind string
	x, y int
}

type spawnRecorder struct {
	placed []recordedSpawn
}

func (r *spawnRecorder) Spawn(kind string, x, y int) {
	r.placed = append(r.placed, recordedSpawn{kind, x, y})
}

func TestGenerate(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	res, err := Generate(context.Background(), rng, Options{Depth: 1})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if res.ID == "" {
		t.Error("result has no id")
	}
	if res.Strategy == "" {
		t.Error("result has no strategy name")
	}
	if got := countStairs(res.Grid); got != 1 {
		t.Errorf("got %d stairs tiles, want 1", got)
	}
	if tile := res.Grid.Tiles[res.Grid.Index(res.Start.X, res.Start.Y)]; !tile.IsPassable() {
		t.Errorf("start %+v is %v, want passable", res.Start, tile)
	}
	assertConnected(t, res.Grid, res.Start)
}

func TestGenerateForcedStrategy(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	res, err := Generate(context.Background(), rng, Options{Depth: 2, Strategy: "maze"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.Strategy != "maze" {
		t.Fatalf("got strategy %q, want %q", res.Strategy, "maze")
	}
}

func TestGenerateUnknownStrategy(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if _, err := Generate(context.Background(), rng, Options{Depth: 1, Strategy: "bogus"}); err == nil {
		t.Fatal("Generate accepted an unknown strategy")
	}
}

func TestGenerateSpawnsOnPassableTiles(t *testing.T) {
	rec := &spawnRecorder{}
	rng := rand.New(rand.NewSource(12))
	res, err := Generate(context.Background(), rng, Options{Depth: 4, Spawner: rec})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	seen := make(map[[2]int]bool)
	for _, s := range rec.placed {
		if s.kind == "" {
			t.Error("spawned entity with empty kind")
		}
		idx := res.Grid.Index(s.x, s.y)
		if tile := res.Grid.Tiles[idx]; tile != world.TileFloor {
			t.Errorf("%s spawned on %v at (%d,%d), want floor", s.kind, tile, s.x, s.y)
		}
		key := [2]int{s.x, s.y}
		if seen[key] {
			t.Errorf("two spawns stacked at (%d,%d)", s.x, s.y)
		}
		seen[key] = true
	}
}

func TestGenerateReproducible(t *testing.T) {
	run := func() *Result {
		rng := rand.New(rand.NewSource(777))
		res, err := Generate(context.Background(), rng, Options{Depth: 1})
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		return res
	}

	a, b := run(), run()
	if a.Strategy != b.Strategy {
		t.Fatalf("strategies differ: %q vs %q", a.Strategy, b.Strategy)
	}
	if a.Start != b.Start {
		t.Fatalf("starts differ: %+v vs %+v", a.Start, b.Start)
	}
	for i := range a.Grid.Tiles {
		if a.Grid.Tiles[i] != b.Grid.Tiles[i] {
			x, y := a.Grid.Coords(i)
			t.Fatalf("tile (%d,%d) differs between identically seeded runs", x, y)
		}
	}
}
