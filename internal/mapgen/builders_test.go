package mapgen

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/samdwyer/delve/internal/pathing"
	"github.com/samdwyer/delve/internal/world"
)

// assertConnected fails the test if any floor tile cannot be walked to from
// the start position.
func assertConnected(t *testing.T, g *world.Grid, start world.Position) {
	t.Helper()
	g.PopulateBlocked()
	dist := pathing.DistanceField(g, g.Index(start.X, start.Y))
	for i, tile := range g.Tiles {
		if tile != world.TileFloor && tile != world.TileStairsDown {
			continue
		}
		if math.IsInf(dist[i], 1) {
			x, y := g.Coords(i)
			t.Fatalf("%v tile (%d,%d) unreachable from start %+v", tile, x, y, start)
		}
	}
}

// assertFinishedTiles fails the test if a finished grid holds an undefined
// tile kind or a leftover placeholder. Placeholders are transient carve
// markers (the drunkard walkers use them) and must all be converted before
// a build returns.
func assertFinishedTiles(t *testing.T, g *world.Grid) {
	t.Helper()
	for i, tile := range g.Tiles {
		if tile > world.TileStairsDown {
			x, y := g.Coords(i)
			t.Fatalf("tile (%d,%d) has undefined kind %d", x, y, tile)
		}
		if tile == world.TilePlaceholder {
			x, y := g.Coords(i)
			t.Fatalf("tile (%d,%d) is a leftover placeholder", x, y)
		}
	}
}

func countStairs(g *world.Grid) int {
	n := 0
	for _, tile := range g.Tiles {
		if tile == world.TileStairsDown {
			n++
		}
	}
	return n
}

// buildWithRetry builds the named strategy, rolling fresh seeds on failure
// the way Generate does. Open-layout strategies can fail on unlucky seeds.
func buildWithRetry(t *testing.T, name string, depth int) (Builder, int64) {
	t.Helper()
	for seed := int64(1); seed <= 10; seed++ {
		builder, err := NewStrategy(name, depth)
		if err != nil {
			t.Fatalf("NewStrategy(%q): %v", name, err)
		}
		if err := builder.Build(context.Background(), rand.New(rand.NewSource(seed))); err == nil {
			return builder, seed
		}
	}
	t.Fatalf("strategy %q failed on 10 consecutive seeds", name)
	return nil, 0
}

func TestSimpleRoomsLayout(t *testing.T) {
	b := NewSimpleRooms(1)
	if err := b.Build(context.Background(), rand.New(rand.NewSource(42))); err != nil {
		t.Fatalf("Build: %v", err)
	}

	if len(b.rooms) < 2 {
		t.Fatalf("got %d rooms, want at least 2", len(b.rooms))
	}
	for i := 0; i < len(b.rooms); i++ {
		for j := i + 1; j < len(b.rooms); j++ {
			if b.rooms[i].Intersects(b.rooms[j], 0) {
				t.Errorf("rooms %d and %d overlap: %+v vs %+v", i, j, b.rooms[i], b.rooms[j])
			}
		}
	}

	g := b.Map()
	if got := countStairs(g); got != 1 {
		t.Errorf("got %d stairs tiles, want 1", got)
	}
	assertConnected(t, g, b.StartingPosition())
}

func TestCellularAutomataStartIsFloor(t *testing.T) {
	b := NewCellularAutomata(1)
	if err := b.Build(context.Background(), rand.New(rand.NewSource(7))); err != nil {
		t.Fatalf("Build: %v", err)
	}

	g := b.Map()
	start := b.StartingPosition()
	if tile := g.Tiles[g.Index(start.X, start.Y)]; tile != world.TileFloor {
		t.Fatalf("start %+v is %v, want floor", start, tile)
	}
}

func TestAllStrategiesShareLevelGuarantees(t *testing.T) {
	for _, name := range StrategyNames() {
		t.Run(name, func(t *testing.T) {
			b, _ := buildWithRetry(t, name, 1)
			g := b.Map()
			start := b.StartingPosition()

			if !g.InBounds(start.X, start.Y) {
				t.Fatalf("start %+v out of bounds", start)
			}
			if tile := g.Tiles[g.Index(start.X, start.Y)]; !tile.IsPassable() {
				t.Fatalf("start %+v is %v, want passable", start, tile)
			}
			if got := countStairs(g); got != 1 {
				t.Errorf("got %d stairs tiles, want 1", got)
			}
			assertFinishedTiles(t, g)
			assertConnected(t, g, start)
		})
	}
}

func TestSameSeedSameLevel(t *testing.T) {
	for _, name := range []string{"simple-rooms", "drunkard-open-area", "maze"} {
		t.Run(name, func(t *testing.T) {
			first, seed := buildWithRetry(t, name, 1)

			second, err := NewStrategy(name, 1)
			if err != nil {
				t.Fatalf("NewStrategy: %v", err)
			}
			if err := second.Build(context.Background(), rand.New(rand.NewSource(seed))); err != nil {
				t.Fatalf("rebuild with seed %d: %v", seed, err)
			}

			a, b := first.Map(), second.Map()
			if first.StartingPosition() != second.StartingPosition() {
				t.Errorf("starts differ: %+v vs %+v", first.StartingPosition(), second.StartingPosition())
			}
			for i := range a.Tiles {
				if a.Tiles[i] != b.Tiles[i] {
					x, y := a.Coords(i)
					t.Fatalf("tile (%d,%d) differs: %v vs %v", x, y, a.Tiles[i], b.Tiles[i])
				}
			}
		})
	}
}

func TestMapReturnsIndependentCopy(t *testing.T) {
	b, _ := buildWithRetry(t, "simple-rooms", 1)

	first := b.Map()
	for i := range first.Tiles {
		first.Tiles[i] = world.TileVoid
	}
	second := b.Map()
	if second.CountFloor() == 0 {
		t.Fatal("mutating a returned map changed builder state")
	}
}

func TestSnapshotObserverSeesCopies(t *testing.T) {
	b := NewCellularAutomata(1)

	var snaps []*world.Grid
	b.SetSnapshotFunc(func(g *world.Grid) {
		snaps = append(snaps, g)
	})
	if err := b.Build(context.Background(), rand.New(rand.NewSource(7))); err != nil {
		t.Fatalf("Build: %v", err)
	}

	if len(snaps) == 0 {
		t.Fatal("observer saw no snapshots")
	}
	for _, s := range snaps {
		for i := range s.Revealed {
			if !s.Revealed[i] || !s.Visible[i] {
				t.Fatal("snapshot not fully revealed")
			}
		}
	}

	// Scribbling on a snapshot must not reach the finished level.
	for i := range snaps[0].Tiles {
		snaps[0].Tiles[i] = world.TileVoid
	}
	if b.Map().CountFloor() == 0 {
		t.Fatal("mutating a snapshot changed builder state")
	}
}

func TestRegistry(t *testing.T) {
	names := StrategyNames()
	if len(names) != 15 {
		t.Fatalf("got %d strategies, want 15", len(names))
	}
	for _, name := range names {
		b, err := NewStrategy(name, 3)
		if err != nil {
			t.Errorf("NewStrategy(%q): %v", name, err)
			continue
		}
		if b.Name() != name {
			t.Errorf("builder for %q reports name %q", name, b.Name())
		}
	}

	if _, err := NewStrategy("no-such-strategy", 1); err == nil {
		t.Error("NewStrategy accepted an unknown name")
	}
}

func TestCollapseBuilder(t *testing.T) {
	b := NewCollapse(1, NewSimpleRooms(1))
	if got, want := b.Name(), "wfc/simple-rooms"; got != want {
		t.Fatalf("Name() = %q, want %q", got, want)
	}

	var built bool
	for seed := int64(1); seed <= 10 && !built; seed++ {
		b = NewCollapse(1, NewSimpleRooms(1))
		built = b.Build(context.Background(), rand.New(rand.NewSource(seed))) == nil
	}
	if !built {
		t.Fatal("collapse build failed on 10 consecutive seeds")
	}

	g := b.Map()
	if got := countStairs(g); got != 1 {
		t.Errorf("got %d stairs tiles, want 1", got)
	}
	assertConnected(t, g, b.StartingPosition())
}
