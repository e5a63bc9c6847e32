package world

import "testing"

func TestNewGridDimensions(t *testing.T) {
	g := NewGrid(DefaultWidth, DefaultHeight, 1, TileWall)

	if len(g.Tiles) != DefaultWidth*DefaultHeight {
		t.Fatalf("Tiles length = %d, want %d", len(g.Tiles), DefaultWidth*DefaultHeight)
	}
	if len(g.Revealed) != len(g.Tiles) || len(g.Visible) != len(g.Tiles) || len(g.Blocked) != len(g.Tiles) {
		t.Error("parallel arrays must match Tiles length")
	}
	for i, tile := range g.Tiles {
		if tile != TileWall {
			t.Fatalf("tile %d = %v, want wall fill", i, tile)
		}
	}
}

func TestIndexRoundTrip(t *testing.T) {
	g := NewGrid(80, 43, 1, TileVoid)

	idx := g.Index(17, 29)
	if idx != 29*80+17 {
		t.Errorf("Index(17,29) = %d, want %d", idx, 29*80+17)
	}

	x, y := g.Coords(idx)
	if x != 17 || y != 29 {
		t.Errorf("Coords(%d) = (%d,%d), want (17,29)", idx, x, y)
	}
}

func TestPopulateBlocked(t *testing.T) {
	g := NewGrid(4, 4, 1, TileWall)
	g.Tiles[g.Index(1, 1)] = TileFloor
	g.Tiles[g.Index(2, 1)] = TileStairsDown
	g.Tiles[g.Index(1, 2)] = TileVoid

	g.PopulateBlocked()

	if g.Blocked[g.Index(1, 1)] {
		t.Error("floor should not block")
	}
	if g.Blocked[g.Index(2, 1)] {
		t.Error("stairs should not block")
	}
	if !g.Blocked[g.Index(1, 2)] {
		t.Error("void should block")
	}
	if !g.Blocked[g.Index(0, 0)] {
		t.Error("wall should block")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewGrid(8, 8, 3, TileWall)
	g.Tiles[10] = TileFloor

	c := g.Clone()
	c.Tiles[10] = TileWall
	c.Revealed[0] = true

	if g.Tiles[10] != TileFloor {
		t.Error("mutating the clone changed the original tiles")
	}
	if g.Revealed[0] {
		t.Error("mutating the clone changed the original revealed array")
	}
	if c.Depth != 3 {
		t.Errorf("clone depth = %d, want 3", c.Depth)
	}
}

func TestIsWalkableBorder(t *testing.T) {
	g := NewGrid(8, 8, 1, TileFloor)
	g.PopulateBlocked()

	if g.IsWalkable(0, 4) || g.IsWalkable(7, 4) || g.IsWalkable(4, 0) || g.IsWalkable(4, 7) {
		t.Error("border tiles must never be walkable")
	}
	if !g.IsWalkable(4, 4) {
		t.Error("interior floor should be walkable")
	}
}
