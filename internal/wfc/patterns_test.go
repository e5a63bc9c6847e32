package wfc

import (
	"testing"

	"github.com/samdwyer/delve/internal/world"
)

func TestBuildPatternsAllFloorSingleChunk(t *testing.T) {
	g := world.NewGrid(8, 8, 1, world.TileFloor)

	patterns := BuildPatterns(g, 8, false, false)
	if len(patterns) != 1 {
		t.Fatalf("pattern count = %d, want 1", len(patterns))
	}
	if len(patterns[0]) != 64 {
		t.Fatalf("pattern length = %d, want 64", len(patterns[0]))
	}

	chunks := PatternsToConstraints(patterns, 8)
	c := chunks[0]
	if !c.HasExits {
		t.Error("all-floor chunk must have exits")
	}
	for side, bitmap := range c.Exits {
		for slot, open := range bitmap {
			if !open {
				t.Errorf("side %d slot %d closed, want fully open bitmaps", side, slot)
			}
		}
	}
}

func TestBuildPatternsFlipCount(t *testing.T) {
	g := world.NewGrid(16, 16, 1, world.TileWall)
	// Asymmetric content so flips stay distinct.
	g.Tiles[g.Index(1, 2)] = world.TileFloor
	g.Tiles[g.Index(9, 3)] = world.TileFloor

	plain := BuildPatterns(g, 8, false, false)
	flipped := BuildPatterns(g, 8, true, false)

	if len(plain) != 4 {
		t.Errorf("plain pattern count = %d, want 4", len(plain))
	}
	if len(flipped) != 16 {
		t.Errorf("flipped pattern count = %d, want 4x = 16", len(flipped))
	}
}

func TestDedupeIdempotent(t *testing.T) {
	g := world.NewGrid(32, 32, 1, world.TileWall)
	for y := 4; y < 28; y++ {
		for x := 4; x < 28; x++ {
			if (x+y)%3 == 0 {
				g.Tiles[g.Index(x, y)] = world.TileFloor
			}
		}
	}

	a := BuildPatterns(g, 8, true, true)
	b := BuildPatterns(g, 8, true, true)

	toSet := func(patterns [][]world.Tile) map[uint64]struct{} {
		set := make(map[uint64]struct{})
		for _, p := range patterns {
			set[digest(p)] = struct{}{}
		}
		return set
	}

	setA, setB := toSet(a), toSet(b)
	if len(setA) != len(a) {
		t.Errorf("deduped output still has duplicates: %d patterns, %d unique", len(a), len(setA))
	}
	if len(setA) != len(setB) {
		t.Fatalf("dedupe not idempotent: %d vs %d unique patterns", len(setA), len(setB))
	}
	for d := range setA {
		if _, ok := setB[d]; !ok {
			t.Fatal("dedupe runs produced different pattern sets")
		}
	}
}

func TestSolidSidesAreWildcards(t *testing.T) {
	solid := make([]world.Tile, 16)
	for i := range solid {
		solid[i] = world.TileWall
	}
	open := make([]world.Tile, 16)
	for i := range open {
		open[i] = world.TileFloor
	}

	chunks := PatternsToConstraints([][]world.Tile{solid, open}, 4)

	for side := 0; side < 4; side++ {
		if !contains(chunks[0].CompatibleWith[side], 0) {
			t.Errorf("solid chunk not self-compatible on side %d", side)
		}
		if !contains(chunks[0].CompatibleWith[side], 1) {
			t.Errorf("solid side %d should accept any neighbor", side)
		}
	}
}

func TestMisalignedExitsIncompatible(t *testing.T) {
	// Two 4x4 chunks whose east/west openings do not line up.
	a := make([]world.Tile, 16)
	b := make([]world.Tile, 16)
	for i := range a {
		a[i] = world.TileWall
		b[i] = world.TileWall
	}
	a[tileIdx(4, 3, 0)] = world.TileFloor // east side, slot 0
	b[tileIdx(4, 0, 3)] = world.TileFloor // west side, slot 3

	chunks := PatternsToConstraints([][]world.Tile{a, b}, 4)

	if contains(chunks[0].CompatibleWith[East], 1) {
		t.Error("misaligned open slots must not be east-compatible")
	}

	// Aligning the openings makes them compatible.
	b2 := make([]world.Tile, 16)
	copy(b2, b)
	b2[tileIdx(4, 0, 3)] = world.TileWall
	b2[tileIdx(4, 0, 0)] = world.TileFloor
	chunks = PatternsToConstraints([][]world.Tile{a, b2}, 4)
	if !contains(chunks[0].CompatibleWith[East], 1) {
		t.Error("aligned open slots should be east-compatible")
	}
	if !contains(chunks[1].CompatibleWith[West], 0) {
		t.Error("compatibility must be populated in both directions")
	}
}
