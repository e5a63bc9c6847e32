package wfc

import (
	"github.com/cespare/xxhash/v2"

	"github.com/samdwyer/delve/internal/world"
)

// BuildPatterns slices the source grid into non-overlapping chunkSize×
// chunkSize tile patterns. chunkSize should divide the grid dimensions; any
// remainder band is ignored, matching the floor-divided chunk grid the
// solver fills. With includeFlips each chunk also emits its horizontal,
// vertical and both-axis mirror images. With dedupe, patterns with identical
// tile sequences collapse to one, keeping first-seen order.
func BuildPatterns(g *world.Grid, chunkSize int, includeFlips, dedupe bool) [][]world.Tile {
	chunksX := g.Width / chunkSize
	chunksY := g.Height / chunkSize

	var patterns [][]world.Tile

	for cy := 0; cy < chunksY; cy++ {
		for cx := 0; cx < chunksX; cx++ {
			startX := cx * chunkSize
			startY := cy * chunkSize
			endX := startX + chunkSize
			endY := startY + chunkSize

			normal := make([]world.Tile, 0, chunkSize*chunkSize)
			for y := startY; y < endY; y++ {
				for x := startX; x < endX; x++ {
					normal = append(normal, g.Tiles[g.Index(x, y)])
				}
			}
			patterns = append(patterns, normal)

			if !includeFlips {
				continue
			}

			flipH := make([]world.Tile, 0, chunkSize*chunkSize)
			flipV := make([]world.Tile, 0, chunkSize*chunkSize)
			flipBoth := make([]world.Tile, 0, chunkSize*chunkSize)
			for y := startY; y < endY; y++ {
				for x := startX; x < endX; x++ {
					flipH = append(flipH, g.Tiles[g.Index(endX-(x-startX)-1, y)])
					flipV = append(flipV, g.Tiles[g.Index(x, endY-(y-startY)-1)])
					flipBoth = append(flipBoth, g.Tiles[g.Index(endX-(x-startX)-1, endY-(y-startY)-1)])
				}
			}
			patterns = append(patterns, flipH, flipV, flipBoth)
		}
	}

	if dedupe {
		patterns = dedupePatterns(patterns)
	}
	return patterns
}

// dedupePatterns drops patterns whose tile sequence digests have been seen.
// Tile sequences are tiny, so a 64-bit digest keys them safely.
func dedupePatterns(patterns [][]world.Tile) [][]world.Tile {
	seen := make(map[uint64]struct{}, len(patterns))
	unique := patterns[:0]

	for _, p := range patterns {
		d := digest(p)
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		unique = append(unique, p)
	}
	return unique
}

func digest(p []world.Tile) uint64 {
	h := xxhash.New()
	buf := make([]byte, len(p))
	for i, t := range p {
		buf[i] = byte(t)
	}
	h.Write(buf)
	return h.Sum64()
}

// PatternsToConstraints derives exit bitmaps and directional compatibility
// lists for each pattern. Pattern A accepts pattern B on side D when an open
// border cell of A on D lines up with an open cell of B on the opposite
// side, or when either of those two sides is fully solid (solid sides are
// wildcards: they may sit against any solid boundary).
func PatternsToConstraints(patterns [][]world.Tile, chunkSize int) []MapChunk {
	chunks := make([]MapChunk, 0, len(patterns))

	for _, p := range patterns {
		c := MapChunk{Pattern: p}
		for side := range c.Exits {
			c.Exits[side] = make([]bool, chunkSize)
		}

		exits := 0
		for i := 0; i < chunkSize; i++ {
			if p[tileIdx(chunkSize, i, 0)] == world.TileFloor {
				c.Exits[North][i] = true
				exits++
			}
			if p[tileIdx(chunkSize, i, chunkSize-1)] == world.TileFloor {
				c.Exits[South][i] = true
				exits++
			}
			if p[tileIdx(chunkSize, 0, i)] == world.TileFloor {
				c.Exits[West][i] = true
				exits++
			}
			if p[tileIdx(chunkSize, chunkSize-1, i)] == world.TileFloor {
				c.Exits[East][i] = true
				exits++
			}
		}
		c.HasExits = exits > 0

		chunks = append(chunks, c)
	}

	for i := range chunks {
		for j := range chunks {
			for side := 0; side < 4; side++ {
				if sidesCompatible(&chunks[i], &chunks[j], side) {
					chunks[i].CompatibleWith[side] = append(chunks[i].CompatibleWith[side], j)
				}
			}
		}
	}

	return chunks
}

func sidesCompatible(a, b *MapChunk, side int) bool {
	mine := a.Exits[side]
	theirs := b.Exits[opposite[side]]

	if !anyOpen(mine) || !anyOpen(theirs) {
		return true
	}
	for slot := range mine {
		if mine[slot] && theirs[slot] {
			return true
		}
	}
	return false
}

func anyOpen(side []bool) bool {
	for _, open := range side {
		if open {
			return true
		}
	}
	return false
}
