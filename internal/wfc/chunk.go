// Package wfc re-derives level layouts through constraint propagation: it
// carves a source grid into fixed-size chunk patterns, computes which
// patterns may sit next to which, and stochastically fills a fresh grid from
// those adjacency constraints (wave function collapse, without backtracking).
package wfc

import "github.com/samdwyer/delve/internal/world"

// Chunk sides, also used as directions between chunk slots.
const (
	North = iota
	South
	West
	East
)

// opposite maps a side to the side it faces on the adjacent chunk.
var opposite = [4]int{North: South, South: North, West: East, East: West}

// MapChunk is one atomic C×C tile pattern plus its derived adjacency data.
// The chunk set is computed once per collapse and immutable afterwards.
type MapChunk struct {
	// Pattern holds the chunk's tiles, row-major, length chunkSize².
	Pattern []world.Tile
	// Exits marks Floor border cells, one bitmap per side, each of length
	// chunkSize. North/South run west→east, West/East run north→south.
	Exits [4][]bool
	// HasExits is false only when no side has any open cell.
	HasExits bool
	// CompatibleWith lists, per side, the pattern indices legally adjacent
	// on that side. Consumed directionally: both directions of a pairing
	// are populated independently.
	CompatibleWith [4][]int
}

// tileIdx converts in-chunk coordinates to a Pattern index.
func tileIdx(chunkSize, x, y int) int {
	return y*chunkSize + x
}
