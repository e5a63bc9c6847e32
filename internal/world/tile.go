// Package world provides the tile grid and geometry primitives that level
// generation builds on.
package world

// Tile is a single map tile kind.
type Tile uint8

const (
	// TileVoid is unused space outside the playable map.
	TileVoid Tile = iota
	// TilePlaceholder is a transient marker used mid-algorithm.
	// It must never survive into a finished grid.
	TilePlaceholder
	// TileWall is an impassable wall tile.
	TileWall
	// TileFloor is a passable floor tile.
	TileFloor
	// TileStairsDown is the level exit. Exactly one exists per finished grid.
	TileStairsDown
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t == TileFloor || t == TileStairsDown
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	switch t {
	case TileWall:
		return '#'
	case TileFloor:
		return '.'
	case TileStairsDown:
		return '>'
	case TilePlaceholder:
		return '?'
	default:
		return ' '
	}
}

func (t Tile) String() string {
	switch t {
	case TileVoid:
		return "void"
	case TilePlaceholder:
		return "placeholder"
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	case TileStairsDown:
		return "stairs-down"
	default:
		return "unknown"
	}
}
