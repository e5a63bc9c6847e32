package world

const (
	// Default grid dimensions. Height leaves room for the message log and
	// status bar when the map is drawn on an 80x50 terminal.
	DefaultWidth  = 80
	DefaultHeight = 43
)

// Position is a tile coordinate on a grid.
type Position struct {
	X, Y int
}

// Grid is the tile storage for one dungeon level. Tiles are stored row-major:
// index(x,y) = y*Width + x. Revealed, Visible and Blocked run parallel to
// Tiles; Blocked is derived from tile kinds and recomputed on demand.
//
// A Grid is mutated only while a single builder owns it. Once generation
// finishes it is handed to the runtime and treated as frozen.
type Grid struct {
	Width    int
	Height   int
	Depth    int
	Tiles    []Tile
	Revealed []bool
	Visible  []bool
	Blocked  []bool
}

// NewGrid creates a grid of the given dimensions filled with fill.
func NewGrid(width, height, depth int, fill Tile) *Grid {
	n := width * height
	g := &Grid{
		Width:    width,
		Height:   height,
		Depth:    depth,
		Tiles:    make([]Tile, n),
		Revealed: make([]bool, n),
		Visible:  make([]bool, n),
		Blocked:  make([]bool, n),
	}
	if fill != TileVoid {
		for i := range g.Tiles {
			g.Tiles[i] = fill
		}
	}
	return g
}

// Index converts tile coordinates to a Tiles index.
// Valid only for 0 <= x < Width, 0 <= y < Height.
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coords converts a Tiles index back to coordinates.
func (g *Grid) Coords(idx int) (int, int) {
	return idx % g.Width, idx / g.Width
}

// InBounds reports whether (x, y) lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// IsWalkable reports whether (x, y) is inside the map border and not blocked.
// Callers must run PopulateBlocked first.
func (g *Grid) IsWalkable(x, y int) bool {
	if x < 1 || x > g.Width-2 || y < 1 || y > g.Height-2 {
		return false
	}
	return !g.Blocked[g.Index(x, y)]
}

// PopulateBlocked recomputes the Blocked array from the current tiles.
func (g *Grid) PopulateBlocked() {
	for i, t := range g.Tiles {
		g.Blocked[i] = t == TileWall || t == TileVoid
	}
}

// IsVoidOrWall reports whether the tile at (x, y) is solid.
func (g *Grid) IsVoidOrWall(x, y int) bool {
	t := g.Tiles[g.Index(x, y)]
	return t == TileWall || t == TileVoid
}

// CountFloor returns the number of floor tiles.
func (g *Grid) CountFloor() int {
	n := 0
	for _, t := range g.Tiles {
		if t == TileFloor {
			n++
		}
	}
	return n
}

// Clone returns an independent deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		Width:    g.Width,
		Height:   g.Height,
		Depth:    g.Depth,
		Tiles:    make([]Tile, len(g.Tiles)),
		Revealed: make([]bool, len(g.Revealed)),
		Visible:  make([]bool, len(g.Visible)),
		Blocked:  make([]bool, len(g.Blocked)),
	}
	copy(c.Tiles, g.Tiles)
	copy(c.Revealed, g.Revealed)
	copy(c.Visible, g.Visible)
	copy(c.Blocked, g.Blocked)
	return c
}
