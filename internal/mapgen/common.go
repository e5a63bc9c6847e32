package mapgen

import (
	"math/rand"

	"github.com/samdwyer/delve/internal/world"
)

// Symmetry mirrors brush strokes across the map center.
type Symmetry uint8

const (
	SymmetryNone Symmetry = iota
	SymmetryHorizontal
	SymmetryVertical
	SymmetryBoth
)

// applyRoom carves a rect as a wall ring around a floor interior.
func applyRoom(g *world.Grid, room world.Rect) {
	for y := room.Y1; y <= room.Y2+1; y++ {
		for x := room.X1; x <= room.X2+1; x++ {
			idx := g.Index(x, y)
			if x == room.X1 || x == room.X2+1 || y == room.Y1 || y == room.Y2+1 {
				g.Tiles[idx] = world.TileWall
			} else {
				g.Tiles[idx] = world.TileFloor
			}
		}
	}
}

// applyHorizontalTunnel carves a floor run at y with wall rows above and
// below, leaving existing floor untouched so corridors merge cleanly.
func applyHorizontalTunnel(g *world.Grid, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for row := y - 1; row <= y+1; row++ {
		for x := x1; x <= x2; x++ {
			if !g.InBounds(x, row) {
				continue
			}
			idx := g.Index(x, row)
			if g.Tiles[idx] == world.TileFloor {
				continue
			}
			if row == y {
				g.Tiles[idx] = world.TileFloor
			} else {
				g.Tiles[idx] = world.TileWall
			}
		}
	}
}

// applyVerticalTunnel is applyHorizontalTunnel rotated a quarter turn.
func applyVerticalTunnel(g *world.Grid, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for col := x - 1; col <= x+1; col++ {
		for y := y1; y <= y2; y++ {
			if !g.InBounds(col, y) {
				continue
			}
			idx := g.Index(col, y)
			if g.Tiles[idx] == world.TileFloor {
				continue
			}
			if col == x {
				g.Tiles[idx] = world.TileFloor
			} else {
				g.Tiles[idx] = world.TileWall
			}
		}
	}
}

// drawCorridor walks a staircase path between two points, carving floor and
// walling the eight tiles around each step unless already floor.
func drawCorridor(g *world.Grid, x1, y1, x2, y2 int) {
	x, y := x1, y1
	for x != x2 || y != y2 {
		switch {
		case x < x2:
			x++
		case x > x2:
			x--
		case y < y2:
			y++
		default:
			y--
		}

		g.Tiles[g.Index(x, y)] = world.TileFloor
		for ny := y - 1; ny <= y+1; ny++ {
			for nx := x - 1; nx <= x+1; nx++ {
				if (nx == x && ny == y) || !g.InBounds(nx, ny) {
					continue
				}
				idx := g.Index(nx, ny)
				if g.Tiles[idx] != world.TileFloor {
					g.Tiles[idx] = world.TileWall
				}
			}
		}
	}
}

// paint stamps a floor brush at (x, y), mirrored per the symmetry mode.
func paint(g *world.Grid, sym Symmetry, brushSize, x, y int) {
	centerX := g.Width / 2
	centerY := g.Height / 2

	switch sym {
	case SymmetryNone:
		applyPaint(g, brushSize, x, y)
	case SymmetryHorizontal:
		if x == centerX {
			applyPaint(g, brushSize, x, y)
		} else {
			d := abs(x - centerX)
			applyPaint(g, brushSize, centerX+d, y)
			applyPaint(g, brushSize, centerX-d, y)
		}
	case SymmetryVertical:
		if y == centerY {
			applyPaint(g, brushSize, x, y)
		} else {
			d := abs(y - centerY)
			applyPaint(g, brushSize, x, centerY+d)
			applyPaint(g, brushSize, x, centerY-d)
		}
	case SymmetryBoth:
		dx := abs(x - centerX)
		dy := abs(y - centerY)
		applyPaint(g, brushSize, centerX+dx, centerY+dy)
		applyPaint(g, brushSize, centerX-dx, centerY-dy)
	}
}

func applyPaint(g *world.Grid, brushSize, x, y int) {
	if brushSize <= 1 {
		if g.InBounds(x, y) {
			g.Tiles[g.Index(x, y)] = world.TileFloor
		}
		return
	}

	half := brushSize / 2
	for by := y - half; by <= y+half; by++ {
		for bx := x - half; bx <= x+half; bx++ {
			if bx > 1 && bx < g.Width-1 && by > 1 && by < g.Height-1 {
				g.Tiles[g.Index(bx, by)] = world.TileFloor
			}
		}
	}
}

// bresenhamLine returns the tile path from (x1, y1) to (x2, y2), inclusive.
func bresenhamLine(x1, y1, x2, y2 int) []world.Position {
	var path []world.Position

	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy

	x, y := x1, y1
	for {
		path = append(path, world.Position{X: x, Y: y})
		if x == x2 && y == y2 {
			return path
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// rollRange returns a uniform value in [min, max], the dice-style helper
// most carving loops use.
func rollRange(rng *rand.Rand, min, max int) int {
	return min + rng.Intn(max-min+1)
}
