package mapgen

import (
	"context"
	"math/rand"

	"github.com/samdwyer/delve/internal/world"
)

// Maze cell wall slots.
const (
	mazeTop = iota
	mazeRight
	mazeBottom
	mazeLeft
)

// MazeBuilder carves a perfect maze with a randomized growing-tree walk
// over a half-resolution cell grid, then prunes and partitions the result.
type MazeBuilder struct {
	baseBuilder
}

// NewMaze creates the builder for the given depth.
func NewMaze(depth int) *MazeBuilder {
	return &MazeBuilder{baseBuilder: newBaseBuilder(depth, world.TileVoid)}
}

func (b *MazeBuilder) Name() string { return "maze" }

func (b *MazeBuilder) Build(ctx context.Context, rng *rand.Rand) error {
	m := newMazeGrid(b.grid.Width/2-2, b.grid.Height/2-2)
	m.generate(rng)
	m.copyToGrid(b.grid)
	b.takeSnapshot()

	b.start = world.Position{X: 2, Y: 2}
	return b.finishOpenLayout(rng)
}

type mazeCell struct {
	row, column int
	walls       [4]bool
	visited     bool
}

type mazeGrid struct {
	width, height int
	cells         []mazeCell
	backtrace     []int
	current       int
}

func newMazeGrid(width, height int) *mazeGrid {
	m := &mazeGrid{width: width, height: height}
	for row := 0; row < height; row++ {
		for column := 0; column < width; column++ {
			m.cells = append(m.cells, mazeCell{
				row:    row,
				column: column,
				walls:  [4]bool{true, true, true, true},
			})
		}
	}
	return m
}

func (m *mazeGrid) cellIdx(row, column int) int {
	if row < 0 || column < 0 || row >= m.height || column >= m.width {
		return -1
	}
	return row*m.width + column
}

func (m *mazeGrid) unvisitedNeighbors() []int {
	cur := m.cells[m.current]
	var out []int
	for _, idx := range [4]int{
		m.cellIdx(cur.row-1, cur.column),
		m.cellIdx(cur.row, cur.column+1),
		m.cellIdx(cur.row+1, cur.column),
		m.cellIdx(cur.row, cur.column-1),
	} {
		if idx >= 0 && !m.cells[idx].visited {
			out = append(out, idx)
		}
	}
	return out
}

// generate runs the growing-tree walk: push forward through unvisited
// neighbors knocking out shared walls, fall back through the backtrace when
// boxed in.
func (m *mazeGrid) generate(rng *rand.Rand) {
	for {
		m.cells[m.current].visited = true

		neighbors := m.unvisitedNeighbors()
		if len(neighbors) == 0 {
			if len(m.backtrace) == 0 {
				return
			}
			m.current = m.backtrace[0]
			m.backtrace = m.backtrace[1:]
			continue
		}

		next := neighbors[0]
		if len(neighbors) > 1 {
			next = neighbors[rng.Intn(len(neighbors))]
		}
		m.cells[next].visited = true
		m.backtrace = append(m.backtrace, m.current)
		m.removeWalls(m.current, next)
		m.current = next
	}
}

func (m *mazeGrid) removeWalls(a, b int) {
	dx := m.cells[a].column - m.cells[b].column
	dy := m.cells[a].row - m.cells[b].row

	switch {
	case dx == 1:
		m.cells[a].walls[mazeLeft] = false
		m.cells[b].walls[mazeRight] = false
	case dx == -1:
		m.cells[a].walls[mazeRight] = false
		m.cells[b].walls[mazeLeft] = false
	case dy == 1:
		m.cells[a].walls[mazeTop] = false
		m.cells[b].walls[mazeBottom] = false
	case dy == -1:
		m.cells[a].walls[mazeBottom] = false
		m.cells[b].walls[mazeTop] = false
	}
}

// copyToGrid renders each cell as a floor tile at double resolution, opening
// the tile between cells wherever a wall was removed.
func (m *mazeGrid) copyToGrid(g *world.Grid) {
	for i := range g.Tiles {
		g.Tiles[i] = world.TileWall
	}

	for _, cell := range m.cells {
		x := (cell.column + 1) * 2
		y := (cell.row + 1) * 2
		idx := g.Index(x, y)

		g.Tiles[idx] = world.TileFloor
		if !cell.walls[mazeTop] {
			g.Tiles[idx-g.Width] = world.TileFloor
		}
		if !cell.walls[mazeRight] {
			g.Tiles[idx+1] = world.TileFloor
		}
		if !cell.walls[mazeBottom] {
			g.Tiles[idx+g.Width] = world.TileFloor
		}
		if !cell.walls[mazeLeft] {
			g.Tiles[idx-1] = world.TileFloor
		}
	}
}
