package ui

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/samdwyer/delve/internal/world"
)

// Renderer draws generated levels to the terminal for the preview tool.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws a level grid with the start marker and a status line under it.
func (r *Renderer) Render(g *world.Grid, start world.Position, status string) {
	r.screen.Clear()

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			tile := g.Tiles[g.Index(x, y)]
			style := tcell.StyleDefault.Foreground(tileColor(tile, g.Depth))
			r.screen.SetContent(x, y, tile.Rune(), style)
		}
	}

	startStyle := tcell.StyleDefault.
		Foreground(tcell.ColorYellow).
		Bold(true)
	r.screen.SetContent(start.X, start.Y, '@', startStyle)

	r.RenderMessage(status, g.Height)
	r.screen.Show()
}

// RenderStep draws an intermediate grid during generation, without a start
// marker.
func (r *Renderer) RenderStep(g *world.Grid, status string) {
	r.screen.Clear()
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			tile := g.Tiles[g.Index(x, y)]
			style := tcell.StyleDefault.Foreground(tileColor(tile, g.Depth))
			r.screen.SetContent(x, y, tile.Rune(), style)
		}
	}
	r.RenderMessage(status, g.Height)
	r.screen.Show()
}

// tileColor shades tiles toward red as depth grows, so a glance at the
// preview tells you roughly how deep the level is.
func tileColor(tile world.Tile, depth int) tcell.Color {
	var base colorful.Color
	switch tile {
	case world.TileWall:
		base = colorful.Color{R: 0.35, G: 0.45, B: 0.35}
	case world.TileFloor:
		base = colorful.Color{R: 0.55, G: 0.55, B: 0.55}
	case world.TileStairsDown:
		base = colorful.Color{R: 0.90, G: 0.85, B: 0.30}
	default:
		return tcell.ColorDefault
	}

	heat := colorful.Color{R: 0.75, G: 0.20, B: 0.15}
	t := float64(depth) / 12.0
	if t > 0.85 {
		t = 0.85
	}
	c := base.BlendLab(heat, t).Clamped()
	red, green, blue := c.RGB255()
	return tcell.NewRGBColor(int32(red), int32(green), int32(blue))
}

// RenderMessage displays a message at the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range msg {
		r.screen.SetContent(i, y, ch, style)
	}
}
