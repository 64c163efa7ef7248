package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/roguegen/internal/world"
)

// Actor is something drawn on top of the map at a spawn point.
type Actor struct {
	Pos    world.Point
	Symbol rune
	Color  tcell.Color
}

// Renderer handles drawing a map to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the grid and actors, clipped to the screen, followed by an
// optional status line on the last row.
func (r *Renderer) Render(grid *world.Grid, actors []Actor, status string) {
	r.screen.Clear()
	width, height := r.screen.Size()

	grid.ForEach(func(x, y int, tile world.Tile) {
		if x < width && y < height {
			r.screen.SetContent(x, y, tile.Rune(), TileStyle(tile))
		}
	})

	for _, a := range actors {
		if !grid.InBounds(a.Pos.X, a.Pos.Y) {
			continue
		}
		bg, _ := grid.Get(a.Pos.X, a.Pos.Y)
		style := tcell.StyleDefault.
			Foreground(a.Color).
			Background(rgbColor(bg.Dark.BG)).
			Bold(true)
		r.screen.SetContent(a.Pos.X, a.Pos.Y, a.Symbol, style)
	}

	if status != "" {
		r.RenderMessage(status, height-1)
	}

	r.screen.Show()
}

// RenderMessage displays a message on the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range []rune(msg) {
		r.screen.SetContent(i, y, ch, style)
	}
}

// TileStyle returns the display style for a tile's dark appearance.
func TileStyle(tile world.Tile) tcell.Style {
	return tcell.StyleDefault.
		Foreground(rgbColor(tile.Dark.FG)).
		Background(rgbColor(tile.Dark.BG))
}

func rgbColor(c world.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
