package ui

import (
	"bufio"
	"io"

	"github.com/gookit/color"

	"github.com/samdwyer/roguegen/internal/world"
)

// WriteASCII prints the grid one row per line with actors drawn over it.
// When colored is set each cell carries its 24-bit foreground and background.
func WriteASCII(w io.Writer, grid *world.Grid, actors []Actor, colored bool) error {
	bw := bufio.NewWriter(w)

	at := make(map[world.Point]Actor, len(actors))
	for _, a := range actors {
		at[a.Pos] = a
	}

	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			tile, _ := grid.Get(x, y)
			glyph := tile.Rune()
			fg := tile.Dark.FG
			if a, ok := at[world.Point{X: x, Y: y}]; ok {
				glyph = a.Symbol
				r, g, b := a.Color.RGB()
				fg = world.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
			}

			if !colored {
				bw.WriteRune(glyph)
				continue
			}
			style := color.NewRGBStyle(
				color.RGB(fg.R, fg.G, fg.B),
				color.RGB(tile.Dark.BG.R, tile.Dark.BG.G, tile.Dark.BG.B, true),
			)
			bw.WriteString(style.Sprint(string(glyph)))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
