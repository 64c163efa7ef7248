package world

import (
	"fmt"
	"strings"
)

// Grid is a fixed-size 2D map of tiles indexed by (x, y).
// Every cell always holds a tile; a new grid is solid wall.
type Grid struct {
	width  int
	height int
	tiles  [][]Tile // tiles[y][x]
}

// NewGrid creates a new grid filled with walls.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: grid %dx%d", ErrInvalidDimension, width, height)
	}

	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = Wall
		}
	}

	return &Grid{
		width:  width,
		height: height,
		tiles:  tiles,
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the tile at the given position.
func (g *Grid) Get(x, y int) (Tile, error) {
	if !g.InBounds(x, y) {
		return Tile{}, g.outOfBounds(x, y)
	}
	return g.tiles[y][x], nil
}

// Set replaces the tile at the given position.
func (g *Grid) Set(x, y int, t Tile) error {
	if !g.InBounds(x, y) {
		return g.outOfBounds(x, y)
	}
	g.tiles[y][x] = t
	return nil
}

// IsWalkable returns true if the given position is inside the grid and passable.
func (g *Grid) IsWalkable(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.tiles[y][x].IsPassable()
}

// FillRect sets every cell of the half-open rectangle [x1,x2) x [y1,y2) to t.
// An empty rectangle is a no-op. The whole rectangle is checked before anything is written.
func (g *Grid) FillRect(x1, y1, x2, y2 int, t Tile) error {
	if x1 >= x2 || y1 >= y2 {
		return nil
	}
	if !g.InBounds(x1, y1) || !g.InBounds(x2-1, y2-1) {
		return fmt.Errorf("%w: rect (%d,%d)-(%d,%d) on %dx%d grid",
			ErrOutOfBounds, x1, y1, x2, y2, g.width, g.height)
	}
	for y := y1; y < y2; y++ {
		for x := x1; x < x2; x++ {
			g.tiles[y][x] = t
		}
	}
	return nil
}

// Fill sets every cell to t.
func (g *Grid) Fill(t Tile) {
	for y := range g.tiles {
		for x := range g.tiles[y] {
			g.tiles[y][x] = t
		}
	}
}

// CopyFrom overwrites this grid with the contents of src, which must have the same size.
func (g *Grid) CopyFrom(src *Grid) error {
	if src.width != g.width || src.height != g.height {
		return fmt.Errorf("%w: copy %dx%d into %dx%d",
			ErrInvalidDimension, src.width, src.height, g.width, g.height)
	}
	for y := range g.tiles {
		copy(g.tiles[y], src.tiles[y])
	}
	return nil
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	tiles := make([][]Tile, g.height)
	for y := range tiles {
		tiles[y] = make([]Tile, g.width)
		copy(tiles[y], g.tiles[y])
	}
	return &Grid{width: g.width, height: g.height, tiles: tiles}
}

// Equal reports whether both grids have the same size and identical tiles.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for y := range g.tiles {
		for x := range g.tiles[y] {
			if g.tiles[y][x] != other.tiles[y][x] {
				return false
			}
		}
	}
	return true
}

// CountTiles returns how many cells hold t.
func (g *Grid) CountTiles(t Tile) int {
	n := 0
	for y := range g.tiles {
		for x := range g.tiles[y] {
			if g.tiles[y][x] == t {
				n++
			}
		}
	}
	return n
}

// ForEach calls fn for every cell in row-major order.
func (g *Grid) ForEach(fn func(x, y int, t Tile)) {
	for y := range g.tiles {
		for x := range g.tiles[y] {
			fn(x, y, g.tiles[y][x])
		}
	}
}

// String renders the grid one row per line using each tile's glyph.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y := range g.tiles {
		for x := range g.tiles[y] {
			b.WriteRune(g.tiles[y][x].Rune())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (g *Grid) outOfBounds(x, y int) error {
	return fmt.Errorf("%w: (%d,%d) on %dx%d grid", ErrOutOfBounds, x, y, g.width, g.height)
}
