// Package world provides the tile catalog, the map grid and room geometry shared by
// the generators.
package world

// RGB is a 24-bit display colour.
type RGB struct {
	R, G, B uint8
}

// Graphic describes how a tile looks when it is drawn.
type Graphic struct {
	Glyph rune // Display character
	FG    RGB  // Foreground colour
	BG    RGB  // Background colour
}

// Tile represents a single map tile.
// Tiles are plain values; every cell holding Floor shares the same value.
type Tile struct {
	Walkable    bool    // Can an actor stand here
	Transparent bool    // Does it let sight through (unused by the generators)
	Dark        Graphic // Appearance outside the field of view
}

var (
	// Floor represents a passable, transparent floor tile.
	Floor = Tile{
		Walkable:    true,
		Transparent: true,
		Dark:        Graphic{Glyph: ' ', FG: RGB{255, 255, 255}, BG: RGB{0, 0, 0}},
	}
	// Wall represents an impassable, opaque wall tile.
	Wall = Tile{
		Walkable:    false,
		Transparent: false,
		Dark:        Graphic{Glyph: '#', FG: RGB{161, 192, 207}, BG: RGB{0, 0, 0}},
	}
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t.Walkable
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return t.Dark.Glyph
}
