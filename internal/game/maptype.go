// Package game ties generation together: it owns the seeded random source, picks
// the map type, assigns spawn points and drives the map viewer.
package game

import "fmt"

// MapType selects which generator builds a level.
type MapType int

const (
	// MapDungeon is the room-and-corridor generator.
	MapDungeon MapType = iota
	// MapCave is the cellular automaton cave generator.
	MapCave
)

// String returns a human-readable map type name.
func (m MapType) String() string {
	switch m {
	case MapDungeon:
		return "dungeon"
	case MapCave:
		return "cave"
	default:
		return "unknown"
	}
}

// ParseMapType converts a name produced by String back to a MapType.
func ParseMapType(s string) (MapType, error) {
	switch s {
	case "dungeon", "":
		return MapDungeon, nil
	case "cave":
		return MapCave, nil
	default:
		return MapDungeon, fmt.Errorf("unknown map type %q", s)
	}
}
