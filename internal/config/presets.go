package config

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/roguegen/internal/procgen"
	"github.com/samdwyer/roguegen/internal/world"
)

const presetsFile = "presets.json"

// DungeonPreset holds room-and-corridor settings.
type DungeonPreset struct {
	MaxRooms    int `json:"maxRooms"`
	RoomMinSize int `json:"roomMinSize"`
	RoomMaxSize int `json:"roomMaxSize"`
	Width       int `json:"width"`
	Height      int `json:"height"`
}

// Offset is a displacement from the map center.
type Offset struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// CavePreset holds cave settings. Caves do not pick their own spawn points, so
// the preset places both actors relative to the map center.
type CavePreset struct {
	Width           int     `json:"width"`
	Height          int     `json:"height"`
	FillProbability float64 `json:"fillProbability"`
	Generations     int     `json:"generations"`
	PrimaryOffset   Offset  `json:"primaryOffset"`
	SecondaryOffset Offset  `json:"secondaryOffset"`
}

// ActorPreset describes how a spawned actor is drawn.
type ActorPreset struct {
	Glyph string `json:"glyph"` // Single character (e.g., "@")
	Color string `json:"color"` // Hex color code (e.g., "#FFFF00")
}

// Presets is the structure of presets.json.
type Presets struct {
	Dungeon DungeonPreset `json:"dungeon"`
	Cave    CavePreset    `json:"cave"`
	Actors  struct {
		Primary   ActorPreset `json:"primary"`
		Secondary ActorPreset `json:"secondary"`
	} `json:"actors"`
}

// LoadPresets loads the embedded presets.json.
func LoadPresets() (*Presets, error) {
	p, err := Load[Presets](presetsFile)
	if err != nil {
		return nil, err
	}
	if err := p.DungeonParams().Validate(); err != nil {
		return nil, fmt.Errorf("dungeon preset: %w", err)
	}
	return &p, nil
}

// DungeonParams converts the dungeon preset to generator parameters.
func (p *Presets) DungeonParams() procgen.DungeonParams {
	return procgen.DungeonParams{
		MaxRooms:    p.Dungeon.MaxRooms,
		RoomMinSize: p.Dungeon.RoomMinSize,
		RoomMaxSize: p.Dungeon.RoomMaxSize,
		Width:       p.Dungeon.Width,
		Height:      p.Dungeon.Height,
	}
}

// CaveParams converts the cave preset to generator parameters.
func (p *Presets) CaveParams() procgen.CaveParams {
	return procgen.CaveParams{
		Width:           p.Cave.Width,
		Height:          p.Cave.Height,
		FillProbability: p.Cave.FillProbability,
		Generations:     p.Cave.Generations,
	}
}

// CaveSpawns returns the actor positions for a cave of the given size.
func (c CavePreset) CaveSpawns(width, height int) (primary, secondary world.Point) {
	cx, cy := width/2, height/2
	primary = world.Point{X: cx + c.PrimaryOffset.X, Y: cy + c.PrimaryOffset.Y}
	secondary = world.Point{X: cx + c.SecondaryOffset.X, Y: cy + c.SecondaryOffset.Y}
	return primary, secondary
}

// GlyphRune returns the glyph as a rune for rendering.
func (a ActorPreset) GlyphRune() rune {
	for _, r := range a.Glyph {
		return r
	}
	return '?'
}

// TCellColor returns the color as a tcell.Color.
func (a ActorPreset) TCellColor() tcell.Color {
	color, err := ParseHexColor(a.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}
