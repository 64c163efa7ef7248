package game

import (
	"log/slog"

	"github.com/samdwyer/roguegen/internal/config"
	"github.com/samdwyer/roguegen/internal/procgen"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible map generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	MapType MapType
	Dungeon procgen.DungeonParams
	Cave    procgen.CaveParams

	// Presets supplies cave spawn offsets and actor appearance.
	Presets *config.Presets

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// DefaultConfig builds a configuration from the embedded presets.
func DefaultConfig() (Config, error) {
	presets, err := config.LoadPresets()
	if err != nil {
		return Config{}, err
	}
	return Config{
		MapType: MapDungeon,
		Dungeon: presets.DungeonParams(),
		Cave:    presets.CaveParams(),
		Presets: presets,
	}, nil
}

// ApplyEnv overrides the seed and map type from environment settings.
func (c *Config) ApplyEnv(env config.Env) error {
	if env.Seed != 0 {
		c.Seed = env.Seed
	}
	if env.MapType != "" {
		mt, err := ParseMapType(env.MapType)
		if err != nil {
			return err
		}
		c.MapType = mt
	}
	return nil
}
