package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	seedEnv    = "ROGUEGEN_SEED"
	mapTypeEnv = "ROGUEGEN_MAP_TYPE"
)

// Env holds settings read from the process environment.
type Env struct {
	Seed    int64  // 0 means pick a seed from the clock
	MapType string // "dungeon", "cave" or empty
}

// LoadEnv loads .env style files into the process environment.
// Missing files are skipped; variables already set are never overridden.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// FromEnv reads ROGUEGEN_* variables.
func FromEnv() (Env, error) {
	var env Env

	if v := strings.TrimSpace(os.Getenv(seedEnv)); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return env, fmt.Errorf("invalid %s %q: %w", seedEnv, v, err)
		}
		env.Seed = seed
	}

	env.MapType = strings.ToLower(strings.TrimSpace(os.Getenv(mapTypeEnv)))
	return env, nil
}
