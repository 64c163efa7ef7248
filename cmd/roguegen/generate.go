package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/samdwyer/roguegen/internal/config"
	"github.com/samdwyer/roguegen/internal/game"
	"github.com/samdwyer/roguegen/internal/ui"
)

var (
	// Shared flags
	seed    int64
	view    bool
	colored bool
	outPath string

	// Dungeon flags
	maxRooms      int
	roomMinSize   int
	roomMaxSize   int
	dungeonWidth  int
	dungeonHeight int

	// Cave flags
	caveWidth       int
	caveHeight      int
	fillProbability float64
	generations     int
)

var dungeonCmd = &cobra.Command{
	Use:   "dungeon",
	Short: "Generate a room-and-corridor dungeon",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, game.MapDungeon)
	},
}

var caveCmd = &cobra.Command{
	Use:   "cave",
	Short: "Generate a cellular automaton cave",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, game.MapCave)
	},
}

func init() {
	presets, err := config.LoadPresets()
	if err != nil {
		panic(err)
	}

	dungeonCmd.Flags().IntVar(&maxRooms, "max-rooms", presets.Dungeon.MaxRooms, "Room placement attempts")
	dungeonCmd.Flags().IntVar(&roomMinSize, "room-min", presets.Dungeon.RoomMinSize, "Minimum room size")
	dungeonCmd.Flags().IntVar(&roomMaxSize, "room-max", presets.Dungeon.RoomMaxSize, "Maximum room size")
	dungeonCmd.Flags().IntVar(&dungeonWidth, "width", presets.Dungeon.Width, "Map width")
	dungeonCmd.Flags().IntVar(&dungeonHeight, "height", presets.Dungeon.Height, "Map height")

	caveCmd.Flags().IntVar(&caveWidth, "width", presets.Cave.Width, "Map width")
	caveCmd.Flags().IntVar(&caveHeight, "height", presets.Cave.Height, "Map height")
	caveCmd.Flags().Float64Var(&fillProbability, "fill", presets.Cave.FillProbability, "Initial wall probability")
	caveCmd.Flags().IntVar(&generations, "generations", presets.Cave.Generations, "Smoothing passes")
}

func runGenerate(cmd *cobra.Command, mapType game.MapType) error {
	cfg, err := game.DefaultConfig()
	if err != nil {
		return err
	}

	env, err := config.FromEnv()
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(env); err != nil {
		return err
	}

	cfg.MapType = mapType
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}

	switch mapType {
	case game.MapDungeon:
		cfg.Dungeon.MaxRooms = maxRooms
		cfg.Dungeon.RoomMinSize = roomMinSize
		cfg.Dungeon.RoomMaxSize = roomMaxSize
		cfg.Dungeon.Width = dungeonWidth
		cfg.Dungeon.Height = dungeonHeight
	case game.MapCave:
		cfg.Cave.Width = caveWidth
		cfg.Cave.Height = caveHeight
		cfg.Cave.FillProbability = fillProbability
		cfg.Cave.Generations = generations
	}

	g := game.New(cfg)
	level, err := g.Generate(cmd.Context())
	if err != nil {
		return err
	}

	if view {
		return g.Run(cmd.Context())
	}

	var w io.Writer = cmd.OutOrStdout()
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", outPath, err)
		}
		defer f.Close()
		w = f
	}

	if err := ui.WriteASCII(w, level.Grid, g.Actors(level), colored && outPath == ""); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%s seed=%d primary=%v secondary=%v rooms=%d regions=%d\n",
		level.Type, g.Seed(), level.Primary, level.Secondary, level.Rooms, level.Regions)
	return nil
}
