// Package main is the entry point for roguegen.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "roguegen",
	Short: "Generate roguelike terrain",
	Long: `roguegen builds playable terrain grids with a room-and-corridor dungeon
generator or a cellular automaton cave generator, prints them and can show them
in the terminal.`,
	PersistentPreRunE: bootstrap,
	PersistentPostRun: teardown,
	SilenceUsage:      true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "Random seed (0 picks one from the clock)")
	rootCmd.PersistentFlags().BoolVar(&view, "view", false, "Show the map in an interactive terminal viewer")
	rootCmd.PersistentFlags().BoolVar(&colored, "color", false, "Print the map with 24-bit colour")
	rootCmd.PersistentFlags().StringVar(&outPath, "out", "", "Write the map to this file instead of stdout")

	rootCmd.AddCommand(dungeonCmd)
	rootCmd.AddCommand(caveCmd)
}
