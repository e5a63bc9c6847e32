package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "delve",
	Short: "Procedural dungeon level generator",
	Long: `delve generates roguelike dungeon levels using a collection of
generation strategies: room placement, BSP subdivision, cellular automata,
drunkard walks, mazes, diffusion-limited aggregation, Voronoi carving, and
wave-function-collapse rederivation of any of the above.`,
	SilenceUsage: true,
}
