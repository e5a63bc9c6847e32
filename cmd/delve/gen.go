package main

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/samdwyer/delve/internal/mapgen"
	"github.com/samdwyer/delve/internal/ui"
	"github.com/samdwyer/delve/internal/world"
)

var (
	genSeed     int64
	genDepth    int
	genCount    int
	genStrategy string
	genPreview  bool
)

func init() {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate dungeon levels",
		Long: `Generate one or more dungeon levels. Each level descends one depth
further than the last.

Examples:
  delve gen --seed 42
  delve gen -n 5 --depth 3
  delve gen --strategy cellular-automata --preview`,
		RunE: runGen,
	}

	genCmd.Flags().Int64Var(&genSeed, "seed", 0, "RNG seed (0 uses the current time)")
	genCmd.Flags().IntVarP(&genDepth, "depth", "d", 1, "Depth of the first level")
	genCmd.Flags().IntVarP(&genCount, "count", "n", 1, "Number of levels to generate")
	genCmd.Flags().StringVarP(&genStrategy, "strategy", "s", "", "Force a named strategy (default: random per level)")
	genCmd.Flags().BoolVar(&genPreview, "preview", false, "Watch generation step by step in the terminal")

	listCmd := &cobra.Command{
		Use:   "strategies",
		Short: "List available generation strategies",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range mapgen.StrategyNames() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(genCmd, listCmd)
}

type printSpawner struct {
	placed []string
}

func (p *printSpawner) Spawn(kind string, x, y int) {
	p.placed = append(p.placed, fmt.Sprintf("%s at (%d,%d)", kind, x, y))
}

func runGen(cmd *cobra.Command, args []string) error {
	seed := genSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	if genPreview {
		return runGenPreview(cmd, rng, seed)
	}

	for i := 0; i < genCount; i++ {
		spawner := &printSpawner{}
		res, err := mapgen.Generate(cmd.Context(), rng, mapgen.Options{
			Depth:    genDepth + i,
			Strategy: genStrategy,
			Spawner:  spawner,
		})
		if err != nil {
			return fmt.Errorf("level %d: %w", i+1, err)
		}

		fmt.Printf("Level %d (depth %d, strategy %s, id %s, seed %d):\n",
			i+1, genDepth+i, res.Strategy, res.ID, seed)
		fmt.Println(renderText(res.Grid, res.Start))
		fmt.Printf("%d spawns:\n", len(spawner.placed))
		for _, s := range spawner.placed {
			fmt.Println("  " + s)
		}
		fmt.Println()
	}
	return nil
}

func runGenPreview(cmd *cobra.Command, rng *rand.Rand, seed int64) error {
	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	defer screen.Close()
	renderer := ui.NewRenderer(screen)

	for i := 0; i < genCount; i++ {
		depth := genDepth + i
		res, err := mapgen.Generate(cmd.Context(), rng, mapgen.Options{
			Depth:    depth,
			Strategy: genStrategy,
			Snapshot: func(g *world.Grid) {
				renderer.RenderStep(g, fmt.Sprintf("generating depth %d...", depth))
				time.Sleep(25 * time.Millisecond)
			},
		})
		if err != nil {
			return fmt.Errorf("level %d: %w", i+1, err)
		}

		status := fmt.Sprintf("%s  depth %d  seed %d  (any key: next, q: quit)",
			res.Strategy, depth, seed)
		renderer.Render(res.Grid, res.Start, status)

		if quitRequested(screen) {
			return nil
		}
	}
	return nil
}

// quitRequested blocks for the next keypress and reports whether it asks to
// stop the preview.
func quitRequested(screen *ui.Screen) bool {
	for {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return true
			}
			return false
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

func renderText(g *world.Grid, start world.Position) string {
	var sb strings.Builder
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if x == start.X && y == start.Y {
				sb.WriteRune('@')
				continue
			}
			sb.WriteRune(g.Tiles[g.Index(x, y)].Rune())
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}
