// platformer is a terminal 3D coin-collecting platformer.
//
// Usage:
//
//	platformer               - Play (same as 'platformer play')
//	platformer play          - Play in the terminal
//	platformer sim           - Run a headless scripted session and print the result
//	platformer world         - Print the generated world for a seed
//	platformer list          - List registered games
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: from config)
//	--seed <value>        - Set world seed (0 = config seed)
//	--config <path>       - Custom platformer YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "github.com/vovakirdan/tui-platformer/internal/games/platformer" // Register the game
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Coin Runner 3D - a platformer in your terminal",
	Long: `Coin Runner 3D is a platformer played in the terminal. Run along a
seeded world of platforms, collect coins, stomp enemies and keep your life
above zero.

Available commands:
  play   - Play in the terminal (default)
  sim    - Headless scripted run, prints the final state hash
  world  - Dump the generated world
  list   - Show registered games

Examples:
  platformer
  platformer --seed 42 --difficulty hard
  platformer sim --ticks 3600
  platformer world --seed 7 --yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = config tick_rate)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "World seed (0 = config seed)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom platformer config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(worldCmd)
	rootCmd.AddCommand(listCmd)
}
