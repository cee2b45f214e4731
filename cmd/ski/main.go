// ski is a terminal endless-skiing arcade game: steer down a procedurally
// generated slope, dodge trees, grab pickups, and stay ahead of the yeti.
//
// Usage:
//
//	ski play                 - Play a run
//	ski scores               - Show the leaderboard
//	ski serve                - Start SSH server for remote play
//	ski config               - Print the default configuration YAML
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.ski/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/tui-ski/internal/games/ski"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ski",
	Short: "Powder Run - endless skiing in your terminal",
	Long: `Powder Run is a terminal skiing game. Carve down an endless slope,
jump rocks, grab mushrooms, pelt the yeti with snowballs, and get as far
downhill as you can.

Available commands:
  play     - Start a run
  scores   - View the leaderboard
  serve    - Start SSH server for remote play
  config   - Print the default configuration YAML

Examples:
  ski play
  ski play --difficulty hard
  ski play --seed 42
  ski scores
  ski serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.ski/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
