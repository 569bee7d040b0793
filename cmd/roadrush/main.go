// roadrush is a terminal lane-dodging driving game.
//
// Usage:
//
//	roadrush play            - Start a driving session
//	roadrush scores          - Show the run history
//	roadrush serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible traffic
//	--db <path>     - Set database path (default: ~/.roadrush/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/road-rush/road-rush/internal/games/rush"
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
	Use:   "roadrush",
	Short: "Road Rush - Dodge traffic in your terminal",
	Long: `Road Rush is a terminal driving game: hold the gas, weave through
three lanes of oncoming traffic, and see how far you get before the crash.

Available commands:
  play     - Start a driving session
  scores   - View the run history
  serve    - Start SSH server for remote play

Examples:
  roadrush play
  roadrush play --seed 42
  roadrush scores
  roadrush serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.roadrush/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
