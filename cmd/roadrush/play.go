package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/road-rush/road-rush/internal/core"
	"github.com/road-rush/road-rush/internal/games/rush"
	"github.com/road-rush/road-rush/internal/platform/tui"
	"github.com/road-rush/road-rush/internal/registry"
	"github.com/road-rush/road-rush/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a driving session",
	Long: `Start driving. The road never ends; the run does.

Controls:
  A/Left, D/Right  - Change lane
  W/Up/Space       - Hold to boost
  P                - Pause
  R                - Restart
  Tab              - Run history
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Examples:
  roadrush play
  roadrush play --seed 42
  roadrush play --config ./my-rush.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size early
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path before creation so Reset picks it up
	rush.SetConfigPath(flagConfig)

	game, err := registry.Create("rush")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
