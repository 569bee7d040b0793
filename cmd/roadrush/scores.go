package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/road-rush/road-rush/internal/platform/tui"
	"github.com/road-rush/road-rush/internal/storage"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display the top 10 runs by distance.

Examples:
  roadrush scores
  roadrush scores --interactive`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Browse runs in an interactive table")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, "rush", "Road Rush", width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns("rush", 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Runs - Road Rush")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'roadrush play' to hit the road!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-10s  %s\n", "Rank", "Distance", "Duration", "Date")
	fmt.Printf("  %-4s  %-10s  %-10s  %s\n", "----", "--------", "--------", "----")

	for i, entry := range runs {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		durStr := fmt.Sprintf("%d:%02d", entry.Duration/60, entry.Duration%60)
		fmt.Printf("  %-4d  %-10d  %-10s  %s\n", i+1, entry.Distance, durStr, dateStr)
	}

	fmt.Println()
	if best, err := store.BestDistance("rush"); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
}
