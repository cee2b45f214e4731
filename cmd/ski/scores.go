package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-ski/internal/platform/tui"
	"github.com/vovakirdan/tui-ski/internal/storage"
)

var flagScoresPlain bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the top 10 runs.

Examples:
  ski scores
  ski scores --plain`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print the leaderboard as plain text")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresPlain {
		printScores(store)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunScoreboard(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing leaderboard: %v\n", err)
		os.Exit(1)
	}
}

// printScores writes the leaderboard to stdout without the TUI.
func printScores(store *storage.Store) {
	scores, err := store.TopScores()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Powder Run - Top Scores")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'ski play' to claim the slope!")
		return
	}

	fmt.Printf("  %-4s  %-14s  %-10s  %s\n", "Rank", "Name", "Distance", "Date")
	fmt.Printf("  %-4s  %-14s  %-10s  %s\n", "----", "----", "--------", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-14s  %-10s  %s\n",
			i+1, entry.Name,
			fmt.Sprintf("%dm", entry.Score),
			entry.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
}
