package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/doughfall/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Show the high score table.

Examples:
  doughfall scores
  doughfall scores --limit 25
  doughfall scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Clear all saved scores")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Scores cleared.")
		return
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scores: %v\n", err)
		os.Exit(1)
	}

	if len(scores) == 0 {
		fmt.Println("No scores yet. Play a run first!")
		return
	}

	fmt.Println("DoughFall - High Scores")
	fmt.Println()
	fmt.Printf("  %-5s %-10s %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-5s %-10s %s\n", "----", "-----", "----")
	for i, s := range scores {
		fmt.Printf("  #%-4d %-10d %s\n", i+1, s.Score, s.CreatedAt.Format("Jan 02 2006 15:04"))
	}

	high, err := store.HighScore(gameID)
	if err == nil && high > 0 {
		fmt.Println()
		fmt.Printf("  Personal best: %d\n", high)
	}
}
