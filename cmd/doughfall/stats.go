package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/doughfall/internal/storage"
)

var flagStatsRuns int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lifetime statistics",
	Long: `Show lifetime statistics and recent run history.

Examples:
  doughfall stats
  doughfall stats --runs 20`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagStatsRuns, "runs", 10, "Number of recent runs to show")
}

func runStats(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	lifetime, err := store.Lifetime(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading stats: %v\n", err)
		os.Exit(1)
	}

	if lifetime == nil || lifetime.TotalRuns == 0 {
		fmt.Println("No runs recorded yet. Play a run first!")
		return
	}

	fmt.Println("DoughFall - Lifetime Stats")
	fmt.Println()
	fmt.Printf("  Runs:        %d\n", lifetime.TotalRuns)
	fmt.Printf("  Best score:  %d\n", lifetime.BestScore)
	fmt.Printf("  Best stage:  %d\n", lifetime.BestStage)
	fmt.Printf("  Best combo:  x%d\n", lifetime.BestCombo)
	fmt.Printf("  Total kills: %d\n", lifetime.TotalKills)
	fmt.Printf("  Grazes:      %d\n", lifetime.TotalGrazes)

	runs, err := store.RecentRuns(gameID, flagStatsRuns)
	if err != nil || len(runs) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Recent runs:")
	fmt.Println()
	fmt.Printf("  %-10s %-6s %-6s %-6s %-6s %s\n", "Score", "Stage", "Kills", "Combo", "Time", "Date")
	for _, r := range runs {
		fmt.Printf("  %-10d %-6d %-6d x%-5d %d:%02d   %s\n",
			r.Score, r.Stage, r.Kills, r.BestCombo,
			r.DurationSecs/60, r.DurationSecs%60,
			r.CreatedAt.Format("Jan 02 15:04"))
	}
}
