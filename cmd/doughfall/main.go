// doughfall is a terminal bullet-hell game about delivering pizza under fire.
//
// Usage:
//
//	doughfall play              - Start a run
//	doughfall menu              - Start the interactive menu
//	doughfall serve             - Start SSH server for remote play
//	doughfall scores            - Show high scores
//	doughfall stats             - Show lifetime statistics
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.doughfall/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/doughfall/internal/games/doughfall"
)

// gameID is the registry ID of the one game this binary ships.
const gameID = "doughfall"

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
	Use:   "doughfall",
	Short: "DoughFall - a bullet-hell pizza run in your terminal",
	Long: `DoughFall is a terminal bullet-hell game. Steer the delivery ship
through waves of rogue toppings, graze bullets for score, and take down
the boss at the end of every stage.

Available commands:
  play     - Start a run directly
  menu     - Interactive menu with scoreboard
  serve    - Start SSH server for remote play
  scores   - View high scores
  stats    - View lifetime statistics

Examples:
  doughfall play
  doughfall play --difficulty hard
  doughfall menu
  doughfall serve --ssh :2222
  doughfall scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.doughfall/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
}
