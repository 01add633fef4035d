package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/doughfall/internal/core"
	"github.com/vovakirdan/doughfall/internal/games/doughfall"
	"github.com/vovakirdan/doughfall/internal/platform/tui"
	"github.com/vovakirdan/doughfall/internal/registry"
	"github.com/vovakirdan/doughfall/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive menu",
	Long: `Start the interactive menu.

Navigate with W/S or arrow keys, press Enter to play,
Tab to open the scoreboard, and Q to quit.

Example:
  doughfall menu`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(cmd *cobra.Command, args []string) {
	// Get terminal size
	width, height := 80, 24
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

	// Open score storage (shared across menu iterations)
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	// Menu loop: menu -> scoreboard or game -> back to menu
	for {
		result, menuErr := tui.RunMenu(store, cfg)
		if menuErr != nil {
			fmt.Fprintf(os.Stderr, "Error running menu: %v\n", menuErr)
			break
		}

		// Carry resize updates into the next iteration
		cfg = result.Config

		if result.Quit {
			break
		}

		if result.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, gameID, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", sbErr)
				break
			}
			if !goBack {
				break
			}
			continue
		}

		if result.GameID == "" {
			break
		}

		// Apply game settings before creation
		doughfall.SetConfigPath("")
		doughfall.SetDifficultyPreset("")

		game, createErr := registry.Create(result.GameID)
		if createErr != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", createErr)
			break
		}

		// Fresh seed per run unless the user pinned one
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if runErr := tui.Run(game, store, cfg); runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
			break
		}
	}

	if store != nil {
		store.Close()
	}
}
