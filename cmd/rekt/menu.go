package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/rekt-runner/internal/core"
	"github.com/vovakirdan/rekt-runner/internal/games/rekt"
	"github.com/vovakirdan/rekt-runner/internal/platform/tui"
	"github.com/vovakirdan/rekt-runner/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title menu",
	Long: `Start Rekt Runner in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a run, press Esc to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  rekt menu
  rekt menu --fps 30
  rekt menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, err := newLogger("rekt")
	if err != nil {
		return err
	}
	if err := configureGame(); err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	return menuLoop(store, logger, runtimeConfig())
}

// menuLoop shows the menu until the player quits.
func menuLoop(store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	player := localPlayer()

	for {
		// Show menu and get selection
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			return fmt.Errorf("running menu: %w", err)
		}

		// Update config with any size changes
		cfg = result.Config

		switch result.Choice {
		case tui.ChoiceScores:
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return fmt.Errorf("running scoreboard: %w", err)
			}
			if !goBack {
				return nil // User quit from scoreboard
			}

		case tui.ChoicePlay:
			// Fresh seed for every run unless pinned
			if flagSeed == 0 {
				cfg.Seed = time.Now().UnixNano()
			}
			backToMenu, err := tui.Run(rekt.New(), store, logger, player, cfg)
			if err != nil {
				return fmt.Errorf("running game: %w", err)
			}
			if !backToMenu {
				return nil
			}

		default:
			return nil
		}
	}
}
