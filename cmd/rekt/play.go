package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rekt-runner/internal/games/rekt"
	"github.com/vovakirdan/rekt-runner/internal/platform/tui"
	"github.com/vovakirdan/rekt-runner/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start a run straight away.

Controls:
  Space/Up/W/Enter - Jump (restart after getting rekt)
  B                - Boost (stands in for a tip)
  P                - Pause
  R                - Restart
  Esc              - Back to menu (paused or rekt)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at the base speed, progresses to max
  normal - Start at 30% of the speed bonus, progresses to max
  hard   - Start at 70% of the speed bonus, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  rekt play
  rekt play --difficulty hard
  rekt play --seed 42
  rekt play --config ./my-rekt.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	for _, c := range []*cobra.Command{playCmd, menuCmd, simCmd} {
		c.Flags().StringVar(&flagConfig, "config", "", "Path to custom config (YAML or TOML)")
		c.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	}
}

// configureGame applies --config and --difficulty before any run starts.
func configureGame() error {
	rekt.SetConfigPath(flagConfig)
	return rekt.SetDifficultyPreset(flagDifficulty)
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, err := newLogger("rekt")
	if err != nil {
		return err
	}
	if err := configureGame(); err != nil {
		return err
	}

	// Open run history
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		// Continue without storage - game still works
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	cfg := runtimeConfig()
	backToMenu, err := tui.Run(rekt.New(), store, logger, localPlayer(), cfg)
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	if backToMenu {
		return menuLoop(store, logger, cfg)
	}
	return nil
}
