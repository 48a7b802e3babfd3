package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rekt-runner/internal/core"
	"github.com/vovakirdan/rekt-runner/internal/games/rekt"
	"github.com/vovakirdan/rekt-runner/internal/storage"
)

var (
	flagSimFrames    int
	flagSimJumpEvery int
	flagSimWidth     int
	flagSimHeight    int
	flagSimSave      bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run the simulation without a terminal UI at the nominal frame rate.
The bot jumps every N frames and the run stops when it gets rekt or
the frame limit is reached. Use --seed for a reproducible run.

Examples:
  rekt sim --seed 42
  rekt sim --seed 42 --frames 20000 --jump-every 45
  rekt sim --difficulty hard --save`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimFrames, "frames", 10000, "Maximum frames to simulate")
	simCmd.Flags().IntVar(&flagSimJumpEvery, "jump-every", 0, "Jump every N frames (0 = never)")
	simCmd.Flags().IntVar(&flagSimWidth, "width", 80, "Viewport width in cells")
	simCmd.Flags().IntVar(&flagSimHeight, "height", 24, "Viewport height in cells")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record the run in the history database")
}

func runSim(_ *cobra.Command, _ []string) error {
	logger, err := newLogger("rekt-sim")
	if err != nil {
		return err
	}
	if err := configureGame(); err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg := core.RuntimeConfig{
		ScreenW:  flagSimWidth,
		ScreenH:  flagSimHeight,
		TickRate: flagFPS,
		Seed:     seed,
	}

	game := rekt.New()
	game.Reset(cfg)

	start := time.Now()
	in := core.NewInputFrame()
	var state core.GameState
	for frame := 1; frame <= flagSimFrames; frame++ {
		in.Clear()
		if flagSimJumpEvery > 0 && frame%flagSimJumpEvery == 0 {
			in.Set(core.ActionActivate)
		}

		result := game.Step(in, 0)
		state = result.State
		if result.Crashed {
			logger.Debug("rekt", "frame", frame)
			break
		}
	}

	logger.Info("simulation finished",
		"seed", seed,
		"frames", game.Frames(),
		"elapsed", time.Since(start).Round(time.Millisecond),
	)

	outcome := "survived"
	if state.GameOver {
		outcome = "rekt"
	}
	fmt.Printf("Seed:    %d\n", seed)
	fmt.Printf("Outcome: %s after %d frames\n", outcome, game.Frames())
	fmt.Printf("Score:   %d\n", state.Score)
	fmt.Printf("PnL:     %s\n", core.FormatPnL(state.PnL))
	fmt.Printf("Candles: %d\n", game.Candles())

	if !flagSimSave {
		return nil
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	id, err := store.SaveRun(storage.Run{
		Player:  "sim",
		Score:   state.Score,
		PnL:     state.PnL,
		Candles: game.Candles(),
		Frames:  int64(game.Frames()),
	})
	if err != nil {
		return fmt.Errorf("saving run: %w", err)
	}
	logger.Info("run saved", "id", id)
	return nil
}
