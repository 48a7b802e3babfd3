package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rekt-runner/internal/core"
	"github.com/vovakirdan/rekt-runner/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresPlayer string
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best runs and overall stats from the run history.

Examples:
  rekt scores
  rekt scores --limit 25
  rekt scores --player alice
  rekt scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Show the latest runs of one player")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the whole run history")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(); err != nil {
			return fmt.Errorf("clearing runs: %w", err)
		}
		fmt.Println("Run history cleared.")
		return nil
	}

	var runs []storage.Run
	if flagScoresPlayer != "" {
		fmt.Printf("Latest runs - %s\n", flagScoresPlayer)
		runs, err = store.PlayerRuns(flagScoresPlayer, flagScoresLimit)
	} else {
		fmt.Println("High Scores - Rekt Runner")
		runs, err = store.TopRuns(flagScoresLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'rekt play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-12s  %-8s  %-11s  %-7s  %s\n", "Rank", "Player", "Score", "PnL", "Candles", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-11s  %-7s  %s\n", "----", "------", "-----", "---", "-------", "----")

	for i, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-12s  %-8d  %-11s  %-7d  %s\n",
			i+1, r.Player, r.Score, core.FormatPnL(r.PnL), r.Candles, dateStr)
	}

	stats, err := store.Stats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Best: %d  Average: %.0f  Candles: %d\n",
		stats.Runs, stats.HighScore, stats.AvgScore, stats.TotalCandles)
	fmt.Printf("PnL range: %s to %s\n", core.FormatPnL(stats.WorstPnL), core.FormatPnL(stats.BestPnL))
	return nil
}
