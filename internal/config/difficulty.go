package config

import "github.com/vovakirdan/rekt-runner/internal/core"

// Progression types accepted in difficulty.progression.type.
const (
	ProgressScore = "score" // Ramp with distance run
	ProgressTime  = "time"  // Ramp with frames survived
	ProgressNone  = "none"  // Hold the initial level
)

// DifficultyManager turns run progress into a difficulty level and the
// resulting scroll speed. A level of 0 is the base speed, 1 adds the full
// speed bonus.
type DifficultyManager struct {
	start  float64 // Level at the start of a run, in [0, 1]
	ramp   string
	maxAt  float64
	bonus  float64
	active bool
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	maxAt := cfg.Progression.MaxAt
	if maxAt <= 0 {
		maxAt = 1
	}
	ramp := cfg.Progression.Type
	return &DifficultyManager{
		start:  core.ClampF(cfg.InitialLevel, 0, 1),
		ramp:   ramp,
		maxAt:  maxAt,
		bonus:  cfg.Scaling.SpeedBonus,
		active: cfg.Enabled && (ramp == ProgressScore || ramp == ProgressTime),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.active
}

// Level returns the difficulty in [0, 1] for a run that has covered score
// distance over the given number of frames.
func (d *DifficultyManager) Level(score float64, frames int) float64 {
	if !d.active {
		return d.start
	}

	done := score
	if d.ramp == ProgressTime {
		done = float64(frames)
	}
	progress := core.ClampF(done/d.maxAt, 0, 1)
	return d.start + progress*(1-d.start)
}

// Speed returns the scroll speed before boost for the current difficulty.
// With the default config this is 3.2 + min(2.6, score/700).
func (d *DifficultyManager) Speed(baseSpeed, score float64, frames int) float64 {
	return baseSpeed + d.Level(score, frames)*d.bonus
}
