// Package rekt binds the runner simulation to the arcade platform.
// The bull runs on its own; the player jumps over bear traps and grabs
// green candles for a speed and jump boost.
package rekt

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/rekt-runner/internal/config"
	"github.com/vovakirdan/rekt-runner/internal/core"
	"github.com/vovakirdan/rekt-runner/internal/games/rekt/sim"
)

// One terminal cell in world units.
const (
	CellW = 8
	CellH = 16
)

// Game implements the platform game contract on top of sim.Engine.
type Game struct {
	engine  *sim.Engine
	cfg     config.RektConfig
	runtime core.RuntimeConfig
	paused  bool
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. An empty string keeps the
// config's own difficulty section.
func SetDifficultyPreset(preset string) error {
	p, err := config.ParsePreset(preset)
	if err != nil {
		return err
	}
	difficultyPreset = p
	return nil
}

// New creates a new Rekt Runner game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "rekt"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Rekt Runner"
}

// Reset loads the config and starts a fresh run sized to the screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadRekt(configPath)
	if err != nil || cfg.Validate() != nil {
		cfg = config.DefaultRektConfig()
	}
	config.ApplyRektPreset(&cfg, difficultyPreset)
	g.cfg = cfg

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	w, h := viewport(runtime.ScreenW, runtime.ScreenH)
	g.engine = sim.New(cfg, w, h, rand.New(rand.NewSource(seed)))
	g.paused = false
}

// viewport converts a screen size in cells to world units.
func viewport(cols, rows int) (float64, float64) {
	return float64(cols * CellW), float64(rows * CellH)
}

// Step advances the run by one frame. dt is the wall time since the
// previous frame; zero falls back to the nominal tick length.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.engine.Reset()
		g.paused = false
	}

	if in.Has(core.ActionPause) && g.engine.Alive() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionBoost) {
		g.engine.NotifyExternalBoost()
	}
	if in.Has(core.ActionActivate) {
		g.engine.Activate()
	}

	ms := float64(dt) / float64(time.Millisecond)
	if ms <= 0 {
		ms = g.runtime.FrameMillis()
	}

	wasAlive := g.engine.Alive()
	g.engine.Step(ms)

	return core.StepResult{
		State:   g.State(),
		Crashed: wasAlive && !g.engine.Alive(),
	}
}

// Resize follows a terminal resize without ending the run.
func (g *Game) Resize(cols, rows int) {
	g.runtime.ScreenW = cols
	g.runtime.ScreenH = rows
	if g.engine != nil {
		g.engine.Resize(viewport(cols, rows))
	}
}

// Snapshot exposes the read-only simulation state.
func (g *Game) Snapshot() sim.Snapshot {
	return g.engine.Snapshot()
}

// Candles returns the number of green candles collected this run.
func (g *Game) Candles() int {
	return g.engine.World().Candles
}

// Frames returns the number of frames the current run has lasted.
func (g *Game) Frames() uint64 {
	return g.engine.World().Frame
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    int(g.engine.Score()),
		PnL:      g.engine.PnL(),
		GameOver: !g.engine.Alive(),
		Paused:   g.paused,
	}
}
