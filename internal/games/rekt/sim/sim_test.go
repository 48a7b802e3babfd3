package sim

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/rekt-runner/internal/config"
)

const (
	testViewW = 640
	testViewH = 384
	frameMS   = 1000.0 / 60.0
)

// newTestEngine builds an engine over an 80x24 terminal worth of units.
func newTestEngine(seed int64, mutate func(*config.RektConfig)) *Engine {
	cfg := config.DefaultRektConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	return New(cfg, testViewW, testViewH, rand.New(rand.NewSource(seed)))
}

// flat removes terrain variation, crash zones and spawns.
func flat(cfg *config.RektConfig) {
	cfg.Terrain.Amplitude = 0
	cfg.Terrain.CrashThreshold = -2
	cfg.Spawns.Gate = 0
}

// noSpawns keeps the default terrain but never spawns entities.
func noSpawns(cfg *config.RektConfig) {
	cfg.Spawns.Gate = 0
}

// settle steps until the bull stands on the ground.
func settle(t *testing.T, e *Engine) {
	t.Helper()
	for i := 0; i < 120; i++ {
		e.Step(frameMS)
		if e.actor.Grounded {
			return
		}
	}
	t.Fatalf("bull never landed, y=%v vy=%v", e.actor.Y, e.actor.VY)
}

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-6 && d > -1e-6
}
