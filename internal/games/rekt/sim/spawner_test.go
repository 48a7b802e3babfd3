package sim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/rekt-runner/internal/config"
)

func TestSpawnerProbabilities(t *testing.T) {
	cfg := config.DefaultRektConfig().Spawns
	s := NewSpawner(cfg, rand.New(rand.NewSource(99)))

	const trials = 100000
	hazards, boosts := 0, 0
	for i := 0; i < trials; i++ {
		for _, e := range s.MaybeSpawn(testViewW) {
			switch e.Kind {
			case KindHazard:
				hazards++
			case KindBoost:
				boosts++
			}
		}
	}

	tests := []struct {
		name string
		got  int
		want float64
	}{
		{"hazard", hazards, 0.028},
		{"boost", boosts, 0.018},
	}
	for _, tc := range tests {
		rate := float64(tc.got) / trials
		if math.Abs(rate-tc.want) > 0.003 {
			t.Errorf("%s rate = %.4f, expected about %.3f", tc.name, rate, tc.want)
		}
	}
}

func TestSpawnerGate(t *testing.T) {
	cfg := config.DefaultRektConfig().Spawns
	cfg.HazardChance = 1
	cfg.BoostChance = 1

	cfg.Gate = 0
	closed := NewSpawner(cfg, rand.New(rand.NewSource(1)))
	for i := 0; i < 1000; i++ {
		if got := closed.Roll(testViewW); len(got) != 0 {
			t.Fatalf("closed gate spawned %d entities", len(got))
		}
	}

	cfg.Gate = 1
	open := NewSpawner(cfg, rand.New(rand.NewSource(1)))
	got := open.Roll(testViewW)
	if len(got) != 2 {
		t.Fatalf("open gate with certain trials spawned %d entities, expected 2", len(got))
	}

	hazard, boost := got[0], got[1]
	if hazard.Kind != KindHazard || boost.Kind != KindBoost {
		t.Fatalf("unexpected kinds %v, %v", hazard.Kind, boost.Kind)
	}
	for _, e := range got {
		if e.X != testViewW+40 {
			t.Errorf("%v spawned at x=%v, expected %v", e.Kind, e.X, testViewW+40)
		}
		if e.Y != 0 || !e.Live {
			t.Errorf("%v should spawn live with unset y, got %+v", e.Kind, e)
		}
	}
	if hazard.W != 22 || hazard.H != 18 {
		t.Errorf("hazard size = %vx%v, expected 22x18", hazard.W, hazard.H)
	}
	if boost.W != 14 || boost.H != 54 {
		t.Errorf("boost size = %vx%v, expected 14x54", boost.W, boost.H)
	}
}

func TestEntityRect(t *testing.T) {
	hazard := Entity{Kind: KindHazard, X: 100, Y: 50, W: 22, H: 18}
	if r := hazard.Rect(); r.X != 89 || r.Y != 50 || r.W != 22 || r.H != 18 {
		t.Errorf("hazard rect = %+v", r)
	}

	boost := Entity{Kind: KindBoost, X: 100, Y: 50, W: 14, H: 54}
	if r := boost.Rect(); r.X != 93 || r.Y != -4 || r.W != 14 || r.H != 54 {
		t.Errorf("boost rect = %+v", r)
	}
}
