package sim

import (
	"math/rand"

	"github.com/vovakirdan/rekt-runner/internal/config"
)

// Spawner creates hazards and boosts at the right edge of the viewport.
type Spawner struct {
	cfg config.RektSpawns
	rng *rand.Rand
}

// NewSpawner creates a spawner drawing from the given random source.
func NewSpawner(cfg config.RektSpawns, rng *rand.Rand) *Spawner {
	return &Spawner{cfg: cfg, rng: rng}
}

// Roll is called once per frame. It passes the outer gate with the
// configured probability and then runs MaybeSpawn.
func (s *Spawner) Roll(viewW float64) []Entity {
	if s.rng.Float64() >= s.cfg.Gate {
		return nil
	}
	return s.MaybeSpawn(viewW)
}

// MaybeSpawn runs two independent Bernoulli trials, one per entity kind, and
// returns the entities created. Y is left at zero until the first ground snap.
func (s *Spawner) MaybeSpawn(viewW float64) []Entity {
	var spawned []Entity
	x := viewW + s.cfg.SpawnOffset

	if s.rng.Float64() < s.cfg.HazardChance {
		spawned = append(spawned, Entity{
			Kind: KindHazard,
			X:    x,
			W:    s.cfg.HazardWidth,
			H:    s.cfg.HazardHeight,
			Live: true,
		})
	}

	if s.rng.Float64() < s.cfg.BoostChance {
		spawned = append(spawned, Entity{
			Kind: KindBoost,
			X:    x,
			W:    s.cfg.BoostWidth,
			H:    s.cfg.BoostHeight,
			Live: true,
		})
	}

	return spawned
}
