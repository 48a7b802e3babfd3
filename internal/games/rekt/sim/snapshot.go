package sim

import "math"

// Snapshot is a read-only copy of everything a renderer needs. Mutating it
// has no effect on the engine.
type Snapshot struct {
	World   World
	Actor   Actor
	Terrain []Point
	Hazards []Entity
	Boosts  []Entity
	ViewW   float64
	ViewH   float64

	step     float64
	baseline float64
}

// Snapshot captures the current state after the last Step.
func (e *Engine) Snapshot() Snapshot {
	hazards := make([]Entity, len(e.hazards))
	copy(hazards, e.hazards)
	boosts := make([]Entity, len(e.boosts))
	copy(boosts, e.boosts)

	return Snapshot{
		World:    e.world,
		Actor:    e.actor,
		Terrain:  e.terrain.Points(),
		Hazards:  hazards,
		Boosts:   boosts,
		ViewW:    e.viewW,
		ViewH:    e.viewH,
		step:     e.cfg.Terrain.Step,
		baseline: e.terrain.Baseline(),
	}
}

// GroundAt interpolates the captured terrain the same way the engine does.
func (s Snapshot) GroundAt(x float64) float64 {
	return groundAt(s.Terrain, s.step, x, s.baseline)
}

// CrashAt reports whether the sample at or left of x is in a crash zone.
func (s Snapshot) CrashAt(x float64) bool {
	if len(s.Terrain) == 0 || s.step <= 0 {
		return false
	}
	i := int(math.Floor((x - s.Terrain[0].X) / s.step))
	if i < 0 || i >= len(s.Terrain) {
		return false
	}
	return s.Terrain[i].Crash
}
