// Package sim is the Rekt Runner simulation engine: procedural terrain,
// entity spawning, actor physics, collisions and the alive/dead state
// machine. It has no rendering or terminal dependencies; renderers read a
// Snapshot after each Step.
package sim

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/rekt-runner/internal/config"
	"github.com/vovakirdan/rekt-runner/internal/core"
)

// World is the run-level state advanced once per frame.
type World struct {
	Scroll  float64 // Distance traveled, used for parallax
	Speed   float64 // Scroll speed of the last frame
	Boost   float64 // Decaying buff in [0, BoostCap]
	Alive   bool
	Score   float64 // Grows with distance while alive
	PnL     float64 // Display metric derived from score, may go negative
	Candles int     // Boosts collected this run
	Frame   uint64  // Frames advanced this run
}

// Engine owns the whole simulation context. It is not safe for concurrent
// use; the platform drives it from a single frame loop.
type Engine struct {
	cfg        config.RektConfig
	difficulty *config.DifficultyManager
	world      World
	actor      Actor
	terrain    *Terrain
	spawner    *Spawner
	hazards    []Entity
	boosts     []Entity
	viewW      float64
	viewH      float64
}

// New creates an engine for a viewport of viewW x viewH world units and
// resets it to the start condition. rng supplies all spawn randomness.
func New(cfg config.RektConfig, viewW, viewH float64, rng *rand.Rand) *Engine {
	e := &Engine{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		terrain:    NewTerrain(cfg.Terrain, viewW, viewH),
		spawner:    NewSpawner(cfg.Spawns, rng),
		hazards:    make([]Entity, 0, 8),
		boosts:     make([]Entity, 0, 8),
		viewW:      viewW,
		viewH:      viewH,
	}
	e.Reset()
	return e
}

// Reset reinitializes every piece of run state. The terrain is left empty
// and regenerates from the reset scroll origin on the next Step.
func (e *Engine) Reset() {
	e.world = World{
		Speed: e.difficulty.Speed(e.cfg.World.BaseSpeed, 0, 0),
		Alive: true,
	}
	e.actor = Actor{
		X: e.cfg.Physics.ActorX,
		Y: e.viewH * e.cfg.Physics.SpawnHeightRatio,
		R: e.cfg.Physics.ActorRadius,
	}
	e.terrain.Clear()
	e.hazards = e.hazards[:0]
	e.boosts = e.boosts[:0]
}

// Step advances the simulation by one frame. dt is the elapsed time in
// milliseconds and only drives boost decay; distance is per frame. Negative
// dt counts as zero. Step does nothing once the run is over.
func (e *Engine) Step(dt float64) {
	if !e.world.Alive {
		return
	}
	w := &e.world

	base := e.difficulty.Speed(e.cfg.World.BaseSpeed, w.Score, int(w.Frame))
	w.Speed = base + w.Boost*e.cfg.World.BoostSpeedFactor
	w.Boost = core.ClampF(w.Boost-max(dt, 0)*e.cfg.World.BoostDecay, 0, e.cfg.World.BoostCap)

	origin := w.Scroll
	w.Scroll += w.Speed
	w.Score += w.Speed
	w.PnL = math.Max(e.cfg.Scoring.PnLFloor, w.Score*e.cfg.Scoring.PnLScale)

	e.terrain.Extend(origin)
	e.terrain.Shift(w.Speed)

	for _, ent := range e.spawner.Roll(e.viewW) {
		switch ent.Kind {
		case KindHazard:
			e.hazards = append(e.hazards, ent)
		case KindBoost:
			e.boosts = append(e.boosts, ent)
		}
	}

	e.updateHazards()
	e.updateBoosts()

	e.actor.Integrate(e.cfg.Physics, e.terrain.GroundAt)
	if e.actor.FellOut(e.cfg.Physics, e.viewH) {
		w.Alive = false
	}

	w.Frame++
}

// updateHazards moves, ground-snaps, culls and collides every trap.
func (e *Engine) updateHazards() {
	circle := e.actor.Circle()
	for i := range e.hazards {
		h := &e.hazards[i]
		h.X -= e.world.Speed
		h.Y = e.terrain.GroundAt(h.X) - e.cfg.Spawns.HazardLift
		if h.X < e.cfg.Spawns.CullX {
			h.Live = false
			continue
		}
		if Intersects(h.Rect(), circle) {
			e.hitHazard()
		}
	}
	e.hazards = compact(e.hazards)
}

// updateBoosts moves, ground-snaps, culls and collects every candle.
func (e *Engine) updateBoosts() {
	circle := e.actor.Circle()
	for i := range e.boosts {
		b := &e.boosts[i]
		b.X -= e.world.Speed
		b.Y = e.terrain.GroundAt(b.X) - e.cfg.Spawns.BoostLift
		if b.X < e.cfg.Spawns.CullX {
			b.Live = false
			continue
		}
		if Intersects(b.Rect(), circle) {
			e.collectBoost(b)
		}
	}
	e.boosts = compact(e.boosts)
}

// Activate is the single input trigger: restart when dead, jump when
// grounded, nothing while airborne.
func (e *Engine) Activate() {
	if !e.world.Alive {
		e.Reset()
		return
	}
	e.actor.Jump(e.cfg.Physics, e.world.Boost)
}

// NotifyExternalBoost applies the boost of an event outside the game,
// capped like a collected candle.
func (e *Engine) NotifyExternalBoost() {
	e.addBoost(e.cfg.World.ExternalBoost)
}

// Resize changes the viewport. The run continues; the baseline follows the
// new height from the next generated sample on.
func (e *Engine) Resize(viewW, viewH float64) {
	e.viewW = viewW
	e.viewH = viewH
	e.terrain.Resize(viewW, viewH)
}

// Alive reports whether the run is still going.
func (e *Engine) Alive() bool {
	return e.world.Alive
}

// Score returns the distance-based score of the current run.
func (e *Engine) Score() float64 {
	return e.world.Score
}

// PnL returns the displayed profit and loss of the current run.
func (e *Engine) PnL() float64 {
	return e.world.PnL
}

// World returns a copy of the run-level state.
func (e *Engine) World() World {
	return e.world
}

// Actor returns a copy of the actor.
func (e *Engine) Actor() Actor {
	return e.actor
}

// GroundAt returns the interpolated ground height at a screen-relative x.
func (e *Engine) GroundAt(x float64) float64 {
	return e.terrain.GroundAt(x)
}
