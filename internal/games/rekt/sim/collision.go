package sim

import (
	"math"

	"github.com/vovakirdan/rekt-runner/internal/core"
)

// Intersects reports whether a rectangle and a circle overlap using
// closest-point clamping.
func Intersects(r core.RectF, c core.Circle) bool {
	return r.IntersectsCircle(c)
}

// hitHazard ends the run and books the crash penalty. The penalty is applied
// once, on the transition to dead, even if several traps overlap the bull.
func (e *Engine) hitHazard() {
	if !e.world.Alive {
		return
	}
	e.world.Alive = false
	e.world.PnL = math.Max(e.cfg.Scoring.PnLFloor, e.world.PnL-e.cfg.Scoring.CrashPenalty)
}

// collectBoost consumes a candle and raises the boost up to the cap.
func (e *Engine) collectBoost(b *Entity) {
	b.Live = false
	e.world.Candles++
	e.addBoost(e.cfg.World.CandleBoost)
}

// addBoost changes the boost magnitude, kept within [0, cap].
func (e *Engine) addBoost(amount float64) {
	e.world.Boost = core.ClampF(e.world.Boost+amount, 0, e.cfg.World.BoostCap)
}
