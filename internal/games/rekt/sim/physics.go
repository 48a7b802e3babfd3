package sim

import (
	"math"

	"github.com/vovakirdan/rekt-runner/internal/config"
	"github.com/vovakirdan/rekt-runner/internal/core"
)

// Actor is the bull. Its horizontal position is fixed; the world scrolls.
type Actor struct {
	X        float64 // Horizontal center
	Y        float64 // Vertical center, growing downward
	VY       float64 // Vertical velocity, negative = up
	R        float64 // Collision radius
	Grounded bool
}

// Circle returns the collision circle of the actor.
func (a Actor) Circle() core.Circle {
	return core.Circle{X: a.X, Y: a.Y, R: a.R}
}

// Integrate advances the actor by one frame: gravity, one explicit Euler
// step, then the ground clamp against groundAt(X) minus the visual offset.
func (a *Actor) Integrate(cfg config.RektPhysics, groundAt func(x float64) float64) {
	a.VY += cfg.Gravity
	a.Y += a.VY

	gy := groundAt(a.X) - cfg.GroundOffset
	if a.Y >= gy {
		a.Y = gy
		a.VY = 0
		a.Grounded = true
	} else {
		a.Grounded = false
	}
}

// Jump applies the jump impulse if the actor stands on the ground. Boost
// makes the jump bigger, up to the configured cap. Airborne actors cannot
// jump again. Returns whether the jump happened.
func (a *Actor) Jump(cfg config.RektPhysics, boost float64) bool {
	if !a.Grounded {
		return false
	}
	a.VY = cfg.JumpImpulse - math.Min(cfg.JumpBoostCap, boost*cfg.JumpBoostFactor)
	a.Grounded = false
	return true
}

// FellOut reports whether the actor dropped below the viewport by more than
// the fall margin, which happens in crash-zone pits.
func (a Actor) FellOut(cfg config.RektPhysics, viewH float64) bool {
	return a.Y > viewH+cfg.FallMargin
}
