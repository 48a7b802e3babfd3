package sim

import "github.com/vovakirdan/rekt-runner/internal/core"

// Kind distinguishes hazard entities from boost entities.
type Kind int

const (
	KindHazard Kind = iota // Bear trap: kills the bull on contact
	KindBoost              // Green candle: adds boost when collected
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindHazard:
		return "hazard"
	case KindBoost:
		return "boost"
	default:
		return "unknown"
	}
}

// Entity is a hazard or boost riding on the terrain.
// X is the horizontal center. For hazards Y is the top of the trap; for
// boosts Y is the bottom of the candle body.
type Entity struct {
	Kind Kind
	X, Y float64
	W, H float64
	Live bool
}

// Rect returns the collision rectangle of the entity.
func (e Entity) Rect() core.RectF {
	if e.Kind == KindBoost {
		return core.RectF{X: e.X - e.W/2, Y: e.Y - e.H, W: e.W, H: e.H}
	}
	return core.RectF{X: e.X - e.W/2, Y: e.Y, W: e.W, H: e.H}
}

// compact removes dead entities in place.
func compact(entities []Entity) []Entity {
	live := entities[:0]
	for _, e := range entities {
		if e.Live {
			live = append(live, e)
		}
	}
	return live
}
