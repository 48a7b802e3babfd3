package sim

import (
	"math"

	"github.com/vovakirdan/rekt-runner/internal/config"
)

// Point is one terrain sample in screen-relative units.
type Point struct {
	X     float64 // Horizontal offset from the left edge of the viewport
	Y     float64 // Ground height, growing downward
	Crash bool    // Inside a crash zone (rendered highlight only)
}

// Noise is the closed-form ground shape at an absolute world coordinate.
// It is a pure function, so regenerated terrain always matches.
func Noise(x float64) float64 {
	return math.Sin(x*0.013)*0.6 + math.Sin(x*0.041)*0.3 + math.Sin(x*0.007)*0.25
}

// Terrain maintains the scrolling ground profile.
type Terrain struct {
	cfg    config.RektTerrain
	points []Point
	viewW  float64
	viewH  float64
}

// NewTerrain creates an empty terrain for the given viewport.
func NewTerrain(cfg config.RektTerrain, viewW, viewH float64) *Terrain {
	return &Terrain{
		cfg:    cfg,
		points: make([]Point, 0, int(viewW/cfg.Step)+cfg.Margin+1),
		viewW:  viewW,
		viewH:  viewH,
	}
}

// Baseline is the resting ground height for the current viewport.
func (t *Terrain) Baseline() float64 {
	return math.Round(t.viewH * t.cfg.BaselineRatio)
}

// IsCrash reports whether a world coordinate lies in a crash zone.
func (t *Terrain) IsCrash(worldX float64) bool {
	return math.Sin(worldX*t.cfg.CrashFrequency) < t.cfg.CrashThreshold
}

// HeightAt returns the ground height at an absolute world coordinate and
// whether the coordinate is a crash zone. Crash zones drop the ground by a
// fixed amount plus a volatility-scaled extra.
func (t *Terrain) HeightAt(worldX float64) (float64, bool) {
	n := Noise(worldX)
	y := t.Baseline() + n*t.cfg.Amplitude

	crash := t.IsCrash(worldX)
	if crash {
		vol := math.Abs(n) * 1.2
		y += t.cfg.CrashDrop + vol*t.cfg.CrashVolatility
	}
	return y, crash
}

// needed is the number of samples that covers the viewport plus lookahead.
func (t *Terrain) needed() int {
	return int(math.Ceil(t.viewW/t.cfg.Step)) + t.cfg.Margin
}

// Extend appends samples on the right until the viewport is covered.
// origin is the world coordinate of screen x = 0.
func (t *Terrain) Extend(origin float64) {
	need := t.needed()
	for len(t.points) < need {
		x := 0.0
		if n := len(t.points); n > 0 {
			x = t.points[n-1].X + t.cfg.Step
		}
		y, crash := t.HeightAt(origin + x)
		t.points = append(t.points, Point{X: x, Y: y, Crash: crash})
	}
}

// Shift scrolls every sample left by dx and prunes the ones that fell more
// than the prune distance behind the left edge.
func (t *Terrain) Shift(dx float64) {
	for i := range t.points {
		t.points[i].X -= dx
	}

	drop := 0
	for drop < len(t.points) && t.points[drop].X < t.cfg.PruneX {
		drop++
	}
	if drop > 0 {
		t.points = append(t.points[:0], t.points[drop:]...)
	}
}

// GroundAt returns the interpolated ground height at a screen-relative x.
// With fewer than two samples it returns the baseline.
func (t *Terrain) GroundAt(x float64) float64 {
	return groundAt(t.points, t.cfg.Step, x, t.Baseline())
}

// groundAt locates the bracketing pair by dividing the offset from the first
// sample by the step, clamped to the valid range, and interpolates linearly.
func groundAt(points []Point, step, x, baseline float64) float64 {
	if len(points) < 2 {
		return baseline
	}

	i := int(math.Floor((x - points[0].X) / step))
	i = max(0, min(len(points)-2, i))

	a, b := points[i], points[i+1]
	f := (x - a.X) / (b.X - a.X)
	return a.Y + (b.Y-a.Y)*f
}

// Len returns the number of samples in the profile.
func (t *Terrain) Len() int {
	return len(t.points)
}

// Points returns a copy of the profile.
func (t *Terrain) Points() []Point {
	out := make([]Point, len(t.points))
	copy(out, t.points)
	return out
}

// Clear drops every sample; the next Extend regenerates the profile.
func (t *Terrain) Clear() {
	t.points = t.points[:0]
}

// Resize updates the viewport. Existing samples are kept; the lookahead
// grows or shrinks on the next Extend and Shift.
func (t *Terrain) Resize(viewW, viewH float64) {
	t.viewW = viewW
	t.viewH = viewH
	if need := t.needed(); len(t.points) > need {
		t.points = t.points[:need]
	}
}
