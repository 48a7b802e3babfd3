package rekt

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/rekt-runner/internal/core"
	"github.com/vovakirdan/rekt-runner/internal/games/rekt/sim"
)

// Visual characters for rendering
const (
	GridChar      = '·'
	SurfaceFlat   = '━'
	SurfaceUp     = '╱'
	SurfaceDown   = '╲'
	CrashChar     = '╲'
	BullBody      = '█'
	BullHorn      = '━'
	TrapChar      = '▲'
	CandleBody    = '█'
	CandleWick    = '│'
	DecorBody     = '▒'
	DecorWick     = '┊'
	BoostPip      = '▮'
	BoostPipEmpty = '▯'
)

const (
	gridCols     = 4
	gridRows     = 2
	decorCandles = 14
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.engine.Snapshot()

	drawGrid(dst)
	drawDecor(dst, snap)
	drawTerrain(dst, snap)
	drawBoosts(dst, snap.Boosts)
	drawHazards(dst, snap.Hazards)
	drawBull(dst, snap.Actor)
	g.drawHUD(dst, snap.World)

	switch {
	case !snap.World.Alive:
		drawMessage(dst, core.ColorLoss, "REKT.",
			"Press Space to restart.",
			"Avoid bear traps. Hunt green candles.")
	case g.paused:
		drawMessage(dst, core.ColorText, "PAUSED", "Press P to resume")
	}
}

// col and row map world units to screen cells.
func col(x float64) int { return int(math.Floor(x / CellW)) }
func row(y float64) int { return int(math.Floor(y / CellH)) }

func drawGrid(dst *core.Screen) {
	for y := 1; y < dst.Height(); y += gridRows {
		for x := 0; x < dst.Width(); x += gridCols {
			dst.SetColor(x, y, GridChar, core.ColorGrid)
		}
	}
}

// drawDecor draws the background candles that scroll faster than the
// ground.
func drawDecor(dst *core.Screen, snap sim.Snapshot) {
	w, h := snap.ViewW, snap.ViewH
	scroll := snap.World.Scroll

	for i := 0; i < decorCandles; i++ {
		fi := float64(i)
		x := w - math.Mod(scroll*3+fi*120, w+160) - 40
		c := core.ColorDecorUp
		if math.Sin((scroll+fi*100)*0.01) <= -0.2 {
			c = core.ColorDecorDown
		}
		cy := h*0.22 + float64(i%5)*34
		bh := 26 + float64(i%6)*10

		cx := col(x)
		top, bottom := row(cy-bh), row(cy+bh)
		dst.DrawVLine(cx, top, bottom-top+1, DecorWick, c)
		bodyTop, bodyBottom := row(cy-12), row(cy+12)
		dst.DrawVLine(cx, bodyTop, bodyBottom-bodyTop+1, DecorBody, c)
	}
}

// drawTerrain draws the ground surface one column at a time, choosing the
// glyph from the slope to the next column.
func drawTerrain(dst *core.Screen, snap sim.Snapshot) {
	if len(snap.Terrain) < 2 {
		return
	}
	for x := 0; x < dst.Width(); x++ {
		wx := (float64(x) + 0.5) * CellW
		y := row(snap.GroundAt(wx))
		next := row(snap.GroundAt(wx + CellW))

		glyph := SurfaceFlat
		switch {
		case next < y:
			glyph = SurfaceUp
		case next > y:
			glyph = SurfaceDown
		}

		c := core.ColorTerrain
		if snap.CrashAt(wx) {
			glyph, c = CrashChar, core.ColorCrash
			dst.SetColor(x, y+1, CrashChar, core.ColorCrashDeep)
		}
		dst.SetColor(x, y, glyph, c)
	}
}

func drawBoosts(dst *core.Screen, boosts []sim.Entity) {
	for _, b := range boosts {
		r := b.Rect()
		x := col(b.X)
		top, bottom := row(r.Y), row(r.Bottom())
		dst.DrawVLine(x, row(r.Y-14), top-row(r.Y-14), CandleWick, core.ColorCandle)
		dst.DrawVLine(x, top, bottom-top, CandleBody, core.ColorCandle)
	}
}

func drawHazards(dst *core.Screen, hazards []sim.Entity) {
	for _, h := range hazards {
		r := h.Rect()
		y := row(r.Y + r.H/2)
		for x := col(r.X); x <= col(r.Right()); x++ {
			dst.SetColor(x, y, TrapChar, core.ColorTrap)
		}
	}
}

func drawBull(dst *core.Screen, a sim.Actor) {
	x, y := col(a.X), row(a.Y)
	dst.SetColor(x-1, y, BullHorn, core.ColorBull)
	dst.SetColor(x, y, BullBody, core.ColorBull)
	dst.SetColor(x+1, y, BullHorn, core.ColorBull)
}

// drawHUD draws PnL, score and the boost gauge on the top row.
func (g *Game) drawHUD(dst *core.Screen, w sim.World) {
	pnlColor := core.ColorGain
	if w.PnL < 0 {
		pnlColor = core.ColorLoss
	}

	x := 1
	dst.DrawTextColor(x, 0, "PnL ", core.ColorText)
	x += 4
	pnl := core.FormatPnL(w.PnL)
	dst.DrawTextColor(x, 0, pnl, pnlColor)
	x += len(pnl) + 2

	score := fmt.Sprintf("Score %d", int(w.Score))
	dst.DrawTextColor(x, 0, score, core.ColorText)
	x += len(score) + 2

	dst.DrawTextColor(x, 0, "Boost ", core.ColorText)
	x += 6
	dst.DrawTextColor(x, 0, boostGauge(w.Boost, g.cfg.World.BoostCap), core.ColorCandle)

	candles := fmt.Sprintf("Candles %d", w.Candles)
	dst.DrawTextColor(dst.Width()-len(candles)-1, 0, candles, core.ColorText)
}

// boostGauge renders boost as one pip per whole point up to the cap.
func boostGauge(boost, limit float64) string {
	n := int(math.Ceil(limit))
	full := min(n, int(math.Ceil(boost)))
	return strings.Repeat(string(BoostPip), full) + strings.Repeat(string(BoostPipEmpty), n-full)
}

// drawMessage draws a message box in the center of the screen.
func drawMessage(dst *core.Screen, titleColor core.Color, title string, lines ...string) {
	width := len(title)
	for _, l := range lines {
		width = core.Max(width, len(l))
	}

	boxW := width + 4
	boxH := len(lines) + 4
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, titleColor)
	dst.DrawTextCentered(box.Y+1, title, titleColor)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+3+i, l, core.ColorText)
	}
}
