// Package tui provides the Bubble Tea integration for Rekt Runner.
// It handles the terminal UI loop, input mapping, menus and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameDelta caps the elapsed time fed into one simulation step.
const maxFrameDelta = 100 * time.Millisecond

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameClock measures wall time between ticks.
type frameClock struct {
	last time.Time
}

// Delta returns the time since the previous tick, clamped to
// [0, maxFrameDelta]. The first tick reports zero, which the game maps to
// its nominal frame length.
func (c *frameClock) Delta(now time.Time) time.Duration {
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	dt := now.Sub(c.last)
	c.last = now
	return min(max(dt, 0), maxFrameDelta)
}

// Reset forgets the previous tick, e.g. after a pause or restart.
func (c *frameClock) Reset() {
	c.last = time.Time{}
}
