package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rekt-runner/internal/core"
)

// Neon chart palette.
const (
	neonGreen = lipgloss.Color("#00ff66")
	neonRed   = lipgloss.Color("#ff0033")
	neonMint  = lipgloss.Color("#8affbf")
	darkGreen = lipgloss.Color("22")
	darkRed   = lipgloss.Color("88")
)

// palette maps each screen color role to its terminal style.
var palette = map[core.Color]lipgloss.Style{
	core.ColorGrid:      lipgloss.NewStyle().Foreground(darkGreen),
	core.ColorDecorUp:   lipgloss.NewStyle().Foreground(darkGreen),
	core.ColorDecorDown: lipgloss.NewStyle().Foreground(darkRed),
	core.ColorTerrain:   lipgloss.NewStyle().Foreground(neonGreen),
	core.ColorCrash:     lipgloss.NewStyle().Foreground(neonRed).Bold(true),
	core.ColorCrashDeep: lipgloss.NewStyle().Foreground(darkRed),
	core.ColorBull:      lipgloss.NewStyle().Foreground(neonGreen).Bold(true),
	core.ColorTrap:      lipgloss.NewStyle().Foreground(neonRed),
	core.ColorCandle:    lipgloss.NewStyle().Foreground(neonGreen),
	core.ColorText:      lipgloss.NewStyle().Foreground(neonMint),
	core.ColorGain:      lipgloss.NewStyle().Foreground(neonGreen).Bold(true),
	core.ColorLoss:      lipgloss.NewStyle().Foreground(neonRed).Bold(true),
}

// styleFor returns the style of a color role; unknown roles render plain.
func styleFor(c core.Color) lipgloss.Style {
	if st, ok := palette[c]; ok {
		return st
	}
	return lipgloss.NewStyle()
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Each row is split into spans of one color so every span is styled once.
func RenderScreen(s *core.Screen) string {
	var out, span strings.Builder
	out.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			out.WriteByte('\n')
		}

		span.Reset()
		current := s.GetCell(0, y).Color
		for x, w := 0, s.Width(); x < w; x++ {
			cell := s.GetCell(x, y)
			if cell.Color != current {
				out.WriteString(styleFor(current).Render(span.String()))
				span.Reset()
				current = cell.Color
			}
			span.WriteRune(cell.Rune)
		}
		if span.Len() > 0 {
			out.WriteString(styleFor(current).Render(span.String()))
		}
	}
	return out.String()
}
