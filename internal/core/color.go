package core

// Color names what a screen cell shows rather than a hue; the platform maps
// each role to the neon chart palette.
type Color uint8

const (
	ColorDefault   Color = iota
	ColorGrid            // Chart grid dots
	ColorDecorUp         // Background candles closing green
	ColorDecorDown       // Background candles closing red
	ColorTerrain         // Ground surface
	ColorCrash           // Ground inside a crash zone
	ColorCrashDeep       // Wick under a crash zone
	ColorBull            // The runner
	ColorTrap            // Bear traps
	ColorCandle          // Green candles and the boost gauge
	ColorText            // HUD labels and messages
	ColorGain            // Positive PnL
	ColorLoss            // Negative PnL, REKT banner
)
