package core

// Action is a semantic input, independent of the key that produced it.
type Action uint8

const (
	ActionNone     Action = iota
	ActionActivate        // Jump, or start a new run after getting rekt
	ActionBoost           // External boost event (stands in for a tip)
	ActionPause           // Toggle pause
	ActionRestart         // Restart the run at any time
	ActionBack            // Leave the run for the menu
	ActionQuit            // Exit the program or session
)

var actionNames = [...]string{
	ActionNone:     "None",
	ActionActivate: "Activate",
	ActionBoost:    "Boost",
	ActionPause:    "Pause",
	ActionRestart:  "Restart",
	ActionBack:     "Back",
	ActionQuit:     "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "Unknown"
}

// InputFrame is the set of actions triggered between two frames.
// The zero value is an empty frame.
type InputFrame uint32

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return 0
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	*f |= 1 << a
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return a != ActionNone && f&(1<<a) != 0
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return f == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	*f = 0
}
