package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // W, Up arrow
	ActionDown              // S, Down arrow
	ActionLeft              // A, Left arrow
	ActionRight             // D, Right arrow
	ActionConfirm           // Space, Enter - start from the title screen
	ActionPause             // P, Escape - pause/unpause game
	ActionRestart           // R - start a fresh run
	ActionQuit              // Q, Ctrl+C - exit the program
	ActionTheme             // T - cycle color theme
	ActionWallMode          // M - toggle wrap/solid walls
	ActionGrid              // G - toggle grid dots
	ActionSpeedUp           // +/= - raise base speed
	ActionSpeedDown         // -/_ - lower base speed
	ActionHelp              // F1 - flash the key help
	ActionPhoto             // F2 - hide all UI chrome
	ActionScreenshot        // F5, Ctrl+S - dump the screen to a text file
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionTheme:
		return "Theme"
	case ActionWallMode:
		return "WallMode"
	case ActionGrid:
		return "Grid"
	case ActionSpeedUp:
		return "SpeedUp"
	case ActionSpeedDown:
		return "SpeedDown"
	case ActionHelp:
		return "Help"
	case ActionPhoto:
		return "Photo"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Turns holds the steering actions in the order they were pressed.
	Turns []Action
}

// IsTurn reports whether a is one of the four steering actions.
func (a Action) IsTurn() bool {
	return a >= ActionUp && a <= ActionRight
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
	if a.IsTurn() {
		f.Turns = append(f.Turns, a)
	}
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether no action was triggered this frame.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Turns = f.Turns[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Turns = append([]Action(nil), f.Turns...)
	return clone
}
