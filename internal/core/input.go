package core

// Action is a semantic input, independent of the key that produced it.
type Action int

const (
	ActionNone    Action = iota
	ActionFlap           // Up, Space, W
	ActionConfirm        // Enter: start or restart a run
	ActionQuit           // Escape, Ctrl+C, window close
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionConfirm:
		return "Confirm"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of actions triggered since the previous tick.
// The zero value is an empty frame.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered. Repeats within a tick collapse into one.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the action was triggered.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear empties the frame for the next tick, keeping its storage.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}
