package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone        Action = iota
	ActionMoveForward        // W, Up arrow - walk away from the camera
	ActionMoveLeft           // A, Left arrow
	ActionMoveBack           // S, Down arrow - walk towards the camera
	ActionMoveRight          // D, Right arrow
	ActionPause              // P, Escape
	ActionRestart            // R - restart after game over
	ActionQuit               // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveForward:
		return "MoveForward"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveBack:
		return "MoveBack"
	case ActionMoveRight:
		return "MoveRight"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// MoveActions lists the movement actions in the order the keyboard handler
// gives them priority when several are held at once.
var MoveActions = [...]Action{
	ActionMoveForward,
	ActionMoveLeft,
	ActionMoveBack,
	ActionMoveRight,
}

// InputFrame represents the input state for a single player during one
// simulation tick. Movement actions are present for as long as the key is held;
// the other actions are one-shot presses.
type InputFrame struct {
	Actions map[Action]bool
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
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
