package core

import "fmt"

// Action represents a semantic game action, abstracted from physical key presses.
// The input collaborator turns these into player velocity; scripts produce them headlessly.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - run left
	ActionRight          // D, Right arrow - run right
	ActionUp             // W, Up arrow - jump when grounded
	ActionJump           // Space - same as Up
	ActionPause          // P, Escape - pause/unpause
	ActionRestart        // X - restart level after it is decided
	ActionQuit           // Q - abandon the run
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionJump:
		return "Jump"
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

// ParseAction maps a single script letter to an action.
// '.' is accepted and means no action.
func ParseAction(r rune) (Action, error) {
	switch r {
	case '.':
		return ActionNone, nil
	case 'L', 'l':
		return ActionLeft, nil
	case 'R', 'r':
		return ActionRight, nil
	case 'U', 'u':
		return ActionUp, nil
	case 'J', 'j':
		return ActionJump, nil
	case 'P', 'p':
		return ActionPause, nil
	case 'X', 'x':
		return ActionRestart, nil
	case 'Q', 'q':
		return ActionQuit, nil
	default:
		return ActionNone, fmt.Errorf("unknown action %q", r)
	}
}

// InputFrame represents the input state during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
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
	if a == ActionNone {
		return
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
