package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// Frontends translate keys into actions; games only ever see actions.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A
	ActionRight          // Right arrow, D
	ActionUp             // Up arrow, W
	ActionDown           // Down arrow, S
	ActionBoost          // Shift (alone or with an arrow)
	ActionStart          // Enter, Space - start a race, confirm in menus
	ActionRestart        // R - restart the current game
	ActionPause          // P - pause/unpause
	ActionTheme          // T - toggle dark/light palette
	ActionBack           // Esc, B - back to menu
	ActionQuit           // Q, Ctrl+C - exit game/session
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
	case ActionDown:
		return "Down"
	case ActionBoost:
		return "Boost"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionTheme:
		return "Theme"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input snapshot a game reads during one update step.
// Time is the frame timestamp; games measure spawn intervals, countdowns
// and boost timers against it rather than reading the wall clock.
type InputFrame struct {
	Actions map[Action]bool
	Time    time.Time
}

// NewInputFrame creates an empty input frame stamped with now.
func NewInputFrame(now time.Time) InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Time:    now,
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Axis returns -1, 0 or +1 for a pair of opposing actions.
// Both held cancel out.
func (f InputFrame) Axis(neg, pos Action) float64 {
	v := 0.0
	if f.Has(neg) {
		v--
	}
	if f.Has(pos) {
		v++
	}
	return v
}

// Merge copies every action of other into f.
func (f *InputFrame) Merge(other InputFrame) {
	for a, on := range other.Actions {
		if on {
			f.Set(a)
		}
	}
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame(f.Time)
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
