package core

import (
	"sync"
	"time"
)

// KeyState tracks which actions are currently held.
//
// Terminals only report key presses, so a press is considered held for the
// hold window after it was last seen; auto-repeat keeps refreshing it.
// A zero window keeps the action held until Release is called, which is
// what frontends with real key-up events use.
type KeyState struct {
	mu      sync.Mutex
	hold    time.Duration
	pressed map[Action]time.Time
}

// NewKeyState creates an empty key state with the given hold window.
func NewKeyState(hold time.Duration) *KeyState {
	return &KeyState{
		hold:    hold,
		pressed: make(map[Action]time.Time),
	}
}

// Press records that the action's key was seen down at now.
func (k *KeyState) Press(a Action, now time.Time) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.pressed[a] = now
}

// Release marks the action as no longer held.
func (k *KeyState) Release(a Action) {
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.pressed, a)
}

// Held reports whether the action counts as held at now.
func (k *KeyState) Held(a Action, now time.Time) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.heldLocked(a, now)
}

func (k *KeyState) heldLocked(a Action, now time.Time) bool {
	at, ok := k.pressed[a]
	if !ok {
		return false
	}
	if k.hold > 0 && now.Sub(at) > k.hold {
		delete(k.pressed, a)
		return false
	}
	return true
}

// Frame snapshots every held action into an InputFrame stamped with now.
func (k *KeyState) Frame(now time.Time) InputFrame {
	k.mu.Lock()
	defer k.mu.Unlock()

	in := NewInputFrame(now)
	for a := range k.pressed {
		if k.heldLocked(a, now) {
			in.Set(a)
		}
	}
	return in
}

// Reset releases every action.
func (k *KeyState) Reset() {
	k.mu.Lock()
	defer k.mu.Unlock()
	clear(k.pressed)
}
