package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/spacehub/space-arcade/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// gameKeys maps terminal key names to actions. Terminals never report
// Shift on its own, so shifted arrows and capital WASD carry the boost.
var gameKeys = map[string][]core.Action{
	"up":    {core.ActionUp},
	"w":     {core.ActionUp},
	"down":  {core.ActionDown},
	"s":     {core.ActionDown},
	"left":  {core.ActionLeft},
	"a":     {core.ActionLeft},
	"right": {core.ActionRight},
	"d":     {core.ActionRight},

	"shift+up":    {core.ActionBoost, core.ActionUp},
	"W":           {core.ActionBoost, core.ActionUp},
	"shift+down":  {core.ActionBoost, core.ActionDown},
	"S":           {core.ActionBoost, core.ActionDown},
	"shift+left":  {core.ActionBoost, core.ActionLeft},
	"A":           {core.ActionBoost, core.ActionLeft},
	"shift+right": {core.ActionBoost, core.ActionRight},
	"D":           {core.ActionBoost, core.ActionRight},

	"enter":  {core.ActionStart},
	" ":      {core.ActionStart},
	"r":      {core.ActionRestart},
	"p":      {core.ActionPause},
	"t":      {core.ActionTheme},
	"esc":    {core.ActionBack},
	"b":      {core.ActionBack},
	"q":      {core.ActionQuit},
	"ctrl+c": {core.ActionQuit},
}

// MapKey returns the actions a key press stands for. Unknown keys map to
// an empty slice.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) []core.Action {
	return gameKeys[msg.String()]
}

// IsHeld reports whether an action is continuous (held across frames)
// rather than a one-shot command consumed by a single frame.
func IsHeld(a core.Action) bool {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown, core.ActionBoost:
		return true
	}
	return false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionTheme
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	case "t":
		return MenuActionTheme
	}

	return MenuActionNone
}
