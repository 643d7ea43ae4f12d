package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/oled-arcade/internal/core"
)

// KeyMapper translates Bubble Tea key messages to device buttons.
type KeyMapper struct {
	buttons map[string]core.ButtonID
}

// NewKeyMapper creates a key mapper with default bindings: arrows or
// vim keys for the pad, z/space for A and x/enter for B.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{buttons: map[string]core.ButtonID{
		"up":    core.ButtonUp,
		"k":     core.ButtonUp,
		"down":  core.ButtonDown,
		"j":     core.ButtonDown,
		"left":  core.ButtonLeft,
		"h":     core.ButtonLeft,
		"right": core.ButtonRight,
		"l":     core.ButtonRight,
		"z":     core.ButtonA,
		" ":     core.ButtonA,
		"x":     core.ButtonB,
		"enter": core.ButtonB,
	}}
}

// Button returns the device button bound to the key.
func (km *KeyMapper) Button(msg tea.KeyMsg) (core.ButtonID, bool) {
	b, ok := km.buttons[msg.String()]
	return b, ok
}

// IsQuit reports whether the key quits the program.
func (km *KeyMapper) IsQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "ctrl+c", "q":
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
	MenuActionStats
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionStats
	}
	return MenuActionNone
}
