package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// KeyMapper translates Bubble Tea key and mouse messages to game input.
// Keys are matched by their tea.KeyMsg string form.
type KeyMapper struct {
	game map[string]core.Action
	menu map[string]MenuAction
}

// NewKeyMapper creates a key mapper with the default bindings: arrows,
// WASD and vim keys steer.
func NewKeyMapper() *KeyMapper {
	km := &KeyMapper{
		game: make(map[string]core.Action),
		menu: make(map[string]MenuAction),
	}

	km.Bind(core.ActionQuit, "ctrl+c", "q")
	km.Bind(core.ActionUp, "w", "up", "k")
	km.Bind(core.ActionDown, "s", "down", "j")
	km.Bind(core.ActionLeft, "a", "left", "h")
	km.Bind(core.ActionRight, "d", "right", "l")
	km.Bind(core.ActionPause, "p", " ")
	km.Bind(core.ActionRestart, "r", "enter")
	km.Bind(core.ActionScoreboard, "tab")

	km.BindMenu(MenuActionQuit, "ctrl+c", "q")
	km.BindMenu(MenuActionUp, "w", "up", "k")
	km.BindMenu(MenuActionDown, "s", "down", "j")
	km.BindMenu(MenuActionSelect, "enter", " ")
	km.BindMenu(MenuActionBack, "b", "esc")

	return km
}

// Bind maps keys to a game action, replacing earlier bindings of those keys.
func (km *KeyMapper) Bind(action core.Action, keys ...string) {
	for _, k := range keys {
		km.game[k] = action
	}
}

// BindMenu maps keys to a menu action.
func (km *KeyMapper) BindMenu(action MenuAction, keys ...string) {
	for _, k := range keys {
		km.menu[k] = action
	}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	action = km.game[msg.String()]
	return action, action == core.ActionQuit
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MapMouseToFrame records a left-button press as a touch.
// Returns true if the message was a press.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) bool {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return false
	}
	frame.AddTouch(msg.X, msg.Y)
	return true
}

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	return km.menu[msg.String()]
}
