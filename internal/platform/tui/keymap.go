package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// actionBinding ties a key binding to the game action it produces.
type actionBinding struct {
	binding key.Binding
	action  core.Action
}

// KeyMapper translates Bubble Tea key messages to game and menu actions.
// Bindings are checked in order; the first match wins.
type KeyMapper struct {
	quit key.Binding
	game []actionBinding
	menu []menuBinding
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	bind := func(keys ...string) key.Binding {
		return key.NewBinding(key.WithKeys(keys...))
	}

	return &KeyMapper{
		quit: bind("ctrl+c", "q"),
		game: []actionBinding{
			{bind("left", "a", "h"), core.ActionLeft},
			{bind("right", "d", "l"), core.ActionRight},
			{bind("enter"), core.ActionConfirm},
			{bind("esc", "b"), core.ActionBack},
			{bind("p", " "), core.ActionPause},
			{bind("r"), core.ActionRestart},
		},
		menu: []menuBinding{
			{bind("up", "k", "w"), MenuActionUp},
			{bind("down", "j", "s"), MenuActionDown},
			{bind("enter", " "), MenuActionSelect},
			{bind("esc", "b"), MenuActionBack},
			{bind("tab"), MenuActionScoreboard},
		},
	}
}

// MapKey translates a key message to a game action.
// isQuit is true for the quit keys, which map to ActionQuit.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	if key.Matches(msg, km.quit) {
		return core.ActionQuit, true
	}
	for _, b := range km.game {
		if key.Matches(msg, b.binding) {
			return b.action, false
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame records the key's action in frame and reports whether it
// was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	frame.Set(action)
	return isQuit
}

// MenuAction is a navigation action on the menu screens.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

type menuBinding struct {
	binding key.Binding
	action  MenuAction
}

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	if key.Matches(msg, km.quit) {
		return MenuActionQuit
	}
	for _, b := range km.menu {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return MenuActionNone
}
