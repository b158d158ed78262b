package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	bindings map[string]core.Action
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{bindings: map[string]core.Action{
		"w": core.ActionUp, "up": core.ActionUp,
		"s": core.ActionDown, "down": core.ActionDown,
		"a": core.ActionLeft, "left": core.ActionLeft,
		"d": core.ActionRight, "right": core.ActionRight,

		" ": core.ActionConfirm, "enter": core.ActionConfirm,
		"p": core.ActionPause,
		"r": core.ActionRestart,

		"t": core.ActionTheme,
		"m": core.ActionWallMode,
		"g": core.ActionGrid,
		"+": core.ActionSpeedUp, "=": core.ActionSpeedUp,
		"-": core.ActionSpeedDown, "_": core.ActionSpeedDown,
		"f1": core.ActionHelp,
		"f2": core.ActionPhoto,
		"f5": core.ActionScreenshot, "ctrl+s": core.ActionScreenshot,

		"q": core.ActionQuit, "esc": core.ActionQuit, "ctrl+c": core.ActionQuit,
	}}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()
	// Letters work with caps lock or shift held.
	if len(key) == 1 {
		key = strings.ToLower(key)
	}

	action, ok := km.bindings[key]
	if !ok {
		return core.ActionNone, false
	}
	return action, action == core.ActionQuit
}

// MapKeyToFrame updates an input frame based on a key message.
// Platform actions (quit, screenshot) are not forwarded to the game.
// Returns the action so the caller can handle platform actions.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) core.Action {
	action, _ := km.MapKey(msg)
	switch action {
	case core.ActionNone, core.ActionQuit, core.ActionScreenshot:
	default:
		frame.Set(action)
	}
	return action
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
