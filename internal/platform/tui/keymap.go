package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tank-battle/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// isQuit is true only for the unconditional exit key; "q" maps to
// ActionQuit so the game can use it to decline a prompt.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c":
		return core.ActionQuit, true
	case "q":
		return core.ActionQuit, false
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case " ", "f":
		return core.ActionFire, false
	case "enter":
		return core.ActionConfirm, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}
	return core.ActionNone, false
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
	}
	return MenuActionNone
}

// DefaultHoldTicks is how long a key counts as held after its last press
// event. Terminals report key repeats, not releases, so a held key shows
// up as a stream of presses.
const DefaultHoldTicks = 10

// HeldKeys turns discrete key presses into per-tick input frames.
// Movement and fire stay active for a short window after each press;
// every other action is delivered exactly once.
type HeldKeys struct {
	window  uint64
	lastHit map[core.Action]uint64
	pending map[core.Action]bool
}

// NewHeldKeys creates a tracker with the given hold window in ticks.
func NewHeldKeys(window uint64) *HeldKeys {
	if window == 0 {
		window = DefaultHoldTicks
	}
	return &HeldKeys{
		window:  window,
		lastHit: make(map[core.Action]uint64),
		pending: make(map[core.Action]bool),
	}
}

func holdable(a core.Action) bool {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown, core.ActionFire:
		return true
	}
	return false
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	}
	return core.ActionNone
}

// Press records a key press at the given tick. Pressing a direction
// releases the opposite one.
func (h *HeldKeys) Press(a core.Action, tick uint64) {
	if a == core.ActionNone {
		return
	}
	if !holdable(a) {
		h.pending[a] = true
		return
	}
	h.lastHit[a] = tick + 1 // Stored off by one so zero means never pressed
	if o := opposite(a); o != core.ActionNone {
		delete(h.lastHit, o)
	}
}

// Frame returns the input for the given tick and consumes one-shot actions.
func (h *HeldKeys) Frame(tick uint64) core.InputFrame {
	f := core.NewInputFrame()
	for a, hit := range h.lastHit {
		if tick+1-hit < h.window {
			f.Set(a)
		} else {
			delete(h.lastHit, a)
		}
	}
	for a := range h.pending {
		f.Set(a)
		delete(h.pending, a)
	}
	return f
}

// Release drops every held and pending action.
func (h *HeldKeys) Release() {
	clear(h.lastHit)
	clear(h.pending)
}
