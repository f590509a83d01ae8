package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "left", "a", "h":
		return core.ActionLeft, false
	case "right", "d", "l":
		return core.ActionRight, false
	case " ", "z", "up", "w", "k":
		return core.ActionJump, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// Hold windows in ticks at 60 ticks per second. Terminals report key
// presses only, so a key is treated as held until its auto-repeat stops.
// The first window covers the keyboard's initial repeat delay.
const (
	defaultFirstHold  = 24
	defaultRepeatHold = 8
)

// holdable reports whether an action is a held control rather than a
// one-shot command.
func holdable(a core.Action) bool {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionJump:
		return true
	}
	return false
}

// HoldTracker turns a stream of key presses into a held-key set.
// Each press keeps its action held for a window of ticks; auto-repeat
// presses extend the window.
type HoldTracker struct {
	firstHold  uint64
	repeatHold uint64
	until      map[core.Action]uint64
}

// NewHoldTracker creates a tracker with windows scaled to the tick rate.
func NewHoldTracker(tickRate int) *HoldTracker {
	if tickRate <= 0 {
		tickRate = 60
	}
	scale := func(ticks int) uint64 {
		n := ticks * tickRate / 60
		if n < 1 {
			n = 1
		}
		return uint64(n)
	}
	return &HoldTracker{
		firstHold:  scale(defaultFirstHold),
		repeatHold: scale(defaultRepeatHold),
		until:      make(map[core.Action]uint64),
	}
}

// Press records a key press at the given tick.
func (h *HoldTracker) Press(a core.Action, tick uint64) {
	// Opposite directions cancel each other.
	switch a {
	case core.ActionLeft:
		delete(h.until, core.ActionRight)
	case core.ActionRight:
		delete(h.until, core.ActionLeft)
	}

	window := h.firstHold
	if h.Held(a, tick) {
		window = h.repeatHold
	}
	if end := tick + window; end > h.until[a] {
		h.until[a] = end
	}
}

// Held reports whether a is held at the given tick.
func (h *HoldTracker) Held(a core.Action, tick uint64) bool {
	end, ok := h.until[a]
	return ok && tick < end
}

// Apply sets every action held at tick into the frame and forgets expired ones.
func (h *HoldTracker) Apply(frame *core.InputFrame, tick uint64) {
	for a, end := range h.until {
		if tick >= end {
			delete(h.until, a)
			continue
		}
		frame.Set(a)
	}
}

// Release drops every held action.
func (h *HoldTracker) Release() {
	clear(h.until)
}
