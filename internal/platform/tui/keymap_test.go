package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"q quits", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"h", runeKey('h'), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"space", runeKey(' '), core.ActionJump, false},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump, false},
		{"z", runeKey('z'), core.ActionJump, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"unbound", runeKey('x'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestHoldTrackerFirstWindow(t *testing.T) {
	h := NewHoldTracker(60)
	h.Press(core.ActionRight, 0)

	if !h.Held(core.ActionRight, 0) || !h.Held(core.ActionRight, 23) {
		t.Error("first press should hold for the initial window")
	}
	if h.Held(core.ActionRight, 24) {
		t.Error("hold should expire after the initial window")
	}
	if h.Held(core.ActionLeft, 0) {
		t.Error("an unpressed action should not be held")
	}
}

func TestHoldTrackerRepeatExtends(t *testing.T) {
	h := NewHoldTracker(60)
	h.Press(core.ActionRight, 0)

	// An early repeat never shortens the first window.
	h.Press(core.ActionRight, 2)
	if !h.Held(core.ActionRight, 23) {
		t.Error("early repeat should keep the initial window")
	}

	h.Press(core.ActionRight, 20)
	if !h.Held(core.ActionRight, 27) {
		t.Error("repeat near the end of the window should extend it")
	}
	if h.Held(core.ActionRight, 28) {
		t.Error("repeat should extend by the repeat window only")
	}
}

func TestHoldTrackerRetapMergesIntoHold(t *testing.T) {
	h := NewHoldTracker(60)
	h.Press(core.ActionJump, 0)
	h.Press(core.ActionJump, 10)

	// Every tick between the taps reads as held, so the jump latch sees one press.
	for tick := uint64(0); tick < 24; tick++ {
		if !h.Held(core.ActionJump, tick) {
			t.Fatalf("jump released at tick %d between two taps", tick)
		}
	}
	if h.Held(core.ActionJump, 24) {
		t.Error("a re-tap inside the first window should not restart it")
	}

	// Once the hold has lapsed a new tap starts a fresh first window.
	h.Press(core.ActionJump, 30)
	if !h.Held(core.ActionJump, 53) || h.Held(core.ActionJump, 54) {
		t.Error("a tap after release should hold for the full first window")
	}
}

func TestHoldTrackerOppositeCancels(t *testing.T) {
	h := NewHoldTracker(60)
	h.Press(core.ActionLeft, 0)
	h.Press(core.ActionJump, 0)
	h.Press(core.ActionRight, 5)

	if h.Held(core.ActionLeft, 5) {
		t.Error("pressing right should release left")
	}
	if !h.Held(core.ActionRight, 5) || !h.Held(core.ActionJump, 5) {
		t.Error("right and jump should both be held")
	}
}

func TestHoldTrackerApply(t *testing.T) {
	h := NewHoldTracker(60)
	h.Press(core.ActionLeft, 0)
	h.Press(core.ActionJump, 20)

	frame := core.NewInputFrame()
	h.Apply(&frame, 10)
	if !frame.Has(core.ActionLeft) || !frame.Has(core.ActionJump) {
		t.Errorf("frame at tick 10 = %v, want left and jump", frame.Actions)
	}

	frame = core.NewInputFrame()
	h.Apply(&frame, 30)
	if frame.Has(core.ActionLeft) {
		t.Error("expired left should not be applied")
	}
	if !frame.Has(core.ActionJump) {
		t.Error("jump pressed at tick 20 should still be held at 30")
	}
	if _, ok := h.until[core.ActionLeft]; ok {
		t.Error("Apply should forget expired actions")
	}

	h.Release()
	frame = core.NewInputFrame()
	h.Apply(&frame, 31)
	if len(frame.Actions) != 0 {
		t.Errorf("after Release frame = %v, want empty", frame.Actions)
	}
}

func TestHoldTrackerScalesWithTickRate(t *testing.T) {
	tests := []struct {
		tickRate   int
		firstHold  uint64
		repeatHold uint64
	}{
		{60, 24, 8},
		{30, 12, 4},
		{120, 48, 16},
		{1, 1, 1},
		{0, 24, 8},
	}

	for _, tt := range tests {
		h := NewHoldTracker(tt.tickRate)
		if h.firstHold != tt.firstHold || h.repeatHold != tt.repeatHold {
			t.Errorf("NewHoldTracker(%d) windows = %d/%d, want %d/%d",
				tt.tickRate, h.firstHold, h.repeatHold, tt.firstHold, tt.repeatHold)
		}
	}
}

func TestHoldable(t *testing.T) {
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionJump} {
		if !holdable(a) {
			t.Errorf("%v should be holdable", a)
		}
	}
	for _, a := range []core.Action{core.ActionNone, core.ActionPause, core.ActionRestart, core.ActionQuit} {
		if holdable(a) {
			t.Errorf("%v should not be holdable", a)
		}
	}
}
