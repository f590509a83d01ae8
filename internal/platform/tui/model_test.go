package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// stubGame records the frames it is stepped with.
type stubGame struct {
	frames []core.InputFrame
	resets int
	score  int
	overAt int // Step number that reports game over; 0 never
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	res := core.StepResult{State: g.State()}
	if len(g.frames) == g.overAt {
		res.Events = append(res.Events, core.Event{Kind: core.EventGameOver, Score: g.score})
	}
	return res
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 1, "HI")
}

func (g *stubGame) State() core.GameState {
	return core.GameState{Score: g.score}
}

func (g *stubGame) lastFrame() core.InputFrame {
	return g.frames[len(g.frames)-1]
}

type resizableStub struct {
	stubGame
	w, h int
}

func (g *resizableStub) Resize(w, h int) {
	g.w, g.h = w, h
}

func openModelStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = update(t, m, TickMsg(time.Time{}))
	return m
}

func TestModelInitResetsGame(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, core.DefaultConfig(), Options{})
	if cmd := m.Init(); cmd == nil {
		t.Error("Init should start ticking")
	}
	if g.resets != 1 {
		t.Errorf("resets = %d, want 1", g.resets)
	}
	if m.player != storage.DefaultPlayer {
		t.Errorf("player = %q, want %q", m.player, storage.DefaultPlayer)
	}
}

func TestModelHeldAndOneShotInput(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, core.DefaultConfig(), Options{})
	m.Init()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = update(t, m, runeKey('p'))
	m = tick(t, m)

	first := g.lastFrame()
	if !first.Has(core.ActionRight) || !first.Has(core.ActionPause) {
		t.Errorf("first frame = %v, want right and pause", first.Actions)
	}

	m = tick(t, m)
	second := g.lastFrame()
	if !second.Has(core.ActionRight) {
		t.Error("right should still be held on the next tick")
	}
	if second.Has(core.ActionPause) {
		t.Error("pause is one-shot and should not repeat")
	}

	for range defaultFirstHold {
		m = tick(t, m)
	}
	if g.lastFrame().Has(core.ActionRight) {
		t.Error("right should be released once its hold window passes")
	}
}

func TestModelRestartReleasesHolds(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, core.DefaultConfig(), Options{})
	m.Init()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, runeKey('r'))
	m = tick(t, m)
	if !g.lastFrame().Has(core.ActionRestart) {
		t.Fatal("restart should reach the game")
	}

	m = tick(t, m)
	if g.lastFrame().Has(core.ActionLeft) {
		t.Error("restart should release held keys")
	}
}

func TestModelSavesScoreOnGameOver(t *testing.T) {
	store := openModelStore(t)
	g := &stubGame{score: 1500, overAt: 2}
	m := NewModel(g, store, core.DefaultConfig(), Options{Player: "ana"})
	m.Init()

	m = tick(t, m)
	if hs, _ := store.HighScore("stub"); hs != 0 {
		t.Fatalf("score saved before game over: %d", hs)
	}
	tick(t, m)

	scores, err := store.TopScores("stub", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 1500 || scores[0].Player != "ana" {
		t.Errorf("scores = %+v, want one 1500 by ana", scores)
	}
}

func TestModelQuit(t *testing.T) {
	tests := []struct {
		name     string
		embedded bool
		score    int
		wantCmd  bool
		wantSave bool
	}{
		{"standalone quits program", false, 300, true, true},
		{"embedded hands back", true, 300, false, true},
		{"zero score not saved", true, 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := openModelStore(t)
			g := &stubGame{score: tt.score}
			m := NewModel(g, store, core.DefaultConfig(), Options{Embedded: tt.embedded})
			m.Init()

			m, cmd := update(t, m, runeKey('q'))
			if !m.IsQuitting() {
				t.Error("model should be quitting")
			}
			if (cmd != nil) != tt.wantCmd {
				t.Errorf("cmd != nil is %v, want %v", cmd != nil, tt.wantCmd)
			}
			if m.View() != "" {
				t.Error("quitting model should render nothing")
			}

			hs, err := store.HighScore("stub")
			if err != nil {
				t.Fatalf("HighScore() failed: %v", err)
			}
			if saved := hs == tt.score && hs > 0; saved != tt.wantSave {
				t.Errorf("high score = %d, saved %v, want saved %v", hs, saved, tt.wantSave)
			}

			// Ticks after quitting are ignored.
			tick(t, m)
			if len(g.frames) != 0 {
				t.Errorf("game stepped %d times after quit", len(g.frames))
			}
		})
	}
}

func TestModelResize(t *testing.T) {
	plain := &stubGame{}
	m := NewModel(plain, nil, core.DefaultConfig(), Options{})
	m.Init()
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if plain.resets != 2 {
		t.Errorf("plain game resets = %d, want 2", plain.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, want 100x30", m.screen.Width(), m.screen.Height())
	}

	rg := &resizableStub{}
	m = NewModel(rg, nil, core.DefaultConfig(), Options{})
	m.Init()
	update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if rg.resets != 1 {
		t.Errorf("resizable game resets = %d, want 1", rg.resets)
	}
	if rg.w != 120 || rg.h != 40 {
		t.Errorf("resized to %dx%d, want 120x40", rg.w, rg.h)
	}
}

func TestModelView(t *testing.T) {
	m := NewModel(&stubGame{}, nil, core.RuntimeConfig{ScreenW: 10, ScreenH: 3}, Options{})
	m.Init()

	view := m.View()
	lines := strings.Split(view, "\n")
	if len(lines) != 3 {
		t.Fatalf("view has %d lines, want 3", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 10 {
			t.Errorf("line %d width = %d, want 10", i, w)
		}
	}
	if !strings.Contains(lines[1], "HI") {
		t.Errorf("line 1 = %q, want it to contain HI", lines[1])
	}
}
