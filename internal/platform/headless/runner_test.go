package headless

import (
	"context"
	"errors"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

// countingGame scores a point per step and reports an event every tenth step.
type countingGame struct {
	frames []core.InputFrame
	resets int
	score  int
}

func (g *countingGame) ID() string    { return "counting" }
func (g *countingGame) Title() string { return "Counting" }

func (g *countingGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.score = 0
	g.frames = nil
}

func (g *countingGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	g.score++
	res := core.StepResult{State: g.State()}
	if g.score%10 == 0 {
		res.Events = []core.Event{{Kind: "tenth", Score: g.score}}
	}
	return res
}

func (g *countingGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "counting")
}

func (g *countingGame) State() core.GameState {
	return core.GameState{Score: g.score}
}

func mustParse(t *testing.T, text string) Script {
	t.Helper()
	s, err := ParseScript(text)
	if err != nil {
		t.Fatalf("ParseScript(%q) failed: %v", text, err)
	}
	return s
}

func TestRunnerFeedsScript(t *testing.T) {
	g := &countingGame{}
	r := NewRunner(g, nil)

	res, err := r.Run(context.Background(), core.DefaultConfig(), mustParse(t, "R*3,J*2"), 0)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if g.resets != 1 {
		t.Errorf("resets = %d, want 1", g.resets)
	}
	if res.Steps != 5 || len(g.frames) != 5 {
		t.Fatalf("steps = %d, frames = %d, want 5", res.Steps, len(g.frames))
	}
	if !g.frames[2].Has(core.ActionRight) || !g.frames[3].Has(core.ActionJump) {
		t.Error("frames should follow the script")
	}
	if res.State.Score != 5 {
		t.Errorf("final score = %d, want 5", res.State.Score)
	}
}

func TestRunnerPadsWithIdleSteps(t *testing.T) {
	g := &countingGame{}
	r := NewRunner(g, nil)

	res, err := r.Run(context.Background(), core.DefaultConfig(), mustParse(t, "L*2"), 25)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.Steps != 25 {
		t.Errorf("steps = %d, want 25", res.Steps)
	}
	if len(g.frames[24].Actions) != 0 {
		t.Errorf("frame past the script = %v, want empty", g.frames[24].Actions)
	}

	if len(res.Events) != 2 || res.Counts["tenth"] != 2 {
		t.Fatalf("events = %+v, want two", res.Events)
	}
	if res.Events[0].Step != 9 || res.Events[1].Step != 19 {
		t.Errorf("event steps = %d, %d; want 9, 19", res.Events[0].Step, res.Events[1].Step)
	}
}

func TestRunnerCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner(&countingGame{}, nil)
	res, err := r.Run(ctx, core.DefaultConfig(), Script{}, 100)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if res.Steps != 0 {
		t.Errorf("steps = %d, want 0", res.Steps)
	}
}

func TestRunnerRender(t *testing.T) {
	r := NewRunner(&countingGame{}, nil)
	screen := r.Render(20, 2)
	if screen.Width() != 20 || screen.Height() != 2 {
		t.Errorf("screen = %dx%d, want 20x2", screen.Width(), screen.Height())
	}
	if screen.Get(0, 0) != 'c' {
		t.Errorf("cell (0,0) = %q, want 'c'", screen.Get(0, 0))
	}
}

func TestRunnerPlatformerDeterministic(t *testing.T) {
	script := mustParse(t, "R*40,RJ*20,R*60,.*30,RJ*10,R*200,L*30,J*5,R*300")

	run := func() (Result, string) {
		game := platformer.NewWithConfig(config.DefaultPlatformerConfig())
		r := NewRunner(game, nil)
		res, err := r.Run(context.Background(), core.DefaultConfig(), script, 1200)
		if err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		return res, r.Render(80, 24).String()
	}

	a, screenA := run()
	b, screenB := run()

	if a.Steps != 1200 || b.Steps != 1200 {
		t.Fatalf("steps = %d, %d; want 1200", a.Steps, b.Steps)
	}
	if a.State != b.State {
		t.Errorf("states differ: %+v vs %+v", a.State, b.State)
	}
	if len(a.Events) != len(b.Events) {
		t.Fatalf("event counts differ: %d vs %d", len(a.Events), len(b.Events))
	}
	for i := range a.Events {
		if a.Events[i] != b.Events[i] {
			t.Errorf("event %d differs: %+v vs %+v", i, a.Events[i], b.Events[i])
		}
	}
	if screenA != screenB {
		t.Error("final frames differ between identical runs")
	}
}
