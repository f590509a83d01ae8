package headless

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// StepEvent is an event together with the step that produced it.
type StepEvent struct {
	Step int
	core.Event
}

// Result summarizes a headless run.
type Result struct {
	Steps  int                    // Steps actually simulated
	State  core.GameState         // State after the last step
	Events []StepEvent            // Every event in order
	Counts map[core.EventKind]int // Events per kind
}

// Runner steps a game with scripted input.
type Runner struct {
	game   registry.Game
	logger *log.Logger
}

// NewRunner creates a runner for game. A nil logger discards.
func NewRunner(game registry.Game, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{game: game, logger: logger}
}

// Run resets the game with cfg and advances it steps times, feeding the
// script's input. When steps is not positive the script length is used.
// Cancelling ctx stops the run early; the partial result is returned with
// the context's error.
func (r *Runner) Run(ctx context.Context, cfg core.RuntimeConfig, script Script, steps int) (Result, error) {
	if steps <= 0 {
		steps = script.Len()
	}

	r.game.Reset(cfg)
	r.logger.Debug("headless run started", "game", r.game.ID(), "steps", steps, "script", script.String())

	res := Result{
		State:  r.game.State(),
		Counts: make(map[core.EventKind]int),
	}

	for i := range steps {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		out := r.game.Step(script.FrameAt(i))
		res.Steps++
		res.State = out.State

		for _, ev := range out.Events {
			res.Events = append(res.Events, StepEvent{Step: i, Event: ev})
			res.Counts[ev.Kind]++
			r.logger.Debug("event", "step", i, "kind", ev.Kind, "score", ev.Score, "text", ev.Text)
		}
	}

	r.logger.Debug("headless run finished", "steps", res.Steps, "score", res.State.Score, "events", len(res.Events))
	return res, nil
}

// Render draws the game's current frame into a new screen of the given size.
func (r *Runner) Render(width, height int) *core.Screen {
	screen := core.NewScreen(width, height)
	r.game.Render(screen)
	return screen
}
