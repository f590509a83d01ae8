// Package platformer implements a side-scrolling tile platformer: a tile grid,
// a player with run and jump physics, patrolling enemies, question blocks,
// coins and a goal flag. The simulation advances one fixed step per tick and
// never reads the clock.
package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// GameID is the registry identifier of the platformer.
const GameID = "platformer"

// Game adapts World to the registry.Game interface: it owns pause state,
// rebuilds the level on restart and converts input frames.
type Game struct {
	world   *World
	cfg     config.PlatformerConfig
	runtime core.RuntimeConfig
	paused  bool
}

// override is the config set by the CLI for games created through the registry.
var override *config.PlatformerConfig

// SetConfig makes cfg the config of every game created with New afterwards.
// The CLI loads and validates it first so errors reach the user.
func SetConfig(cfg config.PlatformerConfig) {
	override = &cfg
}

// New creates a new platformer game instance.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that uses cfg instead of loading one.
func NewWithConfig(cfg config.PlatformerConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Tile Platformer"
}

// Reset initializes or restarts the game with a freshly built level.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if g.cfg.Level.TileSize == 0 {
		g.cfg = defaultConfig()
	}

	level := BuildLevel11(g.cfg.Level.TileSize, g.cfg.Player.StartCol, g.cfg.Player.StartRow)
	g.world = NewWorld(g.cfg, level)
	g.Resize(runtime.ScreenW, runtime.ScreenH)
	g.paused = false
}

// defaultConfig is the CLI override, or else the config found on disk.
// Broken files on the implicit search path fall back to the defaults.
func defaultConfig() config.PlatformerConfig {
	if override != nil {
		return *override
	}
	cfg, err := config.LoadPlatformer("")
	if err != nil {
		return config.DefaultPlatformerConfig()
	}
	return cfg
}

// Resize adapts the camera to a new screen size without touching game state.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW = screenW
	g.runtime.ScreenH = screenH
	if g.world != nil && screenW > 0 {
		g.world.SetViewportWidth(ViewportPixels(screenW, g.cfg.Level.TileSize))
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	events := g.world.Step(Input{
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
		Jump:  in.Has(core.ActionJump),
	})

	return core.StepResult{State: g.State(), Events: events}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	DrawFrame(dst, g.world.Frame())

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextCentered(boxY+1, title)
	dst.DrawTextCentered(boxY+3, subtitle)
}

// State returns the current game state. The platformer has no terminal
// game-over state: losing the last life starts over immediately.
func (g *Game) State() core.GameState {
	score := 0
	if g.world != nil {
		score = g.world.Progress().Score
	}
	return core.GameState{
		Score:  score,
		Paused: g.paused,
	}
}

// World exposes the simulation for headless drivers and tests.
func (g *Game) World() *World {
	return g.world
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
