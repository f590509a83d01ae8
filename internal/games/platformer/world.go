package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Event kinds reported by World.Step.
const (
	EventCoin     core.EventKind = "coin"      // Coin collected from a tile or question block
	EventStomp    core.EventKind = "stomp"     // Enemy defeated by landing on it
	EventLifeLost core.EventKind = "life_lost" // Player fell or was hit
	EventGameOver = core.EventGameOver         // Last life lost; Score is the final score
	EventGoal     core.EventKind = "goal"      // Flag reached
)

// Status line texts.
const (
	msgStart    = "Press Space or Z to start, arrows to move!"
	msgFell     = "Watch out! You fell out of the world."
	msgHit      = "Ouch! An enemy got you."
	msgCoin     = "Ding! Coin collected."
	msgGoal     = "You reached the flag! Keep going for another lap."
	msgGameOver = "GAME OVER - press jump to start again"
)

// Input is the held-key state for one tick.
type Input struct {
	Left  bool
	Right bool
	Jump  bool
}

// World is the whole simulation state. It is owned by a single driver and
// advanced only through Step; nothing in it is shared or concurrent.
type World struct {
	cfg      config.PlatformerConfig
	grid     *TileGrid
	resolver Resolver

	player   Player
	enemies  []Enemy
	items    []Item
	progress Progression

	viewportW float64
	tick      uint64
	events    []core.Event
	respawned bool // Player was sent back to the start during this tick
}

// NewWorld creates a world from a built level. The level's grid is used in
// place and mutated as the game runs.
func NewWorld(cfg config.PlatformerConfig, level *Level) *World {
	ts := float64(level.Grid.TileSize())

	w := &World{
		cfg:  cfg,
		grid: level.Grid,
		resolver: Resolver{
			Epsilon: cfg.Physics.CollisionEpsilon,
			Rebound: cfg.Physics.HeadBumpRebound,
		},
		progress:  NewProgression(cfg.Player.Lives, cfg.Level.World),
		viewportW: cfg.Viewport.Width,
	}

	w.player = Player{
		Body: Body{
			W: cfg.Player.Width,
			H: cfg.Player.Height,
		},
		startX: float64(level.StartCol) * ts,
		startY: float64(level.StartRow) * ts,
	}
	w.player.respawn()

	w.enemies = make([]Enemy, 0, len(level.Enemies))
	for _, s := range level.Enemies {
		e := Enemy{
			spawnX:  float64(s.Col) * ts,
			spawnY:  float64(s.Row) * ts,
			spawnVX: -cfg.Enemies.PatrolSpeed,
		}
		e.W = cfg.Enemies.Width
		e.H = cfg.Enemies.Height
		e.revive()
		w.enemies = append(w.enemies, e)
	}

	w.progress.Message = msgStart
	return w
}

// Step advances the simulation by one tick and returns what happened.
func (w *World) Step(in Input) []core.Event {
	w.events = nil
	w.respawned = false
	w.tick++

	contacts := w.updatePlayer(in)
	w.updateItems()
	w.updateEnemies()
	w.collectCoin()
	w.checkGoal(contacts)

	return w.events
}

// emit records an event for the current tick.
func (w *World) emit(kind core.EventKind, text string) {
	w.events = append(w.events, core.Event{
		Kind:  kind,
		Score: w.progress.Score,
		Text:  text,
	})
}

// loseLife takes a life away and respawns the player. Losing the last life
// resets the progression, clears items and revives every enemy in the same
// call.
func (w *World) loseLife(msg string) {
	score := w.progress.Score
	w.progress.Message = msg
	w.emit(EventLifeLost, msg)

	if w.progress.LoseLife() {
		w.progress.Message = msgGameOver
		w.events = append(w.events, core.Event{Kind: EventGameOver, Score: score, Text: msgGameOver})
		w.items = w.items[:0]
		for i := range w.enemies {
			w.enemies[i].revive()
		}
	}

	w.player.respawn()
	w.respawned = true
}

// awardCoin adds one coin and its score.
func (w *World) awardCoin() {
	w.progress.AddCoin(w.cfg.Scoring.Coin)
	w.emit(EventCoin, msgCoin)
}

// Camera returns the horizontal scroll offset: the player's x minus a fixed
// margin, clamped so the viewport stays inside the level.
func (w *World) Camera() float64 {
	maxX := w.grid.PixelWidth() - w.viewportW
	return core.ClampF(w.player.X-w.cfg.Viewport.CameraMargin, 0, maxX)
}

// SetViewportWidth changes the width the camera keeps inside the level.
// The renderer calls it when the display size changes.
func (w *World) SetViewportWidth(px float64) {
	if px > 0 {
		w.viewportW = px
	}
}

// Grid returns the live tile grid.
func (w *World) Grid() *TileGrid {
	return w.grid
}

// Player returns a copy of the player.
func (w *World) Player() Player {
	return w.player
}

// Enemies returns a copy of every enemy, dead ones included.
func (w *World) Enemies() []Enemy {
	out := make([]Enemy, len(w.enemies))
	copy(out, w.enemies)
	return out
}

// Items returns a copy of the active transient items.
func (w *World) Items() []Item {
	out := make([]Item, len(w.items))
	copy(out, w.items)
	return out
}

// Progress returns the current progression state.
func (w *World) Progress() Progression {
	return w.progress
}

// Tick returns the number of steps taken.
func (w *World) Tick() uint64 {
	return w.tick
}
