package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and pacing.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// EventKind classifies something notable that happened during a tick.
type EventKind string

// EventGameOver is reported when a run ends. Its Score is the final score,
// which the platform saves to the scoreboard.
const EventGameOver EventKind = "game_over"

// Event is a gameplay occurrence reported by Step. The platform logs
// events and reacts to some of them (for example saving the score).
type Event struct {
	Kind  EventKind
	Score int    // Score at the moment of the event
	Text  string // Human-readable detail
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
