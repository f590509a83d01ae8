// Package config provides YAML-based game configuration loading and
// difficulty presets for the platformer.
package config

import "fmt"

// PlatformerConfig contains all tunable parameters of the platformer simulation.
// Distances are in world pixels, velocities in pixels per tick.
type PlatformerConfig struct {
	Level    PlatformerLevel    `yaml:"level"`
	Physics  PlatformerPhysics  `yaml:"physics"`
	Player   PlatformerPlayer   `yaml:"player"`
	Enemies  PlatformerEnemies  `yaml:"enemies"`
	Items    PlatformerItems    `yaml:"items"`
	Scoring  PlatformerScoring  `yaml:"scoring"`
	Viewport PlatformerViewport `yaml:"viewport"`
}

// PlatformerLevel defines level-wide parameters.
type PlatformerLevel struct {
	TileSize int    `yaml:"tile_size"`
	World    string `yaml:"world"` // Display label, e.g. "1-1"
}

// PlatformerPhysics defines the shared physics constants.
type PlatformerPhysics struct {
	Gravity          float64 `yaml:"gravity"`
	Friction         float64 `yaml:"friction"`          // Horizontal velocity multiplier per tick
	MoveAccel        float64 `yaml:"move_accel"`        // Added to vx per tick while a direction is held
	MaxRunSpeed      float64 `yaml:"max_run_speed"`     // |vx| cap
	StopThreshold    float64 `yaml:"stop_threshold"`    // |vx| below this snaps to zero
	JumpImpulse      float64 `yaml:"jump_impulse"`      // Negative = up
	MaxFallSpeed     float64 `yaml:"max_fall_speed"`    // Player vy cap
	HeadBumpRebound  float64 `yaml:"head_bump_rebound"` // vy after hitting a tile from below
	CollisionEpsilon float64 `yaml:"collision_epsilon"`
}

// PlatformerPlayer defines player parameters.
type PlatformerPlayer struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	StartCol        int     `yaml:"start_col"`
	StartRow        int     `yaml:"start_row"`
	Lives           int     `yaml:"lives"`
	InvincibleTicks int     `yaml:"invincible_ticks"`
}

// PlatformerEnemies defines patrol enemy parameters.
type PlatformerEnemies struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	PatrolSpeed    float64 `yaml:"patrol_speed"` // Initial vx magnitude, enemies start walking left
	MaxFallSpeed   float64 `yaml:"max_fall_speed"`
	StompTolerance float64 `yaml:"stomp_tolerance"`
	StompBounce    float64 `yaml:"stomp_bounce"` // Player vy after a stomp
}

// PlatformerItems defines transient item parameters.
type PlatformerItems struct {
	CoinPopVelocity     float64 `yaml:"coin_pop_velocity"`
	CoinPopGravityScale float64 `yaml:"coin_pop_gravity_scale"`
	CoinPopLifetime     int     `yaml:"coin_pop_lifetime"`
	RibbonTicks         int     `yaml:"ribbon_ticks"`
}

// PlatformerScoring defines score awards.
type PlatformerScoring struct {
	Coin  int `yaml:"coin"`
	Stomp int `yaml:"stomp"`
	Goal  int `yaml:"goal"`
}

// PlatformerViewport defines the simulated viewport.
// Falling below Height loses a life; Width bounds the camera.
type PlatformerViewport struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	CameraMargin float64 `yaml:"camera_margin"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI string to a preset. An empty string yields "" with
// no error; any other name must be one of the known presets.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}
