package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the default platformer configuration.
// It mirrors defaults/platformer.yaml and is used when the embedded file
// cannot be parsed.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Level: PlatformerLevel{
			TileSize: 32,
			World:    "1-1",
		},
		Physics: PlatformerPhysics{
			Gravity:          0.55,
			Friction:         0.85,
			MoveAccel:        0.7,
			MaxRunSpeed:      6,
			StopThreshold:    0.05,
			JumpImpulse:      -11,
			MaxFallSpeed:     14,
			HeadBumpRebound:  0.2,
			CollisionEpsilon: 0.01,
		},
		Player: PlatformerPlayer{
			Width:           24,
			Height:          32,
			StartCol:        2,
			StartRow:        12,
			Lives:           3,
			InvincibleTicks: 120,
		},
		Enemies: PlatformerEnemies{
			Width:          26,
			Height:         26,
			PatrolSpeed:    0.6,
			MaxFallSpeed:   12,
			StompTolerance: 6,
			StompBounce:    -5.5,
		},
		Items: PlatformerItems{
			CoinPopVelocity:     -5,
			CoinPopGravityScale: 0.2,
			CoinPopLifetime:     50,
			RibbonTicks:         80,
		},
		Scoring: PlatformerScoring{
			Coin:  200,
			Stomp: 200,
			Goal:  2000,
		},
		Viewport: PlatformerViewport{
			Width:        960,
			Height:       544, // 17 rows of 32px tiles
			CameraMargin: 200,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "platformer":
		return defaultPlatformerYAML
	default:
		return nil
	}
}
