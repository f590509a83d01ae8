package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPlatformer loads the platformer configuration.
// Search order: customPath -> ~/.platformer/configs/platformer.yaml -> ./configs/platformer.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial YAML file only overrides
// the keys it mentions.
func LoadPlatformer(customPath string) (PlatformerConfig, error) {
	cfg := DefaultPlatformerConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("platformer.yaml"); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", "platformer.yaml")); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	cfg = DefaultPlatformerConfig()
	if err := yaml.Unmarshal(defaultPlatformerYAML, &cfg); err != nil {
		return DefaultPlatformerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadPlatformerPreset loads the config like LoadPlatformer and applies the
// named difficulty on top. An empty difficulty keeps the loaded values.
func LoadPlatformerPreset(customPath, difficulty string) (PlatformerConfig, error) {
	preset, err := ParsePreset(difficulty)
	if err != nil {
		return PlatformerConfig{}, err
	}
	cfg, err := LoadPlatformer(customPath)
	if err != nil {
		return PlatformerConfig{}, err
	}
	ApplyPlatformerPreset(&cfg, preset)
	return cfg, nil
}

// tryLoad reads an optional config file. Missing or broken files are skipped.
func tryLoad(path string) (PlatformerConfig, bool) {
	cfg := DefaultPlatformerConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".platformer", "configs", filename)
}

// Validate rejects configurations the simulation cannot run with.
func (c PlatformerConfig) Validate() error {
	switch {
	case c.Level.TileSize <= 0:
		return fmt.Errorf("level.tile_size must be positive, got %d", c.Level.TileSize)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("player size must be positive, got %gx%g", c.Player.Width, c.Player.Height)
	case c.Enemies.Width <= 0 || c.Enemies.Height <= 0:
		return fmt.Errorf("enemy size must be positive, got %gx%g", c.Enemies.Width, c.Enemies.Height)
	case c.Player.Lives <= 0:
		return fmt.Errorf("player.lives must be positive, got %d", c.Player.Lives)
	case c.Viewport.Width <= 0 || c.Viewport.Height <= 0:
		return fmt.Errorf("viewport size must be positive, got %gx%g", c.Viewport.Width, c.Viewport.Height)
	case c.Items.CoinPopLifetime <= 0 || c.Items.RibbonTicks <= 0:
		return fmt.Errorf("item lifetimes must be positive")
	}
	return nil
}

// ApplyPlatformerPreset modifies the config based on a difficulty preset.
// Normal and unknown presets leave the config untouched.
func ApplyPlatformerPreset(cfg *PlatformerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Player.InvincibleTicks = 180
		cfg.Enemies.PatrolSpeed = 0.4
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Player.InvincibleTicks = 60
		cfg.Enemies.PatrolSpeed = 0.9
	}
}
