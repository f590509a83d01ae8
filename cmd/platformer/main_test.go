package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

func TestConfigureGame(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	t.Cleanup(func() { platformer.SetConfig(config.DefaultPlatformerConfig()) })

	tests := []struct {
		name       string
		gameID     string
		path       string
		difficulty string
		wantErr    string
	}{
		{"defaults", platformer.GameID, "", "", ""},
		{"known difficulty", platformer.GameID, "", "hard", ""},
		{"unknown difficulty", platformer.GameID, "", "nightmare", "unknown difficulty"},
		{"missing config", platformer.GameID, filepath.Join(dir, "missing.yaml"), "", "failed to read config"},
		{"other game ignores flags", "snake", filepath.Join(dir, "missing.yaml"), "nightmare", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := configureGame(tt.gameID, tt.path, tt.difficulty)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("configureGame() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("configureGame() error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestConfigureGameReachesNewGames(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	t.Cleanup(func() { platformer.SetConfig(config.DefaultPlatformerConfig()) })

	if err := configureGame(platformer.GameID, "", "easy"); err != nil {
		t.Fatalf("configureGame() error = %v", err)
	}

	g := platformer.New()
	g.Reset(core.DefaultConfig())
	if got := g.World().Progress().Lives; got != 5 {
		t.Errorf("lives = %d, want the easy preset's 5", got)
	}
}

func TestRootFlags(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"fps", true},
		{"db", true},
		{"log-file", true},
		{"log-level", true},
		{"seed", false},
	}

	for _, tt := range tests {
		if got := rootCmd.PersistentFlags().Lookup(tt.name) != nil; got != tt.want {
			t.Errorf("flag --%s defined = %v, want %v", tt.name, got, tt.want)
		}
	}
}
