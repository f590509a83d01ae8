package platformer

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

func TestPlayfieldTop(t *testing.T) {
	tests := []struct {
		screenH, gridH int
		expected       int
	}{
		{24, 17, 2},
		{19, 17, 2},
		{18, 17, 1},
		{15, 17, -2},
	}

	for _, tc := range tests {
		if got := playfieldTop(tc.screenH, tc.gridH); got != tc.expected {
			t.Errorf("playfieldTop(%d, %d) = %d, expected %d", tc.screenH, tc.gridH, got, tc.expected)
		}
	}
}

func TestViewportPixels(t *testing.T) {
	if got := ViewportPixels(80, 32); got != 1280 {
		t.Errorf("ViewportPixels(80, 32) = %v, expected 1280", got)
	}
	if got := ViewportPixels(81, 32); got != 1280 {
		t.Errorf("ViewportPixels(81, 32) = %v, expected 1280", got)
	}
}

func TestDrawFrameHUD(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()
	w := NewWorld(cfg, BuildLevel11(32, 2, 12))
	w.progress.Score = 4200
	w.progress.Coins = 7

	screen := core.NewScreen(80, 24)
	DrawFrame(screen, w.Frame())

	status := screen.Row(0)
	for _, want := range []string{"WORLD 1-1", "SCORE 004200", "COINS x07", "LIVES 3"} {
		if !strings.Contains(status, want) {
			t.Errorf("status line %q is missing %q", status, want)
		}
	}
	if !strings.Contains(screen.Row(1), "Press Space") {
		t.Errorf("message line = %q, expected the start hint", screen.Row(1))
	}
}

func TestDrawFrameTilesAndPlayer(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()
	w := NewWorld(cfg, BuildLevel11(32, 2, 12))

	screen := core.NewScreen(80, 24)
	DrawFrame(screen, w.Frame())

	// Grid rows 14-16 are ground; world row 0 is screen row 2.
	for _, y := range []int{16, 17, 18} {
		cell := screen.GetCell(0, y)
		if cell.Rune != '█' || cell.Color != core.ColorBrown {
			t.Errorf("cell (0, %d) = %+v, expected ground", y, cell)
		}
	}

	// Player at (64, 384) covers columns 4-5 and screen row 14.
	cell := screen.GetCell(4, 14)
	if cell.Rune != '█' || cell.Color != core.ColorBrightRed {
		t.Errorf("cell (4, 14) = %+v, expected the player", cell)
	}

	// The first question block sits at (15, 10).
	cell = screen.GetCell(30, 12)
	if cell.Rune != '?' {
		t.Errorf("cell (30, 12) = %+v, expected a question block", cell)
	}
}

func TestDrawFrameScrolls(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()
	w := NewWorld(cfg, BuildLevel11(32, 2, 12))
	w.SetViewportWidth(ViewportPixels(80, 32))
	w.player.X = 200 + 15*32

	screen := core.NewScreen(80, 24)
	DrawFrame(screen, w.Frame())

	// Camera at column 15: the question block moves to the left edge.
	if cell := screen.GetCell(0, 12); cell.Rune != '?' {
		t.Errorf("cell (0, 12) = %+v, expected the scrolled question block", cell)
	}
}

func TestDrawFrameHidesBlinkingPlayer(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()
	w := NewWorld(cfg, BuildLevel11(32, 2, 12))
	w.player.Invincible = 4

	screen := core.NewScreen(80, 24)
	DrawFrame(screen, w.Frame())

	if cell := screen.GetCell(4, 14); cell.Color == core.ColorBrightRed {
		t.Error("player should be hidden on a blink frame")
	}
}
