package platformer

import "testing"

func filledGrid(w, h int, t TileType) *TileGrid {
	g := NewTileGrid(w, h, 32)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			g.SetCell(col, row, t)
		}
	}
	return g
}

func TestTileAtOutOfBoundsIsEmpty(t *testing.T) {
	g := filledGrid(4, 3, TileGround)

	tests := []struct {
		name   string
		px, py float64
	}{
		{"left of grid", -1, 10},
		{"just left of zero", -0.001, 10},
		{"right of grid", 128, 10},
		{"above grid", 10, -0.5},
		{"below grid", 10, 96},
		{"far away", 1e12, -1e12},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.TileAt(tc.px, tc.py); got != TileEmpty {
				t.Errorf("TileAt(%v, %v) = %v, expected empty", tc.px, tc.py, got)
			}
		})
	}
}

func TestSetTileOutOfBoundsIsIgnored(t *testing.T) {
	g := filledGrid(4, 3, TileGround)

	g.SetTile(-1, 0, TileCoin)
	g.SetTile(128, 0, TileCoin)
	g.SetTile(0, 96, TileCoin)
	g.SetTile(0, -32, TileCoin)
	g.SetCell(7, 7, TileCoin)

	if n := g.Count(TileGround); n != 12 {
		t.Errorf("ground count = %d after out-of-range writes, expected 12", n)
	}
	if n := g.Count(TileCoin); n != 0 {
		t.Errorf("coin count = %d after out-of-range writes, expected 0", n)
	}
}

func TestTileAtFloorsPixelPosition(t *testing.T) {
	g := NewTileGrid(4, 3, 32)
	g.SetCell(1, 2, TileQuestion)

	tests := []struct {
		px, py   float64
		expected TileType
	}{
		{32, 64, TileQuestion},
		{63.99, 95.99, TileQuestion},
		{31.99, 64, TileEmpty},
		{64, 64, TileEmpty},
		{40, 63.99, TileEmpty},
	}

	for _, tc := range tests {
		if got := g.TileAt(tc.px, tc.py); got != tc.expected {
			t.Errorf("TileAt(%v, %v) = %v, expected %v", tc.px, tc.py, got, tc.expected)
		}
	}

	g.SetTile(40, 70, TileUsed)
	if g.Cell(1, 2) != TileUsed {
		t.Errorf("SetTile should address cell (1, 2), got %v", g.Cell(1, 2))
	}
}

func TestIsSolid(t *testing.T) {
	tests := []struct {
		tile  TileType
		solid bool
	}{
		{TileEmpty, false},
		{TileGround, true},
		{TileQuestion, true},
		{TileUsed, true},
		{TileCoin, false},
		{TilePipeBody, true},
		{TilePipeTop, true},
		{TileFlag, true},
	}

	for _, tc := range tests {
		t.Run(tc.tile.String(), func(t *testing.T) {
			if IsSolid(tc.tile) != tc.solid {
				t.Errorf("IsSolid(%v) = %v, expected %v", tc.tile, !tc.solid, tc.solid)
			}
		})
	}
}

func TestGridDimensions(t *testing.T) {
	g := NewTileGrid(10, 5, 16)
	if g.Width() != 10 || g.Height() != 5 || g.TileSize() != 16 {
		t.Errorf("dimensions = %dx%d@%d, expected 10x5@16", g.Width(), g.Height(), g.TileSize())
	}
	if g.PixelWidth() != 160 || g.PixelHeight() != 80 {
		t.Errorf("pixel size = %vx%v, expected 160x80", g.PixelWidth(), g.PixelHeight())
	}
}
