package platformer

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Terminal layout: every tile is drawn as CellsPerTile columns by one row.
const (
	CellsPerTile = 2
	hudRows      = 2 // Status line plus message line above the playfield
	flagPoleRows = 4
)

type glyph struct {
	r     [CellsPerTile]rune
	color core.Color
}

var tileGlyphs = map[TileType]glyph{
	TileGround:   {[CellsPerTile]rune{'█', '█'}, core.ColorBrown},
	TileQuestion: {[CellsPerTile]rune{'?', '?'}, core.ColorBrightYellow},
	TileUsed:     {[CellsPerTile]rune{'▒', '▒'}, core.ColorGray},
	TileCoin:     {[CellsPerTile]rune{'(', ')'}, core.ColorYellow},
	TilePipeTop:  {[CellsPerTile]rune{'╔', '╗'}, core.ColorBrightGreen},
	TilePipeBody: {[CellsPerTile]rune{'║', '║'}, core.ColorGreen},
	TileFlag:     {[CellsPerTile]rune{'│', '▶'}, core.ColorBrightGreen},
}

// cellMapper converts world pixels to screen cells.
type cellMapper struct {
	camera float64
	cellW  float64 // Pixels per column
	cellH  float64 // Pixels per row
	top    int     // Screen row of world row 0
}

func (m cellMapper) col(px float64) int {
	return int(math.Floor((px - m.camera) / m.cellW))
}

func (m cellMapper) row(py float64) int {
	return int(math.Floor(py/m.cellH)) + m.top
}

// playfieldTop returns the screen row where world row 0 is drawn. When the
// screen is too short the top of the level is cut off, never the ground.
func playfieldTop(screenH, gridH int) int {
	top := hudRows
	if screenH-top < gridH {
		top = screenH - gridH
	}
	return top
}

// ViewportPixels returns how many world pixels fit across a screen of the
// given width.
func ViewportPixels(screenW, tileSize int) float64 {
	return float64(screenW/CellsPerTile) * float64(tileSize)
}

// DrawFrame renders a frame into the screen buffer.
func DrawFrame(dst *core.Screen, f Frame) {
	ts := f.Grid.TileSize()
	m := cellMapper{
		camera: f.Camera,
		cellW:  float64(ts) / CellsPerTile,
		cellH:  float64(ts),
		top:    playfieldTop(dst.Height(), f.Grid.Height()),
	}

	drawTiles(dst, f.Grid, m)
	for _, d := range f.Drawables {
		drawEntity(dst, d, m)
	}
	drawHUD(dst, f.HUD)
}

// drawTiles draws the visible columns of the grid.
func drawTiles(dst *core.Screen, grid *TileGrid, m cellMapper) {
	ts := float64(grid.TileSize())
	firstCol := int(math.Floor(m.camera / ts))
	lastCol := firstCol + dst.Width()/CellsPerTile + 1

	for row := 0; row < grid.Height(); row++ {
		for col := firstCol; col <= lastCol; col++ {
			t := grid.Cell(col, row)
			if t == TileEmpty {
				continue
			}
			g := tileGlyphs[t]
			sx := m.col(float64(col) * ts)
			sy := m.row(float64(row) * ts)
			for i, r := range g.r {
				dst.SetColored(sx+i, sy, r, g.color)
			}
			if t == TileFlag {
				drawFlagPole(dst, grid, col, row, sx, sy)
			}
		}
	}
}

// drawFlagPole draws the decorative pole under a flag through empty cells.
func drawFlagPole(dst *core.Screen, grid *TileGrid, col, row, sx, sy int) {
	for i := 1; i < flagPoleRows; i++ {
		if grid.Cell(col, row+i) != TileEmpty {
			return
		}
		dst.SetColored(sx, sy+i, '│', core.ColorBrightWhite)
	}
}

// drawEntity fills the cells covered by a drawable.
func drawEntity(dst *core.Screen, d Drawable, m cellMapper) {
	var (
		r rune
		c core.Color
	)
	switch d.Kind {
	case DrawPlayer:
		if d.Blink {
			return
		}
		r, c = '█', core.ColorBrightRed
	case DrawEnemy:
		r, c = '▄', core.ColorOrange
	case DrawCoinPop:
		r, c = 'o', core.ColorBrightYellow
	case DrawRibbon:
		r, c = '≈', core.ColorBrightGreen
	}

	x0, x1 := m.col(d.X), m.col(d.X+d.W-1)
	y0, y1 := m.row(d.Y), m.row(d.Y+d.H-1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dst.SetColored(x, y, r, c)
		}
	}
}

// drawHUD writes the status and message lines.
func drawHUD(dst *core.Screen, h HUD) {
	status := fmt.Sprintf(" WORLD %s   SCORE %s   COINS %s   LIVES %s ", h.World, h.Score, h.Coins, h.Lives)
	dst.DrawTextColored(0, 0, status, core.ColorBrightWhite)
	dst.DrawTextColored(1, 1, h.Message, core.ColorCyan)
}
