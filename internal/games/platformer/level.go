package platformer

import "strings"

// Tile legend used by the text layout.
const (
	glyphEmpty    = ' '
	glyphGround   = 'b'
	glyphQuestion = '?'
	glyphCoin     = 'G'
	glyphPipeBody = 'p'
	glyphPipeTop  = 'P'
	glyphFlag     = 'F'
	glyphUsed     = 'u'
)

// EnemySpawn is the starting cell of a patrol enemy.
type EnemySpawn struct {
	Col, Row int
}

// Level is the initial content of a world: the tile grid plus where the
// player and enemies start.
type Level struct {
	Grid     *TileGrid
	StartCol int
	StartRow int
	Enemies  []EnemySpawn
}

// Level 1-1 dimensions and layout.
const (
	level11Width  = 150
	level11Height = 17
	groundRow     = 14
)

// BuildLevel11 authors the first world procedurally as rows of glyphs and
// converts them to a tile grid.
func BuildLevel11(tileSize, startCol, startRow int) *Level {
	rows := level11Rows()
	return &Level{
		Grid:     ParseRows(rows, tileSize),
		StartCol: startCol,
		StartRow: startRow,
		Enemies: []EnemySpawn{
			{Col: 15, Row: 13},
			{Col: 46, Row: 13},
			{Col: 90, Row: 13},
			{Col: 130, Row: 13},
		},
	}
}

// level11Rows lays out world 1-1 as text.
func level11Rows() []string {
	w, h := level11Width, level11Height
	grid := make([][]rune, h)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(string(glyphEmpty), w))
	}
	set := func(x, y int, r rune) {
		if x >= 0 && x < w && y >= 0 && y < h {
			grid[y][x] = r
		}
	}

	for y := groundRow; y < h; y++ {
		for x := 0; x < w; x++ {
			set(x, y, glyphGround)
		}
	}

	for _, x := range []int{15, 28, 62, 95, 120} {
		set(x, 10, glyphQuestion)
	}
	for _, x := range []int{22, 45, 70, 105, 132} {
		set(x, 11, glyphQuestion)
	}
	for _, x := range []int{30, 32, 34, 80, 82, 84, 86} {
		set(x, 9, glyphCoin)
	}
	for x := 60; x <= 67; x++ {
		set(x, 12, glyphGround)
	}
	for x := 40; x <= 47; x++ {
		set(x, 13, glyphGround)
	}

	pipes := []struct{ x, height int }{
		{38, 2},
		{73, 3},
		{98, 2},
		{122, 4},
	}
	for _, p := range pipes {
		for i := 0; i < p.height; i++ {
			r := glyphPipeBody
			if i == p.height-1 {
				r = glyphPipeTop
			}
			set(p.x, 13-i, r)
		}
	}

	// Floating bricks before the flag
	for x := 110; x < 126; x++ {
		if x%2 == 0 {
			set(x, 8, glyphGround)
		}
	}

	set(w-6, 9, glyphFlag)

	rows := make([]string, h)
	for y := range grid {
		rows[y] = string(grid[y])
	}
	return rows
}

// ParseRows converts a text layout into a tile grid. The grid is as wide as
// the longest row; unknown glyphs become empty tiles.
func ParseRows(rows []string, tileSize int) *TileGrid {
	width := 0
	for _, r := range rows {
		if n := len([]rune(r)); n > width {
			width = n
		}
	}

	grid := NewTileGrid(width, len(rows), tileSize)
	for y, r := range rows {
		for x, c := range []rune(r) {
			grid.SetCell(x, y, tileForGlyph(c))
		}
	}
	return grid
}

func tileForGlyph(c rune) TileType {
	switch c {
	case glyphGround:
		return TileGround
	case glyphQuestion:
		return TileQuestion
	case glyphUsed:
		return TileUsed
	case glyphCoin:
		return TileCoin
	case glyphPipeBody:
		return TilePipeBody
	case glyphPipeTop:
		return TilePipeTop
	case glyphFlag:
		return TileFlag
	default:
		return TileEmpty
	}
}
