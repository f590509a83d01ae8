package platformer

import "math"

// TileType is the interaction class of one grid cell.
type TileType uint8

const (
	TileEmpty TileType = iota
	TileGround
	TileQuestion
	TileUsed
	TileCoin
	TilePipeBody
	TilePipeTop
	TileFlag
)

// String returns a short name for the tile type.
func (t TileType) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileGround:
		return "ground"
	case TileQuestion:
		return "question"
	case TileUsed:
		return "used"
	case TileCoin:
		return "coin"
	case TilePipeBody:
		return "pipe-body"
	case TilePipeTop:
		return "pipe-top"
	case TileFlag:
		return "flag"
	default:
		return "unknown"
	}
}

// IsSolid reports whether a tile blocks movement.
// Coins and empty cells are pass-through; everything else is solid.
func IsSolid(t TileType) bool {
	switch t {
	case TileGround, TileQuestion, TileUsed, TilePipeBody, TilePipeTop, TileFlag:
		return true
	default:
		return false
	}
}

// TileGrid is the level's fixed-size tile map. Cells are addressed either by
// (col, row) or by a continuous pixel position. Reads outside the grid yield
// TileEmpty and writes outside the grid are ignored.
type TileGrid struct {
	width    int
	height   int
	tileSize int
	cells    []TileType
}

// NewTileGrid creates an empty grid of width×height tiles.
func NewTileGrid(width, height, tileSize int) *TileGrid {
	return &TileGrid{
		width:    width,
		height:   height,
		tileSize: tileSize,
		cells:    make([]TileType, width*height),
	}
}

// Width returns the grid width in tiles.
func (g *TileGrid) Width() int {
	return g.width
}

// Height returns the grid height in tiles.
func (g *TileGrid) Height() int {
	return g.height
}

// TileSize returns the edge length of one tile in pixels.
func (g *TileGrid) TileSize() int {
	return g.tileSize
}

// PixelWidth returns the level width in pixels.
func (g *TileGrid) PixelWidth() float64 {
	return float64(g.width * g.tileSize)
}

// PixelHeight returns the level height in pixels.
func (g *TileGrid) PixelHeight() float64 {
	return float64(g.height * g.tileSize)
}

func (g *TileGrid) inBounds(col, row int) bool {
	return col >= 0 && col < g.width && row >= 0 && row < g.height
}

// Cell returns the tile at (col, row).
func (g *TileGrid) Cell(col, row int) TileType {
	if !g.inBounds(col, row) {
		return TileEmpty
	}
	return g.cells[row*g.width+col]
}

// SetCell replaces the tile at (col, row).
func (g *TileGrid) SetCell(col, row int, t TileType) {
	if !g.inBounds(col, row) {
		return
	}
	g.cells[row*g.width+col] = t
}

// CellAt converts a pixel position to the (col, row) that contains it.
// The result may lie outside the grid.
func (g *TileGrid) CellAt(px, py float64) (int, int) {
	ts := float64(g.tileSize)
	return floorToInt(px / ts), floorToInt(py / ts)
}

// TileAt returns the tile containing the pixel position.
func (g *TileGrid) TileAt(px, py float64) TileType {
	col, row := g.CellAt(px, py)
	return g.Cell(col, row)
}

// SetTile replaces the tile containing the pixel position.
func (g *TileGrid) SetTile(px, py float64, t TileType) {
	col, row := g.CellAt(px, py)
	g.SetCell(col, row, t)
}

// SolidAt reports whether the tile containing the pixel position is solid.
func (g *TileGrid) SolidAt(px, py float64) bool {
	return IsSolid(g.TileAt(px, py))
}

// Count returns how many cells hold the given tile type.
func (g *TileGrid) Count(t TileType) int {
	n := 0
	for _, c := range g.cells {
		if c == t {
			n++
		}
	}
	return n
}

// floorToInt floors v and converts it to int. Non-finite or huge values map
// to a coordinate far outside any grid.
func floorToInt(v float64) int {
	f := math.Floor(v)
	if math.IsNaN(f) || f < math.MinInt32 {
		return math.MinInt32
	}
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(f)
}
