package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// Body is the movable rectangle shared by the player and enemies.
// X, Y is the top-left corner in pixels; VX, VY is the pending per-tick displacement.
type Body struct {
	X, Y     float64
	W, H     float64
	VX, VY   float64
	OnGround bool
}

// Box returns the body's current bounding box.
func (b Body) Box() core.Box {
	return core.NewBox(b.X, b.Y, b.W, b.H)
}

// Center returns the center point of the body.
func (b Body) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// Contact records the solid tile a resolver pass stopped against.
type Contact struct {
	Hit      bool
	Tile     TileType
	Col, Row int
}

// Contacts holds the outcome of one Resolve call, one entry per axis.
type Contacts struct {
	Horizontal Contact
	Vertical   Contact
	Landed     bool // Vertical contact came from falling onto the tile
}

// HeadBump reports whether the body hit a tile from below.
func (c Contacts) HeadBump() (Contact, bool) {
	return c.Vertical, c.Vertical.Hit && !c.Landed
}

// Touched reports whether either axis stopped against a tile of type t.
func (c Contacts) Touched(t TileType) (Contact, bool) {
	if c.Horizontal.Hit && c.Horizontal.Tile == t {
		return c.Horizontal, true
	}
	if c.Vertical.Hit && c.Vertical.Tile == t {
		return c.Vertical, true
	}
	return Contact{}, false
}

// Resolver moves a body through the tile grid one axis at a time,
// horizontal first, sampling two points on the leading edge of each axis.
type Resolver struct {
	Epsilon float64 // Gap left between a snapped body and the tile it hit
	Rebound float64 // Downward vy after hitting a tile from below
}

// Resolve applies the body's velocity against grid and returns what it hit.
// The grid is read only; reacting to contacts is the caller's job.
func (r Resolver) Resolve(b *Body, grid *TileGrid) Contacts {
	var c Contacts
	ts := float64(grid.TileSize())

	if b.VX != 0 {
		aheadX := b.X + b.VX
		if b.VX > 0 {
			aheadX = b.X + b.W + b.VX
		}
		for _, sy := range [2]float64{b.Y + 1, b.Y + b.H - 1} {
			t := grid.TileAt(aheadX, sy)
			if !IsSolid(t) {
				continue
			}
			col, row := grid.CellAt(aheadX, sy)
			if b.VX > 0 {
				b.X = float64(col)*ts - b.W - r.Epsilon
			} else {
				b.X = float64(col+1)*ts + r.Epsilon
			}
			b.VX = 0
			c.Horizontal = Contact{Hit: true, Tile: t, Col: col, Row: row}
			break
		}
	}
	b.X += b.VX

	b.OnGround = false
	if b.VY != 0 {
		aheadY := b.Y + b.VY
		if b.VY > 0 {
			aheadY = b.Y + b.H + b.VY
		}
		for _, sx := range [2]float64{b.X + 3, b.X + b.W - 3} {
			t := grid.TileAt(sx, aheadY)
			if !IsSolid(t) {
				continue
			}
			col, row := grid.CellAt(sx, aheadY)
			if b.VY > 0 {
				b.OnGround = true
				b.Y = float64(row)*ts - b.H - r.Epsilon
				b.VY = 0
				c.Landed = true
			} else {
				b.Y = float64(row+1)*ts + r.Epsilon
				b.VY = r.Rebound
			}
			c.Vertical = Contact{Hit: true, Tile: t, Col: col, Row: row}
			break
		}
	}
	b.Y += b.VY

	return c
}
