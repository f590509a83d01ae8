package platformer

import "math"

// Player is the single controllable avatar. It is repositioned on death and
// on reaching the goal, never recreated.
type Player struct {
	Body
	Invincible int // Ticks left during which enemy contact does no damage

	jumpLatched bool // Jump has been consumed and not yet released
	startX      float64
	startY      float64
}

// respawn puts the player back at the level start at rest.
func (p *Player) respawn() {
	p.X = p.startX
	p.Y = p.startY
	p.VX = 0
	p.VY = 0
	p.OnGround = false
}

// updatePlayer integrates input and gravity, resolves the player against the
// grid and handles question-block bumps and falling out of the world.
func (w *World) updatePlayer(in Input) Contacts {
	p := &w.player
	phys := w.cfg.Physics

	if p.Invincible > 0 {
		p.Invincible--
	}

	if in.Left {
		p.VX -= phys.MoveAccel
	}
	if in.Right {
		p.VX += phys.MoveAccel
	}
	if math.Abs(p.VX) > phys.MaxRunSpeed {
		p.VX = math.Copysign(phys.MaxRunSpeed, p.VX)
	}

	if in.Jump && !p.jumpLatched {
		p.jumpLatched = true
		if p.OnGround {
			p.VY = phys.JumpImpulse
			p.OnGround = false
		}
	}
	if !in.Jump {
		p.jumpLatched = false
	}

	p.VY += phys.Gravity
	if p.VY > phys.MaxFallSpeed {
		p.VY = phys.MaxFallSpeed
	}

	p.VX *= phys.Friction
	if math.Abs(p.VX) < phys.StopThreshold {
		p.VX = 0
	}

	contacts := w.resolver.Resolve(&p.Body, w.grid)
	if c, ok := contacts.HeadBump(); ok && c.Tile == TileQuestion {
		w.bumpQuestion(c.Col, c.Row)
	}

	if p.Y > w.cfg.Viewport.Height {
		w.loseLife(msgFell)
		return Contacts{}
	}

	return contacts
}

// bumpQuestion turns a question block into a used block and pops its coin.
func (w *World) bumpQuestion(col, row int) {
	ts := float64(w.grid.TileSize())
	w.grid.SetCell(col, row, TileUsed)

	tileX := float64(col) * ts
	tileY := float64(row) * ts
	w.spawnCoinPop(tileX+ts/2-6, tileY-10)
	w.awardCoin()
}
