package platformer

// Enemy is a patrol walker. Dead enemies stay in the world's enemy list and
// are skipped until a game over revives them.
//
// Enemies do not go through Resolver. They turn around at ledges and walls
// and snap onto the tile below them, but nothing stops their horizontal
// motion, so a fast enemy can clip into a short wall before turning.
type Enemy struct {
	Body
	Alive bool

	spawnX, spawnY float64
	spawnVX        float64
}

// revive restores the enemy to its spawn position and patrol velocity.
func (e *Enemy) revive() {
	e.Alive = true
	e.X = e.spawnX
	e.Y = e.spawnY
	e.VX = e.spawnVX
	e.VY = 0
	e.OnGround = false
}

// updateEnemies moves every live enemy and resolves its contact with the player.
func (w *World) updateEnemies() {
	for i := range w.enemies {
		e := &w.enemies[i]
		if !e.Alive {
			continue
		}
		w.patrol(e)
		w.fight(e)
	}
}

// patrol applies gravity, turns the enemy at ledges and walls, integrates its
// position and rests it on the tile below.
func (w *World) patrol(e *Enemy) {
	ts := float64(w.grid.TileSize())

	e.VY += w.cfg.Physics.Gravity
	if e.VY > w.cfg.Enemies.MaxFallSpeed {
		e.VY = w.cfg.Enemies.MaxFallSpeed
	}

	probeX := e.X - 2
	if e.VX > 0 {
		probeX = e.X + e.W + 2
	}
	// Ledges only count once the enemy has landed.
	ledge := e.OnGround && !w.grid.SolidAt(probeX, e.Y+e.H+1)
	wall := w.grid.SolidAt(probeX, e.Y+e.H/2)
	// Both conditions at once still mean a single turn.
	if ledge || wall {
		e.VX = -e.VX
	}

	e.X += e.VX
	e.Y += e.VY

	e.OnGround = false
	feetY := e.Y + e.H + 1
	if w.grid.SolidAt(e.X+e.W/2, feetY) {
		_, row := w.grid.CellAt(e.X+e.W/2, feetY)
		e.Y = float64(row)*ts - e.H - w.cfg.Physics.CollisionEpsilon
		e.VY = 0
		e.OnGround = true
	}
}

// fight resolves an overlap between the enemy and the player: a stomp from
// above kills the enemy, any other touch hurts the player unless invincible.
func (w *World) fight(e *Enemy) {
	p := &w.player
	if !p.Box().Intersects(e.Box()) {
		return
	}

	if p.VY > 0 && p.Y+p.H-w.cfg.Enemies.StompTolerance < e.Y {
		e.Alive = false
		p.VY = w.cfg.Enemies.StompBounce
		w.progress.AddScore(w.cfg.Scoring.Stomp)
		w.emit(EventStomp, "stomp")
		return
	}

	if p.Invincible <= 0 {
		p.Invincible = w.cfg.Player.InvincibleTicks
		w.loseLife(msgHit)
	}
}
