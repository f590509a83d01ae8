package platformer

// collectCoin picks up a coin tile under the player's center.
func (w *World) collectCoin() {
	cx, cy := w.player.Center()
	if w.grid.TileAt(cx, cy) != TileCoin {
		return
	}
	w.grid.SetTile(cx, cy, TileEmpty)
	w.progress.Message = msgCoin
	w.awardCoin()
}

// checkGoal ends the lap when the player reaches the flag: either its center
// is inside the flag tile, or the collision pass stopped it against the flag.
// Tiles and enemies are left as they are.
func (w *World) checkGoal(contacts Contacts) {
	cx, cy := w.player.Center()
	col, row := w.grid.CellAt(cx, cy)
	reached := w.grid.Cell(col, row) == TileFlag

	if !reached && !w.respawned {
		if c, ok := contacts.Touched(TileFlag); ok {
			col, row = c.Col, c.Row
			reached = true
		}
	}
	if !reached {
		return
	}

	ts := float64(w.grid.TileSize())
	w.spawnRibbon(float64(col)*ts+ts/2, float64(row)*ts)
	w.progress.AddScore(w.cfg.Scoring.Goal)
	w.progress.Message = msgGoal
	w.emit(EventGoal, msgGoal)
	w.player.respawn()
}
