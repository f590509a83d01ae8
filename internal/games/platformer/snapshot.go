package platformer

// DrawKind identifies what a Drawable depicts.
type DrawKind uint8

const (
	DrawPlayer DrawKind = iota
	DrawEnemy
	DrawCoinPop
	DrawRibbon
)

// Drawable is one live entity as the renderer needs it.
type Drawable struct {
	Kind  DrawKind
	X, Y  float64
	W, H  float64
	Timer int // Ribbon ticks remaining
	Blink bool
}

// HUD carries the formatted status fields.
type HUD struct {
	World   string
	Score   string // Six zero-padded digits
	Coins   string // "x" + two digits
	Lives   string
	Message string
}

// Frame is everything a renderer needs after a step. Grid is the live grid
// and must not be modified by the renderer.
type Frame struct {
	Tick      uint64
	Camera    float64
	Grid      *TileGrid
	Drawables []Drawable
	HUD       HUD
}

// Frame captures the current state for drawing: the player, live enemies and
// active items, in draw order.
func (w *World) Frame() Frame {
	drawables := make([]Drawable, 0, 1+len(w.enemies)+len(w.items))

	for _, it := range w.items {
		switch it.Kind {
		case ItemCoinPop:
			drawables = append(drawables, Drawable{Kind: DrawCoinPop, X: it.X, Y: it.Y, W: 12, H: 24})
		case ItemFlagRibbon:
			drawables = append(drawables, Drawable{Kind: DrawRibbon, X: it.X, Y: it.Y, W: 4, H: float64(it.Timer), Timer: it.Timer})
		}
	}

	for _, e := range w.enemies {
		if !e.Alive {
			continue
		}
		drawables = append(drawables, Drawable{Kind: DrawEnemy, X: e.X, Y: e.Y, W: e.W, H: e.H})
	}

	p := w.player
	drawables = append(drawables, Drawable{
		Kind:  DrawPlayer,
		X:     p.X,
		Y:     p.Y,
		W:     p.W,
		H:     p.H,
		Blink: p.Invincible > 0 && (p.Invincible/4)%2 == 1,
	})

	return Frame{
		Tick:      w.tick,
		Camera:    w.Camera(),
		Grid:      w.grid,
		Drawables: drawables,
		HUD: HUD{
			World:   w.progress.World,
			Score:   w.progress.ScoreText(),
			Coins:   w.progress.CoinsText(),
			Lives:   w.progress.LivesText(),
			Message: w.progress.Message,
		},
	}
}
