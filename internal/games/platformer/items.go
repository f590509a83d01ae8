package platformer

// ItemKind tags a transient item.
type ItemKind uint8

const (
	ItemCoinPop    ItemKind = iota // Coin bouncing out of a question block
	ItemFlagRibbon                 // Ribbon shown after reaching the flag
)

// Item is a short-lived decorative entity. It never collides with anything
// and is removed once its lifetime runs out.
type Item struct {
	Kind  ItemKind
	X, Y  float64
	VY    float64 // CoinPop only
	Age   int     // CoinPop only, ticks since spawn
	Timer int     // FlagRibbon only, ticks remaining
}

// spawnCoinPop adds a coin pop at (x, y) moving upward.
func (w *World) spawnCoinPop(x, y float64) {
	w.items = append(w.items, Item{
		Kind: ItemCoinPop,
		X:    x,
		Y:    y,
		VY:   w.cfg.Items.CoinPopVelocity,
	})
}

// spawnRibbon adds a flag ribbon at (x, y).
func (w *World) spawnRibbon(x, y float64) {
	w.items = append(w.items, Item{
		Kind:  ItemFlagRibbon,
		X:     x,
		Y:     y,
		Timer: w.cfg.Items.RibbonTicks,
	})
}

// updateItems ages every item and drops the expired ones, keeping order.
func (w *World) updateItems() {
	gravity := w.cfg.Physics.Gravity * w.cfg.Items.CoinPopGravityScale
	lifetime := w.cfg.Items.CoinPopLifetime

	kept := w.items[:0]
	for _, it := range w.items {
		switch it.Kind {
		case ItemCoinPop:
			it.Age++
			it.VY += gravity
			it.Y += it.VY
			if it.Age < lifetime {
				kept = append(kept, it)
			}
		case ItemFlagRibbon:
			it.Timer--
			if it.Timer > 0 {
				kept = append(kept, it)
			}
		}
	}
	// Zero the tail so dropped items don't linger in the backing array
	for i := len(kept); i < len(w.items); i++ {
		w.items[i] = Item{}
	}
	w.items = kept
}
