package platformer

import (
	"fmt"
	"strconv"
)

// Progression is the score/coin/life state shown on the HUD.
type Progression struct {
	Score   int
	Coins   int
	Lives   int
	World   string // Display label only
	Message string // Free-text status line

	startLives int
}

// NewProgression returns a fresh progression with the given starting lives.
func NewProgression(lives int, world string) Progression {
	return Progression{
		Lives:      lives,
		World:      world,
		startLives: lives,
	}
}

// AddScore awards points. Negative amounts are ignored.
func (p *Progression) AddScore(amount int) {
	if amount > 0 {
		p.Score += amount
	}
}

// AddCoin records one collected coin and awards its score value.
func (p *Progression) AddCoin(scorePerCoin int) {
	p.Coins++
	p.AddScore(scorePerCoin)
}

// LoseLife removes a life. When the last life is lost the score, coins and
// lives are reset together and LoseLife returns true.
func (p *Progression) LoseLife() (gameOver bool) {
	p.Lives--
	if p.Lives > 0 {
		return false
	}
	p.Reset()
	return true
}

// Reset restores the starting score, coins and lives. The world label and
// message are kept.
func (p *Progression) Reset() {
	p.Score = 0
	p.Coins = 0
	p.Lives = p.startLives
}

// ScoreText formats the score as six zero-padded digits.
func (p Progression) ScoreText() string {
	return fmt.Sprintf("%06d", p.Score)
}

// CoinsText formats the coin counter as "x" plus two digits.
// The display wraps at 100; the stored count does not.
func (p Progression) CoinsText() string {
	return fmt.Sprintf("x%02d", p.Coins%100)
}

// LivesText formats the remaining lives.
func (p Progression) LivesText() string {
	return strconv.Itoa(p.Lives)
}
