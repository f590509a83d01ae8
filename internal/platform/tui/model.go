package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// Options configures a game Model.
type Options struct {
	Player   string      // Name stored with saved scores
	Logger   *log.Logger // Gameplay event log; nil discards
	Embedded bool        // Quit hands control back to a parent model instead of exiting
}

// Model is the Bubble Tea model that runs a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	logger    *log.Logger
	config    core.RuntimeConfig
	keys      *KeyMapper
	holds     *HoldTracker
	commands  core.InputFrame // One-shot actions pressed since the last tick
	tick      uint64
	gameState core.GameState
	player    string
	embedded  bool
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	player := opts.Player
	if player == "" {
		player = storage.DefaultPlayer
	}

	return Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:    store,
		logger:   logger,
		config:   cfg,
		keys:     NewKeyMapper(),
		holds:    NewHoldTracker(cfg.TickRate),
		commands: core.NewInputFrame(),
		player:   player,
		embedded: opts.Embedded,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "player", m.player,
		"width", m.config.ScreenW, "height", m.config.ScreenH)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.saveScore(m.game.State().Score, "quit")
		m.quitting = true
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit
	}

	switch {
	case holdable(action):
		m.holds.Press(action, m.tick)
	case action != core.ActionNone:
		m.commands.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Games that can follow the new size keep their state.
	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := m.commands.Clone()
	m.holds.Apply(&frame, m.tick)

	result := m.game.Step(frame)
	m.gameState = result.State

	for _, ev := range result.Events {
		m.logger.Debug("event", "kind", ev.Kind, "score", ev.Score, "text", ev.Text, "tick", m.tick)
		if ev.Kind == core.EventGameOver {
			m.saveScore(ev.Score, "game over")
		}
	}

	if frame.Has(core.ActionRestart) {
		m.holds.Release()
		m.logger.Info("game restarted", "game", m.game.ID(), "player", m.player)
	}

	m.commands.Clear()
	m.tick++

	return m, tickCmd(m.config.TickRate)
}

// saveScore records a finished run. Zero scores are not kept.
func (m Model) saveScore(score int, reason string) {
	if m.store == nil || score <= 0 {
		return
	}

	if _, err := m.store.SaveScore(m.game.ID(), m.player, score); err != nil {
		m.logger.Warn("could not save score", "error", err, "score", score)
		return
	}
	m.logger.Info("score saved", "player", m.player, "score", score, "reason", reason)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".platformer", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting reports whether the player asked to leave the game.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
