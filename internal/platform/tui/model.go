package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/naughty-nice/internal/core"
)

// DefaultHoldTimeout is how long a movement key counts as held after the
// last press or auto-repeat event. Terminals report no key release, so a key
// that stops repeating is treated as released once this expires.
const DefaultHoldTimeout = 500 * time.Millisecond

// Options configures the host.
type Options struct {
	HoldTimeout time.Duration
	Logger      *log.Logger
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game    Game
	screen  *core.Screen
	config  core.RuntimeConfig
	keys    KeyMap
	help    help.Model
	logger  *log.Logger
	holdFor time.Duration

	held      map[core.Action]time.Time // movement key -> last press
	pending   core.InputFrame           // one-shot presses since last tick
	gameState core.GameState
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.HoldTimeout <= 0 {
		opts.HoldTimeout = DefaultHoldTimeout
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		logger:  opts.Logger,
		holdFor: opts.HoldTimeout,
		held:    make(map[core.Action]time.Time),
		pending: core.NewInputFrame(),
	}
}

// playHeight leaves the last terminal row to the help line.
func playHeight(h int) int {
	return max(h-1, 1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickDuration())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Movement keys refresh their hold time;
// everything else is queued for the next tick.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
		return m, nil
	case core.ActionMoveForward, core.ActionMoveLeft, core.ActionMoveBack, core.ActionMoveRight:
		// A new direction replaces the old one: auto-repeat only ever
		// reports the most recent key.
		clear(m.held)
		m.held[action] = now
	default:
		m.pending.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events. Rendering scales the arena to
// the screen, so the game keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// inputAt builds the input frame for a tick at now.
func (m Model) inputAt(now time.Time) core.InputFrame {
	in := m.pending.Clone()
	for action, pressed := range m.held {
		if now.Sub(pressed) < m.holdFor {
			in.Set(action)
		} else {
			delete(m.held, action)
		}
	}
	return in
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	prev := m.gameState
	result := m.game.Step(m.inputAt(now))
	m.gameState = result.State
	m.pending.Clear()

	switch {
	case m.gameState.GameOver && !prev.GameOver:
		m.logger.Info("game over", "presents", m.gameState.Score)
	case m.gameState.Won && !prev.Won:
		m.logger.Info("game won", "presents", m.gameState.Score, "health", m.gameState.Health)
	}

	return m, tickCmd(m.config.TickDuration())
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".naughtynice", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
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
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program with the given game.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
