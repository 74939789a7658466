package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// inputHolder is implemented by games that configure the steering hold window.
type inputHolder interface {
	InputHold() time.Duration
}

// Options configures a game Model.
type Options struct {
	Store   *storage.Store // Optional; scores are not saved when nil
	Logger  *log.Logger    // Optional; game events are logged at debug level
	Runtime core.RuntimeConfig
}

// Model is the Bubble Tea model that hosts one game.
type Model struct {
	game      registry.Game
	frame     *core.Frame
	screen    *core.Screen
	store     *storage.Store
	logger    *log.Logger
	config    core.RuntimeConfig
	keys      KeyMap
	keyMapper *KeyMapper
	help      help.Model
	input     *HeldInput
	lastTick  time.Time
	gameState core.GameState

	quitting   bool
	ended      bool // Player confirmed an end screen
	scoreSaved bool // Whether score has been saved for the current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options) Model {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		def := core.DefaultConfig()
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	hold := DefaultHold
	if h, ok := game.(inputHolder); ok {
		hold = h.InputHold()
	}

	keys := DefaultKeyMap()
	return Model{
		game:      game,
		frame:     core.NewFrame(0, 0),
		screen:    core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		store:     opts.Store,
		logger:    logger,
		config:    cfg,
		keys:      keys,
		keyMapper: NewKeyMapper(keys),
		help:      help.New(),
		input:     NewHeldInput(hold),
		gameState: game.State(),
	}
}

// playfieldHeight leaves one row for the help line.
func playfieldHeight(h int) int {
	return max(h-1, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.input.Press(action, time.Now())
	return m, nil
}

// handleTick advances the game by the wall-clock time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1 / float64(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	result := m.game.Step(dt, m.input.Frame(now))
	if result.State.Phase != m.gameState.Phase {
		// Steering held through a menu or end screen must not carry over.
		m.input.Reset()
	}
	m.gameState = result.State

	for _, ev := range result.Events {
		m.logger.Debug("game event",
			"game", m.game.ID(),
			"kind", ev.Kind,
			"value", ev.Value,
			"phase", ev.Phase,
		)
	}

	if !m.gameState.GameOver {
		m.scoreSaved = false
	} else if !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	if result.Exit {
		m.ended = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScore stores the finished game. Failures are logged; play continues.
func (m Model) saveScore() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	outcome := storage.OutcomeDead
	if m.gameState.Won {
		outcome = storage.OutcomeWon
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score, outcome); err != nil {
		m.logger.Warn("could not save score", "game", m.game.ID(), "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.ended {
		return ""
	}

	m.game.Render(m.frame)
	Project(m.frame, m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// IsQuitting returns true if the user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Ended reports whether the player confirmed an end screen.
func (m Model) Ended() bool {
	return m.ended
}

// Run starts the Bubble Tea program for the given game.
// Returns core.ErrGameEnded when the player confirmed an end screen.
func Run(game registry.Game, opts Options, progOpts ...tea.ProgramOption) error {
	model := NewModel(game, opts)

	progOpts = append([]tea.ProgramOption{tea.WithAltScreen()}, progOpts...)
	p := tea.NewProgram(model, progOpts...)

	final, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := final.(Model); ok && m.Ended() {
		return core.ErrGameEnded
	}
	return nil
}
