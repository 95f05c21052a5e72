package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/egg-flight/internal/assets"
	"github.com/vovakirdan/egg-flight/internal/core"
	"github.com/vovakirdan/egg-flight/internal/flight"
)

// footerHeight is the number of rows reserved for the key help.
const footerHeight = 1

// Model is the Bubble Tea model hosting one game session.
type Model struct {
	game       *flight.Game
	catalog    *assets.Catalog
	keys       KeyMap
	help       help.Model
	screen     *core.Screen
	palette    Palette
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	logger     *log.Logger
	quitting   bool
}

// NewModel creates a model for the game and resets it.
// A zero seed is replaced with the current time.
func NewModel(game *flight.Game, catalog *assets.Catalog, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if catalog == nil {
		catalog = assets.Builtin()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)
	logger.Debug("session started", "seed", cfg.Seed, "fps", cfg.TickRate)

	return Model{
		game:       game,
		catalog:    catalog,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		screen:     core.NewScreen(cfg.ScreenW, core.Max(1, cfg.ScreenH-footerHeight)),
		palette:    NewPalette(flight.ClearColor.Hex()),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		logger:     logger,
	}
}

// Init sets the window title and starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(m.game.Title()),
		tickCmd(m.config.TickRate),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.keys.MapKeyToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleResize rescales the play field to the new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(1, msg.Height-footerHeight))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step with the input gathered since the last tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	res := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	for _, e := range res.Events {
		switch e.Type {
		case flight.EventRunStarted:
			m.logger.Info("run started")
		case flight.EventRunEnded:
			m.logger.Info("run ended", "score", e.Value, "ticks", e.Tick)
		}
	}

	if res.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// View renders the current frame and the key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	RasterizeFrame(m.game.Frame(), m.screen, m.catalog)
	return RenderScreen(m.screen, m.palette) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(game *flight.Game, catalog *assets.Catalog, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, catalog, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("%w: %w", ErrSubsystemInit, err)
	}
	return nil
}
