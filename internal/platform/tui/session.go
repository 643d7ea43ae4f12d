package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/oled-arcade/internal/config"
	"github.com/vovakirdan/oled-arcade/internal/engine"
	"github.com/vovakirdan/oled-arcade/internal/registry"
	"github.com/vovakirdan/oled-arcade/internal/storage"
)

type screen int

const (
	screenMenu screen = iota
	screenGame
	screenStats
)

// SessionModel manages the full arcade flow: menu -> game or bench
// board -> menu. Every session owns its own simulated device.
type SessionModel struct {
	store    *storage.Store
	cfg      config.Config
	opts     engine.Options
	width    int
	height   int
	screen   screen
	menu     MenuModel
	game     Model
	stats    StatsModel
	err      error
	quitting bool
}

// NewSessionModel creates a session starting at the game picker.
// store may be nil, in which case the bench board stays empty.
func NewSessionModel(store *storage.Store, cfg config.Config, opts engine.Options, width, height int) SessionModel {
	return SessionModel{
		store:  store,
		cfg:    cfg,
		opts:   opts,
		width:  width,
		height: height,
		menu:   NewMenuModel(width, height),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenStats:
		return m.updateStats(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsStats():
		m.stats = NewStatsModel(m.store, m.width, m.height)
		m.screen = screenStats
		return m, m.stats.Init()

	case m.menu.Selected() != nil:
		game, err := registry.Create(m.menu.Selected().ID, m.cfg)
		if err != nil {
			// Shouldn't happen since the menu only shows registered games
			m.menu = NewMenuModel(m.width, m.height)
			return m, nil
		}
		m.game = NewModel(game, m.cfg, m.opts)
		m.screen = screenGame
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates when a game is running.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if game, ok := next.(Model); ok {
		m.game = game
	}

	switch {
	case m.game.IsQuitting():
		m.err = m.game.Err()
		m.quitting = true
		return m, tea.Quit

	case m.game.BackToMenu():
		// Pending ticks of the old game are dropped by the menu.
		m.backToMenu()
		return m, nil
	}

	return m, cmd
}

// updateStats handles updates when the bench board is shown.
func (m SessionModel) updateStats(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.stats.Update(msg)
	if stats, ok := next.(StatsModel); ok {
		m.stats = stats
	}

	switch {
	case m.stats.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.stats.IsGoingBack():
		m.backToMenu()
		return m, nil
	}

	return m, cmd
}

func (m *SessionModel) backToMenu() {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.width, m.height)
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenStats:
		return m.stats.View()
	}
	return m.menu.View()
}

// Err returns the error that ended the session, if any.
func (m SessionModel) Err() error {
	return m.err
}

// RunSession runs the interactive menu in the local terminal.
func RunSession(store *storage.Store, cfg config.Config, opts engine.Options, width, height int) error {
	p := tea.NewProgram(NewSessionModel(store, cfg, opts, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(SessionModel); ok {
		return m.Err()
	}
	return nil
}
