package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/oled-arcade/internal/config"
	"github.com/vovakirdan/oled-arcade/internal/display"
	"github.com/vovakirdan/oled-arcade/internal/engine"
	"github.com/vovakirdan/oled-arcade/internal/input"
	"github.com/vovakirdan/oled-arcade/internal/registry"
)

// Model is the Bubble Tea model of one simulated device running a game.
type Model struct {
	loop       *engine.Loop
	fb         *display.Framebuffer
	keys       *input.Keyboard
	keyMapper  *KeyMapper
	gen        uint64
	err        error
	quitting   bool
	backToMenu bool
	standalone bool // esc quits instead of returning to the menu
}

// NewModel wires a game to a framebuffer and keyboard lines.
func NewModel(game registry.Game, cfg config.Config, opts engine.Options) Model {
	keys := input.NewKeyboard(cfg.Input.KeyHold, nil)
	fb := display.NewFramebuffer(nil)
	sampler := input.NewSampler(keys, cfg.Input.Debounce)
	return Model{
		loop:      engine.New(game, sampler, fb, opts),
		fb:        fb,
		keys:      keys,
		keyMapper: NewKeyMapper(),
		gen:       nextGen(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(0, m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		if err := m.loop.Tick(msg.At); err != nil {
			m.err = err
			m.quitting = true
			return m, tea.Quit
		}
		return m, tickCmd(m.loop.Interval(), m.gen)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.IsQuit(msg) {
		m.quitting = true
		return m, tea.Quit
	}

	switch msg.String() {
	case "esc":
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, nil
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	if b, ok := m.keyMapper.Button(msg); ok {
		m.keys.Tap(b)
	}
	return m, nil
}

// saveScreenshot writes the committed frame as text.
func (m Model) saveScreenshot() {
	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.loop.Game().ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(RenderScreen(m.fb.Front())), 0o600)
}

// View renders the committed frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderPanel(m.fb.Front(), m.status())
}

func (m Model) status() string {
	state := m.loop.Game().State()
	stats := m.loop.Stats()
	perTick := 0
	if stats.Ticks > 0 {
		perTick = stats.Pixels / stats.Ticks
	}
	return fmt.Sprintf(" %s  score %d  %s  %d px/tick  |  arrows, z=A, x=B, esc back, q quit",
		m.loop.Game().Title(), state.Score, m.loop.Phase(), perTick)
}

// Err returns the error that stopped the loop, if any.
func (m Model) Err() error {
	return m.err
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested the game picker.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays one game in the terminal until the user quits.
func Run(game registry.Game, cfg config.Config, opts engine.Options) error {
	model := NewModel(game, cfg, opts)
	model.standalone = true

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}
