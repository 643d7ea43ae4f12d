package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/oled-arcade/internal/config"
	"github.com/vovakirdan/oled-arcade/internal/core"
	"github.com/vovakirdan/oled-arcade/internal/engine"
	"github.com/vovakirdan/oled-arcade/internal/registry"

	_ "github.com/vovakirdan/oled-arcade/internal/games/buttontest"
	_ "github.com/vovakirdan/oled-arcade/internal/games/snake"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestRenderScreenHalfBlocks(t *testing.T) {
	s := core.NewScreen(4, 4)
	s.Set(0, 0, core.ColorOn) // top only
	s.Set(1, 1, core.ColorOn) // bottom only
	s.Set(2, 0, core.ColorOn) // both
	s.Set(2, 1, core.ColorOn)

	lines := strings.Split(RenderScreen(s), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "▀▄█ " {
		t.Errorf("first line = %q", lines[0])
	}
	if lines[1] != "    " {
		t.Errorf("second line = %q", lines[1])
	}
}

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want core.ButtonID
		ok   bool
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.ButtonUp, true},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ButtonLeft, true},
		{runes("z"), core.ButtonA, true},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ButtonB, true},
		{runes("p"), 0, false},
	}
	for _, tc := range tests {
		b, ok := km.Button(tc.msg)
		if ok != tc.ok || (ok && b != tc.want) {
			t.Errorf("Button(%q) = %v, %v", tc.msg.String(), b, ok)
		}
	}

	if !km.IsQuit(runes("q")) || km.IsQuit(runes("z")) {
		t.Error("IsQuit mismatch")
	}
	if km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyTab}) != MenuActionStats {
		t.Error("tab should open the bench board")
	}
}

func newButtonTest(t *testing.T) Model {
	t.Helper()
	cfg := config.Default()
	cfg.Input.Debounce = 0 // the test clock and the key clock differ
	game, err := registry.Create("buttontest", cfg)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	return NewModel(game, cfg, engine.Options{Seed: 1})
}

func TestModelTicksAndKeys(t *testing.T) {
	m := newButtonTest(t)
	now := time.Now()

	next, _ := m.Update(TickMsg{At: now, Gen: m.gen})
	m = next.(Model)
	if m.loop.Phase() != core.PhasePlaying {
		t.Fatalf("phase = %v, expected playing", m.loop.Phase())
	}

	next, _ = m.Update(runes("z"))
	m = next.(Model)
	next, _ = m.Update(TickMsg{At: now.Add(100 * time.Millisecond), Gen: m.gen})
	m = next.(Model)

	if got := m.loop.Game().State().Score; got != 1 {
		t.Errorf("presses = %d, expected 1", got)
	}
	if !strings.Contains(m.View(), "Button Test") {
		t.Error("status line should name the game")
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	m := newButtonTest(t)
	next, cmd := m.Update(TickMsg{At: time.Now(), Gen: m.gen + 1000})
	m = next.(Model)
	if cmd != nil || m.loop.Ticks() != 0 {
		t.Error("tick from another generation should be ignored")
	}
}

func TestModelEsc(t *testing.T) {
	m := newButtonTest(t)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m := next.(Model); !m.BackToMenu() || m.IsQuitting() {
		t.Error("esc in a session should return to the menu")
	}

	m = newButtonTest(t)
	m.standalone = true
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m := next.(Model); !m.IsQuitting() {
		t.Error("esc in a standalone game should quit")
	}
}

func TestSessionFlow(t *testing.T) {
	s := NewSessionModel(nil, config.Default(), engine.Options{Seed: 1}, 140, 40)

	// Select the first program.
	next, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	if s.screen != screenGame {
		t.Fatalf("screen = %v, expected game", s.screen)
	}
	if cmd == nil {
		t.Error("starting a game should schedule a tick")
	}

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)
	if s.screen != screenMenu {
		t.Fatalf("screen = %v, expected menu after esc", s.screen)
	}

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyTab})
	s = next.(SessionModel)
	if s.screen != screenStats {
		t.Fatalf("screen = %v, expected bench board", s.screen)
	}
	if !strings.Contains(s.View(), "No runs recorded yet") {
		t.Error("bench board without a store should be empty")
	}

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)
	if s.screen != screenMenu {
		t.Fatalf("screen = %v, expected menu after leaving the board", s.screen)
	}

	next, cmd = s.Update(runes("q"))
	s = next.(SessionModel)
	if !s.quitting || cmd == nil {
		t.Error("q should quit the session")
	}
}
