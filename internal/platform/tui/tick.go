// Package tui runs the arcade in a terminal: a simulator of the panel,
// a game picker, the benchmark board and an SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game loop tick. Gen identifies the game
// model that scheduled it, so ticks left over from a closed game are
// ignored by the next one.
type TickMsg struct {
	At  time.Time
	Gen uint64
}

var tickGen atomic.Uint64

// nextGen returns a fresh tick generation.
func nextGen() uint64 {
	return tickGen.Add(1)
}

// tickCmd returns a Bubble Tea command that sends one tick after interval.
func tickCmd(interval time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, Gen: gen}
	})
}
