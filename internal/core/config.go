package core

import "time"

// Panel dimensions in pixels.
const (
	ScreenW = 128
	ScreenH = 64
)

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to the panel and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Panel width in pixels
	ScreenH  int   // Panel height in pixels
	TickRate int   // Loop ticks per second
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  ScreenW,
		ScreenH:  ScreenH,
		TickRate: 10,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickInterval returns the duration of one loop tick.
func (c RuntimeConfig) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return 100 * time.Millisecond
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the engine.
type GameState struct {
	Score    int  // Current score (sum of both sides for pong)
	GameOver bool // Whether the game has ended
	Won      bool // Game ended because the player won
}

// Phase is the engine-level lifecycle shared by every game.
type Phase int

const (
	PhaseInitializing Phase = iota
	PhasePlaying
	PhaseOver
	PhaseAwaitingReset
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseInitializing:
		return "Initializing"
	case PhasePlaying:
		return "Playing"
	case PhaseOver:
		return "Over"
	case PhaseAwaitingReset:
		return "AwaitingReset"
	default:
		return "Unknown"
	}
}

// Event is a side-effect hint produced by a tick.
// The engine turns events into sounds after the frame is presented.
type Event int

const (
	EventScore Event = iota + 1 // a point was scored
	EventEat                    // snake ate food
	EventMine                   // a mine was revealed
	EventWin                    // the board was cleared
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventScore:
		return "score"
	case EventEat:
		return "eat"
	case EventMine:
		return "mine"
	case EventWin:
		return "win"
	default:
		return "unknown"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
