// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the engine
// and the CLI to discover and instantiate games without hardcoded
// dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/oled-arcade/internal/config"
	"github.com/vovakirdan/oled-arcade/internal/core"
	"github.com/vovakirdan/oled-arcade/internal/scene"
)

// Game is the interface that every arcade program implements.
// Games contain pure logic: no I/O, no clocks, no goroutines.
// The engine owns the game value and drives it one tick at a time.
type Game interface {
	// ID returns a unique identifier (e.g., "snake", "pong").
	// Used for CLI commands and benchmark records.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// TickRate returns the nominal loop frequency in Hz.
	TickRate() int

	// ResetButton returns the button that restarts the game after it ends.
	ResetButton() core.ButtonID

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick.
	// elapsed is the time since the previous tick.
	Step(in core.InputFrame, elapsed time.Duration) core.StepResult

	// Render appends every object that should be visible to dst.
	// dst is empty on entry. Calling Render must not change the game.
	Render(dst *scene.Frame)

	// State returns the current game state (score, game over).
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game from the arcade configuration.
type Factory func(cfg config.Config) Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	g := f(config.Default())
	titles[id] = g.Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string, cfg config.Config) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(cfg), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
