// Package snake implements the classic snake game on a 4-pixel grid.
// The snake starts in the middle of the panel heading up; the Up button
// restarts after game over.
package snake

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/oled-arcade/internal/config"
	"github.com/vovakirdan/oled-arcade/internal/core"
	"github.com/vovakirdan/oled-arcade/internal/registry"
	"github.com/vovakirdan/oled-arcade/internal/scene"
)

// Board geometry in pixels.
const (
	CellSize = 4
	FoodMinY = 20 // food never spawns under the score
	ScoreX   = 5
	ScoreY   = 5

	gridCols   = core.ScreenW / CellSize
	gridRows   = core.ScreenH / CellSize
	foodMinRow = FoodMinY / CellSize
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// delta returns the pixel offset of one step.
func (d Direction) delta() (int, int) {
	switch d {
	case DirUp:
		return 0, -CellSize
	case DirDown:
		return 0, CellSize
	case DirLeft:
		return -CellSize, 0
	default:
		return CellSize, 0
	}
}

// Game implements the Snake game.
type Game struct {
	rng      *rand.Rand
	tick     uint64
	score    int
	interval time.Duration // time between moves
	rate     int
	acc      time.Duration // time accumulated towards the next move

	// Snake state, head at index 0, pixel coordinates
	snake     []core.Point
	direction Direction
	want      Direction // last requested direction
	food      core.Point

	gameOver bool
	won      bool
}

// New creates a new Snake game.
func New(cfg config.SnakeConfig) *Game {
	return &Game{
		interval: cfg.StepInterval,
		rate:     cfg.TickRate,
	}
}

func init() {
	registry.Register("snake", func(cfg config.Config) registry.Game {
		return New(cfg.Games.Snake)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// TickRate returns the loop frequency.
func (g *Game) TickRate() int {
	return g.rate
}

// ResetButton returns the restart button.
func (g *Game) ResetButton() core.ButtonID {
	return core.ButtonUp
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.acc = 0
	g.gameOver = false
	g.won = false
	if g.interval <= 0 {
		g.interval = 100 * time.Millisecond
	}

	g.snake = []core.Point{{X: core.ScreenW / 2, Y: core.ScreenH / 2}}
	g.direction = DirUp
	g.want = DirUp
	g.spawnFood()
}

// spawnFood places food on a random free cell, retrying on collisions.
// With no free cell left the board is full and the player wins.
func (g *Game) spawnFood() {
	free := (gridRows - foodMinRow) * gridCols
	for _, seg := range g.snake {
		if seg.Y >= FoodMinY {
			free--
		}
	}
	if free <= 0 {
		g.won = true
		g.food = core.Point{X: -1, Y: -1}
		return
	}

	for {
		p := core.Point{
			X: g.rng.Intn(gridCols) * CellSize,
			Y: (foodMinRow + g.rng.Intn(gridRows-foodMinRow)) * CellSize,
		}
		if !g.isSnakeAt(p) {
			g.food = p
			return
		}
	}
}

// isSnakeAt checks if the snake occupies the given point.
func (g *Game) isSnakeAt(p core.Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// Step advances the game by one tick. The snake moves when enough
// time has accumulated, at most once per tick.
func (g *Game) Step(input core.InputFrame, elapsed time.Duration) core.StepResult {
	g.tick++
	if g.gameOver || g.won {
		return core.StepResult{State: g.State()}
	}

	g.processInput(input)

	g.acc += elapsed
	if g.acc < g.interval {
		return core.StepResult{State: g.State()}
	}
	g.acc -= g.interval
	if g.acc >= g.interval {
		g.acc = 0 // drop backlog after a stall
	}

	var events []core.Event
	if g.moveSnake() {
		events = append(events, core.EventEat)
		if g.won {
			events = append(events, core.EventWin)
		}
	}
	return core.StepResult{State: g.State(), Events: events}
}

// processInput reads held direction buttons. Up wins over Down, Left and Right.
func (g *Game) processInput(input core.InputFrame) {
	switch {
	case input.IsDown(core.ButtonUp):
		g.want = DirUp
	case input.IsDown(core.ButtonDown):
		g.want = DirDown
	case input.IsDown(core.ButtonLeft):
		g.want = DirLeft
	case input.IsDown(core.ButtonRight):
		g.want = DirRight
	}
}

// next returns the head position after one step in d.
func (g *Game) next(d Direction) core.Point {
	dx, dy := d.delta()
	return g.snake[0].Add(dx, dy)
}

// moveSnake moves the snake one cell and reports whether it ate.
// A fatal move leaves the body unchanged.
func (g *Game) moveSnake() bool {
	if len(g.snake) == 0 {
		return false
	}

	// Turning back into the neck is ignored
	newHead := g.next(g.want)
	if len(g.snake) > 1 && newHead == g.snake[1] {
		newHead = g.next(g.direction)
	} else {
		g.direction = g.want
	}

	if newHead.X < 0 || newHead.X >= core.ScreenW || newHead.Y < 0 || newHead.Y >= core.ScreenH {
		g.gameOver = true
		return false
	}
	if g.isSnakeAt(newHead) {
		g.gameOver = true
		return false
	}

	g.snake = append([]core.Point{newHead}, g.snake...)

	if newHead == g.food {
		g.score++
		g.spawnFood()
		return true
	}
	g.snake = g.snake[:len(g.snake)-1]
	return false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver || g.won,
		Won:      g.won,
	}
}

// Render describes the current frame. Segments are keyed by position,
// so a move only damages the new head and the vacated tail.
func (g *Game) Render(dst *scene.Frame) {
	if g.gameOver || g.won {
		title := "Game Over"
		if g.won {
			title = "YOU WIN"
		}
		dst.Add(scene.Label("title", core.ScreenW/2-40, core.ScreenH/2-10, title, core.ColorOn))
		dst.Add(scene.Label("final", core.ScreenW/2-20, core.ScreenH/2+10, fmt.Sprintf("Score: %d", g.score), core.ColorOn))
		return
	}

	dst.Add(scene.Label("score", ScoreX, ScoreY, fmt.Sprintf("Score: %d", g.score), core.ColorOn))
	if g.food.X >= 0 {
		dst.Add(scene.Box("food", cellRect(g.food), core.ColorOn))
	}
	for _, seg := range g.snake {
		dst.Add(scene.Box(fmt.Sprintf("seg:%d:%d", seg.X, seg.Y), cellRect(seg), core.ColorOn))
	}
}

func cellRect(p core.Point) core.Rect {
	return core.NewRect(p.X, p.Y, CellSize, CellSize)
}
