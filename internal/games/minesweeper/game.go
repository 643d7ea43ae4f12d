// Package minesweeper implements an 8x8 minesweeper on the left half of
// the panel. Arrows move the cursor, B reveals, A toggles a flag.
package minesweeper

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/vovakirdan/oled-arcade/internal/config"
	"github.com/vovakirdan/oled-arcade/internal/core"
	"github.com/vovakirdan/oled-arcade/internal/registry"
	"github.com/vovakirdan/oled-arcade/internal/scene"
)

// Board layout in pixels.
const (
	GridSize   = 8
	CellSize   = 8 // pitch between cells
	CellInner  = 7 // drawn size of a normal cell
	CursorSize = 8 // drawn size of the cell under the cursor

	BannerX = 70
	BannerY = 24
)

// Game implements minesweeper.
type Game struct {
	rng     *rand.Rand
	board   *Board
	mines   int
	rate    int
	cursorX int
	cursorY int

	gameOver bool
	won      bool
	tick     uint64
}

// New creates a new minesweeper game.
func New(cfg config.MinesweeperConfig) *Game {
	return &Game{
		mines: cfg.Mines,
		rate:  cfg.TickRate,
	}
}

func init() {
	registry.Register("minesweeper", func(cfg config.Config) registry.Game {
		return New(cfg.Games.Minesweeper)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "minesweeper"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Minesweeper"
}

// TickRate returns the loop frequency.
func (g *Game) TickRate() int {
	return g.rate
}

// ResetButton returns the restart button.
func (g *Game) ResetButton() core.ButtonID {
	return core.ButtonB
}

// Reset lays out a fresh minefield.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	mines := core.Clamp(g.mines, 1, GridSize*GridSize-1)
	g.board = NewBoard(GridSize, GridSize, mines, g.rng)
	g.cursorX, g.cursorY = 0, 0
	g.gameOver = false
	g.won = false
	g.tick = 0
}

// Step applies button presses. Every action is edge triggered, so a
// held button moves the cursor once.
func (g *Game) Step(in core.InputFrame, elapsed time.Duration) core.StepResult {
	g.tick++
	if g.gameOver || g.won {
		return core.StepResult{State: g.State()}
	}

	if in.Pressed(core.ButtonUp) {
		g.moveCursor(0, -1)
	}
	if in.Pressed(core.ButtonDown) {
		g.moveCursor(0, 1)
	}
	if in.Pressed(core.ButtonLeft) {
		g.moveCursor(-1, 0)
	}
	if in.Pressed(core.ButtonRight) {
		g.moveCursor(1, 0)
	}

	var events []core.Event
	if in.Pressed(core.ButtonB) {
		if _, mine := g.board.Open(g.cursorX, g.cursorY); mine {
			g.gameOver = true
			events = append(events, core.EventMine)
		} else if g.board.Cleared() {
			g.won = true
			events = append(events, core.EventWin)
		}
	}
	if in.Pressed(core.ButtonA) {
		g.board.ToggleFlag(g.cursorX, g.cursorY)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// moveCursor moves the cursor, wrapping at the edges.
func (g *Game) moveCursor(dx, dy int) {
	g.cursorX = core.Mod(g.cursorX+dx, GridSize)
	g.cursorY = core.Mod(g.cursorY+dy, GridSize)
}

// Cursor returns the cursor cell.
func (g *Game) Cursor() (int, int) {
	return g.cursorX, g.cursorY
}

// State returns the current game state. The score is the number of
// revealed safe cells.
func (g *Game) State() core.GameState {
	score := 0
	if g.board != nil {
		score = GridSize*GridSize - g.board.Mines() - g.board.safe
	}
	return core.GameState{
		Score:    score,
		GameOver: g.gameOver || g.won,
		Won:      g.won,
	}
}

// Render describes the grid. The cell under the cursor is drawn one
// pixel larger, so moving the cursor damages exactly two cells.
func (g *Game) Render(dst *scene.Frame) {
	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			dst.Add(g.cellObject(x, y))
		}
	}

	switch {
	case g.gameOver:
		dst.Add(scene.Label("banner", BannerX, BannerY, "GAME OVER", core.ColorOn))
	case g.won:
		dst.Add(scene.Label("banner", BannerX, BannerY, "YOU WIN", core.ColorOn))
	}
}

// cellObject returns the drawable for one cell.
func (g *Game) cellObject(x, y int) scene.Object {
	size := CellInner
	px, py := x*CellSize+1, y*CellSize
	if x == g.cursorX && y == g.cursorY {
		size = CursorSize
		px = x * CellSize
	}

	id := fmt.Sprintf("cell:%d:%d", x, y)
	r := core.NewRect(px, py, size-1, size-1)
	c := g.board.Cells[y][x]

	switch {
	case c.Revealed:
		label := strconv.Itoa(c.Neighbors)
		if c.Mine {
			label = "*"
		}
		return scene.Box(id, r, core.ColorOff).WithText(label, px+size/2-2, py+size/2-3, core.ColorOn)
	case c.Flagged:
		return scene.Box(id, r, core.ColorOn).WithText("o", px+size/2-2, py+size/2-4, core.ColorOff)
	default:
		return scene.Box(id, r, core.ColorOn)
	}
}
