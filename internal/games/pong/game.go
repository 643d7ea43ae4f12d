// Package pong implements two-player Pong on a shared device.
// Player 1 holds the right paddle (Right = up, Down = down), player 2 the
// left paddle (Up = up, Left = down). A ball that passes a paddle scores
// for the opposite player and is served again from the centre.
package pong

import (
	"fmt"
	"time"

	"github.com/vovakirdan/oled-arcade/internal/config"
	"github.com/vovakirdan/oled-arcade/internal/core"
	"github.com/vovakirdan/oled-arcade/internal/registry"
	"github.com/vovakirdan/oled-arcade/internal/scene"
)

// Court geometry in pixels.
const (
	HUDHeight    = 20 // score bar at the top of the panel
	PaddleWidth  = 5
	PaddleHeight = 10
	BallSize     = 4

	ServeX = core.ScreenW / 2
	ServeY = (core.ScreenH-HUDHeight)/2 + HUDHeight

	minPaddleY = HUDHeight
	maxPaddleY = core.ScreenH - PaddleHeight

	rightPaddleX = core.ScreenW - PaddleWidth

	// A ball left of leftGoalX or right of rightGoalX has passed a paddle.
	leftGoalX  = PaddleWidth
	rightGoalX = core.ScreenW - PaddleWidth - BallSize
)

// Game implements the Pong game logic.
type Game struct {
	// Paddles
	leftY  int // player 2
	rightY int // player 1

	// Ball
	ballX, ballY   int
	ballDX, ballDY int

	// Scores
	score1 int // player 1, right paddle
	score2 int // player 2, left paddle

	gameOver bool
	winner   int // 1 or 2 once a win score is reached

	// Settings
	rate       int
	paddleStep int
	winScore   int
	tickCount  uint64
}

// New creates a new Pong game instance.
func New(cfg config.PongConfig) *Game {
	return &Game{
		rate:       cfg.TickRate,
		paddleStep: cfg.PaddleStep,
		winScore:   cfg.WinScore,
	}
}

func init() {
	registry.Register("pong", func(cfg config.Config) registry.Game {
		return New(cfg.Games.Pong)
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "pong"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pong"
}

// TickRate returns the loop frequency.
func (g *Game) TickRate() int {
	return g.rate
}

// ResetButton returns the restart button used after a match is won.
func (g *Game) ResetButton() core.ButtonID {
	return core.ButtonA
}

// Reset initializes or restarts the game. Pong uses no randomness.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if g.paddleStep <= 0 {
		g.paddleStep = 1
	}
	g.leftY = ServeY
	g.rightY = ServeY
	g.score1 = 0
	g.score2 = 0
	g.gameOver = false
	g.winner = 0
	g.tickCount = 0
	g.serve()
}

// serve puts the ball back in the centre with the default velocity.
func (g *Game) serve() {
	g.ballX = ServeX
	g.ballY = ServeY
	g.ballDX = 1
	g.ballDY = 1
}

// Step advances the game by one tick. Paddles follow held buttons.
func (g *Game) Step(in core.InputFrame, elapsed time.Duration) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}
	g.tickCount++

	g.rightY = g.movePaddle(g.rightY, in.IsDown(core.ButtonRight), in.IsDown(core.ButtonDown))
	g.leftY = g.movePaddle(g.leftY, in.IsDown(core.ButtonUp), in.IsDown(core.ButtonLeft))

	var events []core.Event
	if g.updateBall() {
		events = append(events, core.EventScore)
		if g.checkWin() {
			events = append(events, core.EventWin)
		}
	}
	return core.StepResult{State: g.State(), Events: events}
}

// movePaddle moves a paddle one step. Up wins when both are held.
func (g *Game) movePaddle(y int, up, down bool) int {
	switch {
	case up:
		y -= g.paddleStep
	case down:
		y += g.paddleStep
	}
	return core.Clamp(y, minPaddleY, maxPaddleY)
}

// updateBall advances the ball and reports whether a point was scored.
// The miss check runs before any bounce, so a ball that has passed the
// paddle line never comes back.
func (g *Game) updateBall() bool {
	g.ballX += g.ballDX
	g.ballY += g.ballDY

	switch {
	case g.ballX < leftGoalX:
		g.score1++
		g.serve()
		return true
	case g.ballX > rightGoalX:
		g.score2++
		g.serve()
		return true
	}

	if g.ballY <= HUDHeight || g.ballY >= core.ScreenH-BallSize {
		g.ballDY = -g.ballDY
	}

	switch {
	case g.ballX <= leftGoalX && g.overlaps(g.leftY):
		g.ballDX = -g.ballDX
	case g.ballX >= rightGoalX && g.overlaps(g.rightY):
		g.ballDX = -g.ballDX
	}
	return false
}

// overlaps reports whether the ball is level with a paddle at y.
func (g *Game) overlaps(paddleY int) bool {
	return paddleY-BallSize <= g.ballY && g.ballY <= paddleY+PaddleHeight
}

// checkWin ends the match once a side reaches the win score.
func (g *Game) checkWin() bool {
	if g.winScore <= 0 {
		return false
	}
	switch {
	case g.score1 >= g.winScore:
		g.winner = 1
	case g.score2 >= g.winScore:
		g.winner = 2
	default:
		return false
	}
	g.gameOver = true
	return true
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score1 + g.score2,
		GameOver: g.gameOver,
		Won:      g.gameOver,
	}
}

// Render describes the court. The score bar border is four thin boxes so
// a score change only repaints its own text.
func (g *Game) Render(dst *scene.Frame) {
	dst.Add(scene.Box("hud:top", core.NewRect(0, 0, core.ScreenW, 1), core.ColorOn))
	dst.Add(scene.Box("hud:bottom", core.NewRect(0, HUDHeight-1, core.ScreenW, 1), core.ColorOn))
	dst.Add(scene.Box("hud:left", core.NewRect(0, 1, 1, HUDHeight-2), core.ColorOn))
	dst.Add(scene.Box("hud:right", core.NewRect(core.ScreenW-1, 1, 1, HUDHeight-2), core.ColorOn))
	dst.Add(scene.Label("score2", 5, 5, fmt.Sprintf("P2: %d", g.score2), core.ColorOn))
	dst.Add(scene.Label("score1", core.ScreenW-31, 5, fmt.Sprintf("P1: %d", g.score1), core.ColorOn))

	if g.gameOver {
		dst.Add(scene.Label("winner", 43, 36, fmt.Sprintf("P%d WINS", g.winner), core.ColorOn))
		return
	}

	dst.Add(scene.Box("paddle2", core.NewRect(0, g.leftY, PaddleWidth, PaddleHeight), core.ColorOn))
	dst.Add(scene.Box("paddle1", core.NewRect(rightPaddleX, g.rightY, PaddleWidth, PaddleHeight), core.ColorOn))
	dst.Add(scene.Box("ball", core.NewRect(g.ballX, g.ballY, BallSize, BallSize), core.ColorOn))
}
