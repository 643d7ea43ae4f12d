package pong

// Snapshot contains the complete state of a Pong game.
// Uses primitive types only so snapshots compare with ==.
type Snapshot struct {
	Tick     uint64
	BallX    int
	BallY    int
	BallDX   int
	BallDY   int
	Paddle1Y int // right paddle
	Paddle2Y int // left paddle
	Score1   int
	Score2   int
	GameOver bool
	Winner   int // 0=none, 1=Player1, 2=Player2
}

// Snapshot returns the current game state for tests and replay checks.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tickCount,
		BallX:    g.ballX,
		BallY:    g.ballY,
		BallDX:   g.ballDX,
		BallDY:   g.ballDY,
		Paddle1Y: g.rightY,
		Paddle2Y: g.leftY,
		Score1:   g.score1,
		Score2:   g.score2,
		GameOver: g.gameOver,
		Winner:   g.winner,
	}
}
