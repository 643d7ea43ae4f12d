package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/arcade.yaml
var defaultArcadeYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			I2CBus:  "",
			Address: 0x3c,
		},
		Input: InputConfig{
			Debounce: 30 * time.Millisecond,
			KeyHold:  300 * time.Millisecond,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Frequency:  440,
			SampleRate: 8000,
			Duration:   time.Second,
		},
		Games: GamesConfig{
			ButtonTest:  ButtonTestConfig{TickRate: 10},
			Minesweeper: MinesweeperConfig{TickRate: 20, Mines: 10},
			Pong:        PongConfig{TickRate: 125, PaddleStep: 1, WinScore: 0},
			Snake:       SnakeConfig{TickRate: 10, StepInterval: 100 * time.Millisecond},
		},
	}
}
