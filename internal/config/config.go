// Package config provides YAML-based device and game configuration
// for the arcade. Button wiring is fixed and deliberately absent here.
package config

import "time"

// Config is the complete arcade configuration.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Input   InputConfig   `yaml:"input"`
	Audio   AudioConfig   `yaml:"audio"`
	Games   GamesConfig   `yaml:"games"`
}

// DisplayConfig describes the SSD1306 panel on the I2C bus.
type DisplayConfig struct {
	I2CBus  string `yaml:"i2c_bus"` // "" selects the first bus
	Address uint16 `yaml:"address"`
	Naive   bool   `yaml:"naive"` // clear and redraw every tick
}

// InputConfig controls button sampling.
type InputConfig struct {
	Debounce time.Duration `yaml:"debounce"`
	KeyHold  time.Duration `yaml:"key_hold"` // terminal key press is held this long
}

// AudioConfig controls the tone generator.
type AudioConfig struct {
	Enabled    bool          `yaml:"enabled"`
	Frequency  int           `yaml:"frequency"`
	SampleRate int           `yaml:"sample_rate"`
	Duration   time.Duration `yaml:"duration"`
}

// GamesConfig contains per-game settings.
type GamesConfig struct {
	ButtonTest  ButtonTestConfig  `yaml:"buttontest"`
	Minesweeper MinesweeperConfig `yaml:"minesweeper"`
	Pong        PongConfig        `yaml:"pong"`
	Snake       SnakeConfig       `yaml:"snake"`
}

// ButtonTestConfig contains button test settings.
type ButtonTestConfig struct {
	TickRate int `yaml:"tick_rate"`
}

// MinesweeperConfig contains minesweeper settings.
type MinesweeperConfig struct {
	TickRate int `yaml:"tick_rate"`
	Mines    int `yaml:"mines"`
}

// PongConfig contains pong settings.
type PongConfig struct {
	TickRate   int `yaml:"tick_rate"`
	PaddleStep int `yaml:"paddle_step"`
	WinScore   int `yaml:"win_score"` // 0 plays forever
}

// SnakeConfig contains snake settings.
type SnakeConfig struct {
	TickRate     int           `yaml:"tick_rate"`
	StepInterval time.Duration `yaml:"step_interval"`
}

// Validate replaces out-of-range values with defaults or clamps them.
func (c *Config) Validate() {
	d := Default()

	if c.Display.Address == 0 {
		c.Display.Address = d.Display.Address
	}
	if c.Input.Debounce < 0 {
		c.Input.Debounce = 0
	}
	if c.Input.KeyHold <= 0 {
		c.Input.KeyHold = d.Input.KeyHold
	}
	if c.Audio.Frequency <= 0 {
		c.Audio.Frequency = d.Audio.Frequency
	}
	if c.Audio.SampleRate < c.Audio.Frequency {
		c.Audio.SampleRate = d.Audio.SampleRate
	}
	if c.Audio.Duration <= 0 {
		c.Audio.Duration = d.Audio.Duration
	}

	fixRate(&c.Games.ButtonTest.TickRate, d.Games.ButtonTest.TickRate)
	fixRate(&c.Games.Minesweeper.TickRate, d.Games.Minesweeper.TickRate)
	fixRate(&c.Games.Pong.TickRate, d.Games.Pong.TickRate)
	fixRate(&c.Games.Snake.TickRate, d.Games.Snake.TickRate)

	// The board has 64 cells and needs at least one safe cell.
	c.Games.Minesweeper.Mines = clamp(c.Games.Minesweeper.Mines, 1, 63)
	if c.Games.Pong.PaddleStep <= 0 {
		c.Games.Pong.PaddleStep = d.Games.Pong.PaddleStep
	}
	if c.Games.Pong.WinScore < 0 {
		c.Games.Pong.WinScore = 0
	}
	if c.Games.Snake.StepInterval <= 0 {
		c.Games.Snake.StepInterval = d.Games.Snake.StepInterval
	}
}

func fixRate(rate *int, def int) {
	if *rate <= 0 || *rate > 1000 {
		*rate = def
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
