package oled

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"

	"github.com/vovakirdan/oled-arcade/internal/core"
)

// ButtonPins is the fixed wiring of the buttons. Every button shorts
// its line to ground, so lines are pulled up and read low when pressed.
var ButtonPins = [core.ButtonCount]string{
	core.ButtonUp:    "GPIO7",
	core.ButtonLeft:  "GPIO6",
	core.ButtonDown:  "GPIO5",
	core.ButtonRight: "GPIO4",
	core.ButtonA:     "GPIO15",
	core.ButtonB:     "GPIO14",
}

// pin is the part of gpio.PinIn the lines read.
type pin interface {
	Read() gpio.Level
}

// Buttons reads the button lines. It implements input.Lines.
type Buttons struct {
	pins [core.ButtonCount]pin
}

// OpenButtons configures every button pin as a pulled-up input.
// host.Init must have been called.
func OpenButtons() (*Buttons, error) {
	var b Buttons
	for id, name := range ButtonPins {
		p := gpioreg.ByName(name)
		if p == nil {
			return nil, fmt.Errorf("oled: no gpio pin %s for button %v", name, core.ButtonID(id))
		}
		if err := p.In(gpio.PullUp, gpio.NoEdge); err != nil {
			return nil, fmt.Errorf("oled: configure %s: %w", name, err)
		}
		b.pins[id] = p
	}
	return &b, nil
}

// Level returns the raw line level: false while the button is pressed.
func (b *Buttons) Level(id core.ButtonID) bool {
	if id < 0 || int(id) >= len(b.pins) || b.pins[id] == nil {
		return true
	}
	return b.pins[id].Read() == gpio.High
}
