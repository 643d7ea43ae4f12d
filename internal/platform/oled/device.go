package oled

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/host/v3"

	"github.com/vovakirdan/oled-arcade/internal/audio"
	"github.com/vovakirdan/oled-arcade/internal/config"
	"github.com/vovakirdan/oled-arcade/internal/display"
	"github.com/vovakirdan/oled-arcade/internal/engine"
	"github.com/vovakirdan/oled-arcade/internal/input"
	"github.com/vovakirdan/oled-arcade/internal/registry"
)

// defaultAddress is the address the ssd1306 driver talks to.
const defaultAddress = 0x3c

// addrBus redirects every transaction to a fixed device address, for
// panels strapped to something other than the driver's default.
type addrBus struct {
	i2c.Bus
	addr uint16
}

func (b addrBus) Tx(_ uint16, w, r []byte) error {
	return b.Bus.Tx(b.addr, w, r)
}

// Device is an opened panel and its buttons.
type Device struct {
	bus     i2c.BusCloser
	panel   *ssd1306.Dev
	Buttons *Buttons
}

// Open initializes the host drivers, the panel and the buttons.
func Open(cfg config.DisplayConfig) (*Device, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("oled: host init: %w", err)
	}

	bus, err := i2creg.Open(cfg.I2CBus)
	if err != nil {
		return nil, fmt.Errorf("oled: open i2c bus %q: %w", cfg.I2CBus, err)
	}

	var target i2c.Bus = bus
	if cfg.Address != 0 && cfg.Address != defaultAddress {
		target = addrBus{Bus: bus, addr: cfg.Address}
	}

	opts := ssd1306.DefaultOpts
	panel, err := ssd1306.NewI2C(target, &opts)
	if err != nil {
		bus.Close()
		return nil, fmt.Errorf("oled: init ssd1306: %w", err)
	}

	buttons, err := OpenButtons()
	if err != nil {
		panel.Halt()
		bus.Close()
		return nil, err
	}

	return &Device{bus: bus, panel: panel, Buttons: buttons}, nil
}

// Panel returns the display driver.
func (d *Device) Panel() *ssd1306.Dev {
	return d.panel
}

// Close blanks the panel and releases the bus.
func (d *Device) Close() error {
	haltErr := d.panel.Halt()
	if err := d.bus.Close(); err != nil {
		return fmt.Errorf("oled: close bus: %w", err)
	}
	if haltErr != nil {
		return fmt.Errorf("oled: halt panel: %w", haltErr)
	}
	return nil
}

// Run plays a game on the device until ctx is cancelled or the panel
// stops accepting frames.
func Run(ctx context.Context, gameID string, cfg config.Config, opts engine.Options) error {
	game, err := registry.Create(gameID, cfg)
	if err != nil {
		return err
	}

	dev, err := Open(cfg.Display)
	if err != nil {
		return err
	}
	defer dev.Close()

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	if cfg.Audio.Enabled && opts.Player == nil {
		spk, err := audio.NewSpeaker(cfg.Audio.SampleRate)
		if err != nil {
			logger.Warn("audio disabled", "err", err)
		} else {
			defer spk.Close()
			opts.Player = spk
			opts.Tones = audio.DefaultTones(cfg.Audio)
		}
	}

	if cfg.Display.Naive {
		opts.Mode = engine.ModeFull
	}
	if opts.PollInterval == 0 {
		opts.PollInterval = cfg.Input.Debounce / 3
	}

	fb := display.NewFramebuffer(NewSink(dev.Panel()))
	sampler := input.NewSampler(dev.Buttons, cfg.Input.Debounce)
	loop := engine.New(game, sampler, fb, opts)

	logger.Info("running on panel", "game", gameID, "bus", cfg.Display.I2CBus, "mode", opts.Mode)
	return loop.Run(ctx)
}
