package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/oled-arcade/internal/config"
	"github.com/vovakirdan/oled-arcade/internal/core"
)

// Player plays tones without blocking the caller.
type Player interface {
	Play(t Tone)
}

// Nop is a Player that stays silent.
type Nop struct{}

func (Nop) Play(Tone) {}

// Tones maps game events to sounds.
type Tones map[core.Event]Tone

// DefaultTones builds the event table from the audio config. Scoring
// plays the configured base tone; other events are pitched around it.
func DefaultTones(cfg config.AudioConfig) Tones {
	short := cfg.Duration / 4
	return Tones{
		core.EventScore: {Freq: cfg.Frequency, Duration: cfg.Duration},
		core.EventEat:   {Freq: cfg.Frequency * 2, Duration: short},
		core.EventMine:  {Freq: cfg.Frequency / 2, Duration: cfg.Duration},
		core.EventWin:   {Freq: cfg.Frequency * 3 / 2, Duration: cfg.Duration},
	}
}

// Speaker plays tones on the host sound device through beep.
type Speaker struct {
	rate  beep.SampleRate
	mixer *beep.Mixer
}

// NewSpeaker initializes the sound device at the given sample rate.
func NewSpeaker(sampleRate int) (*Speaker, error) {
	rate := beep.SampleRate(sampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}
	s := &Speaker{rate: rate, mixer: &beep.Mixer{}}
	speaker.Play(s.mixer)
	return s, nil
}

// Play queues the tone on the mixer and returns immediately. The
// speaker's own goroutine plays it, and the mixer drops it once drained.
func (s *Speaker) Play(t Tone) {
	stream := t.Streamer(s.rate)
	if stream == nil {
		return
	}
	speaker.Lock()
	s.mixer.Add(stream)
	speaker.Unlock()
}

// Playing returns the number of tones still queued on the mixer.
func (s *Speaker) Playing() int {
	speaker.Lock()
	defer speaker.Unlock()
	return s.mixer.Len()
}

// Close silences the device.
func (s *Speaker) Close() {
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}
