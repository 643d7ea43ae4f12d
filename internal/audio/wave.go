// Package audio plays short tones for game events. Playback never
// blocks the game loop.
package audio

import (
	"errors"
	"math"
	"time"

	"github.com/gopxl/beep"
)

// SineWave returns one period of a sine at freq Hz sampled at
// sampleRate, as unsigned 16-bit samples centred on 32767.
func SineWave(freq, sampleRate int) []uint16 {
	if freq <= 0 || sampleRate <= 0 {
		return nil
	}
	length := sampleRate / freq
	if length == 0 {
		return nil
	}
	wave := make([]uint16, length)
	for i := range wave {
		wave[i] = uint16(math.Sin(2*math.Pi*float64(i)/float64(length))*32767 + 32767)
	}
	return wave
}

// Sample plays a fixed buffer of unsigned 16-bit samples. It implements
// beep.StreamSeeker so it can be looped.
type Sample struct {
	data []uint16
	pos  int
}

// NewSample wraps data. The buffer is owned by the Sample afterwards.
func NewSample(data []uint16) *Sample {
	return &Sample{data: data}
}

// Stream converts samples to beep's [-1, 1] stereo range.
func (s *Sample) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.data) {
		return 0, false
	}
	for n < len(samples) && s.pos < len(s.data) {
		v := (float64(s.data[s.pos]) - 32767) / 32768
		samples[n][0] = v
		samples[n][1] = v
		n++
		s.pos++
	}
	return n, true
}

func (s *Sample) Err() error { return nil }

func (s *Sample) Len() int { return len(s.data) }

func (s *Sample) Position() int { return s.pos }

// Seek moves the read position.
func (s *Sample) Seek(p int) error {
	if p < 0 || p > len(s.data) {
		return errors.New("audio: seek out of range")
	}
	s.pos = p
	return nil
}

// Tone describes one sound.
type Tone struct {
	Freq     int
	Duration time.Duration
}

// Streamer returns a beep streamer that loops one sine period for the
// tone's duration. It returns nil for a silent tone.
func (t Tone) Streamer(rate beep.SampleRate) beep.Streamer {
	wave := SineWave(t.Freq, int(rate))
	if wave == nil || t.Duration <= 0 {
		return nil
	}
	return beep.Take(rate.N(t.Duration), beep.Loop(-1, NewSample(wave)))
}
