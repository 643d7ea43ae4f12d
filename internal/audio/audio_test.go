package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/oled-arcade/internal/config"
	"github.com/vovakirdan/oled-arcade/internal/core"
)

func TestSineWave(t *testing.T) {
	wave := SineWave(440, 8000)
	if len(wave) != 18 {
		t.Fatalf("len = %d, expected 18", len(wave))
	}
	if wave[0] != 32767 {
		t.Errorf("wave[0] = %d, expected 32767", wave[0])
	}
	// Quarter period is near the peak, three quarters near the trough.
	if wave[4] < 60000 {
		t.Errorf("wave[4] = %d, expected near the peak", wave[4])
	}
	if wave[14] > 5000 {
		t.Errorf("wave[14] = %d, expected near the trough", wave[14])
	}
}

func TestSineWaveInvalid(t *testing.T) {
	tests := []struct {
		name       string
		freq, rate int
	}{
		{"zero frequency", 0, 8000},
		{"zero rate", 440, 0},
		{"frequency above rate", 9000, 8000},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if w := SineWave(tc.freq, tc.rate); w != nil {
				t.Errorf("SineWave(%d, %d) = %d samples, expected nil", tc.freq, tc.rate, len(w))
			}
		})
	}
}

func TestSampleStream(t *testing.T) {
	s := NewSample([]uint16{32767, 65535, 0})
	buf := make([][2]float64, 8)

	n, ok := s.Stream(buf)
	if !ok || n != 3 {
		t.Fatalf("Stream() = (%d, %v), expected (3, true)", n, ok)
	}
	if buf[0][0] != 0 || buf[1][0] <= 0.99 || buf[2][0] >= -0.99 {
		t.Errorf("samples = %v", buf[:3])
	}
	if _, ok := s.Stream(buf); ok {
		t.Error("exhausted sample should report !ok")
	}
	if err := s.Seek(1); err != nil || s.Position() != 1 {
		t.Errorf("Seek(1) = %v, position %d", err, s.Position())
	}
	if err := s.Seek(4); err == nil {
		t.Error("Seek past the end should fail")
	}
}

func TestToneStreamerLength(t *testing.T) {
	rate := beep.SampleRate(8000)
	stream := Tone{Freq: 440, Duration: 100 * time.Millisecond}.Streamer(rate)
	if stream == nil {
		t.Fatal("Streamer() returned nil")
	}

	total := 0
	buf := make([][2]float64, 256)
	for {
		n, ok := stream.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if total != 800 {
		t.Errorf("streamed %d samples, expected 800", total)
	}

	if (Tone{Freq: 440}).Streamer(rate) != nil {
		t.Error("zero duration tone should be silent")
	}
}

func TestDefaultTones(t *testing.T) {
	tones := DefaultTones(config.Default().Audio)
	if tones[core.EventScore].Freq != 440 {
		t.Errorf("score tone = %+v, expected 440 Hz", tones[core.EventScore])
	}
	for _, ev := range []core.Event{core.EventScore, core.EventEat, core.EventMine, core.EventWin} {
		if tones[ev].Duration <= 0 {
			t.Errorf("tone for %v has no duration", ev)
		}
	}
}

func TestSpeakerPlayQueuesAndDrains(t *testing.T) {
	rate := beep.SampleRate(8000)
	s := &Speaker{rate: rate, mixer: &beep.Mixer{}}

	s.Play(Tone{Freq: 440, Duration: 100 * time.Millisecond})
	s.Play(Tone{Freq: 880, Duration: 25 * time.Millisecond})
	s.Play(Tone{Freq: 440}) // no duration, nothing to play

	if got := s.Playing(); got != 2 {
		t.Fatalf("Playing() = %d, expected 2", got)
	}

	buf := make([][2]float64, 512)
	for i := 0; i < 4 && s.Playing() > 0; i++ {
		s.mixer.Stream(buf)
	}
	if got := s.Playing(); got != 0 {
		t.Errorf("Playing() = %d after streaming past every tone, expected 0", got)
	}
}
