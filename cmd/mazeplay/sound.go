package main

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// chime plays short cues. A nil *chime is silent.
type chime struct{}

// newChime opens the audio device.
func newChime() (*chime, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, err
	}
	return &chime{}, nil
}

// bump is the low buzz for walking into a wall.
func (c *chime) bump() {
	if c == nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(80*time.Millisecond), newTone(sampleRate, 120)))
}

// win is the rising pair of notes played at the exit.
func (c *chime) win() {
	if c == nil {
		return
	}
	speaker.Play(beep.Seq(
		beep.Take(sampleRate.N(120*time.Millisecond), newTone(sampleRate, 660)),
		beep.Take(sampleRate.N(200*time.Millisecond), newTone(sampleRate, 880)),
	))
}

// tone is a sine wave with a short attack.
type tone struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func newTone(sr beep.SampleRate, freq float64) *tone {
	return &tone{sr: sr, freq: freq}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		at := float64(t.pos) / float64(t.sr)
		envelope := math.Min(at/0.01, 1.0)
		sample := 0.25 * envelope * math.Sin(2*math.Pi*t.freq*at)
		samples[i][0] = sample
		samples[i][1] = sample
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error {
	return nil
}
