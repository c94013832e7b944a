// Package audio plays short sine cues for firing and impacts through
// the speaker. Audio is best-effort: initialization failure leaves a
// silent engine and the game runs on.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Engine gates cue playback on successful speaker init.
type Engine struct {
	enabled bool
}

// NewEngine opens the speaker. On failure the returned engine is silent
// and the error is informational.
func NewEngine(enabled bool) (*Engine, error) {
	e := &Engine{}
	if !enabled {
		return e, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return e, err
	}
	e.enabled = true
	return e, nil
}

// Fire is the low thump of a round leaving the barrel.
func (e *Engine) Fire() { e.tone(110, 120*time.Millisecond) }

// Impact marks a shell meeting the ground.
func (e *Engine) Impact() { e.tone(65, 180*time.Millisecond) }

// Hit celebrates a round landing on target.
func (e *Engine) Hit() { e.tone(880, 90*time.Millisecond) }

func (e *Engine) tone(freq float64, d time.Duration) {
	if !e.enabled {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

// Close shuts the speaker down.
func (e *Engine) Close() {
	if e.enabled {
		speaker.Close()
	}
}
