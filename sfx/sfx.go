// Package sfx plays short synthesized sound cues for game events.
package sfx

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Cue identifies a sound effect.
type Cue int

const (
	CueLock Cue = iota
	CueClear
	CueTetris
	CueGameOver
)

type note struct {
	freq     float64
	duration time.Duration
}

// notes returns the melody for a cue.
func notes(cue Cue) []note {
	switch cue {
	case CueLock:
		return []note{{220, 30 * time.Millisecond}}
	case CueClear:
		return []note{{660, 60 * time.Millisecond}, {880, 90 * time.Millisecond}}
	case CueTetris:
		return []note{
			{523.25, 70 * time.Millisecond},
			{659.25, 70 * time.Millisecond},
			{783.99, 70 * time.Millisecond},
			{1046.5, 160 * time.Millisecond},
		}
	case CueGameOver:
		return []note{
			{392, 150 * time.Millisecond},
			{329.63, 150 * time.Millisecond},
			{261.63, 300 * time.Millisecond},
		}
	default:
		return nil
	}
}

// Player mixes cues onto the system speaker. A Player that failed to
// initialize stays silent.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewPlayer creates a player; volume is in [0, 1].
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the speaker.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// Play queues cue on the mixer.
func (p *Player) Play(cue Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	streamer := p.build(cue)
	if streamer == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
}

func (p *Player) build(cue Cue) beep.Streamer {
	var parts []beep.Streamer
	for _, n := range notes(cue) {
		sine, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			continue
		}
		parts = append(parts, beep.Take(sampleRate.N(n.duration), sine))
	}
	if len(parts) == 0 {
		return nil
	}

	if p.volume <= 0 {
		return &effects.Volume{Streamer: beep.Seq(parts...), Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: beep.Seq(parts...), Base: 2, Volume: math.Log2(p.volume)}
}
