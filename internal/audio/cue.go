// Package audio plays the short tones that confirm adding or removing a drink.
package audio

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// ErrUnavailable indicates the audio device could not be opened.
var ErrUnavailable = errors.New("audio output unavailable")

// Cue identifies a sound.
type Cue int

const (
	CueAdd Cue = iota
	CueRemove
)

const sampleRate = beep.SampleRate(44100)

type tone struct {
	frequency float64
	duration  time.Duration
}

var tones = map[Cue]tone{
	CueAdd:    {frequency: 880, duration: 60 * time.Millisecond},
	CueRemove: {frequency: 440, duration: 60 * time.Millisecond},
}

// Player owns the speaker. It starts disabled and silent until Init succeeds.
type Player struct {
	mu      sync.Mutex
	ready   bool
	enabled bool
}

// NewPlayer creates a player.
func NewPlayer() *Player {
	return &Player{}
}

// Init opens the audio device.
func (player *Player) Init() error {
	player.mu.Lock()
	defer player.mu.Unlock()
	if player.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	player.ready = true
	return nil
}

// SetEnabled turns cues on or off.
func (player *Player) SetEnabled(enabled bool) {
	player.mu.Lock()
	player.enabled = enabled
	player.mu.Unlock()
}

// Play queues the tone for cue. It is a no-op when disabled or not ready.
func (player *Player) Play(cue Cue) {
	player.mu.Lock()
	active := player.ready && player.enabled
	player.mu.Unlock()
	if !active {
		return
	}

	streamer, err := Stream(cue)
	if err != nil {
		return
	}
	speaker.Play(streamer)
}

// Close releases the audio device.
func (player *Player) Close() {
	player.mu.Lock()
	defer player.mu.Unlock()
	if player.ready {
		speaker.Close()
		player.ready = false
	}
}

// Stream builds the finite, softened sine tone for cue.
func Stream(cue Cue) (beep.Streamer, error) {
	spec, ok := tones[cue]
	if !ok {
		return nil, fmt.Errorf("unknown cue %d", cue)
	}
	sine, err := generators.SineTone(sampleRate, spec.frequency)
	if err != nil {
		return nil, fmt.Errorf("build tone: %w", err)
	}
	return &effects.Volume{
		Streamer: beep.Take(sampleRate.N(spec.duration), sine),
		Base:     2,
		Volume:   -3,
	}, nil
}
