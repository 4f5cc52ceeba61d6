package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// SoundManager mixes event cues into a single speaker stream.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      *effects.Volume
	initialized bool
}

// NewSoundManager creates a sound manager. Play is a no-op until
// Initialize succeeds.
func NewSoundManager() *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		mixer:  mixer,
		volume: &effects.Volume{Streamer: mixer, Base: 2},
	}
}

// Initialize opens the speaker.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.volume)
	sm.initialized = true
	return nil
}

// Play queues the cue for kind. Events without a cue are ignored.
func (sm *SoundManager) Play(kind core.EventKind) {
	s := cueStreamer(sampleRate, kind)
	if s == nil {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// SetVolume sets the master volume as a power-of-two exponent; 0 is unity.
func (sm *SoundManager) SetVolume(v float64) {
	speaker.Lock()
	sm.volume.Volume = v
	sm.volume.Silent = v <= -8
	speaker.Unlock()
}

// Cleanup drops everything queued and stops playback.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}
