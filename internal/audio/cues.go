package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// note is one step of a cue.
type note struct {
	freq  float64
	dur   time.Duration
	wave  Wave
	amp   float64
	decay float64
}

var cueNotes = map[core.EventKind][]note{
	core.EventCoinCollected: {
		{988, 60 * time.Millisecond, WaveSine, 0.35, 6},
		{1319, 120 * time.Millisecond, WaveSine, 0.35, 10},
	},
	core.EventEnemyStomped: {
		{180, 90 * time.Millisecond, WaveTriangle, 0.5, 18},
		{110, 70 * time.Millisecond, WaveTriangle, 0.4, 25},
	},
	core.EventPlayerHurt: {
		{120, 180 * time.Millisecond, WaveSquare, 0.15, 8},
	},
	core.EventMilestoneBonus: {
		{523, 80 * time.Millisecond, WaveSine, 0.3, 4},
		{659, 80 * time.Millisecond, WaveSine, 0.3, 4},
		{784, 80 * time.Millisecond, WaveSine, 0.3, 4},
		{1047, 200 * time.Millisecond, WaveSine, 0.3, 6},
	},
	core.EventGameOver: {
		{392, 200 * time.Millisecond, WaveTriangle, 0.35, 2},
		{330, 200 * time.Millisecond, WaveTriangle, 0.35, 2},
		{262, 400 * time.Millisecond, WaveTriangle, 0.35, 3},
	},
}

// cueStreamer builds the streamer for kind, or nil if the event has no cue.
func cueStreamer(rate beep.SampleRate, kind core.EventKind) beep.Streamer {
	notes, ok := cueNotes[kind]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, NewTone(rate, n.freq, n.dur, n.wave, n.amp, n.decay))
	}
	return beep.Seq(parts...)
}

// cueLength returns the total length of kind's cue in samples.
func cueLength(rate beep.SampleRate, kind core.EventKind) int {
	total := 0
	for _, n := range cueNotes[kind] {
		total += rate.N(n.dur)
	}
	return total
}
