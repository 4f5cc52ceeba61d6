// Package audio plays short synthesized cues for gameplay events through
// the system speaker. Nothing here touches simulation state.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Wave selects an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
)

// Tone is a fixed-length oscillator with an exponential decay envelope.
// It ends by returning ok=false once its samples run out.
type Tone struct {
	rate     beep.SampleRate
	freq     float64
	wave     Wave
	amp      float64
	decay    float64 // Envelope falloff per second
	phase    float64
	pos      int
	duration int
}

// NewTone creates a tone of the given length.
func NewTone(rate beep.SampleRate, freq float64, d time.Duration, wave Wave, amp, decay float64) *Tone {
	return &Tone{
		rate:     rate,
		freq:     freq,
		wave:     wave,
		amp:      amp,
		decay:    decay,
		duration: rate.N(d),
	}
}

func (t *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.duration {
			return i, i > 0
		}

		var val float64
		switch t.wave {
		case WaveSquare:
			if t.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveTriangle:
			val = 4*math.Abs(t.phase-0.5) - 1
		default:
			val = math.Sin(2 * math.Pi * t.phase)
		}

		secs := float64(t.pos) / float64(t.rate)
		// 5ms attack keeps cue onsets from clicking.
		attack := math.Min(secs/0.005, 1)
		val *= t.amp * attack * math.Exp(-secs*t.decay)

		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *Tone) Err() error { return nil }

// Len returns the tone length in samples.
func (t *Tone) Len() int { return t.duration }
