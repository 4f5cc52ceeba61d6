package platformer

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// DayNight is the cosmetic sky cycle. T is in [0, 1).
type DayNight struct {
	T         float64
	Direction float64 // +1 runs forward, -1 backward
}

func newDayNight() DayNight {
	return DayNight{T: 0.25, Direction: 1}
}

// Advance moves the cycle one tick.
func (d *DayNight) Advance(step float64) {
	d.T = core.Wrap01(d.T + step*d.Direction)
}

// Toggle jumps half a cycle and sets the run direction to the sign of dir.
func (d *DayNight) Toggle(dir int) {
	d.T = core.Wrap01(d.T + 0.5)
	if dir < 0 {
		d.Direction = -1
	} else {
		d.Direction = 1
	}
}

// Brightness returns the sky light level in [0, 1].
func (d DayNight) Brightness() float64 {
	return 0.5 + 0.5*math.Sin(2*math.Pi*d.T)
}

// IsNight reports whether the sky is darker than half light.
func (d DayNight) IsNight() bool {
	return d.Brightness() < 0.5
}
