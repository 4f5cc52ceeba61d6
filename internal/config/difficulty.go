package config

import "math"

// DifficultyManager turns run progress into a difficulty level and the
// enemy patrol speed multiplier derived from it.
type DifficultyManager struct {
	base      float64 // Level before any progress
	maxAt     float64
	speedGain float64
	progress  func(score int, ticks uint64) float64 // nil when progression is off
}

// NewDifficultyManager builds a manager from cfg. Progression types other
// than "score" and "time" leave the level fixed at the initial level.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	d := &DifficultyManager{
		base:      math.Max(0, math.Min(1, cfg.InitialLevel)),
		maxAt:     math.Max(1, float64(cfg.Progression.MaxAt)),
		speedGain: cfg.Scaling.SpeedMultiplier,
	}
	if !cfg.Enabled {
		return d
	}
	switch cfg.Progression.Type {
	case "score":
		d.progress = func(score int, _ uint64) float64 { return float64(score) }
	case "time":
		d.progress = func(_ int, ticks uint64) float64 { return float64(ticks) }
	}
	return d
}

// IsEnabled reports whether the level moves with progress.
func (d *DifficultyManager) IsEnabled() bool {
	return d.progress != nil
}

// Level is in [initial_level, 1]. It reaches 1 at progression.max_at.
func (d *DifficultyManager) Level(score int, ticks uint64) float64 {
	if d.progress == nil {
		return d.base
	}
	p := math.Min(1, math.Max(0, d.progress(score, ticks)/d.maxAt))
	return d.base + p*(1-d.base)
}

// SpeedFactor returns the multiplier applied to base enemy speed: 1 at
// level 0, 1 + speed_multiplier at level 1.
func (d *DifficultyManager) SpeedFactor(score int, ticks uint64) float64 {
	return 1 + d.Level(score, ticks)*d.speedGain
}
