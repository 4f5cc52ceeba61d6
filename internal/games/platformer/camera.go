package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// ViewMode selects how the scene is framed.
type ViewMode int

const (
	ViewThirdPerson ViewMode = iota
	ViewFirstPerson
)

func (v ViewMode) String() string {
	if v == ViewFirstPerson {
		return "first person"
	}
	return "third person"
}

// Camera is cosmetic; it never affects the simulation.
type Camera struct {
	Mode   ViewMode
	Theta  float64 // Orbit angle in degrees
	Height float64
	Radius float64

	// Height limits travel with the camera so a decoded snapshot can
	// still be adjusted.
	MinHeight float64
	MaxHeight float64
}

func newCamera(cfg config.CameraConfig) Camera {
	return Camera{
		Mode:      ViewThirdPerson,
		Theta:     cfg.Theta,
		Height:    core.ClampF(cfg.Height, cfg.MinHeight, cfg.MaxHeight),
		Radius:    cfg.Radius,
		MinHeight: cfg.MinHeight,
		MaxHeight: cfg.MaxHeight,
	}
}

// Toggle switches between third and first person.
func (c *Camera) Toggle() {
	if c.Mode == ViewThirdPerson {
		c.Mode = ViewFirstPerson
	} else {
		c.Mode = ViewThirdPerson
	}
}

// Rotate orbits by delta degrees, keeping Theta in [0, 360).
func (c *Camera) Rotate(delta float64) {
	c.Theta = core.Wrap01((c.Theta+delta)/360) * 360
}

// Raise changes the camera height within its limits.
func (c *Camera) Raise(delta float64) {
	c.Height = core.ClampF(c.Height+delta, c.MinHeight, c.MaxHeight)
}
