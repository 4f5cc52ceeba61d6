package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Collider answers ground and wall queries against a static platform set.
// Nothing is cached; every call scans the platforms.
type Collider struct {
	platforms     []Platform
	bandHalfWidth float64 // |y| limit for ground queries
	surfaceEps    float64
	edgeWindow    float64
	radius        float64 // Player radius for edge tests
}

// NewCollider builds a collider over platforms.
func NewCollider(platforms []Platform, cfg config.PlatformerConfig) Collider {
	return Collider{
		platforms:     platforms,
		bandHalfWidth: cfg.World.PathHalfWidth,
		surfaceEps:    cfg.Physics.SurfaceEpsilon,
		edgeWindow:    cfg.Physics.EdgeWindow,
		radius:        cfg.Physics.PlayerRadius,
	}
}

// GroundHeightAt returns the highest platform top under (x, y), or 0 for
// the open floor. It never returns less than 0.
func (c Collider) GroundHeightAt(x, y float64) float64 {
	ground := 0.0
	if y < -c.bandHalfWidth || y > c.bandHalfWidth {
		return ground
	}
	for _, p := range c.platforms {
		if x >= p.X1 && x <= p.X2 && p.Z > ground {
			ground = p.Z
		}
	}
	return ground
}

// IsBlocked reports whether a foot at (x, y, z) would be inside a platform's
// solid volume. A foot within surfaceEps below a top, or anywhere above it,
// is resting on or clear of that platform and is not blocked.
func (c Collider) IsBlocked(x, y, z float64) bool {
	for _, p := range c.platforms {
		if !p.Footprint().Contains(x, y) {
			continue
		}
		if z < p.Z-c.surfaceEps {
			return true
		}
	}
	return false
}

// CollidesWithAny tests a circle of the player radius at (x, y) against
// every platform rectangle, keeping hits whose top is within edgeWindow of
// the foot height z. The highest hit wins.
func (c Collider) CollidesWithAny(x, y, z float64) (Platform, bool) {
	var (
		best  Platform
		found bool
	)
	for _, p := range c.platforms {
		cx, cy := p.Footprint().ClosestPoint(x, y)
		if core.Dist2D(x, y, cx, cy) > c.radius {
			continue
		}
		if z < p.Z-c.edgeWindow || z > p.Z+c.edgeWindow {
			continue
		}
		if !found || p.Z > best.Z {
			best, found = p, true
		}
	}
	return best, found
}
