// Package platformer implements the 3D coin-collecting platformer: a seeded
// world of platforms, coins and patrolling enemies, the per-tick player
// physics, and the life/score state machine. All state lives in a Session;
// renderers read Snapshots and never mutate it.
package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// Platform is a walkable box. Footprints are centred on y = 0 (the path);
// the solid volume runs from the floor up to Z.
type Platform struct {
	X1, X2 float64 // X-extent, X1 < X2
	Z      float64 // Top height, >= 0
	W, D   float64 // Footprint width (x) and depth (y)
}

// Footprint returns the platform rectangle on the horizontal plane.
func (p Platform) Footprint() core.Footprint {
	return core.Footprint{MinX: p.X1, MaxX: p.X2, MinY: -p.D / 2, MaxY: p.D / 2}
}

// CenterX returns the middle of the x-extent.
func (p Platform) CenterX() float64 {
	return (p.X1 + p.X2) / 2
}

// Coin is a pickup. Taken flips once and never back within a run.
type Coin struct {
	X, Y, Z float64
	Tier    int // Index into the configured coin tiers
	Taken   bool
}

// Enemy patrols [MinX, MaxX] on its host platform.
//
// Stomped enemies are inert: they stop patrolling, are skipped by contact
// checks, keep Squash at its minimum and count Fade down to zero, after
// which Alive is cleared. They are never removed from the slice.
type Enemy struct {
	X, Y, Z    float64
	Radius     float64
	Speed      float64 // Signed base speed along x
	MinX, MaxX float64
	Platform   int // Index of the host platform
	Alive      bool
	Stomped    bool
	Squash     float64 // Vertical scale in [min_squash, 1]
	Fade       int     // Ticks left before a stomped enemy disappears
}

// Top returns the height of the enemy's upper surface.
func (e Enemy) Top() float64 {
	return e.Z + e.Radius
}

// Bottom returns the height of the enemy's lowest point.
func (e Enemy) Bottom() float64 {
	return e.Z - e.Radius
}

// Active reports whether the enemy still patrols and can hurt or be stomped.
func (e Enemy) Active() bool {
	return e.Alive && !e.Stomped
}

// World is one generated layout. It is replaced wholesale on restart.
type World struct {
	Platforms []Platform
	Coins     []Coin
	Enemies   []Enemy
}

// Clone returns a deep copy.
func (w World) Clone() World {
	return World{
		Platforms: append([]Platform(nil), w.Platforms...),
		Coins:     append([]Coin(nil), w.Coins...),
		Enemies:   append([]Enemy(nil), w.Enemies...),
	}
}

// fallbackPlatform is used when generation yields nothing to stand on.
func fallbackPlatform(halfLength, depth float64) Platform {
	return Platform{X1: -halfLength, X2: halfLength, Z: 0, W: 2 * halfLength, D: depth}
}
