package platformer

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Mode is the player's movement state.
type Mode int

const (
	ModeGrounded Mode = iota
	ModeAirborne
	ModeLongJump // Airborne with decaying horizontal momentum
)

var modeNames = map[Mode]string{
	ModeGrounded: "grounded",
	ModeAirborne: "airborne",
	ModeLongJump: "long_jump",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "unknown"
}

// Player is the controlled body. Z is the body reference height; the feet
// sit FootOffset below it.
type Player struct {
	X, Y, Z      float64
	VZ           float64
	OnGround     bool
	LongJumping  bool
	Momentum     float64 // Signed x step seed while long jumping
	HurtCooldown int     // Ticks until the player can be damaged again
}

// Mode derives the movement state from the flags.
func (p Player) Mode() Mode {
	switch {
	case p.OnGround:
		return ModeGrounded
	case p.LongJumping:
		return ModeLongJump
	default:
		return ModeAirborne
	}
}

// body is the player plus the rules that move it.
type body struct {
	*Player
	phys     config.PhysicsConfig
	collider Collider
	minX     float64
	maxX     float64
	halfBand float64
}

func newBody(p *Player, cfg config.PlatformerConfig, collider Collider) body {
	limit := cfg.World.HalfLength - cfg.World.BoundsMargin
	if limit < 0 {
		limit = 0
	}
	return body{
		Player:   p,
		phys:     cfg.Physics,
		collider: collider,
		minX:     -limit,
		maxX:     limit,
		halfBand: cfg.World.PathHalfWidth,
	}
}

// feet returns the current foot height.
func (b body) feet() float64 {
	return b.Z - b.phys.FootOffset
}

// spawn places the player standing at (x, 0).
func (b body) spawn(x float64) {
	*b.Player = Player{X: x}
	b.Z = b.collider.GroundHeightAt(b.X, b.Y) + b.phys.FootOffset
	b.OnGround = true
}

// tryMove shifts the player by (dx, dy), clamped to the world bounds. The
// move is refused if the feet would end up inside a platform.
func (b body) tryMove(dx, dy float64) bool {
	nx := core.ClampF(b.X+dx, b.minX, b.maxX)
	ny := core.ClampF(b.Y+dy, -b.halfBand, b.halfBand)
	if b.collider.IsBlocked(nx, ny, b.feet()) {
		return false
	}
	b.X, b.Y = nx, ny
	return true
}

// jump starts a normal jump. Only valid on the ground.
func (b body) jump() bool {
	if !b.OnGround {
		return false
	}
	b.VZ = b.phys.JumpSpeed
	b.OnGround = false
	return true
}

// longJump starts a jump that carries momentum in dir.
func (b body) longJump(dir float64) bool {
	if !b.OnGround {
		return false
	}
	b.VZ = b.phys.LongJumpSpeed
	b.OnGround = false
	b.LongJumping = true
	b.Momentum = b.phys.LongJumpMomentum * core.Sign(dir)
	return true
}

// integrate advances one tick of vertical motion and long-jump drift,
// then resolves landing.
func (b body) integrate() {
	b.VZ += b.phys.Gravity
	zNext := b.Z + b.VZ

	if b.LongJumping {
		b.tryMove(b.Momentum*b.phys.MomentumDecay, 0)
		b.Momentum *= b.phys.MomentumDecay
		if math.Abs(b.Momentum) < b.phys.MomentumCutoff {
			b.endLongJump()
		}
	}

	ground := b.collider.GroundHeightAt(b.X, b.Y)
	base := ground + b.phys.FootOffset

	switch {
	case zNext <= base:
		b.land(base)
	case b.VZ < 0:
		if hit, ok := b.collider.CollidesWithAny(b.X, b.Y, zNext-b.phys.FootOffset); ok && hit.Z > ground {
			b.land(hit.Z + b.phys.FootOffset)
		} else {
			b.Z = zNext
			b.OnGround = false
		}
	default:
		b.Z = zNext
		b.OnGround = false
	}

	if b.Z < b.phys.FootOffset {
		b.Z = b.phys.FootOffset
	}
}

// settle lifts the player onto the ground if a horizontal move left the
// feet inside the surface tolerance below a top.
func (b body) settle() {
	base := b.collider.GroundHeightAt(b.X, b.Y) + b.phys.FootOffset
	if b.Z < base {
		b.Z = base
		if b.VZ < 0 {
			b.VZ = 0
		}
	}
}

func (b body) land(z float64) {
	b.Z = z
	b.VZ = 0
	b.OnGround = true
	b.endLongJump()
}

func (b body) endLongJump() {
	b.LongJumping = false
	b.Momentum = 0
}
