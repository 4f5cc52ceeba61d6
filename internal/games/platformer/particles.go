package platformer

import (
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/config"
)

// ParticleKind tells the renderer which burst a particle came from.
type ParticleKind int

const (
	ParticleCoin ParticleKind = iota
	ParticleEnemy
)

// Particle is a short-lived visual effect.
type Particle struct {
	X, Y, Z    float64
	VX, VY, VZ float64
	Life       int
	Kind       ParticleKind
}

// ParticleSystem owns the live particles. It draws from its own random
// stream so effects never shift world generation.
type ParticleSystem struct {
	cfg     config.ParticleConfig
	gravity float64
	rng     *rand.Rand
	items   []Particle
}

// NewParticleSystem creates an empty system.
func NewParticleSystem(cfg config.ParticleConfig, gravity float64, seed int64) *ParticleSystem {
	return &ParticleSystem{
		cfg:     cfg,
		gravity: gravity,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Burst spawns n particles at (x, y, z).
func (ps *ParticleSystem) Burst(kind ParticleKind, x, y, z float64, n int) {
	spread := ps.cfg.Spread
	for range n {
		ps.items = append(ps.items, Particle{
			X: x, Y: y, Z: z,
			VX:   uniform(ps.rng, -spread, spread),
			VY:   uniform(ps.rng, -spread, spread),
			VZ:   uniform(ps.rng, ps.cfg.LiftMin, ps.cfg.LiftMax),
			Life: ps.cfg.Life,
			Kind: kind,
		})
	}
}

// Update advances and expires particles in place.
func (ps *ParticleSystem) Update() {
	live := ps.items[:0]
	for _, p := range ps.items {
		p.X += p.VX
		p.Y += p.VY
		p.Z += p.VZ
		p.VZ += ps.gravity * ps.cfg.GravityScale
		p.Life--
		if p.Life > 0 {
			live = append(live, p)
		}
	}
	clear(ps.items[len(live):])
	ps.items = live
}

// Len returns the number of live particles.
func (ps *ParticleSystem) Len() int {
	return len(ps.items)
}

// Items returns a copy of the live particles.
func (ps *ParticleSystem) Items() []Particle {
	return append([]Particle(nil), ps.items...)
}

// Reset drops all particles and reseeds the stream.
func (ps *ParticleSystem) Reset(seed int64) {
	ps.items = ps.items[:0]
	ps.rng = rand.New(rand.NewSource(seed))
}
