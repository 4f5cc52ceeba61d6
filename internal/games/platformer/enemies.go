package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// patrolEnemies moves every active enemy along its patrol range and ticks
// the fade of stomped ones. factor scales the base speed.
func (s *Session) patrolEnemies(factor float64) {
	for i := range s.world.Enemies {
		e := &s.world.Enemies[i]
		if !e.Alive {
			continue
		}
		if e.Stomped {
			e.Fade--
			if e.Fade <= 0 {
				e.Fade = 0
				e.Alive = false
			}
			continue
		}

		e.X += e.Speed * factor
		if e.X <= e.MinX {
			e.X = e.MinX
			e.Speed = absF(e.Speed)
		} else if e.X >= e.MaxX {
			e.X = e.MaxX
			e.Speed = -absF(e.Speed)
		}
		if e.Platform >= 0 && e.Platform < len(s.world.Platforms) {
			e.Z = s.world.Platforms[e.Platform].Z + s.cfg.Enemies.StandOff
		}
	}
}

// resolveEnemyContacts stomps enemies landed on from above and damages the
// player on any other contact. At most one hit lands per tick. The stomp
// test is swept over the tick: a fall that started at or above the enemy
// top counts even when the player already reached the ground below it.
func (s *Session) resolveEnemyContacts() {
	p := s.body
	phys := s.cfg.Physics
	ecfg := s.cfg.Enemies
	fall := s.fall

	for i := range s.world.Enemies {
		e := &s.world.Enemies[i]
		if !e.Active() {
			continue
		}
		if core.Dist2D(p.X, p.Y, e.X, e.Y) > phys.PlayerRadius+e.Radius {
			continue
		}

		feet := p.feet()
		top := e.Top()
		if feet > top+ecfg.StompReach || feet+phys.PlayerHeight < e.Bottom() {
			continue
		}

		if fall.descending && max(fall.from, feet) >= top-ecfg.StompTolerance {
			s.stomp(i)
			continue
		}

		if p.HurtCooldown == 0 {
			s.hurt(*e)
			return
		}
	}
}

func (s *Session) stomp(i int) {
	e := &s.world.Enemies[i]
	e.Stomped = true
	e.Squash = s.cfg.Enemies.MinSquash
	e.Fade = s.cfg.Enemies.FadeFrames
	if e.Fade <= 0 {
		e.Alive = false
	}

	s.body.VZ = s.cfg.Physics.JumpSpeed * s.cfg.Enemies.BounceFraction
	s.body.OnGround = false
	s.body.LongJumping = false
	s.body.Momentum = 0

	s.addScore(s.cfg.Gameplay.StompScore)
	s.particles.Burst(ParticleEnemy, e.X, e.Y, e.Top(), s.cfg.Particles.EnemyBurst)
	s.emit(core.EventEnemyStomped, core.Vec3{X: e.X, Y: e.Y, Z: e.Z}, s.cfg.Gameplay.StompScore)
}

func (s *Session) hurt(e Enemy) {
	g := s.cfg.Gameplay
	p := s.body

	p.HurtCooldown = g.HurtCooldown
	over := s.state.damage(g.Damage)
	s.emit(core.EventPlayerHurt, core.Vec3{X: p.X, Y: p.Y, Z: p.Z}, s.state.Life)

	nx, ny := core.Normalize2D(p.X-e.X, p.Y-e.Y)
	if nx == 0 && ny == 0 {
		nx = -1
	}
	if p.tryMove(nx*g.Knockback, ny*g.Knockback) {
		p.settle()
	}

	if over {
		s.logger.Info("game over", "score", s.state.Score, "coins", s.state.Coins, "tick", s.tick)
		s.emit(core.EventGameOver, core.Vec3{X: p.X, Y: p.Y, Z: p.Z}, s.state.Score)
	}
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
