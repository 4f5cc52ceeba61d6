package platformer

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// collectCoins picks up every coin inside the player's pickup box.
func (s *Session) collectCoins() {
	c := s.cfg.Coins
	p := s.body
	for i := range s.world.Coins {
		coin := s.world.Coins[i]
		if coin.Taken {
			continue
		}
		if math.Abs(p.X-coin.X) <= c.PickupX &&
			math.Abs(p.Y-coin.Y) <= c.PickupY &&
			math.Abs(p.Z-coin.Z) <= c.PickupZ {
			s.takeCoin(i)
		}
	}
}

// takeCoin marks coin i taken and scores it. Taking a coin twice is a no-op.
func (s *Session) takeCoin(i int) bool {
	if i < 0 || i >= len(s.world.Coins) {
		return false
	}
	coin := &s.world.Coins[i]
	if coin.Taken {
		return false
	}
	coin.Taken = true

	s.state.Coins++
	s.addScore(s.cfg.Gameplay.CoinScore)
	s.particles.Burst(ParticleCoin, coin.X, coin.Y, coin.Z, s.cfg.Particles.CoinBurst)
	s.emit(core.EventCoinCollected, core.Vec3{X: coin.X, Y: coin.Y, Z: coin.Z}, s.cfg.Gameplay.CoinScore)
	return true
}
