package platformer

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/config"
)

// GenReport describes where generation fell short of the configuration.
type GenReport struct {
	FallbackPlatform bool // No platforms were produced; a flat one was added
	CoinsPlaced      int
	CoinAttempts     int
	CoinShortfall    int
	EnemiesPlaced    int
	EnemyShortfall   int
}

// Generate builds the world for seed. One random stream is consumed in a
// fixed order (platforms, then coins, then enemies), so the same seed and
// config always give the same world.
func Generate(seed int64, cfg config.PlatformerConfig) (World, GenReport) {
	rng := rand.New(rand.NewSource(seed))
	var report GenReport

	platforms := generatePlatforms(rng, cfg.World)
	if len(platforms) == 0 {
		platforms = []Platform{fallbackPlatform(cfg.World.HalfLength, cfg.World.PlatformDepth)}
		report.FallbackPlatform = true
	}

	coins, attempts := placeCoins(rng, platforms, cfg.World, cfg.Coins)
	report.CoinsPlaced = len(coins)
	report.CoinAttempts = attempts
	report.CoinShortfall = cfg.World.CoinCount - len(coins)

	enemies := placeEnemies(rng, platforms, cfg.World, cfg.Enemies)
	report.EnemiesPlaced = len(enemies)
	report.EnemyShortfall = cfg.World.EnemyCount - len(enemies)

	return World{Platforms: platforms, Coins: coins, Enemies: enemies}, report
}

// generatePlatforms walks a cursor along x emitting segments separated by
// gaps, then appends the start platform.
func generatePlatforms(rng *rand.Rand, w config.WorldConfig) []Platform {
	var platforms []Platform

	if len(w.HeightTiers) > 0 {
		x := -w.HalfLength + w.EdgeMargin
		for x < w.HalfLength-w.EdgeMargin {
			segLen := randInt(rng, w.SegmentMin, w.SegmentMax)
			gap := randInt(rng, w.GapMin, w.GapMax)
			height := w.HeightTiers[rng.Intn(len(w.HeightTiers))]
			if segLen <= 0 {
				break
			}

			platforms = append(platforms, Platform{
				X1: x,
				X2: x + float64(segLen),
				Z:  math.Max(height, 0),
				W:  float64(segLen),
				D:  w.PlatformDepth,
			})
			x += float64(segLen + gap)
		}
	}

	if sp := w.StartPlatform; sp.Enabled && sp.X1 < sp.X2 {
		platforms = append(platforms, Platform{
			X1: sp.X1,
			X2: sp.X2,
			Z:  math.Max(sp.Z, 0),
			W:  sp.X2 - sp.X1,
			D:  sp.Depth,
		})
	}

	return platforms
}

// placeCoins drops coins on random platforms at a weighted height tier.
// It gives up after the attempt budget and keeps what it has.
func placeCoins(rng *rand.Rand, platforms []Platform, w config.WorldConfig, c config.CoinConfig) ([]Coin, int) {
	coins := make([]Coin, 0, max(w.CoinCount, 0))
	attempts := 0

	for len(coins) < w.CoinCount && attempts < w.PlacementAttempts {
		attempts++

		p := platforms[rng.Intn(len(platforms))]
		lo, hi := p.X1+c.Inset, p.X2-c.Inset
		if hi < lo {
			continue // Too narrow for a coin
		}

		tier := pickTier(rng, c.Tiers)
		var offset, jitter float64
		if tier >= 0 {
			offset, jitter = c.Tiers[tier].Offset, c.Tiers[tier].Jitter
		}

		coins = append(coins, Coin{
			X:    uniform(rng, lo, hi),
			Y:    0,
			Z:    p.Z + offset + rng.Float64()*jitter,
			Tier: tier,
		})
	}

	return coins, attempts
}

// placeEnemies puts at most one enemy on each wide-enough platform, in a
// shuffled order, skipping spots too close to an enemy already placed.
func placeEnemies(rng *rand.Rand, platforms []Platform, w config.WorldConfig, e config.EnemyConfig) []Enemy {
	candidates := make([]int, 0, len(platforms))
	for i, p := range platforms {
		if p.W >= e.MinPlatformWidth {
			candidates = append(candidates, i)
		}
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	enemies := make([]Enemy, 0, max(w.EnemyCount, 0))
	for _, idx := range candidates {
		if len(enemies) >= w.EnemyCount {
			break
		}
		p := platforms[idx]

		ex := p.CenterX()
		if lo, hi := p.X1+e.SpawnInset, p.X2-e.SpawnInset; lo <= hi {
			ex = uniform(rng, lo, hi)
		}
		dir := 1.0
		if rng.Intn(2) == 0 {
			dir = -1.0
		}
		ez := p.Z + e.StandOff

		if tooClose(enemies, ex, 0, ez, e.MinSeparation) {
			continue
		}

		minX, maxX := p.X1+e.PatrolInset, p.X2-e.PatrolInset
		if minX > maxX {
			minX, maxX = p.CenterX(), p.CenterX()
		}

		enemies = append(enemies, Enemy{
			X:        math.Min(math.Max(ex, minX), maxX),
			Y:        0,
			Z:        ez,
			Radius:   e.Radius,
			Speed:    e.Speed * dir,
			MinX:     minX,
			MaxX:     maxX,
			Platform: idx,
			Alive:    true,
			Squash:   1.0,
		})
	}

	return enemies
}

func tooClose(enemies []Enemy, x, y, z, minSep float64) bool {
	for _, o := range enemies {
		dx, dy, dz := x-o.X, y-o.Y, z-o.Z
		if dx*dx+dy*dy+dz*dz < minSep*minSep {
			return true
		}
	}
	return false
}

// pickTier returns a weighted random tier index, or -1 when no tier has weight.
func pickTier(rng *rand.Rand, tiers []config.CoinTier) int {
	total := 0
	for _, t := range tiers {
		if t.Weight > 0 {
			total += t.Weight
		}
	}
	if total == 0 {
		return -1
	}

	r := rng.Intn(total)
	for i, t := range tiers {
		if t.Weight <= 0 {
			continue
		}
		if r < t.Weight {
			return i
		}
		r -= t.Weight
	}
	return len(tiers) - 1
}

// randInt returns an int in [lo, hi], both inclusive.
func randInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// uniform returns a float in [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
