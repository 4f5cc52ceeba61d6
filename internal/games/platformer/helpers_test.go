package platformer

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

var fixedNow = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func defaultConfig(t *testing.T) config.PlatformerConfig {
	t.Helper()
	cfg := config.DefaultPlatformerConfig()
	require.Empty(t, cfg.Validate())
	return cfg
}

// flatConfig gives a world with every platform at floor height and nothing
// placed on it, so scenarios can inject their own coins and enemies.
func flatConfig(t *testing.T) config.PlatformerConfig {
	t.Helper()
	cfg := defaultConfig(t)
	cfg.World.HeightTiers = []float64{0}
	cfg.World.StartPlatform.Enabled = false
	cfg.World.CoinCount = 0
	cfg.World.EnemyCount = 0
	return cfg
}

func newTestSession(t *testing.T, cfg config.PlatformerConfig, seed int64) *Session {
	t.Helper()
	return NewSession(cfg, seed, WithClock(fixedClock))
}

func hasEvent(events []core.Event, kind core.EventKind) bool {
	for _, ev := range events {
		if ev.Kind == kind {
			return true
		}
	}
	return false
}

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}
