package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the built-in platformer configuration.
// It matches defaults/platformer.yaml and is used when the embedded copy
// cannot be parsed.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		World: WorldConfig{
			Seed:          423,
			HalfLength:    600,
			EdgeMargin:    80,
			BoundsMargin:  40,
			PathHalfWidth: 40,
			SegmentMin:    100,
			SegmentMax:    220,
			GapMin:        40,
			GapMax:        120,
			HeightTiers:   []float64{0, 30, 60, 90, 120, 150},
			PlatformDepth: 80,
			StartPlatform: StartPlatformConfig{
				Enabled: true,
				X1:      -80,
				X2:      120,
				Z:       30,
				Depth:   100,
			},
			CoinCount:         30,
			EnemyCount:        6,
			PlacementAttempts: 1000,
		},
		Physics: PhysicsConfig{
			Gravity:          -0.8,
			JumpSpeed:        18,
			LongJumpSpeed:    21,
			LongJumpMomentum: 9,
			MomentumDecay:    0.92,
			MomentumCutoff:   0.3,
			MoveSpeed:        6,
			FootOffset:       40,
			PlayerRadius:     18,
			PlayerHeight:     48,
			SurfaceEpsilon:   2,
			EdgeWindow:       12,
		},
		Enemies: EnemyConfig{
			Speed:            0.6,
			Radius:           16,
			StandOff:         18,
			MinPlatformWidth: 120,
			SpawnInset:       20,
			PatrolInset:      10,
			MinSeparation:    60,
			StompTolerance:   6,
			StompReach:       8,
			BounceFraction:   0.8,
			MinSquash:        0.4,
			FadeFrames:       45,
		},
		Coins: CoinConfig{
			Inset:    15,
			PickupX:  20,
			PickupY:  20,
			PickupZ:  28,
			SpinStep: 4,
			Tiers: []CoinTier{
				{Name: "surface", Weight: 50, Offset: 40, Jitter: 8},
				{Name: "low_jump", Weight: 30, Offset: 90, Jitter: 20},
				{Name: "high_jump", Weight: 20, Offset: 160, Jitter: 30},
			},
		},
		Particles: ParticleConfig{
			CoinBurst:    12,
			EnemyBurst:   16,
			Life:         30,
			Spread:       1.5,
			LiftMin:      1.0,
			LiftMax:      3.2,
			GravityScale: 0.1,
		},
		Gameplay: GameplayConfig{
			TickRate:       60,
			MaxLife:        100,
			Damage:         20,
			Knockback:      20,
			HurtCooldown:   30,
			CoinScore:      10,
			StompScore:     50,
			MilestoneStep:  500,
			MilestoneBonus: 20,
			DayNightStep:   0.002,
		},
		Camera: CameraConfig{
			Theta:      30,
			Height:     180,
			Radius:     350,
			ThetaStep:  3,
			HeightStep: 15,
			MinHeight:  60,
			MaxHeight:  1400,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPlatformerYAML
}
