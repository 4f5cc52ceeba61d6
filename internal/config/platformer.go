// Package config provides YAML-based game configuration loading and
// difficulty management for the platformer.
package config

import "fmt"

// PlatformerConfig contains all tunables for the platformer simulation.
// Values are read once at startup; nothing mutates them during play.
type PlatformerConfig struct {
	World      WorldConfig      `yaml:"world"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Enemies    EnemyConfig      `yaml:"enemies"`
	Coins      CoinConfig       `yaml:"coins"`
	Particles  ParticleConfig   `yaml:"particles"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Camera     CameraConfig     `yaml:"camera"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the procedural layout.
type WorldConfig struct {
	Seed              int64               `yaml:"seed"`
	HalfLength        float64             `yaml:"half_length"`   // World spans [-HalfLength, HalfLength] on x
	EdgeMargin        float64             `yaml:"edge_margin"`   // Generation cursor keeps this far from the ends
	BoundsMargin      float64             `yaml:"bounds_margin"` // Player x is clamped this far inside the ends
	PathHalfWidth     float64             `yaml:"path_half_width"`
	SegmentMin        int                 `yaml:"segment_min"`
	SegmentMax        int                 `yaml:"segment_max"`
	GapMin            int                 `yaml:"gap_min"`
	GapMax            int                 `yaml:"gap_max"`
	HeightTiers       []float64           `yaml:"height_tiers"`
	PlatformDepth     float64             `yaml:"platform_depth"`
	StartPlatform     StartPlatformConfig `yaml:"start_platform"`
	CoinCount         int                 `yaml:"coin_count"`
	EnemyCount        int                 `yaml:"enemy_count"`
	PlacementAttempts int                 `yaml:"placement_attempts"`
}

// StartPlatformConfig is the fixed platform the player spawns on.
type StartPlatformConfig struct {
	Enabled bool    `yaml:"enabled"`
	X1      float64 `yaml:"x1"`
	X2      float64 `yaml:"x2"`
	Z       float64 `yaml:"z"`
	Depth   float64 `yaml:"depth"`
}

// PhysicsConfig defines player movement and collision tolerances.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"` // Negative: added to vz every tick
	JumpSpeed        float64 `yaml:"jump_speed"`
	LongJumpSpeed    float64 `yaml:"long_jump_speed"`
	LongJumpMomentum float64 `yaml:"long_jump_momentum"`
	MomentumDecay    float64 `yaml:"momentum_decay"`
	MomentumCutoff   float64 `yaml:"momentum_cutoff"`
	MoveSpeed        float64 `yaml:"move_speed"`
	FootOffset       float64 `yaml:"foot_offset"` // Player z above the ground when standing
	PlayerRadius     float64 `yaml:"player_radius"`
	PlayerHeight     float64 `yaml:"player_height"`
	SurfaceEpsilon   float64 `yaml:"surface_epsilon"` // Feet this close below a top count as on it
	EdgeWindow       float64 `yaml:"edge_window"`     // Vertical window for edge landings
}

// EnemyConfig defines enemy placement, patrol and stomp rules.
type EnemyConfig struct {
	Speed            float64 `yaml:"speed"`
	Radius           float64 `yaml:"radius"`
	StandOff         float64 `yaml:"stand_off"`
	MinPlatformWidth float64 `yaml:"min_platform_width"`
	SpawnInset       float64 `yaml:"spawn_inset"`
	PatrolInset      float64 `yaml:"patrol_inset"`
	MinSeparation    float64 `yaml:"min_separation"`
	StompTolerance   float64 `yaml:"stomp_tolerance"` // Feet may be this far below the enemy top
	StompReach       float64 `yaml:"stomp_reach"`     // Feet may hover this far above the enemy top
	BounceFraction   float64 `yaml:"bounce_fraction"`
	MinSquash        float64 `yaml:"min_squash"`
	FadeFrames       int     `yaml:"fade_frames"`
}

// CoinTier is one height band for coin placement.
type CoinTier struct {
	Name   string  `yaml:"name"`
	Weight int     `yaml:"weight"`
	Offset float64 `yaml:"offset"` // Height above the platform top
	Jitter float64 `yaml:"jitter"` // Extra random height in [0, Jitter)
}

// CoinConfig defines coin placement and pickup.
type CoinConfig struct {
	Inset    float64    `yaml:"inset"`
	PickupX  float64    `yaml:"pickup_x"`
	PickupY  float64    `yaml:"pickup_y"`
	PickupZ  float64    `yaml:"pickup_z"`
	SpinStep float64    `yaml:"spin_step"`
	Tiers    []CoinTier `yaml:"tiers"`
}

// ParticleConfig defines pickup/stomp bursts.
type ParticleConfig struct {
	CoinBurst    int     `yaml:"coin_burst"`
	EnemyBurst   int     `yaml:"enemy_burst"`
	Life         int     `yaml:"life"`
	Spread       float64 `yaml:"spread"`
	LiftMin      float64 `yaml:"lift_min"`
	LiftMax      float64 `yaml:"lift_max"`
	GravityScale float64 `yaml:"gravity_scale"`
}

// GameplayConfig defines the life/score economy.
type GameplayConfig struct {
	TickRate       int     `yaml:"tick_rate"`
	MaxLife        int     `yaml:"max_life"`
	Damage         int     `yaml:"damage"`
	Knockback      float64 `yaml:"knockback"`
	HurtCooldown   int     `yaml:"hurt_cooldown"` // Ticks of invulnerability after a hit
	CoinScore      int     `yaml:"coin_score"`
	StompScore     int     `yaml:"stomp_score"`
	MilestoneStep  int     `yaml:"milestone_step"`
	MilestoneBonus int     `yaml:"milestone_bonus"`
	DayNightStep   float64 `yaml:"day_night_step"`
}

// CameraConfig defines the initial camera orbit and its limits.
type CameraConfig struct {
	Theta      float64 `yaml:"theta"`
	Height     float64 `yaml:"height"`
	Radius     float64 `yaml:"radius"`
	ThetaStep  float64 `yaml:"theta_step"`
	HeightStep float64 `yaml:"height_step"`
	MinHeight  float64 `yaml:"min_height"`
	MaxHeight  float64 `yaml:"max_height"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to enemy speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	}
	return ""
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPlatformerPreset modifies the config based on a difficulty preset.
func ApplyPlatformerPreset(cfg *PlatformerConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Damage = 10
		cfg.Gameplay.HurtCooldown = 45
		cfg.Enemies.Speed = 0.45
	case DifficultyHard:
		cfg.Gameplay.Damage = 30
		cfg.Gameplay.HurtCooldown = 20
		cfg.Enemies.Speed = 0.8
	}
}

// Validate repairs values that would break the simulation and returns a
// description of every repair made.
func (c *PlatformerConfig) Validate() []string {
	var fixes []string
	fix := func(format string, args ...any) {
		fixes = append(fixes, fmt.Sprintf(format, args...))
	}

	w := &c.World
	if w.HalfLength <= 0 {
		fix("world.half_length %v must be positive, using 600", w.HalfLength)
		w.HalfLength = 600
	}
	if w.PathHalfWidth <= 0 {
		fix("world.path_half_width %v must be positive, using 40", w.PathHalfWidth)
		w.PathHalfWidth = 40
	}
	if w.SegmentMin > w.SegmentMax {
		fix("world.segment_min > segment_max, swapping")
		w.SegmentMin, w.SegmentMax = w.SegmentMax, w.SegmentMin
	}
	if w.SegmentMin <= 0 {
		fix("world.segment_min %d must be positive, using 1", w.SegmentMin)
		w.SegmentMin = 1
	}
	if w.SegmentMax < w.SegmentMin {
		fix("world.segment_max %d below segment_min, using %d", w.SegmentMax, w.SegmentMin)
		w.SegmentMax = w.SegmentMin
	}
	if w.GapMin > w.GapMax {
		fix("world.gap_min > gap_max, swapping")
		w.GapMin, w.GapMax = w.GapMax, w.GapMin
	}
	if w.GapMin < 0 {
		fix("world.gap_min %d must not be negative, using 0", w.GapMin)
		w.GapMin = 0
	}
	if w.GapMax < w.GapMin {
		fix("world.gap_max %d below gap_min, using %d", w.GapMax, w.GapMin)
		w.GapMax = w.GapMin
	}
	if len(w.HeightTiers) == 0 {
		fix("world.height_tiers is empty, using [0]")
		w.HeightTiers = []float64{0}
	}
	for i, h := range w.HeightTiers {
		if h < 0 {
			fix("world.height_tiers[%d] %v is negative, using 0", i, h)
			w.HeightTiers[i] = 0
		}
	}
	if w.StartPlatform.Enabled && w.StartPlatform.X1 >= w.StartPlatform.X2 {
		fix("world.start_platform x1 >= x2, swapping")
		w.StartPlatform.X1, w.StartPlatform.X2 = w.StartPlatform.X2, w.StartPlatform.X1
		if w.StartPlatform.X1 == w.StartPlatform.X2 {
			w.StartPlatform.X2 = w.StartPlatform.X1 + 1
		}
	}
	if w.StartPlatform.Z < 0 {
		fix("world.start_platform.z %v is negative, using 0", w.StartPlatform.Z)
		w.StartPlatform.Z = 0
	}
	if w.CoinCount < 0 {
		fix("world.coin_count %d is negative, using 0", w.CoinCount)
		w.CoinCount = 0
	}
	if w.EnemyCount < 0 {
		fix("world.enemy_count %d is negative, using 0", w.EnemyCount)
		w.EnemyCount = 0
	}
	if w.PlacementAttempts <= 0 {
		fix("world.placement_attempts %d must be positive, using 1000", w.PlacementAttempts)
		w.PlacementAttempts = 1000
	}

	p := &c.Physics
	if p.Gravity >= 0 {
		fix("physics.gravity %v must be negative, using -0.8", p.Gravity)
		p.Gravity = -0.8
	}
	if p.MomentumDecay <= 0 || p.MomentumDecay >= 1 {
		fix("physics.momentum_decay %v must be in (0, 1), using 0.92", p.MomentumDecay)
		p.MomentumDecay = 0.92
	}
	if p.MomentumCutoff <= 0 {
		fix("physics.momentum_cutoff %v must be positive, using 0.3", p.MomentumCutoff)
		p.MomentumCutoff = 0.3
	}

	e := &c.Enemies
	if e.MinSquash <= 0 || e.MinSquash > 1 {
		fix("enemies.min_squash %v must be in (0, 1], using 0.4", e.MinSquash)
		e.MinSquash = 0.4
	}

	g := &c.Gameplay
	if g.TickRate <= 0 {
		fix("gameplay.tick_rate %d must be positive, using 60", g.TickRate)
		g.TickRate = 60
	}
	if g.MaxLife <= 0 {
		fix("gameplay.max_life %d must be positive, using 100", g.MaxLife)
		g.MaxLife = 100
	}
	if g.MilestoneStep <= 0 {
		fix("gameplay.milestone_step %d must be positive, using 500", g.MilestoneStep)
		g.MilestoneStep = 500
	}

	if c.Camera.MinHeight > c.Camera.MaxHeight {
		fix("camera.min_height > max_height, swapping")
		c.Camera.MinHeight, c.Camera.MaxHeight = c.Camera.MaxHeight, c.Camera.MinHeight
	}

	total := 0
	for _, t := range c.Coins.Tiers {
		if t.Weight > 0 {
			total += t.Weight
		}
	}
	if total == 0 {
		fix("coins.tiers has no positive weight, using a single surface tier")
		c.Coins.Tiers = []CoinTier{{Name: "surface", Weight: 1, Offset: c.Physics.FootOffset}}
	}

	return fixes
}

// MaxHeight returns the tallest configured platform height.
func (w WorldConfig) MaxHeight() float64 {
	top := w.StartPlatform.Z
	for _, h := range w.HeightTiers {
		top = max(top, h)
	}
	return top
}
