package config

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedMatchesHardcodedDefaults(t *testing.T) {
	got := embeddedPlatformer()
	want := DefaultPlatformerConfig()

	if !reflect.DeepEqual(got, want) {
		t.Errorf("embedded YAML and DefaultPlatformerConfig differ:\n got: %+v\nwant: %+v", got, want)
	}
}

func TestLoadPlatformerDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadPlatformer("")
	if err != nil {
		t.Fatalf("LoadPlatformer() failed: %v", err)
	}
	if cfg.World.Seed != 423 {
		t.Errorf("World.Seed = %d, expected 423", cfg.World.Seed)
	}
	if cfg.Physics.Gravity != -0.8 {
		t.Errorf("Physics.Gravity = %v, expected -0.8", cfg.Physics.Gravity)
	}
}

func TestLoadPlatformerPartialOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("physics:\n  jump_speed: 25\nworld:\n  coin_count: 5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPlatformer(path)
	if err != nil {
		t.Fatalf("LoadPlatformer() failed: %v", err)
	}
	if cfg.Physics.JumpSpeed != 25 {
		t.Errorf("JumpSpeed = %v, expected 25", cfg.Physics.JumpSpeed)
	}
	if cfg.World.CoinCount != 5 {
		t.Errorf("CoinCount = %d, expected 5", cfg.World.CoinCount)
	}
	// Untouched keys keep their defaults
	if cfg.Physics.Gravity != -0.8 {
		t.Errorf("Gravity = %v, expected default -0.8", cfg.Physics.Gravity)
	}
	if !cfg.World.StartPlatform.Enabled {
		t.Error("StartPlatform.Enabled should keep default true")
	}
}

func TestLoadPlatformerUserDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "platformer.yaml"), []byte("world:\n  seed: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPlatformer("")
	if err != nil {
		t.Fatalf("LoadPlatformer() failed: %v", err)
	}
	if cfg.World.Seed != 7 {
		t.Errorf("World.Seed = %d, expected 7 from user config", cfg.World.Seed)
	}
}

func TestLoadPlatformerMissingCustomPath(t *testing.T) {
	_, err := LoadPlatformer(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("LoadPlatformer() should fail for a missing custom path")
	}
}

func TestLoadPlatformerBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("world: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPlatformer(path)
	if err == nil {
		t.Error("LoadPlatformer() should fail for malformed YAML")
	}
	if cfg.World.Seed != 423 {
		t.Errorf("failed load should still return defaults, got seed %d", cfg.World.Seed)
	}
}

func TestValidateRepairs(t *testing.T) {
	cfg := DefaultPlatformerConfig()
	cfg.World.HeightTiers = nil
	cfg.World.SegmentMin, cfg.World.SegmentMax = 300, 100
	cfg.World.CoinCount = -3
	cfg.Physics.Gravity = 1
	cfg.Gameplay.TickRate = 0
	cfg.Coins.Tiers = nil

	fixes := cfg.Validate()

	if len(fixes) != 6 {
		t.Errorf("Validate() reported %d fixes, expected 6: %v", len(fixes), fixes)
	}
	if !reflect.DeepEqual(cfg.World.HeightTiers, []float64{0}) {
		t.Errorf("HeightTiers = %v, expected [0]", cfg.World.HeightTiers)
	}
	if cfg.World.SegmentMin != 100 || cfg.World.SegmentMax != 300 {
		t.Errorf("segment range = [%d, %d], expected [100, 300]", cfg.World.SegmentMin, cfg.World.SegmentMax)
	}
	if cfg.World.CoinCount != 0 {
		t.Errorf("CoinCount = %d, expected 0", cfg.World.CoinCount)
	}
	if cfg.Physics.Gravity >= 0 {
		t.Errorf("Gravity = %v, expected negative", cfg.Physics.Gravity)
	}
	if cfg.Gameplay.TickRate != 60 {
		t.Errorf("TickRate = %d, expected 60", cfg.Gameplay.TickRate)
	}
	if len(cfg.Coins.Tiers) != 1 {
		t.Errorf("Coins.Tiers = %v, expected one fallback tier", cfg.Coins.Tiers)
	}
}

func TestValidateRangesStayOrdered(t *testing.T) {
	tests := []struct {
		name             string
		segMin, segMax   int
		gapMin, gapMax   int
		wantSeg, wantGap [2]int
	}{
		{"both zero", 0, 0, -5, -10, [2]int{1, 1}, [2]int{0, 0}},
		{"negative max", 5, -3, 10, 2, [2]int{1, 5}, [2]int{2, 10}},
		{"min above non-positive max", 0, -1, -1, -4, [2]int{1, 1}, [2]int{0, 0}},
		{"already valid", 100, 220, 40, 120, [2]int{100, 220}, [2]int{40, 120}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultPlatformerConfig()
			cfg.World.SegmentMin, cfg.World.SegmentMax = tc.segMin, tc.segMax
			cfg.World.GapMin, cfg.World.GapMax = tc.gapMin, tc.gapMax
			cfg.Validate()

			w := cfg.World
			if got := [2]int{w.SegmentMin, w.SegmentMax}; got != tc.wantSeg {
				t.Errorf("segment range = %v, expected %v", got, tc.wantSeg)
			}
			if got := [2]int{w.GapMin, w.GapMax}; got != tc.wantGap {
				t.Errorf("gap range = %v, expected %v", got, tc.wantGap)
			}
			if w.SegmentMin <= 0 || w.SegmentMin > w.SegmentMax || w.GapMin < 0 || w.GapMin > w.GapMax {
				t.Errorf("ranges out of order: %+v", w)
			}
		})
	}
}

func TestValidateDefaultsClean(t *testing.T) {
	cfg := DefaultPlatformerConfig()
	if fixes := cfg.Validate(); len(fixes) != 0 {
		t.Errorf("defaults should validate cleanly, got %v", fixes)
	}
}

func TestApplyPlatformerPreset(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		enabled    bool
		level      float64
		damage     int
		enemySpeed float64
	}{
		{DifficultyEasy, true, 0.0, 10, 0.45},
		{DifficultyNormal, true, 0.3, 20, 0.6},
		{DifficultyHard, true, 0.7, 30, 0.8},
		{DifficultyFixed, false, 0.0, 20, 0.6},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultPlatformerConfig()
			ApplyPlatformerPreset(&cfg, tc.preset)

			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.level {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.level)
			}
			if cfg.Gameplay.Damage != tc.damage {
				t.Errorf("Damage = %d, expected %d", cfg.Gameplay.Damage, tc.damage)
			}
			if cfg.Enemies.Speed != tc.enemySpeed {
				t.Errorf("Enemies.Speed = %v, expected %v", cfg.Enemies.Speed, tc.enemySpeed)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should return DifficultyHard")
	}
	if ParsePreset("insane") != "" {
		t.Error("ParsePreset should return empty for unknown presets")
	}
}

func TestDifficultyManagerLevel(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 1000},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	})

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0.2},
		{500, 0.6},
		{1000, 1.0},
		{5000, 1.0},
	}

	for _, tc := range tests {
		if got := d.Level(tc.score, 0); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Level(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}

	if got := d.SpeedFactor(1000, 0); math.Abs(got-2.0) > 1e-9 {
		t.Errorf("SpeedFactor at max = %v, expected 2.0", got)
	}
}

func TestDifficultyManagerDisabled(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:      ScalingConfig{SpeedMultiplier: 2.0},
	})

	if d.IsEnabled() {
		t.Error("IsEnabled() should be false")
	}
	if got := d.Level(10000, 0); got != 0.5 {
		t.Errorf("disabled Level() = %v, expected initial 0.5", got)
	}
}

func TestDifficultyManagerTimeProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 600},
		Scaling:      ScalingConfig{SpeedMultiplier: 0.5},
	})

	if got := d.Level(100000, 300); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Level at 300 ticks = %v, expected 0.5 (score ignored)", got)
	}
	if got := d.SpeedFactor(0, 1200); math.Abs(got-1.5) > 1e-9 {
		t.Errorf("SpeedFactor past max_at = %v, expected 1.5", got)
	}

	none := NewDifficultyManager(DifficultyConfig{Enabled: true, InitialLevel: 0.3, Progression: ProgressionConfig{Type: "none"}})
	if none.IsEnabled() {
		t.Error("progression type none should not be enabled")
	}
}
