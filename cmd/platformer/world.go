package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

var flagYAML bool

var worldCmd = &cobra.Command{
	Use:   "world",
	Short: "Print the generated world for a seed",
	Long: `Generate the world for --seed with the current config and print it.

Examples:
  platformer world --seed 42
  platformer world --seed 42 --yaml > world.yaml`,
	Args: cobra.NoArgs,
	RunE: runWorld,
}

func init() {
	worldCmd.Flags().BoolVar(&flagYAML, "yaml", false, "Print the full world as YAML")
}

type worldDump struct {
	Seed      int64          `yaml:"seed"`
	Report    reportDump     `yaml:"report"`
	Platforms []platformDump `yaml:"platforms"`
	Coins     []coinDump     `yaml:"coins"`
	Enemies   []enemyDump    `yaml:"enemies"`
}

type reportDump struct {
	FallbackPlatform bool `yaml:"fallback_platform"`
	CoinsPlaced      int  `yaml:"coins_placed"`
	CoinAttempts     int  `yaml:"coin_attempts"`
	CoinShortfall    int  `yaml:"coin_shortfall"`
	EnemiesPlaced    int  `yaml:"enemies_placed"`
	EnemyShortfall   int  `yaml:"enemy_shortfall"`
}

type platformDump struct {
	X1 float64 `yaml:"x1"`
	X2 float64 `yaml:"x2"`
	Z  float64 `yaml:"z"`
	W  float64 `yaml:"w"`
	D  float64 `yaml:"d"`
}

type coinDump struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Z    float64 `yaml:"z"`
	Tier int     `yaml:"tier"`
}

type enemyDump struct {
	X        float64 `yaml:"x"`
	Z        float64 `yaml:"z"`
	Speed    float64 `yaml:"speed"`
	MinX     float64 `yaml:"min_x"`
	MaxX     float64 `yaml:"max_x"`
	Platform int     `yaml:"platform"`
}

func runWorld(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	cfg, err := setupGame(logger)
	if err != nil {
		return err
	}
	seed := resolveSeed(cfg)

	w, report := platformer.Generate(seed, cfg)

	dump := worldDump{
		Seed: seed,
		Report: reportDump{
			FallbackPlatform: report.FallbackPlatform,
			CoinsPlaced:      report.CoinsPlaced,
			CoinAttempts:     report.CoinAttempts,
			CoinShortfall:    report.CoinShortfall,
			EnemiesPlaced:    report.EnemiesPlaced,
			EnemyShortfall:   report.EnemyShortfall,
		},
	}
	for _, p := range w.Platforms {
		dump.Platforms = append(dump.Platforms, platformDump{X1: p.X1, X2: p.X2, Z: p.Z, W: p.W, D: p.D})
	}
	for _, c := range w.Coins {
		dump.Coins = append(dump.Coins, coinDump{X: c.X, Y: c.Y, Z: c.Z, Tier: c.Tier})
	}
	for _, e := range w.Enemies {
		dump.Enemies = append(dump.Enemies, enemyDump{
			X: e.X, Z: e.Z, Speed: e.Speed, MinX: e.MinX, MaxX: e.MaxX, Platform: e.Platform,
		})
	}

	if flagYAML {
		out, err := yaml.Marshal(dump)
		if err != nil {
			return fmt.Errorf("marshal world: %w", err)
		}
		fmt.Print(string(out))
		return nil
	}

	fmt.Printf("Seed %d: %d platforms, %d coins, %d enemies\n",
		seed, len(dump.Platforms), len(dump.Coins), len(dump.Enemies))
	if report.FallbackPlatform {
		fmt.Println("  fallback platform added")
	}
	if report.CoinShortfall > 0 {
		fmt.Printf("  coins short by %d after %d attempts\n", report.CoinShortfall, report.CoinAttempts)
	}
	if report.EnemyShortfall > 0 {
		fmt.Printf("  enemies short by %d\n", report.EnemyShortfall)
	}
	fmt.Println()
	fmt.Printf("  %-3s  %8s  %8s  %6s\n", "#", "X1", "X2", "Z")
	for i, p := range dump.Platforms {
		fmt.Printf("  %-3d  %8.1f  %8.1f  %6.1f\n", i, p.X1, p.X2, p.Z)
	}
	return nil
}
