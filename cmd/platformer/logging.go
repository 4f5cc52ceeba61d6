package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

// newLogger builds the process logger writing to w at --log-level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer",
		Level:           level,
	})
	return logger, nil
}

// openLogFile returns the play-mode log sink. The terminal belongs to the
// game, so without --log-file logs are dropped.
func openLogFile(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// setupGame pushes the global flags into the platformer package and
// returns the config it will run with. An unreadable --config is an error;
// everything else degrades to defaults.
func setupGame(logger *log.Logger) (config.PlatformerConfig, error) {
	if flagConfig != "" {
		if _, err := config.LoadPlatformer(flagConfig); err != nil {
			return config.PlatformerConfig{}, err
		}
	}
	platformer.SetLogger(logger)
	platformer.SetConfigPath(flagConfig)
	platformer.SetDifficultyPreset(flagDifficulty)
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		logger.Warn("unknown difficulty preset, using config", "preset", flagDifficulty)
	}
	return platformer.LoadConfig(), nil
}

// resolveSeed picks --seed over the config seed.
func resolveSeed(cfg config.PlatformerConfig) int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return cfg.World.Seed
}
