package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/audio"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagSound   bool
	flagLogFile string
	flagHold    int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a run in the terminal.

Controls:
  A/D        - Move left/right (hold)
  Space/W    - Jump; with a direction held, long jump
  V          - Toggle first/third person
  N / Shift+N - Day/night forward/backward
  Arrows     - Orbit and raise the camera
  R          - Restart (same seed)
  P/Esc      - Pause
  Tab        - Runs this session
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Light damage, slow enemies
  normal - Start at 30% difficulty, progresses to max
  hard   - Heavy damage, fast enemies, starts at 70%
  fixed  - No progression

Examples:
  platformer play
  platformer play --seed 42 --sound
  platformer play --difficulty hard --log-file /tmp/platformer.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound cues")
	cmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file while playing")
	cmd.Flags().IntVar(&flagHold, "hold", tui.DefaultHoldTicks, "Ticks a movement key stays held after its last repeat")
}

func runPlay(cmd *cobra.Command, args []string) error {
	sink, closeLog, err := openLogFile(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	logger, err := newLogger(sink)
	if err != nil {
		return err
	}
	cfg, err := setupGame(logger)
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Gameplay.TickRate,
		Seed:     resolveSeed(cfg),
	}
	if flagFPS > 0 {
		runtime.TickRate = flagFPS
	}

	game, err := registry.Create(platformer.GameID)
	if err != nil {
		return err
	}

	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("run ledger disabled", "err", err)
		store = nil
	} else {
		defer store.Close()
	}

	opts := tui.Options{Logger: logger, HoldTicks: uint64(max(flagHold, 1))}
	if flagSound {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			defer sm.Cleanup()
			opts.Cues = sm
		}
	}

	logger.Info("starting", "seed", runtime.Seed, "tick_rate", runtime.TickRate, "size", fmt.Sprintf("%dx%d", width, height))
	if err := tui.Run(game, store, runtime, opts); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}

	printSummary(store, runtime.TickRate)
	return nil
}

func printSummary(store *storage.Store, tickRate int) {
	if store == nil {
		return
	}
	runs, err := store.TopRuns(10)
	if err != nil || len(runs) == 0 {
		return
	}
	stats, err := store.Stats()
	if err != nil {
		return
	}
	fmt.Println(tui.SummaryTable(runs, tickRate))
	fmt.Printf("Runs: %d  Best: %d  Coins: %d  Average: %.1f\n",
		stats.Runs, stats.BestScore, stats.TotalCoins, stats.AvgScore)
}
