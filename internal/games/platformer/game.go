package platformer

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// GameID is the registry identifier.
const GameID = "platformer"

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path used by Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied after loading.
// Unknown names fall back to the config file's own settings.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger sets the logger handed to new sessions.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// LoadConfig resolves, presets and validates the platformer config the
// same way Reset does. Fixes made during validation are logged.
func LoadConfig() config.PlatformerConfig {
	cfg, err := config.LoadPlatformer(configPath)
	if err != nil {
		logger.Warn("config load failed, using defaults", "path", configPath, "err", err)
	}
	config.ApplyPlatformerPreset(&cfg, difficultyPreset)
	for _, fix := range cfg.Validate() {
		logger.Warn("config fixed", "detail", fix)
	}
	return cfg
}

// Game adapts a Session to the registry interface.
type Game struct {
	session *Session
	cfg     config.PlatformerConfig
	runtime core.RuntimeConfig
	paused  bool
}

// New creates an unstarted game; call Reset before Step.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Coin Runner 3D"
}

// Reset loads config and starts a new session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = LoadConfig()

	seed := runtime.Seed
	if seed == 0 {
		seed = g.cfg.World.Seed
	}
	g.session = NewSession(g.cfg, seed, WithLogger(logger))
	g.paused = false
}

// Step maps one input frame onto the session and advances it.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && !g.session.State().GameOver {
		g.paused = !g.paused
	}
	if in.Has(core.ActionRestart) {
		g.session.RequestRestart()
		g.paused = false
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	s := g.session
	cam := g.cfg.Camera

	s.MoveLeft(in.Has(core.ActionLeft))
	s.MoveRight(in.Has(core.ActionRight))
	if in.Has(core.ActionJump) {
		s.RequestJump()
	}
	if in.Has(core.ActionToggleView) {
		s.ToggleView()
	}
	if in.Has(core.ActionDayNightForward) {
		s.ToggleDayNight(1)
	}
	if in.Has(core.ActionDayNightBackward) {
		s.ToggleDayNight(-1)
	}
	if in.Has(core.ActionCameraLeft) {
		s.Rotate(-cam.ThetaStep)
	}
	if in.Has(core.ActionCameraRight) {
		s.Rotate(cam.ThetaStep)
	}
	if in.Has(core.ActionCameraUp) {
		s.ZoomOrHeight(cam.HeightStep)
	}
	if in.Has(core.ActionCameraDown) {
		s.ZoomOrHeight(-cam.HeightStep)
	}

	events := s.Step()
	return core.StepResult{State: g.State(), Events: events}
}

// Render draws the current frame.
func (g *Game) Render(dst *core.Screen) {
	renderSnapshot(dst, g.session.Snapshot(), g.cfg, g.session.Elapsed(), g.paused)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	st := g.session.State()
	return core.GameState{
		Score:    st.Score,
		Life:     st.Life,
		Coins:    st.Coins,
		Tick:     g.session.Tick(),
		GameOver: st.GameOver,
		Paused:   g.paused,
	}
}

// Seed returns the seed of the current run.
func (g *Game) Seed() int64 {
	if g.session == nil {
		return 0
	}
	return g.session.Seed()
}

// Session exposes the underlying simulation.
func (g *Game) Session() *Session {
	return g.session
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
