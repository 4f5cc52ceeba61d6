package platformer

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides the wall clock used for the run start time.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// intent is the input latched between ticks.
type intent struct {
	left, right bool
	jump        bool
	restart     bool
}

// fallSample is the vertical motion of the player's last tick. Landing
// zeroes VZ, so contacts compare against where the feet started.
type fallSample struct {
	from       float64 // Feet height before the tick
	descending bool
}

// direction returns -1, 0 or +1. Opposite keys cancel.
func (in intent) direction() float64 {
	switch {
	case in.left && !in.right:
		return -1
	case in.right && !in.left:
		return 1
	default:
		return 0
	}
}

// Session is the whole simulation: one world, one player and one
// life/score record. Input methods only latch intent or change cosmetic
// state; all entity updates happen inside Step.
type Session struct {
	cfg    config.PlatformerConfig
	seed   int64
	logger *log.Logger
	now    func() time.Time

	world      World
	report     GenReport
	collider   Collider
	player     Player
	body       body
	state      GameState
	particles  *ParticleSystem
	dayNight   DayNight
	camera     Camera
	difficulty *config.DifficultyManager

	in       intent
	fall     fallSample
	tick     uint64
	coinSpin float64
	events   []core.Event
}

// NewSession builds a session for seed. cfg should already be validated.
func NewSession(cfg config.PlatformerConfig, seed int64, opts ...Option) *Session {
	s := &Session{
		cfg:    cfg,
		logger: log.New(io.Discard),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.dayNight = newDayNight()
	s.camera = newCamera(cfg.Camera)
	s.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	s.particles = NewParticleSystem(cfg.Particles, cfg.Physics.Gravity, seed+1)
	s.initSession(seed)
	return s
}

// initSession (re)generates the world and resets the run. It is the single
// entry point for both construction and restart.
func (s *Session) initSession(seed int64) {
	s.seed = seed
	s.world, s.report = Generate(seed, s.cfg)
	s.logReport()

	s.collider = NewCollider(s.world.Platforms, s.cfg)
	s.body = newBody(&s.player, s.cfg, s.collider)
	s.body.spawn(0)

	s.state = newGameState(s.cfg.Gameplay.MaxLife, s.now())
	s.particles.Reset(seed + 1)
	s.camera.Mode = ViewThirdPerson
	s.in = intent{}
	s.fall = fallSample{from: s.body.feet()}
	s.tick = 0
	s.coinSpin = 0
}

func (s *Session) logReport() {
	r := s.report
	if r.FallbackPlatform {
		s.logger.Warn("no platforms generated, using flat fallback", "seed", s.seed)
	}
	if r.CoinShortfall > 0 {
		s.logger.Warn("coin placement short", "placed", r.CoinsPlaced, "wanted", s.cfg.World.CoinCount, "attempts", r.CoinAttempts)
	}
	if r.EnemyShortfall > 0 {
		s.logger.Warn("enemy placement short", "placed", r.EnemiesPlaced, "wanted", s.cfg.World.EnemyCount)
	}
	s.logger.Debug("world generated", "seed", s.seed, "platforms", len(s.world.Platforms),
		"coins", len(s.world.Coins), "enemies", len(s.world.Enemies))
}

// MoveLeft sets whether the left key is held.
func (s *Session) MoveLeft(pressed bool) { s.in.left = pressed }

// MoveRight sets whether the right key is held.
func (s *Session) MoveRight(pressed bool) { s.in.right = pressed }

// RequestJump asks for a jump on the next tick. It is dropped if the
// player is airborne then. Holding exactly one direction makes it a long
// jump.
func (s *Session) RequestJump() { s.in.jump = true }

// RequestRestart regenerates the world from the same seed on the next tick.
// Restart is accepted in any phase.
func (s *Session) RequestRestart() { s.in.restart = true }

// ToggleView switches camera mode.
func (s *Session) ToggleView() { s.camera.Toggle() }

// ToggleDayNight jumps the sky half a cycle and runs it in direction dir.
func (s *Session) ToggleDayNight(dir int) { s.dayNight.Toggle(dir) }

// Rotate orbits the camera by delta degrees.
func (s *Session) Rotate(delta float64) { s.camera.Rotate(delta) }

// ZoomOrHeight raises or lowers the camera.
func (s *Session) ZoomOrHeight(delta float64) { s.camera.Raise(delta) }

// Step runs one simulation tick and returns the events it produced.
// After game over nothing moves until a restart is requested.
func (s *Session) Step() []core.Event {
	s.events = nil

	if s.in.restart {
		s.restart()
		return s.events
	}
	if s.state.GameOver {
		s.in.jump = false
		return s.events
	}

	s.tick++
	s.stepPlayer()
	s.patrolEnemies(s.difficulty.SpeedFactor(s.state.Score, s.tick))
	s.collectCoins()
	s.resolveEnemyContacts()
	s.particles.Update()

	if s.body.HurtCooldown > 0 {
		s.body.HurtCooldown--
	}
	s.coinSpin = core.Wrap01((s.coinSpin+s.cfg.Coins.SpinStep)/360) * 360
	s.dayNight.Advance(s.cfg.Gameplay.DayNightStep)

	return s.events
}

func (s *Session) restart() {
	score := s.state.Score
	s.initSession(s.seed)
	s.logger.Debug("restarted", "seed", s.seed, "previous_score", score)
	s.emit(core.EventRestarted, core.Vec3{X: s.player.X, Y: s.player.Y, Z: s.player.Z}, score)
}

func (s *Session) stepPlayer() {
	b := s.body
	dir := s.in.direction()
	from := b.feet()

	if s.in.jump {
		if dir != 0 {
			b.longJump(dir)
		} else {
			b.jump()
		}
		s.in.jump = false
	}
	if dir != 0 {
		b.tryMove(dir*s.cfg.Physics.MoveSpeed, 0)
	}
	b.integrate()
	s.fall = fallSample{from: from, descending: b.VZ < 0 || b.feet() < from}
}

// addScore adds points and then applies any milestone they crossed.
func (s *Session) addScore(points int) {
	s.state.Score += points
	g := s.cfg.Gameplay
	if granted := s.state.milestones(g.MilestoneStep, g.MilestoneBonus, g.MaxLife); granted > 0 {
		s.logger.Debug("milestone bonus", "score", s.state.Score, "life", s.state.Life, "granted", granted)
		s.emit(core.EventMilestoneBonus, core.Vec3{X: s.player.X, Y: s.player.Y, Z: s.player.Z}, granted)
	}
}

func (s *Session) emit(kind core.EventKind, pos core.Vec3, value int) {
	s.events = append(s.events, core.Event{Kind: kind, Pos: pos, Value: value})
}

// Seed returns the seed the current world was generated from.
func (s *Session) Seed() int64 { return s.seed }

// Tick returns the number of ticks simulated since the last (re)start.
func (s *Session) Tick() uint64 { return s.tick }

// State returns the life/score record.
func (s *Session) State() GameState { return s.state }

// Player returns a copy of the player.
func (s *Session) Player() Player { return s.player }

// World returns a deep copy of the current world.
func (s *Session) World() World { return s.world.Clone() }

// Report returns the generation report for the current world.
func (s *Session) Report() GenReport { return s.report }

// Collider exposes the ground and wall queries for the current world.
func (s *Session) Collider() Collider { return s.collider }

// Elapsed returns wall time since the run started.
func (s *Session) Elapsed() time.Duration { return s.now().Sub(s.state.StartedAt) }
