package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// DefaultHoldTicks is how long a movement key stays held after its last
// press or repeat. Terminals report no key release.
const DefaultHoldTicks = 30

// Cues receives gameplay events for sound.
type Cues interface {
	Play(kind core.EventKind)
}

// Options configures a Model.
type Options struct {
	Logger    *log.Logger
	Cues      Cues
	HoldTicks uint64
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	held       *core.HeldKeys
	gate       *core.FrameGate
	keys       KeyMap
	help       help.Model
	runs       table.Model
	runList    []storage.Run
	showRuns   bool
	gameState  core.GameState
	tick       uint64
	runSaved   bool // Whether the current run is already in the ledger
	quitting   bool
	cues       Cues
	logger     *log.Logger
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.HoldTicks == 0 {
		opts.HoldTicks = DefaultHoldTicks
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		held:       core.NewHeldKeys(opts.HoldTicks),
		gate:       core.NewFrameGate(cfg.TickRate),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		runs:       newRunsTable(cfg.ScreenW, cfg.ScreenH),
		cues:       opts.Cues,
		logger:     opts.Logger,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.gate.Interval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.recordRun(storage.ReasonQuit)
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Runs):
		m.showRuns = !m.showRuns
		if m.showRuns {
			m.loadRuns()
		} else {
			// Resume on the next tick message with nothing held over.
			m.gate.Reset()
			m.held.Reset()
		}
		return m, nil
	}

	if m.showRuns {
		var cmd tea.Cmd
		m.runs, cmd = m.runs.Update(msg)
		return m, cmd
	}

	action, held := m.keys.Action(msg)
	switch {
	case held:
		m.held.Press(action, m.tick)
		// Opposite directions cancel immediately.
		if action == core.ActionLeft {
			m.held.Release(core.ActionRight)
		} else {
			m.held.Release(core.ActionLeft)
		}
	case action == core.ActionRestart:
		m.recordRun(storage.ReasonRestart)
		m.held.Reset()
		m.inputFrame.Set(action)
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events. The simulation does not
// depend on the screen, so the run continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	m.runs = newRunsTable(msg.Width, msg.Height)
	m.runs.SetRows(runRows(m.runList, m.config.TickRate))
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.gate.Ready(now) {
		return m, tickCmd(m.gate.Interval())
	}
	m.tick++
	m.held.Expire(m.tick)

	// The run ledger view freezes the game.
	if !m.showRuns {
		m.held.Apply(&m.inputFrame)
		result := m.game.Step(m.inputFrame)
		m.gameState = result.State
		m.handleEvents(result.Events)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.gate.Interval())
}

func (m *Model) handleEvents(events []core.Event) {
	for _, ev := range events {
		if m.cues != nil {
			m.cues.Play(ev.Kind)
		}
		switch ev.Kind {
		case core.EventGameOver:
			m.recordRun(storage.ReasonGameOver)
		case core.EventRestarted:
			m.runSaved = false
		}
	}
}

// recordRun saves the current run once. Runs that never started are
// skipped.
func (m *Model) recordRun(reason string) {
	if m.store == nil || m.runSaved || m.gameState.Tick == 0 {
		return
	}
	run := storage.Run{
		Score:  m.gameState.Score,
		Coins:  m.gameState.Coins,
		Ticks:  int(m.gameState.Tick),
		Reason: reason,
	}
	if s, ok := m.game.(registry.Seeded); ok {
		run.Seed = s.Seed()
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("cannot save run", "err", err)
		return
	}
	m.runSaved = true
	m.logger.Debug("run saved", "score", run.Score, "reason", reason)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot: no home directory", "err", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot: cannot create directory", "dir", dir, "err", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot: cannot write", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	if m.showRuns {
		body = m.runsView()
	} else {
		m.game.Render(m.screen)
		body = RenderScreen(m.screen)
	}
	return body + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, store, cfg, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
