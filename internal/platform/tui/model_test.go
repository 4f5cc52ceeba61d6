package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// scriptGame records input frames and replays queued events.
type scriptGame struct {
	frames  []core.InputFrame
	pending [][]core.Event
	state   core.GameState
	resets  int
}

func (g *scriptGame) ID() string { return "script" }
func (g *scriptGame) Title() string { return "Script" }
func (g *scriptGame) Seed() int64 { return 99 }

func (g *scriptGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{Life: 100}
}

func (g *scriptGame) Step(in core.InputFrame) core.StepResult {
	frame := core.NewInputFrame()
	for a, on := range in.Actions {
		if on {
			frame.Set(a)
		}
	}
	g.frames = append(g.frames, frame)
	g.state.Tick++
	g.state.Score += 10

	var events []core.Event
	if len(g.pending) > 0 {
		events, g.pending = g.pending[0], g.pending[1:]
	}
	for _, ev := range events {
		switch ev.Kind {
		case core.EventGameOver:
			g.state.GameOver = true
		case core.EventRestarted:
			g.state = core.GameState{Life: 100}
		}
	}
	return core.StepResult{State: g.state, Events: events}
}

func (g *scriptGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "scene") }
func (g *scriptGame) State() core.GameState { return g.state }

type cueRecorder struct{ kinds []core.EventKind }

func (c *cueRecorder) Play(kind core.EventKind) { c.kinds = append(c.kinds, kind) }

type harness struct {
	t     *testing.T
	model Model
	game  *scriptGame
	now   time.Time
}

func newHarness(t *testing.T, store *storage.Store, opts Options) *harness {
	t.Helper()
	game := &scriptGame{}
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
	m := NewModel(game, store, cfg, opts)
	m.Init()
	return &harness{t: t, model: m, game: game, now: time.Unix(1000, 0)}
}

func (h *harness) send(msg tea.Msg) {
	h.t.Helper()
	next, _ := h.model.Update(msg)
	m, ok := next.(Model)
	if !ok {
		h.t.Fatalf("Update returned %T", next)
	}
	h.model = m
}

func (h *harness) tick(n int) {
	for range n {
		h.now = h.now.Add(time.Second)
		h.send(TickMsg(h.now))
	}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestHeldMovementExpires(t *testing.T) {
	h := newHarness(t, nil, Options{HoldTicks: 5})

	h.send(runeKey('d'))
	h.tick(7)

	frames := h.game.frames
	if len(frames) != 7 {
		t.Fatalf("got %d steps, expected 7", len(frames))
	}
	for i := 0; i < 5; i++ {
		if !frames[i].Has(core.ActionRight) {
			t.Errorf("tick %d: expected right held", i+1)
		}
	}
	if frames[5].Has(core.ActionRight) || frames[6].Has(core.ActionRight) {
		t.Error("expected right released after hold window")
	}
}

func TestOppositeKeyReleases(t *testing.T) {
	h := newHarness(t, nil, Options{})

	h.send(runeKey('d'))
	h.tick(1)
	h.send(runeKey('a'))
	h.tick(1)

	last := h.game.frames[len(h.game.frames)-1]
	if !last.Has(core.ActionLeft) || last.Has(core.ActionRight) {
		t.Errorf("got left=%v right=%v, expected only left", last.Has(core.ActionLeft), last.Has(core.ActionRight))
	}
}

func TestEdgeActionsLastOneTick(t *testing.T) {
	h := newHarness(t, nil, Options{})

	h.send(tea.KeyMsg{Type: tea.KeySpace})
	h.tick(2)

	if !h.game.frames[0].Has(core.ActionJump) {
		t.Error("expected jump on first tick")
	}
	if h.game.frames[1].Has(core.ActionJump) {
		t.Error("expected jump cleared on second tick")
	}
}

func TestGameOverSavesRunOnce(t *testing.T) {
	store := openStore(t)
	cues := &cueRecorder{}
	h := newHarness(t, store, Options{Cues: cues})

	h.game.pending = [][]core.Event{
		nil,
		{{Kind: core.EventPlayerHurt}, {Kind: core.EventGameOver}},
	}
	h.tick(4)
	// Quitting after game over must not add a second record.
	h.send(runeKey('q'))

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, expected 1", len(runs))
	}
	if runs[0].Reason != storage.ReasonGameOver {
		t.Errorf("got reason %q, expected %q", runs[0].Reason, storage.ReasonGameOver)
	}
	if runs[0].Seed != 99 {
		t.Errorf("got seed %d, expected 99", runs[0].Seed)
	}
	if runs[0].Score != 20 {
		t.Errorf("got score %d, expected 20", runs[0].Score)
	}
	if len(cues.kinds) != 2 || cues.kinds[1] != core.EventGameOver {
		t.Errorf("got cues %v, expected hurt then game over", cues.kinds)
	}
}

func TestRestartRecordsAbandonedRun(t *testing.T) {
	store := openStore(t)
	h := newHarness(t, store, Options{})

	h.tick(3)
	h.game.pending = [][]core.Event{{{Kind: core.EventRestarted}}}
	h.send(runeKey('r'))
	h.tick(1)
	if !h.game.frames[3].Has(core.ActionRestart) {
		t.Error("expected restart forwarded to the game")
	}

	h.tick(2)
	h.send(runeKey('q'))

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, expected 2", len(runs))
	}
	reasons := map[string]bool{runs[0].Reason: true, runs[1].Reason: true}
	if !reasons[storage.ReasonRestart] || !reasons[storage.ReasonQuit] {
		t.Errorf("got reasons %v, expected restart and quit", reasons)
	}
}

func TestRunsViewFreezesGame(t *testing.T) {
	store := openStore(t)
	h := newHarness(t, store, Options{})

	h.send(tea.KeyMsg{Type: tea.KeyTab})
	h.tick(5)
	if len(h.game.frames) != 0 {
		t.Errorf("got %d steps while runs view open, expected 0", len(h.game.frames))
	}
	if !strings.Contains(h.model.View(), "RUNS") {
		t.Error("expected runs view")
	}

	h.send(tea.KeyMsg{Type: tea.KeyTab})
	h.tick(1)
	if len(h.game.frames) != 1 {
		t.Errorf("got %d steps, expected 1", len(h.game.frames))
	}
	if !strings.Contains(h.model.View(), "scene") {
		t.Error("expected game view")
	}
}

func TestLeavingRunsViewResumesImmediately(t *testing.T) {
	h := newHarness(t, nil, Options{})

	h.send(runeKey('d'))
	h.tick(1)
	h.send(tea.KeyMsg{Type: tea.KeyTab})
	h.send(tea.KeyMsg{Type: tea.KeyTab})

	// Well inside one frame interval of the last admitted tick.
	h.send(TickMsg(h.now.Add(time.Millisecond)))
	frames := h.game.frames
	if len(frames) != 2 {
		t.Fatalf("got %d steps, expected 2", len(frames))
	}
	if frames[1].Has(core.ActionRight) {
		t.Error("held movement should not survive the runs view")
	}
}

func TestResizeKeepsRun(t *testing.T) {
	h := newHarness(t, nil, Options{})
	h.tick(2)
	h.send(tea.WindowSizeMsg{Width: 100, Height: 30})

	if h.game.resets != 1 {
		t.Errorf("got %d resets, expected 1", h.game.resets)
	}
	if h.model.screen.Width() != 100 || h.model.screen.Height() != 29 {
		t.Errorf("got screen %dx%d, expected 100x29", h.model.screen.Width(), h.model.screen.Height())
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "abc", core.ColorRed)
	s.DrawText(4, 1, "xyz")

	out := RenderScreen(s)
	if !strings.Contains(out, "abc") || !strings.Contains(out, "xyz") {
		t.Errorf("rendered output lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("got %d newlines, expected 1", strings.Count(out, "\n"))
	}
}
