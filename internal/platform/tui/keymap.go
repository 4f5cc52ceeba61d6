package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	Left        key.Binding
	Right       key.Binding
	Jump        key.Binding
	View        key.Binding
	DayForward  key.Binding
	DayBackward key.Binding
	CamLeft     key.Binding
	CamRight    key.Binding
	CamUp       key.Binding
	CamDown     key.Binding
	Restart     key.Binding
	Pause       key.Binding
	Runs        key.Binding
	Screenshot  key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.View, k.Restart, k.Runs, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump},
		{k.View, k.DayForward, k.DayBackward},
		{k.CamLeft, k.CamRight, k.CamUp, k.CamDown},
		{k.Restart, k.Pause, k.Runs, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("a", "h"),
			key.WithHelp("a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "l"),
			key.WithHelp("d", "right"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "w"),
			key.WithHelp("space", "jump"),
		),
		View: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "view"),
		),
		DayForward: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "day/night"),
		),
		DayBackward: key.NewBinding(
			key.WithKeys("N"),
			key.WithHelp("N", "day/night back"),
		),
		CamLeft: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "orbit left"),
		),
		CamRight: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "orbit right"),
		),
		CamUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "camera up"),
		),
		CamDown: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "camera down"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Runs: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "runs"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("^s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action maps a key to a game action. held is true for actions that stay
// active between key repeats (movement).
func (k KeyMap) Action(msg tea.KeyMsg) (action core.Action, held bool) {
	switch {
	case key.Matches(msg, k.Left):
		return core.ActionLeft, true
	case key.Matches(msg, k.Right):
		return core.ActionRight, true
	case key.Matches(msg, k.Jump):
		return core.ActionJump, false
	case key.Matches(msg, k.View):
		return core.ActionToggleView, false
	case key.Matches(msg, k.DayForward):
		return core.ActionDayNightForward, false
	case key.Matches(msg, k.DayBackward):
		return core.ActionDayNightBackward, false
	case key.Matches(msg, k.CamLeft):
		return core.ActionCameraLeft, false
	case key.Matches(msg, k.CamRight):
		return core.ActionCameraRight, false
	case key.Matches(msg, k.CamUp):
		return core.ActionCameraUp, false
	case key.Matches(msg, k.CamDown):
		return core.ActionCameraDown, false
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, false
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, false
	}
	return core.ActionNone, false
}
