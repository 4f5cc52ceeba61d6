package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone             Action = iota
	ActionLeft                    // A, Left - walk left (held)
	ActionRight                   // D, Right - walk right (held)
	ActionJump                    // Space, W - jump; long jump while walking
	ActionToggleView              // V - first/third person camera
	ActionDayNightForward         // N - flip day/night, cycle forward
	ActionDayNightBackward        // Shift+N - flip day/night, cycle backward
	ActionCameraLeft              // Left arrow - orbit camera
	ActionCameraRight             // Right arrow - orbit camera
	ActionCameraUp                // Up arrow - raise camera / zoom out
	ActionCameraDown              // Down arrow - lower camera / zoom in
	ActionRestart                 // R - rebuild the world and restart
	ActionPause                   // P, Escape - pause/unpause game
	ActionQuit                    // Q, Ctrl+C - exit
)

var actionNames = map[Action]string{
	ActionNone:             "None",
	ActionLeft:             "Left",
	ActionRight:            "Right",
	ActionJump:             "Jump",
	ActionToggleView:       "ToggleView",
	ActionDayNightForward:  "DayNightForward",
	ActionDayNightBackward: "DayNightBackward",
	ActionCameraLeft:       "CameraLeft",
	ActionCameraRight:      "CameraRight",
	ActionCameraUp:         "CameraUp",
	ActionCameraDown:       "CameraDown",
	ActionRestart:          "Restart",
	ActionPause:            "Pause",
	ActionQuit:             "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame represents the input state during one simulation tick.
// Held actions (walking) and edge-triggered actions (jump, restart)
// share the same set; the producer decides which are present.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// HeldKeys tracks which held actions are currently down.
//
// Terminals only report key presses (and auto-repeat), never releases, so a
// key counts as released once it has not been seen for holdTicks ticks.
// Producers that do get real key-up events call Release directly.
type HeldKeys struct {
	lastSeen  map[Action]uint64
	holdTicks uint64
}

// NewHeldKeys creates a held-key set that auto-releases after holdTicks
// ticks without a repeat. Zero disables auto-release.
func NewHeldKeys(holdTicks uint64) *HeldKeys {
	return &HeldKeys{
		lastSeen:  make(map[Action]uint64),
		holdTicks: holdTicks,
	}
}

// Press marks a as held as of tick.
func (h *HeldKeys) Press(a Action, tick uint64) {
	h.lastSeen[a] = tick
}

// Release marks a as no longer held.
func (h *HeldKeys) Release(a Action) {
	delete(h.lastSeen, a)
}

// Held reports whether a is currently held.
func (h *HeldKeys) Held(a Action) bool {
	_, ok := h.lastSeen[a]
	return ok
}

// Expire releases every key not seen within holdTicks of tick.
func (h *HeldKeys) Expire(tick uint64) {
	if h.holdTicks == 0 {
		return
	}
	for a, seen := range h.lastSeen {
		if tick >= seen && tick-seen > h.holdTicks {
			delete(h.lastSeen, a)
		}
	}
}

// Apply copies the held actions into a frame.
func (h *HeldKeys) Apply(f *InputFrame) {
	for a := range h.lastSeen {
		f.Set(a)
	}
}

// Reset releases everything.
func (h *HeldKeys) Reset() {
	for a := range h.lastSeen {
		delete(h.lastSeen, a)
	}
}
