package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // World seed; 0 means use the configured fixed seed
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Life     int  // Remaining life
	Coins    int  // Coins collected this run
	Tick     uint64
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventCoinCollected EventKind = iota + 1
	EventEnemyStomped
	EventPlayerHurt
	EventMilestoneBonus
	EventGameOver
	EventRestarted
)

func (k EventKind) String() string {
	switch k {
	case EventCoinCollected:
		return "coin"
	case EventEnemyStomped:
		return "stomp"
	case EventPlayerHurt:
		return "hurt"
	case EventMilestoneBonus:
		return "milestone"
	case EventGameOver:
		return "game_over"
	case EventRestarted:
		return "restart"
	default:
		return "unknown"
	}
}

// Event is a discrete gameplay occurrence emitted by a tick.
// Value carries the score or life delta where relevant.
type Event struct {
	Kind  EventKind
	Pos   Vec3
	Value int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
