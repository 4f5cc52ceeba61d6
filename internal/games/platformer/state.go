package platformer

import "time"

// Phase is the session state machine.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

func (p Phase) String() string {
	if p == PhaseGameOver {
		return "game_over"
	}
	return "playing"
}

// GameState is the run's life/score record.
type GameState struct {
	Life          int
	Score         int
	Coins         int
	GameOver      bool
	StartedAt     time.Time
	LastMilestone int // Highest milestone index already processed
}

func newGameState(maxLife int, now time.Time) GameState {
	return GameState{Life: maxLife, StartedAt: now}
}

// Phase derives the state machine phase.
func (s GameState) Phase() Phase {
	if s.GameOver {
		return PhaseGameOver
	}
	return PhasePlaying
}

// damage subtracts amount from life, clamped at zero. It reports whether
// this hit ended the run.
func (s *GameState) damage(amount int) bool {
	if s.GameOver {
		return false
	}
	s.Life = max(s.Life-amount, 0)
	if s.Life == 0 {
		s.GameOver = true
		return true
	}
	return false
}

// milestones processes every score threshold crossed since the last call
// and returns the life actually granted. A crossing at full life is
// consumed without a grant.
func (s *GameState) milestones(step, bonus, maxLife int) int {
	if step <= 0 || s.GameOver {
		return 0
	}
	idx := s.Score / step
	if idx <= s.LastMilestone {
		return 0
	}

	granted := 0
	for ; s.LastMilestone < idx; s.LastMilestone++ {
		if s.Life < maxLife {
			before := s.Life
			s.Life = min(s.Life+bonus, maxLife)
			granted += s.Life - before
		}
	}
	return granted
}
