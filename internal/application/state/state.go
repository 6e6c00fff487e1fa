package state

// GameState represents the current state of the game
type GameState int

const (
	StatePlaying GameState = iota
	StateRunComplete
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StateRunComplete:
		return "RunComplete"
	default:
		return "Unknown"
	}
}

// Next returns the state after a step produced r. RunComplete is terminal.
func (s GameState) Next(r StepResult) GameState {
	if s == StateRunComplete || r == RunComplete {
		return StateRunComplete
	}
	return StatePlaying
}

// StepResult is the outcome of one update step. Anything other than
// Continue ends the step: no further hazards or enemies are evaluated.
type StepResult int

const (
	Continue StepResult = iota
	LifeLost
	LevelComplete
	RunComplete
)

// String returns the string representation of the step result
func (r StepResult) String() string {
	switch r {
	case Continue:
		return "Continue"
	case LifeLost:
		return "LifeLost"
	case LevelComplete:
		return "LevelComplete"
	case RunComplete:
		return "RunComplete"
	default:
		return "Unknown"
	}
}

// Halts reports whether r stops the rest of the step
func (r StepResult) Halts() bool {
	return r != Continue
}

// DeathCause records what cost the player a life
type DeathCause int

const (
	CauseFall DeathCause = iota
	CauseEnemy
	CauseHazard
)

// String returns the string representation of the death cause
func (c DeathCause) String() string {
	switch c {
	case CauseFall:
		return "Fall"
	case CauseEnemy:
		return "Enemy"
	case CauseHazard:
		return "Hazard"
	default:
		return "Unknown"
	}
}
