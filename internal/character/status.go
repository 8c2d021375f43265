package character

// State is the coarse life-cycle status of a character.
type State int

const (
	Alive State = iota
	Celebrating
	Dead
)

func (s State) String() string {
	switch s {
	case Alive:
		return "alive"
	case Celebrating:
		return "celebrating"
	case Dead:
		return "dead"
	default:
		return "unknown"
	}
}

// Status tracks a character's health and life-cycle state.
//
// Alive is the initial state and Dead is terminal. Celebrating returns to
// Alive through EndCelebration; every other transition is one-way.
type Status struct {
	state  State
	health uint
}

// NewStatus creates an alive status with the given starting health.
func NewStatus(health uint) Status {
	return Status{state: Alive, health: health}
}

// State returns the current life-cycle state.
func (s *Status) State() State {
	return s.state
}

// Health returns the remaining health. It is zero once Dead.
func (s *Status) Health() uint {
	return s.health
}

// RemoveHealth subtracts amount from health. Removing more than what is left
// kills the character without wrapping the counter around.
func (s *Status) RemoveHealth(amount uint) {
	if amount > s.health {
		s.health = 0
		s.state = Dead
		return
	}

	s.health -= amount
	if s.health == 0 {
		s.state = Dead
	}
}

// Celebrate switches to Celebrating whatever the current state is. Callers
// must not call it on a dead character.
func (s *Status) Celebrate() {
	s.state = Celebrating
}

// EndCelebration returns a celebrating character to Alive.
func (s *Status) EndCelebration() {
	if s.state == Celebrating {
		s.state = Alive
	}
}
