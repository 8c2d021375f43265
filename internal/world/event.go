package world

import (
	"fmt"

	"github.com/vovakirdan/naughty-nice/internal/character"
)

// EventKind identifies what a collision did to the character.
type EventKind int

const (
	EventCollected EventKind = iota
	EventHazard
)

func (k EventKind) String() string {
	switch k {
	case EventCollected:
		return "collected"
	case EventHazard:
		return "hazard"
	default:
		return "unknown"
	}
}

// Event records one resolved (character, present) contact and the character's
// status right after it was applied.
type Event struct {
	Kind      EventKind
	PresentID int
	Damage    uint
	Presents  uint
	Health    uint
	State     character.State
}

func (e Event) String() string {
	switch e.Kind {
	case EventHazard:
		return fmt.Sprintf("hit naughty present %d (-%d health)", e.PresentID, e.Damage)
	case EventCollected:
		return fmt.Sprintf("collected nice present %d", e.PresentID)
	default:
		return fmt.Sprintf("present %d: %s", e.PresentID, e.Kind)
	}
}
