// Package level describes where the player starts and where presents are
// placed. Layouts come from Tiled maps or from a seeded generator.
package level

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/naughty-nice/internal/character"
	"github.com/vovakirdan/naughty-nice/internal/core"
	"github.com/vovakirdan/naughty-nice/internal/world"
)

var (
	// ErrOutsideArena is returned when the spawn or a present lies outside the
	// arena the level is played in.
	ErrOutsideArena = errors.New("level does not fit the arena")
	// ErrUnwinnable is returned when a level has fewer nice presents than the
	// win threshold.
	ErrUnwinnable = errors.New("level cannot be won")
)

// Placement is one present of a layout.
type Placement struct {
	Kind     world.Kind
	Damage   uint
	Position core.Vec2
}

// Level is a complete layout in world coordinates (y-up, origin at the
// center).
type Level struct {
	Name     string
	Spawn    core.Vec2
	Presents []Placement
}

// Count returns how many placements are of the given kind.
func (l *Level) Count(kind world.Kind) int {
	n := 0
	for _, p := range l.Presents {
		if p.Kind == kind {
			n++
		}
	}
	return n
}

// Populate spawns every present of the layout into w.
func (l *Level) Populate(w *world.World) {
	for _, p := range l.Presents {
		w.AddPresent(p.Kind, p.Damage, p.Position)
	}
}

// Fits reports whether the spawn point and every placement lie inside arena.
func (l *Level) Fits(arena character.Arena) bool {
	if !arena.Contains(l.Spawn) {
		return false
	}
	for _, p := range l.Presents {
		if !arena.Contains(p.Position) {
			return false
		}
	}
	return true
}

// Validate checks that the layout can be played in arena and won with
// winThreshold nice presents.
func (l *Level) Validate(arena character.Arena, winThreshold uint) error {
	if !l.Fits(arena) {
		return fmt.Errorf("%w: %s", ErrOutsideArena, l.Name)
	}
	if nice := l.Count(world.Nice); uint(nice) < winThreshold {
		return fmt.Errorf("%w: %s has %d nice presents, %d needed", ErrUnwinnable, l.Name, nice, winThreshold)
	}
	return nil
}
