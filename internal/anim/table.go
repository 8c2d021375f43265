// Package anim holds the sprite animation primitives of a character: the
// frame index table, the repeating animation clock and the two playback
// algorithms (ping-pong walk cycles and one-shot sequences).
package anim

import (
	"errors"
	"fmt"
)

// ErrInvalidRange is returned when a frame range is empty or negative.
var ErrInvalidRange = errors.New("anim: invalid frame range")

// Family names one animation of a character's sprite sheet.
type Family int

const (
	FamilyBack Family = iota
	FamilyForward
	FamilyLeft
	FamilyRight
	FamilyCelebrate
	FamilyDie
)

// Families lists every family in table order.
var Families = [...]Family{
	FamilyBack,
	FamilyForward,
	FamilyLeft,
	FamilyRight,
	FamilyCelebrate,
	FamilyDie,
}

func (f Family) String() string {
	switch f {
	case FamilyBack:
		return "back"
	case FamilyForward:
		return "forward"
	case FamilyLeft:
		return "left"
	case FamilyRight:
		return "right"
	case FamilyCelebrate:
		return "celebrate"
	case FamilyDie:
		return "die"
	default:
		return "unknown"
	}
}

// Range is an inclusive [Start, End] span of sprite sheet indices.
type Range struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}

// Contains reports whether frame lies within the range.
func (r Range) Contains(frame int) bool {
	return frame >= r.Start && frame <= r.End
}

// Len returns the number of frames in the range.
func (r Range) Len() int {
	return r.End - r.Start + 1
}

// Validate checks that the range is well formed.
func (r Range) Validate() error {
	if r.Start < 0 || r.Start > r.End {
		return fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, r.Start, r.End)
	}
	return nil
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d]", r.Start, r.End)
}

// Table is the immutable frame index table of one character. It is built once
// when the character spawns.
type Table struct {
	Back      Range `yaml:"back"`
	Forward   Range `yaml:"forward"`
	Left      Range `yaml:"left"`
	Right     Range `yaml:"right"`
	Celebrate Range `yaml:"celebrate"`
	Die       Range `yaml:"die"`
}

// Range returns the frame range of a family.
func (t Table) Range(f Family) Range {
	switch f {
	case FamilyBack:
		return t.Back
	case FamilyForward:
		return t.Forward
	case FamilyLeft:
		return t.Left
	case FamilyRight:
		return t.Right
	case FamilyCelebrate:
		return t.Celebrate
	case FamilyDie:
		return t.Die
	default:
		panic(fmt.Sprintf("anim: unknown family %d", int(f)))
	}
}

// IdleFrame is the frame shown while a character stands still: the one after
// the start of the back range, facing the camera.
func (t Table) IdleFrame() int {
	return min(t.Back.Start+1, t.Back.End)
}

// SpawnFrame is the frame a freshly spawned character shows.
func (t Table) SpawnFrame() int {
	return min(t.Forward.Start+1, t.Forward.End)
}

// FamilyOf returns the first family whose range contains frame.
func (t Table) FamilyOf(frame int) (Family, bool) {
	for _, f := range Families {
		if t.Range(f).Contains(frame) {
			return f, true
		}
	}
	return 0, false
}

// Validate checks every range of the table.
func (t Table) Validate() error {
	for _, f := range Families {
		if err := t.Range(f).Validate(); err != nil {
			return fmt.Errorf("%s: %w", f, err)
		}
	}
	return nil
}
