package world

import (
	"github.com/solarlune/resolv"

	"github.com/vovakirdan/naughty-nice/internal/core"
)

// Kind tells collectibles apart from hazards.
type Kind int

const (
	Nice    Kind = iota // collectible, counts toward the win threshold
	Naughty             // hazard, deals damage on contact
)

func (k Kind) String() string {
	switch k {
	case Nice:
		return "nice"
	case Naughty:
		return "naughty"
	default:
		return "unknown"
	}
}

// ParseKind converts a level or config name into a Kind.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "nice":
		return Nice, true
	case "naughty":
		return Naughty, true
	}
	return Nice, false
}

// Present is a world object a character can pick up. It is removed from the
// world on first contact.
type Present struct {
	ID       int
	Kind     Kind
	Damage   uint // only meaningful for Naughty presents
	Position core.Vec2

	obj     *resolv.Object
	outside bool // box not fully inside the resolv space
}

// Bounds returns the collision box of the present.
func (p *Present) Bounds(size float64) core.RectF {
	return core.BoxAround(p.Position, size, size)
}
