// Package character implements the per-character gameplay core: the
// life-cycle state machine, the frame selector and the movement integrator.
package character

// Direction is the movement signal set by the input collaborator. Only one
// direction is active at a time.
type Direction int

const (
	Static Direction = iota
	MoveBack
	MoveForward
	MoveLeft
	MoveRight
)

func (d Direction) String() string {
	switch d {
	case Static:
		return "static"
	case MoveBack:
		return "back"
	case MoveForward:
		return "forward"
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection converts a direction name back into a Direction.
func ParseDirection(s string) (Direction, bool) {
	for _, d := range []Direction{Static, MoveBack, MoveForward, MoveLeft, MoveRight} {
		if d.String() == s {
			return d, true
		}
	}
	return Static, false
}
