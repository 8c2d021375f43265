package anim

// PlayDirection is the ping-pong flag of a walk cycle.
type PlayDirection int

const (
	Forward PlayDirection = iota
	Backward
)

func (p PlayDirection) String() string {
	if p == Backward {
		return "backward"
	}
	return "forward"
}

// PingPong returns the next frame of a looping walk cycle over r that reverses
// at both ends instead of wrapping.
//
// The returned flag is Backward only on the step that bounces off the top of
// the range. Every other step, including a plain step down while playing
// backward, reports Forward.
func PingPong(r Range, frame int, dir PlayDirection) (int, PlayDirection) {
	if !r.Contains(frame) {
		return r.Start, Forward
	}
	if r.Start == r.End {
		return r.Start, Forward
	}

	switch dir {
	case Forward:
		if frame == r.End {
			return r.End - 1, Backward
		}
		return frame + 1, Forward
	case Backward:
		if frame == r.Start {
			return r.Start + 1, Forward
		}
		return frame - 1, Forward
	}
	return r.Start, Forward
}

// OneShot returns the next frame of a sequence over r that plays once and then
// holds its last frame.
func OneShot(r Range, frame int) (int, PlayDirection) {
	if !r.Contains(frame) {
		return r.Start, Forward
	}
	if frame == r.End {
		return r.End, Forward
	}
	return frame + 1, Forward
}
