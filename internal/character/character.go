package character

import (
	"time"

	"github.com/vovakirdan/naughty-nice/internal/anim"
	"github.com/vovakirdan/naughty-nice/internal/core"
)

// Arena holds the bounds a character's position is clamped to, one pair per
// axis. It is shared, read-only configuration.
type Arena struct {
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Top    float64 `yaml:"top"`
}

// Width returns the horizontal extent of the arena.
func (a Arena) Width() float64 {
	return a.Right - a.Left
}

// Height returns the vertical extent of the arena.
func (a Arena) Height() float64 {
	return a.Top - a.Bottom
}

// Contains reports whether p lies within the bounds.
func (a Arena) Contains(p core.Vec2) bool {
	return p.X >= a.Left && p.X <= a.Right && p.Y >= a.Bottom && p.Y <= a.Top
}

// Params configures a character at spawn time.
type Params struct {
	Frames   anim.Table
	Interval time.Duration // animation clock period
	Speed    float64       // world units per second
	Health   uint          // starting health
}

// Character is the aggregate record of everything one character owns. Each
// field is mutated only by the logic in this package and by the collision
// resolver through Status and Inventory.
type Character struct {
	Frames    anim.Table
	Clock     anim.Clock
	Frame     int
	Play      anim.PlayDirection
	Direction Direction
	Position  core.Vec2
	Speed     float64
	Status    Status
	Inventory Inventory
}

// New spawns a character at pos facing away from the camera.
func New(p Params, pos core.Vec2) *Character {
	return &Character{
		Frames:   p.Frames,
		Clock:    anim.NewClock(p.Interval),
		Frame:    p.Frames.SpawnFrame(),
		Play:     anim.Forward,
		Position: pos,
		Speed:    p.Speed,
		Status:   NewStatus(p.Health),
	}
}

// Bounds returns the collision box of the character.
func (c *Character) Bounds(size float64) core.RectF {
	return core.BoxAround(c.Position, size, size)
}

// Update runs one tick for the character. The frame selector only runs when
// the animation clock is due; Update reports whether it did.
func (c *Character) Update(elapsed time.Duration, arena Arena) bool {
	if !c.Clock.Advance(elapsed) {
		return false
	}

	switch c.Status.State() {
	case Alive:
		c.Frame, c.Play = c.move(elapsed.Seconds(), arena)
	case Celebrating:
		c.Frame, c.Play = anim.OneShot(c.Frames.Celebrate, c.Frame)
		if c.Frame == c.Frames.Celebrate.End {
			c.Status.EndCelebration()
		}
	case Dead:
		c.Frame, c.Play = anim.OneShot(c.Frames.Die, c.Frame)
	}
	return true
}

// move integrates the position along the active direction and picks the next
// walk cycle frame. The clamp only touches the axis being moved on.
func (c *Character) move(dt float64, arena Arena) (int, anim.PlayDirection) {
	step := c.Speed * dt

	var family anim.Family
	switch c.Direction {
	case MoveBack:
		c.Position.Y = core.ClampF(c.Position.Y-step, arena.Bottom, arena.Top)
		family = anim.FamilyBack
	case MoveForward:
		c.Position.Y = core.ClampF(c.Position.Y+step, arena.Bottom, arena.Top)
		family = anim.FamilyForward
	case MoveLeft:
		c.Position.X = core.ClampF(c.Position.X-step, arena.Left, arena.Right)
		family = anim.FamilyLeft
	case MoveRight:
		c.Position.X = core.ClampF(c.Position.X+step, arena.Left, arena.Right)
		family = anim.FamilyRight
	default:
		// Standing still: face the camera.
		return c.Frames.IdleFrame(), anim.Forward
	}

	return anim.PingPong(c.Frames.Range(family), c.Frame, c.Play)
}
