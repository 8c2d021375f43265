package level

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/naughty-nice/internal/character"
	"github.com/vovakirdan/naughty-nice/internal/core"
	"github.com/vovakirdan/naughty-nice/internal/world"
)

// GenerateOptions controls a random layout.
type GenerateOptions struct {
	Arena   character.Arena
	Size    float64 // collision box size, used to keep placements apart
	Nice    int
	Naughty int
	Damage  uint // damage of every generated hazard
}

// maxAttempts bounds the rejection sampling per placement.
const maxAttempts = 64

// Generate builds a layout with the player at the arena center and presents
// scattered around it. The same seed and options always give the same layout.
// Placements keep a box of clearance from the spawn point and from each other
// as long as the arena has room for it.
func Generate(seed int64, opts GenerateOptions) *Level {
	rng := rand.New(rand.NewSource(seed))

	spawn := core.Vec2{
		X: (opts.Arena.Left + opts.Arena.Right) / 2,
		Y: (opts.Arena.Bottom + opts.Arena.Top) / 2,
	}
	lvl := &Level{Name: "generated", Spawn: spawn}

	taken := []core.Vec2{spawn}
	place := func(kind world.Kind, damage uint) {
		var pos core.Vec2
		for attempt := 0; attempt < maxAttempts; attempt++ {
			pos = core.Vec2{
				X: opts.Arena.Left + rng.Float64()*opts.Arena.Width(),
				Y: opts.Arena.Bottom + rng.Float64()*opts.Arena.Height(),
			}
			if roomFor(pos, taken, opts.Size) {
				break
			}
		}
		taken = append(taken, pos)
		lvl.Presents = append(lvl.Presents, Placement{Kind: kind, Damage: damage, Position: pos})
	}

	for i := 0; i < opts.Nice; i++ {
		place(world.Nice, 0)
	}
	damage := opts.Damage
	if damage == 0 {
		damage = 1
	}
	for i := 0; i < opts.Naughty; i++ {
		place(world.Naughty, damage)
	}
	return lvl
}

// roomFor reports whether a box at pos stays at least one box away from every
// taken position.
func roomFor(pos core.Vec2, taken []core.Vec2, size float64) bool {
	for _, t := range taken {
		if math.Abs(pos.X-t.X) < 2*size && math.Abs(pos.Y-t.Y) < 2*size {
			return false
		}
	}
	return true
}
