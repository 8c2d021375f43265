// Package world owns the characters and presents of a running game and
// resolves contacts between them once per tick.
package world

import (
	"errors"
	"io"
	"math"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/solarlune/resolv"

	"github.com/vovakirdan/naughty-nice/internal/character"
	"github.com/vovakirdan/naughty-nice/internal/core"
)

var (
	// ErrNoPlayer is returned by Player when the world holds no character.
	ErrNoPlayer = errors.New("no player in world")
	// ErrMultiplePlayers is returned by Player when more than one character
	// is present and the single-player lookup is ambiguous.
	ErrMultiplePlayers = errors.New("multiple players in world")
)

const (
	tagPlayer  = "player"
	tagPresent = "present"
)

// Options configures a World.
type Options struct {
	Arena        character.Arena
	Size         float64 // edge length of every collision box
	WinThreshold uint    // presents needed to trigger the celebration
	Logger       *log.Logger
}

// World holds the players and presents of one game in a resolv space. The
// space works in non-negative y-down coordinates, so world positions are
// shifted by the arena origin and flipped on the way in.
type World struct {
	arena        character.Arena
	size         float64
	winThreshold uint
	logger       *log.Logger

	space    *resolv.Space
	originX  float64
	originY  float64
	spaceW   float64
	spaceH   float64
	players  []*player
	presents map[int]*Present
	nextID   int
	strays   int // presents placed outside the space

	lookupErr error
}

type player struct {
	*character.Character
	obj *resolv.Object
}

// New creates an empty world.
func New(opts Options) *World {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	size := opts.Size
	if size <= 0 {
		size = 1
	}

	// Keep a border of one box around the arena so objects sitting on the
	// bounds still land in valid cells.
	cell := int(math.Ceil(size))
	w := int(math.Ceil(opts.Arena.Width()+2*size)) + cell
	h := int(math.Ceil(opts.Arena.Height()+2*size)) + cell

	return &World{
		arena:        opts.Arena,
		size:         size,
		winThreshold: opts.WinThreshold,
		logger:       logger,
		space:        resolv.NewSpace(w, h, cell, cell),
		originX:      opts.Arena.Left - size,
		originY:      opts.Arena.Top + size,
		spaceW:       float64(w),
		spaceH:       float64(h),
		presents:     make(map[int]*Present),
	}
}

// toSpace converts a world-space center to the top-left corner of its box in
// space coordinates.
func (w *World) toSpace(p core.Vec2) (float64, float64) {
	return p.X - w.originX - w.size/2, w.originY - p.Y - w.size/2
}

// inSpace reports whether a box lies fully inside the resolv space. Cells are
// only tracked inside it, so boxes reaching past the edge can miss contacts.
func (w *World) inSpace(obj *resolv.Object) bool {
	return obj.X >= 0 && obj.Y >= 0 && obj.X+obj.W <= w.spaceW && obj.Y+obj.H <= w.spaceH
}

// AddPlayer places a character in the world.
func (w *World) AddPlayer(c *character.Character) {
	x, y := w.toSpace(c.Position)
	obj := resolv.NewObject(x, y, w.size, w.size, tagPlayer)
	obj.Data = c
	w.space.Add(obj)
	w.players = append(w.players, &player{Character: c, obj: obj})
}

// Player returns the only character in the world, or ErrNoPlayer /
// ErrMultiplePlayers when the lookup is not unique.
func (w *World) Player() (*character.Character, error) {
	p, err := w.single()
	if err != nil {
		return nil, err
	}
	return p.Character, nil
}

func (w *World) single() (*player, error) {
	switch len(w.players) {
	case 0:
		return nil, ErrNoPlayer
	case 1:
		return w.players[0], nil
	default:
		return nil, ErrMultiplePlayers
	}
}

// AddPresent spawns a present centered on pos and returns it. IDs increase in
// spawn order.
func (w *World) AddPresent(kind Kind, damage uint, pos core.Vec2) *Present {
	w.nextID++
	p := &Present{ID: w.nextID, Kind: kind, Damage: damage, Position: pos}

	x, y := w.toSpace(pos)
	p.obj = resolv.NewObject(x, y, w.size, w.size, tagPresent, kind.String())
	p.obj.Data = p
	w.space.Add(p.obj)
	w.presents[p.ID] = p
	if !w.inSpace(p.obj) {
		p.outside = true
		w.strays++
		w.logger.Debug("present outside collision space", "present", p.ID, "x", pos.X, "y", pos.Y)
	}
	return p
}

// Presents returns the presents still in the world ordered by ID.
func (w *World) Presents() []*Present {
	out := make([]*Present, 0, len(w.presents))
	for _, p := range w.presents {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Remaining counts the presents of the given kind still in the world.
func (w *World) Remaining(kind Kind) int {
	n := 0
	for _, p := range w.presents {
		if p.Kind == kind {
			n++
		}
	}
	return n
}

func (w *World) removePresent(p *Present) {
	w.space.Remove(p.obj)
	delete(w.presents, p.ID)
	if p.outside {
		w.strays--
	}
}

// Tick advances the world by elapsed. Contacts are resolved before any
// character animation runs, so a lethal hit this tick already shows the die
// animation on the next due frame.
func (w *World) Tick(elapsed time.Duration) []Event {
	events := w.ResolveCollisions()
	for _, p := range w.players {
		p.Update(elapsed, w.arena)
		p.sync(w)
	}
	return events
}

func (p *player) sync(w *World) {
	p.obj.X, p.obj.Y = w.toSpace(p.Position)
	p.obj.Update()
}

// ResolveCollisions applies every present touching the single player and
// removes those presents from the world. When the player lookup fails the
// sweep is skipped and logged once per failure streak.
func (w *World) ResolveCollisions() []Event {
	pl, err := w.single()
	if err != nil {
		if !errors.Is(err, w.lookupErr) {
			w.logger.Warn("skipping collision sweep", "err", err, "players", len(w.players))
		}
		w.lookupErr = err
		return nil
	}
	w.lookupErr = nil

	pl.sync(w)
	var events []Event
	for _, p := range w.touching(pl) {
		// A dead character no longer picks anything up.
		if pl.Status.State() == character.Dead {
			break
		}
		w.removePresent(p)
		events = append(events, w.apply(pl.Character, p))
	}
	return events
}

// touching returns the presents overlapping the character, ordered by ID.
// resolv narrows the search down to shared cells; the exact overlap is
// checked on the world boxes. Once anything sits outside the space every
// present is checked directly.
func (w *World) touching(pl *player) []*Present {
	var candidates []*Present
	if w.strays > 0 || !w.inSpace(pl.obj) {
		candidates = w.Presents()
	} else {
		check := pl.obj.Check(0, 0, tagPresent)
		if check == nil {
			return nil
		}
		seen := make(map[int]bool)
		for _, obj := range check.ObjectsByTags(tagPresent) {
			p, ok := obj.Data.(*Present)
			if !ok || seen[p.ID] {
				continue
			}
			seen[p.ID] = true
			candidates = append(candidates, p)
		}
	}

	box := pl.Bounds(w.size)
	var hits []*Present
	for _, p := range candidates {
		if box.Intersects(p.Bounds(w.size)) {
			hits = append(hits, p)
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].ID < hits[j].ID })
	return hits
}

func (w *World) apply(c *character.Character, p *Present) Event {
	ev := Event{PresentID: p.ID}

	switch p.Kind {
	case Naughty:
		ev.Kind = EventHazard
		ev.Damage = p.Damage
		c.Status.RemoveHealth(p.Damage)
		w.logger.Info("hazard hit", "present", p.ID, "damage", p.Damage, "health", c.Status.Health())
		if c.Status.State() == character.Dead {
			w.logger.Info("player died", "presents", c.Inventory.Presents())
		}
	case Nice:
		ev.Kind = EventCollected
		n := c.Inventory.AddPresent()
		w.logger.Info("present collected", "present", p.ID, "count", n)
		if n == w.winThreshold {
			c.Status.Celebrate()
			w.logger.Info("celebrating", "count", n)
		}
	}

	ev.Presents = c.Inventory.Presents()
	ev.Health = c.Status.Health()
	ev.State = c.Status.State()
	return ev
}
