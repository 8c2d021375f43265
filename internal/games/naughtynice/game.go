// Package naughtynice implements the Naughty And Nice game: walk the arena,
// pick up the nice presents and stay clear of the naughty ones.
package naughtynice

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/naughty-nice/internal/character"
	"github.com/vovakirdan/naughty-nice/internal/config"
	"github.com/vovakirdan/naughty-nice/internal/core"
	"github.com/vovakirdan/naughty-nice/internal/level"
	"github.com/vovakirdan/naughty-nice/internal/world"
)

// Game implements the Naughty And Nice game.
type Game struct {
	cfg    config.Config
	layout *level.Level // nil: generate a new layout on every reset
	logger *log.Logger

	rt    core.RuntimeConfig
	rng   *rand.Rand
	tick  uint64
	world *world.World

	player *character.Character
	paused bool

	events    []world.Event // resolved during the last step
	lastEvent string        // shown in the HUD until the next event
}

// Option configures a Game.
type Option func(*Game)

// WithLevel plays a fixed layout instead of a generated one.
func WithLevel(l *level.Level) Option {
	return func(g *Game) { g.layout = l }
}

// WithLogger sets the logger handed to the world.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// New creates a game from a validated configuration.
func New(cfg config.Config, opts ...Option) *Game {
	g := &Game{cfg: cfg}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "naughtynice"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Naughty And Nice"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.tick = 0
	g.paused = false
	g.events = nil
	g.lastEvent = ""

	g.world = world.New(world.Options{
		Arena:        g.cfg.Arena,
		Size:         g.cfg.Character.Size,
		WinThreshold: g.cfg.Rules.WinThreshold,
		Logger:       g.logger,
	})

	layout := g.layout
	if layout == nil {
		layout = level.Generate(rt.Seed, level.GenerateOptions{
			Arena:   g.cfg.Arena,
			Size:    g.cfg.Character.Size,
			Nice:    g.cfg.Presents.Nice,
			Naughty: g.cfg.Presents.Naughty,
			Damage:  g.cfg.Presents.Damage,
		})
	}
	layout.Populate(g.world)

	g.player = character.New(g.cfg.CharacterParams(), layout.Spawn)
	g.world.AddPlayer(g.player)

	g.logger.Debug("game reset", "level", layout.Name, "seed", rt.Seed, "presents", len(layout.Presents))
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++
	g.events = nil

	// Handle restart
	if input.Has(core.ActionRestart) && g.finished() {
		rt := g.rt
		rt.Seed = g.rng.Int63()
		g.Reset(rt)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// The world keeps running after the game ends so the last animation
	// plays out.
	g.player.Direction = DirectionFor(input)
	g.events = g.world.Tick(g.rt.TickDuration())
	if n := len(g.events); n > 0 {
		g.lastEvent = g.events[n-1].String()
	}

	return core.StepResult{State: g.State()}
}

// DirectionFor picks the walking direction from the held movement keys. When
// several are held the first one in core.MoveActions wins; none held means
// standing still.
func DirectionFor(input core.InputFrame) character.Direction {
	for _, a := range core.MoveActions {
		if !input.Has(a) {
			continue
		}
		switch a {
		case core.ActionMoveForward:
			return character.MoveForward
		case core.ActionMoveLeft:
			return character.MoveLeft
		case core.ActionMoveBack:
			return character.MoveBack
		case core.ActionMoveRight:
			return character.MoveRight
		}
	}
	return character.Static
}

func (g *Game) won() bool {
	return g.player.Inventory.Presents() >= g.cfg.Rules.WinThreshold
}

func (g *Game) lost() bool {
	return g.player.Status.State() == character.Dead
}

func (g *Game) finished() bool {
	return g.won() || g.lost()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.player == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    int(g.player.Inventory.Presents()),
		Health:   g.player.Status.Health(),
		Won:      g.won() && !g.lost(),
		GameOver: g.lost(),
		Paused:   g.paused,
	}
}

// Player returns the player character.
func (g *Game) Player() *character.Character {
	return g.player
}

// World returns the running world.
func (g *Game) World() *world.World {
	return g.world
}

// Events returns the contacts resolved during the last step.
func (g *Game) Events() []world.Event {
	return g.events
}

// Tick returns the number of steps since the last reset.
func (g *Game) Tick() uint64 {
	return g.tick
}
