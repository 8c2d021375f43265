package world

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/naughty-nice/internal/anim"
	"github.com/vovakirdan/naughty-nice/internal/character"
	"github.com/vovakirdan/naughty-nice/internal/core"
)

const (
	testSize     = 48
	testInterval = 300 * time.Millisecond
)

var testArena = character.Arena{Left: -616, Right: 616, Bottom: -336, Top: 336}

func testParams(health uint) character.Params {
	return character.Params{
		Frames: anim.Table{
			Forward:   anim.Range{Start: 0, End: 2},
			Left:      anim.Range{Start: 3, End: 5},
			Right:     anim.Range{Start: 6, End: 8},
			Back:      anim.Range{Start: 9, End: 11},
			Celebrate: anim.Range{Start: 12, End: 14},
			Die:       anim.Range{Start: 15, End: 17},
		},
		Interval: testInterval,
		Speed:    300,
		Health:   health,
	}
}

func newTestWorld(t *testing.T, threshold uint) (*World, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	w := New(Options{
		Arena:        testArena,
		Size:         testSize,
		WinThreshold: threshold,
		Logger:       log.New(&buf),
	})
	return w, &buf
}

func TestPlayerLookup(t *testing.T) {
	w, _ := newTestWorld(t, 1)

	if _, err := w.Player(); !errors.Is(err, ErrNoPlayer) {
		t.Errorf("Player() error = %v, expected ErrNoPlayer", err)
	}

	c := character.New(testParams(5), core.Vec2{})
	w.AddPlayer(c)
	got, err := w.Player()
	if err != nil || got != c {
		t.Errorf("Player() = (%p, %v), expected (%p, nil)", got, err, c)
	}

	w.AddPlayer(character.New(testParams(5), core.Vec2{X: 100}))
	if _, err := w.Player(); !errors.Is(err, ErrMultiplePlayers) {
		t.Errorf("Player() error = %v, expected ErrMultiplePlayers", err)
	}
}

func TestCollectNicePresent(t *testing.T) {
	w, buf := newTestWorld(t, 1)
	c := character.New(testParams(5), core.Vec2{})
	w.AddPlayer(c)
	p := w.AddPresent(Nice, 0, core.Vec2{X: 10, Y: -10})

	events := w.ResolveCollisions()
	if len(events) != 1 {
		t.Fatalf("ResolveCollisions() returned %d events, expected 1", len(events))
	}
	ev := events[0]
	if ev.Kind != EventCollected || ev.PresentID != p.ID || ev.Presents != 1 {
		t.Errorf("event = %+v, expected collected present %d with count 1", ev, p.ID)
	}
	if c.Status.State() != character.Celebrating {
		t.Errorf("State() = %v, expected celebrating at the win threshold", c.Status.State())
	}
	if len(w.Presents()) != 0 {
		t.Errorf("present was not removed from the world")
	}
	if !strings.Contains(buf.String(), "present collected") {
		t.Errorf("expected collection to be logged, got %q", buf.String())
	}

	if events := w.ResolveCollisions(); len(events) != 0 {
		t.Errorf("second sweep returned %d events, expected none", len(events))
	}
}

func TestWinThresholdFiresOnce(t *testing.T) {
	w, _ := newTestWorld(t, 2)
	c := character.New(testParams(5), core.Vec2{})
	w.AddPlayer(c)

	w.AddPresent(Nice, 0, core.Vec2{})
	w.ResolveCollisions()
	if c.Status.State() != character.Alive {
		t.Fatalf("State() = %v after 1 of 2 presents, expected alive", c.Status.State())
	}

	w.AddPresent(Nice, 0, core.Vec2{})
	w.ResolveCollisions()
	if c.Status.State() != character.Celebrating {
		t.Fatalf("State() = %v after reaching the threshold, expected celebrating", c.Status.State())
	}

	c.Status.EndCelebration()
	w.AddPresent(Nice, 0, core.Vec2{})
	w.ResolveCollisions()
	if c.Status.State() != character.Alive {
		t.Errorf("State() = %v past the threshold, expected alive", c.Status.State())
	}
	if c.Inventory.Presents() != 3 {
		t.Errorf("Presents() = %d, expected 3", c.Inventory.Presents())
	}
}

func TestHazardDamage(t *testing.T) {
	w, buf := newTestWorld(t, 1)
	c := character.New(testParams(5), core.Vec2{})
	w.AddPlayer(c)
	w.AddPresent(Naughty, 2, core.Vec2{X: -20})

	events := w.ResolveCollisions()
	if len(events) != 1 || events[0].Kind != EventHazard || events[0].Damage != 2 {
		t.Fatalf("ResolveCollisions() = %+v, expected one hazard of 2", events)
	}
	if c.Status.Health() != 3 {
		t.Errorf("Health() = %d, expected 3", c.Status.Health())
	}
	if !strings.Contains(buf.String(), "hazard hit") {
		t.Errorf("expected hazard to be logged, got %q", buf.String())
	}
}

func TestHazardUnderflowKills(t *testing.T) {
	w, _ := newTestWorld(t, 1)
	c := character.New(testParams(5), core.Vec2{})
	w.AddPlayer(c)
	w.AddPresent(Naughty, 6, core.Vec2{})

	w.ResolveCollisions()
	if c.Status.State() != character.Dead || c.Status.Health() != 0 {
		t.Errorf("status = (%v, %d), expected (dead, 0)", c.Status.State(), c.Status.Health())
	}
}

func TestDeadPlayerStopsCollecting(t *testing.T) {
	w, _ := newTestWorld(t, 1)
	c := character.New(testParams(1), core.Vec2{})
	w.AddPlayer(c)
	hazard := w.AddPresent(Naughty, 1, core.Vec2{})
	gift := w.AddPresent(Nice, 0, core.Vec2{X: 5})

	events := w.ResolveCollisions()
	if len(events) != 1 || events[0].PresentID != hazard.ID {
		t.Fatalf("ResolveCollisions() = %+v, expected only the hazard", events)
	}
	if c.Inventory.Presents() != 0 {
		t.Errorf("dead character collected a present")
	}
	left := w.Presents()
	if len(left) != 1 || left[0].ID != gift.ID {
		t.Errorf("Presents() = %v, expected the gift to stay", left)
	}
}

func TestEdgeContactDoesNotCollide(t *testing.T) {
	w, _ := newTestWorld(t, 1)
	w.AddPlayer(character.New(testParams(5), core.Vec2{}))
	w.AddPresent(Nice, 0, core.Vec2{X: testSize})
	w.AddPresent(Nice, 0, core.Vec2{Y: -testSize})
	w.AddPresent(Nice, 0, core.Vec2{X: 300, Y: 200})

	if events := w.ResolveCollisions(); len(events) != 0 {
		t.Errorf("ResolveCollisions() = %+v, expected no contact", events)
	}
	if w.Remaining(Nice) != 3 {
		t.Errorf("Remaining(Nice) = %d, expected 3", w.Remaining(Nice))
	}
}

func TestEventsOrderedBySpawn(t *testing.T) {
	w, _ := newTestWorld(t, 10)
	w.AddPlayer(character.New(testParams(5), core.Vec2{}))
	var ids []int
	for i := 0; i < 4; i++ {
		ids = append(ids, w.AddPresent(Nice, 0, core.Vec2{X: float64(i * 5)}).ID)
	}

	events := w.ResolveCollisions()
	if len(events) != len(ids) {
		t.Fatalf("got %d events, expected %d", len(events), len(ids))
	}
	for i, ev := range events {
		if ev.PresentID != ids[i] {
			t.Errorf("events[%d].PresentID = %d, expected %d", i, ev.PresentID, ids[i])
		}
		if ev.Presents != uint(i+1) {
			t.Errorf("events[%d].Presents = %d, expected %d", i, ev.Presents, i+1)
		}
	}
}

func TestSweepSkippedWithoutSinglePlayer(t *testing.T) {
	w, buf := newTestWorld(t, 1)
	w.AddPresent(Nice, 0, core.Vec2{})

	w.ResolveCollisions()
	w.ResolveCollisions()
	if n := strings.Count(buf.String(), "skipping collision sweep"); n != 1 {
		t.Errorf("lookup failure logged %d times, expected once per streak", n)
	}

	a := character.New(testParams(5), core.Vec2{})
	b := character.New(testParams(5), core.Vec2{})
	w.AddPlayer(a)
	w.AddPlayer(b)

	if events := w.ResolveCollisions(); events != nil {
		t.Errorf("ResolveCollisions() = %+v with two players, expected nil", events)
	}
	if a.Inventory.Presents() != 0 || b.Inventory.Presents() != 0 {
		t.Error("presents collected although the sweep should be skipped")
	}
	if w.Remaining(Nice) != 1 {
		t.Errorf("Remaining(Nice) = %d, expected 1", w.Remaining(Nice))
	}
	if n := strings.Count(buf.String(), "skipping collision sweep"); n != 2 {
		t.Errorf("lookup failure logged %d times, expected 2", n)
	}
}

func TestTickResolvesBeforeAnimating(t *testing.T) {
	w, _ := newTestWorld(t, 1)
	c := character.New(testParams(1), core.Vec2{})
	c.Direction = character.MoveRight
	w.AddPlayer(c)
	w.AddPresent(Naughty, 1, core.Vec2{})

	w.Tick(testInterval)

	// The hit lands first, so the due frame already plays the die range.
	if c.Frame != 15 {
		t.Errorf("Frame = %d, expected die range start 15", c.Frame)
	}
	if c.Position.X != 0 {
		t.Errorf("Position.X = %f, dead character should not move", c.Position.X)
	}
}

func TestTickMovesIntoPresent(t *testing.T) {
	w, _ := newTestWorld(t, 1)
	c := character.New(testParams(5), core.Vec2{})
	c.Direction = character.MoveRight
	w.AddPlayer(c)
	w.AddPresent(Nice, 0, core.Vec2{X: 120})

	var collected bool
	for i := 0; i < 4 && !collected; i++ {
		for _, ev := range w.Tick(testInterval) {
			collected = collected || ev.Kind == EventCollected
		}
	}
	if !collected {
		t.Fatalf("character at x=%f never reached the present", c.Position.X)
	}
	if c.Status.State() != character.Celebrating {
		t.Errorf("State() = %v, expected celebrating", c.Status.State())
	}
}

func TestPresentsAtArenaCorners(t *testing.T) {
	corners := []core.Vec2{
		{X: testArena.Left, Y: testArena.Top},
		{X: testArena.Right, Y: testArena.Top},
		{X: testArena.Left, Y: testArena.Bottom},
		{X: testArena.Right, Y: testArena.Bottom},
	}
	for _, pos := range corners {
		w, _ := newTestWorld(t, 1)
		c := character.New(testParams(5), pos)
		w.AddPlayer(c)
		w.AddPresent(Nice, 0, pos)

		if events := w.ResolveCollisions(); len(events) != 1 {
			t.Errorf("corner %+v: got %d events, expected 1", pos, len(events))
		}
	}
}

func TestCollisionsOutsideArena(t *testing.T) {
	small := character.Arena{Left: -100, Right: 100, Bottom: -100, Top: 100}
	tests := []struct {
		name            string
		player, present core.Vec2
	}{
		{"just past the border", core.Vec2{X: -172}, core.Vec2{X: -162}},
		{"two boxes out", core.Vec2{X: -244}, core.Vec2{X: -234}},
		{"far corner", core.Vec2{X: 500, Y: 500}, core.Vec2{X: 510, Y: 500}},
		{"present straddles the border", core.Vec2{X: -120}, core.Vec2{X: -150}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := New(Options{Arena: small, Size: testSize, WinThreshold: 1})
			w.AddPlayer(character.New(testParams(5), tc.player))
			w.AddPresent(Nice, 0, tc.present)

			if events := w.ResolveCollisions(); len(events) != 1 {
				t.Errorf("ResolveCollisions() returned %d events, expected 1", len(events))
			}
			if w.strays != 0 {
				t.Errorf("strays = %d after pickup, expected 0", w.strays)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{Nice, Naughty} {
		got, ok := ParseKind(k.String())
		if !ok || got != k {
			t.Errorf("ParseKind(%q) = (%v, %v), expected (%v, true)", k.String(), got, ok, k)
		}
	}
	if _, ok := ParseKind("coal"); ok {
		t.Error("ParseKind(\"coal\") should fail")
	}
}
