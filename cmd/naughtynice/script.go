package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/naughty-nice/internal/character"
	"github.com/vovakirdan/naughty-nice/internal/core"
)

// errEmptyScript is returned for a script without segments.
var errEmptyScript = errors.New("empty move script")

// segment holds one direction for a span of time.
type segment struct {
	Direction character.Direction
	Duration  time.Duration
}

// parseScript parses a comma separated move script such as
// "forward:2s,right:900ms,static:1s".
func parseScript(s string) ([]segment, error) {
	var out []segment
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		name, dur, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("segment %q: expected direction:duration", part)
		}
		dir, ok := character.ParseDirection(strings.TrimSpace(name))
		if !ok {
			return nil, fmt.Errorf("segment %q: unknown direction %q", part, name)
		}
		d, err := time.ParseDuration(strings.TrimSpace(dur))
		if err != nil {
			return nil, fmt.Errorf("segment %q: %w", part, err)
		}
		if d < 0 {
			return nil, fmt.Errorf("segment %q: negative duration", part)
		}
		out = append(out, segment{Direction: dir, Duration: d})
	}
	if len(out) == 0 {
		return nil, errEmptyScript
	}
	return out, nil
}

// input returns the input frame that holds the segment's movement key.
func (s segment) input() core.InputFrame {
	in := core.NewInputFrame()
	switch s.Direction {
	case character.MoveForward:
		in.Set(core.ActionMoveForward)
	case character.MoveLeft:
		in.Set(core.ActionMoveLeft)
	case character.MoveBack:
		in.Set(core.ActionMoveBack)
	case character.MoveRight:
		in.Set(core.ActionMoveRight)
	}
	return in
}

// ticks returns how many fixed ticks of length step the segment spans,
// rounded to the nearest tick.
func (s segment) ticks(step time.Duration) int {
	if step <= 0 {
		return 0
	}
	return int((s.Duration + step/2) / step)
}

func msDuration(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
