package config

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArena is returned when an arena axis is empty or inverted.
	ErrInvalidArena = errors.New("invalid arena")
	// ErrInvalidCharacter is returned for non-positive character settings.
	ErrInvalidCharacter = errors.New("invalid character")
	// ErrInvalidRules is returned when the game cannot be won.
	ErrInvalidRules = errors.New("invalid rules")
)

// Validate checks that the configuration describes a playable game. Frame
// range errors wrap anim.ErrInvalidRange.
func (c Config) Validate() error {
	if err := c.Frames.Validate(); err != nil {
		return fmt.Errorf("frames: %w", err)
	}

	if c.Arena.Left >= c.Arena.Right {
		return fmt.Errorf("%w: left %v must be below right %v", ErrInvalidArena, c.Arena.Left, c.Arena.Right)
	}
	if c.Arena.Bottom >= c.Arena.Top {
		return fmt.Errorf("%w: bottom %v must be below top %v", ErrInvalidArena, c.Arena.Bottom, c.Arena.Top)
	}

	ch := c.Character
	switch {
	case ch.Speed <= 0:
		return fmt.Errorf("%w: speed must be positive, got %v", ErrInvalidCharacter, ch.Speed)
	case ch.Size <= 0:
		return fmt.Errorf("%w: size must be positive, got %v", ErrInvalidCharacter, ch.Size)
	case ch.Health == 0:
		return fmt.Errorf("%w: health must be positive", ErrInvalidCharacter)
	case ch.AnimationInterval <= 0:
		return fmt.Errorf("%w: animation interval must be positive, got %v", ErrInvalidCharacter, ch.AnimationInterval)
	}

	if c.Rules.WinThreshold == 0 {
		return fmt.Errorf("%w: win threshold must be positive", ErrInvalidRules)
	}
	if c.Presents.Nice < 0 || c.Presents.Naughty < 0 {
		return fmt.Errorf("%w: present counts must not be negative", ErrInvalidRules)
	}
	if c.Level.Generate && uint(c.Presents.Nice) < c.Rules.WinThreshold {
		return fmt.Errorf("%w: %d nice presents cannot reach a win threshold of %d",
			ErrInvalidRules, c.Presents.Nice, c.Rules.WinThreshold)
	}
	return nil
}
