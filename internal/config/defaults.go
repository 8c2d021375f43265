package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/naughty-nice/internal/anim"
	"github.com/vovakirdan/naughty-nice/internal/character"
)

//go:embed defaults/naughtynice.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Character: CharacterConfig{
			Speed:             300,
			Size:              48,
			Health:            5,
			AnimationInterval: 300 * time.Millisecond,
		},
		Frames: anim.Table{
			Forward:   anim.Range{Start: 0, End: 2},
			Left:      anim.Range{Start: 3, End: 5},
			Right:     anim.Range{Start: 6, End: 8},
			Back:      anim.Range{Start: 9, End: 11},
			Celebrate: anim.Range{Start: 12, End: 14},
			Die:       anim.Range{Start: 15, End: 17},
		},
		Arena: character.Arena{
			Left:   -616,
			Right:  616,
			Bottom: -336,
			Top:    336,
		},
		Rules: RulesConfig{
			WinThreshold: 1,
		},
		Presents: PresentsConfig{
			Nice:    3,
			Naughty: 4,
			Damage:  1,
		},
	}
}
