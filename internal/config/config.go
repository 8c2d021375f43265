// Package config provides YAML-based game configuration loading, validation
// and difficulty presets.
package config

import (
	"time"

	"github.com/vovakirdan/naughty-nice/internal/anim"
	"github.com/vovakirdan/naughty-nice/internal/character"
)

// Config contains all configuration for a Naughty And Nice game.
type Config struct {
	Character CharacterConfig `yaml:"character"`
	Frames    anim.Table      `yaml:"frames"`
	Arena     character.Arena `yaml:"arena"`
	Rules     RulesConfig     `yaml:"rules"`
	Presents  PresentsConfig  `yaml:"presents"`
	Level     LevelConfig     `yaml:"level"`
}

// CharacterConfig defines the player character.
type CharacterConfig struct {
	Speed             float64       `yaml:"speed"`
	Size              float64       `yaml:"size"`
	Health            uint          `yaml:"health"`
	AnimationInterval time.Duration `yaml:"animation_interval"`
}

// RulesConfig defines the win condition.
type RulesConfig struct {
	WinThreshold uint `yaml:"win_threshold"`
}

// PresentsConfig defines the presents of generated levels and the damage of
// hazards.
type PresentsConfig struct {
	Nice    int  `yaml:"nice"`
	Naughty int  `yaml:"naughty"`
	Damage  uint `yaml:"damage"`
}

// LevelConfig selects where the layout comes from.
type LevelConfig struct {
	Map      string `yaml:"map"`      // .tmx path; empty means the bundled map
	Generate bool   `yaml:"generate"` // seeded random layout instead of a map
}

// CharacterParams converts the configuration to spawn parameters.
func (c Config) CharacterParams() character.Params {
	return character.Params{
		Frames:   c.Frames,
		Interval: c.Character.AnimationInterval,
		Speed:    c.Character.Speed,
		Health:   c.Character.Health,
	}
}
