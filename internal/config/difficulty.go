package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. The empty string selects normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (expected easy, normal or hard)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset. Normal keeps
// the loaded values untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Character.Health = 8
		cfg.Presents.Damage = 1
		cfg.Rules.WinThreshold = 1
	case DifficultyHard:
		cfg.Character.Health = 3
		cfg.Presents.Damage = 2
		cfg.Rules.WinThreshold = 3
		if cfg.Presents.Nice < 3 {
			cfg.Presents.Nice = 3
		}
	}
}
