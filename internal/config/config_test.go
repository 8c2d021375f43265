package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/naughty-nice/internal/anim"
)

func TestEmbeddedDefaultsMatchGoDefaults(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) error = %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v", err)
	}
}

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
character:
  speed: 150
  animation_interval: 120ms
rules:
  win_threshold: 2
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.Character.Speed != 150 {
		t.Errorf("Speed = %v, expected 150", cfg.Character.Speed)
	}
	if cfg.Character.AnimationInterval != 120*time.Millisecond {
		t.Errorf("AnimationInterval = %v, expected 120ms", cfg.Character.AnimationInterval)
	}
	if cfg.Rules.WinThreshold != 2 {
		t.Errorf("WinThreshold = %d, expected 2", cfg.Rules.WinThreshold)
	}
	if cfg.Character.Health != 5 || cfg.Frames != DefaultConfig().Frames {
		t.Errorf("unset keys lost their defaults: %+v", cfg)
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("character: [")); err == nil {
		t.Error("Parse() should fail on malformed YAML")
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("arena:\n  left: -100\n  right: 100\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Arena.Left != -100 || cfg.Arena.Right != 100 || cfg.Arena.Top != 336 {
		t.Errorf("Arena = %+v, expected custom left/right and default top", cfg.Arena)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() of a missing custom path should fail")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	want := DefaultConfig()
	want.Character.AnimationInterval = 250 * time.Millisecond
	want.Level.Map = "levels/attic.tmx"

	data, err := Marshal(want)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	got, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got != want {
		t.Errorf("round trip = %+v, expected %+v", got, want)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"inverted frame range", func(c *Config) { c.Frames.Left = anim.Range{Start: 5, End: 3} }, anim.ErrInvalidRange},
		{"negative frame", func(c *Config) { c.Frames.Die.Start = -1 }, anim.ErrInvalidRange},
		{"empty arena width", func(c *Config) { c.Arena.Right = c.Arena.Left }, ErrInvalidArena},
		{"inverted arena height", func(c *Config) { c.Arena.Bottom, c.Arena.Top = 10, -10 }, ErrInvalidArena},
		{"zero speed", func(c *Config) { c.Character.Speed = 0 }, ErrInvalidCharacter},
		{"zero size", func(c *Config) { c.Character.Size = 0 }, ErrInvalidCharacter},
		{"zero health", func(c *Config) { c.Character.Health = 0 }, ErrInvalidCharacter},
		{"zero interval", func(c *Config) { c.Character.AnimationInterval = 0 }, ErrInvalidCharacter},
		{"zero threshold", func(c *Config) { c.Rules.WinThreshold = 0 }, ErrInvalidRules},
		{"negative count", func(c *Config) { c.Presents.Naughty = -1 }, ErrInvalidRules},
		{"unwinnable generated level", func(c *Config) {
			c.Level.Generate = true
			c.Presents.Nice = 1
			c.Rules.WinThreshold = 2
		}, ErrInvalidRules},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.want) {
				t.Errorf("Validate() = %v, expected %v", err, tc.want)
			}
		})
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		health    uint
		damage    uint
		threshold uint
	}{
		{DifficultyEasy, 8, 1, 1},
		{DifficultyNormal, 5, 1, 1},
		{DifficultyHard, 3, 2, 3},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultConfig()
			ApplyPreset(&cfg, tc.preset)

			if cfg.Character.Health != tc.health {
				t.Errorf("Health = %d, expected %d", cfg.Character.Health, tc.health)
			}
			if cfg.Presents.Damage != tc.damage {
				t.Errorf("Damage = %d, expected %d", cfg.Presents.Damage, tc.damage)
			}
			if cfg.Rules.WinThreshold != tc.threshold {
				t.Errorf("WinThreshold = %d, expected %d", cfg.Rules.WinThreshold, tc.threshold)
			}
			cfg.Level.Generate = true
			if err := cfg.Validate(); err != nil {
				t.Errorf("Validate() after preset = %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = (%q, %v), expected normal", p, err)
	}
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(\"hard\") = (%q, %v), expected hard", p, err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset(\"nightmare\") should fail")
	}
}

func TestCharacterParams(t *testing.T) {
	cfg := DefaultConfig()
	p := cfg.CharacterParams()
	if p.Speed != 300 || p.Health != 5 || p.Interval != 300*time.Millisecond || p.Frames != cfg.Frames {
		t.Errorf("CharacterParams() = %+v", p)
	}
}
