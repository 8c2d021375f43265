package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/naughty-nice/internal/config"
	"github.com/vovakirdan/naughty-nice/internal/level"
)

// loadConfig loads the configuration and applies the difficulty and level
// flags on top of it.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)

	switch flagLevel {
	case "":
	case "random":
		cfg.Level.Generate = true
	default:
		cfg.Level.Generate = false
		cfg.Level.Map = flagLevel
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// loadLevel resolves the configured layout and checks it against the arena
// and win threshold. A nil level means the game generates one from the seed.
func loadLevel(cfg config.Config, logger *log.Logger) (*level.Level, error) {
	if cfg.Level.Generate {
		return nil, nil
	}

	var (
		lvl *level.Level
		err error
	)
	if cfg.Level.Map == "" {
		lvl, err = level.Load(level.Builtin(), level.DefaultMap)
	} else {
		dir, file := filepath.Split(cfg.Level.Map)
		if dir == "" {
			dir = "."
		}
		lvl, err = level.Load(os.DirFS(dir), file)
	}
	if err != nil {
		return nil, err
	}
	if err := lvl.Validate(cfg.Arena, cfg.Rules.WinThreshold); err != nil {
		return nil, err
	}
	logger.Debug("level loaded", "level", lvl.Name, "presents", len(lvl.Presents))
	return lvl, nil
}

// resolveSeed returns seed, or a seed taken from now when it is 0.
func resolveSeed(seed int64, now time.Time) int64 {
	if seed != 0 {
		return seed
	}
	return now.UnixNano()
}

// newLogger builds the logger from the log flags. fallback receives the
// output when no log file is set. The returned closer must be called once
// logging is done.
func newLogger(fallback io.Writer) (*log.Logger, io.Closer, error) {
	logLevel, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	w, closer := fallback, io.Closer(nopCloser{})
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "naughtynice",
		Level:           logLevel,
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
