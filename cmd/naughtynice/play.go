package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/naughty-nice/internal/core"
	"github.com/vovakirdan/naughty-nice/internal/games/naughtynice"
	"github.com/vovakirdan/naughty-nice/internal/platform/tui"
)

var flagHoldTimeout int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start playing in the terminal.

Controls:
  W/Up      - Walk forward
  A/Left    - Walk left
  S/Down    - Walk back
  D/Right   - Walk right
  P/Esc     - Pause
  R         - Restart (after the game ended)
  Ctrl+S    - Save a screenshot
  Q/Ctrl+C  - Quit

Terminals do not report key release, so a movement key counts as held
until it stops repeating for --hold milliseconds.

Difficulty options:
  easy   - More health, one present wins
  normal - Values from the config file
  hard   - Less health, harder hits, three presents to win

Examples:
  naughtynice play
  naughtynice play --difficulty easy
  naughtynice play --level random --seed 42
  naughtynice play --level ./levels/attic.tmx --log-file game.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagHoldTimeout, "hold", int(tui.DefaultHoldTimeout.Milliseconds()), "Key hold timeout in milliseconds")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Logs would garble the alternate screen, so they only go to a file.
	logger, closer, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	lvl, err := loadLevel(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading level: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	opts := []naughtynice.Option{naughtynice.WithLogger(logger)}
	if lvl != nil {
		opts = append(opts, naughtynice.WithLevel(lvl))
	}
	game := naughtynice.New(cfg, opts...)

	err = tui.Run(game, rt, tui.Options{
		HoldTimeout: msDuration(flagHoldTimeout),
		Logger:      logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		closer.Close()
		os.Exit(1)
	}
}
