package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/naughty-nice/internal/core"
	"github.com/vovakirdan/naughty-nice/internal/games/naughtynice"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <script>",
	Short: "Run a scripted game without a terminal",
	Long: `Run the game headless, holding each direction of the move script for
its duration, then print every pickup and where the character ended up.

A script is a comma separated list of direction:duration segments.
Directions are forward, back, left, right and static; durations use Go
syntax (1s, 250ms, 1m30s).

World events are logged to stderr.

Examples:
  naughtynice simulate "right:2s,forward:1s"
  naughtynice simulate "back:10s" --difficulty hard --log-level debug
  naughtynice simulate "left:3s,static:1s" --level random --seed 3`,
	Args: cobra.ExactArgs(1),
	Run:  runSimulate,
}

func runSimulate(cmd *cobra.Command, args []string) {
	script, err := parseScript(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closer, err := newLogger(os.Stderr)
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

	opts := []naughtynice.Option{naughtynice.WithLogger(logger)}
	if lvl != nil {
		opts = append(opts, naughtynice.WithLevel(lvl))
	}
	game := naughtynice.New(cfg, opts...)

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = resolveSeed(flagSeed, time.Now())
	game.Reset(rt)
	fmt.Printf("seed:      %d\n", rt.Seed)

	step := rt.TickDuration()
	for _, seg := range script {
		in := seg.input()
		for range seg.ticks(step) {
			game.Step(in)
			printEvents(game)
		}
		logger.Debug("segment done", "direction", seg.Direction, "duration", seg.Duration,
			"x", game.Player().Position.X, "y", game.Player().Position.Y)
	}

	printSummary(game)
}

func printEvents(game *naughtynice.Game) {
	for _, ev := range game.Events() {
		fmt.Printf("tick %-5d %s  presents=%d health=%d state=%s\n",
			game.Tick(), ev, ev.Presents, ev.Health, ev.State)
	}
}

func printSummary(game *naughtynice.Game) {
	p := game.Player()
	state := game.State()

	outcome := "playing"
	switch {
	case state.GameOver:
		outcome = "lost"
	case state.Won:
		outcome = "won"
	}

	fmt.Printf("ticks:     %d\n", game.Tick())
	fmt.Printf("frame:     %d\n", p.Frame)
	fmt.Printf("position:  (%.1f, %.1f)\n", p.Position.X, p.Position.Y)
	fmt.Printf("state:     %s\n", p.Status.State())
	fmt.Printf("health:    %d\n", p.Status.Health())
	fmt.Printf("presents:  %d\n", p.Inventory.Presents())
	fmt.Printf("remaining: %d\n", len(game.World().Presents()))
	fmt.Printf("outcome:   %s\n", outcome)
}
