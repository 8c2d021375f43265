// naughtynice is a top-down terminal game: collect the nice presents and
// avoid the naughty ones.
//
// Usage:
//
//	naughtynice play               - Play in the terminal
//	naughtynice simulate <script>  - Run a headless move script
//	naughtynice frames             - Print the frame index table
//	naughtynice levels [dir]       - List Tiled maps
//	naughtynice config             - Print the effective config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible layouts
//	--config <path>       - Custom config YAML
//	--difficulty <name>   - easy, normal or hard
//	--level <path|random> - Tiled map or a generated layout
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLevel      string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "naughtynice",
	Short: "Naughty And Nice - collect presents in your terminal",
	Long: `Naughty And Nice is a small top-down game. Walk around the arena,
pick up the nice presents and stay away from the naughty ones.

Available commands:
  play      - Play in the terminal
  simulate  - Run a scripted game without a terminal
  frames    - Show the configured animation frames
  levels    - List the available Tiled maps
  config    - Print the effective configuration

Examples:
  naughtynice play
  naughtynice play --difficulty hard --level random --seed 7
  naughtynice simulate "right:2s,forward:1s,static:500ms"
  naughtynice frames --config ./my-naughtynice.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLevel, "level", "", "Tiled .tmx map, or \"random\" for a generated layout")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(framesCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(configCmd)
}
