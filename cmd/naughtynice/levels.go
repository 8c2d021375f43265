package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/naughty-nice/internal/character"
	"github.com/vovakirdan/naughty-nice/internal/level"
	"github.com/vovakirdan/naughty-nice/internal/world"
)

var levelsCmd = &cobra.Command{
	Use:   "levels [dir]",
	Short: "List the available Tiled maps",
	Long: `List the bundled maps, or the .tmx files in dir, with their present
counts and whether they can be played with the current config.

Examples:
  naughtynice levels
  naughtynice levels ./maps --difficulty hard`,
	Args: cobra.MaximumNArgs(1),
	Run:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fsys, dir := level.Builtin(), "maps"
	if len(args) == 1 {
		fsys, dir = os.DirFS(args[0]), "."
	}
	paths, err := level.List(fsys, dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(paths) == 0 {
		fmt.Println("No maps found.")
		return
	}

	fmt.Printf("  %-24s  %4s  %7s  %s\n", "Map", "Nice", "Naughty", "Status")
	fmt.Printf("  %-24s  %4s  %7s  %s\n", "---", "----", "-------", "------")
	for _, p := range paths {
		fmt.Println(describeLevel(fsys, p, cfg.Arena, cfg.Rules.WinThreshold))
	}
}

// describeLevel formats one row of the levels table.
func describeLevel(fsys fs.FS, path string, arena character.Arena, threshold uint) string {
	lvl, err := level.Load(fsys, path)
	if err != nil {
		return fmt.Sprintf("  %-24s  %4s  %7s  %v", path, "-", "-", err)
	}

	status := "ok"
	if err := lvl.Validate(arena, threshold); err != nil {
		status = err.Error()
	}
	return fmt.Sprintf("  %-24s  %4d  %7d  %s", path,
		lvl.Count(world.Nice), lvl.Count(world.Naughty), status)
}
