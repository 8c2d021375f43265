package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/naughty-nice/internal/anim"
)

var framesCmd = &cobra.Command{
	Use:   "frames",
	Short: "Show the configured animation frames",
	Long:  `Prints the frame index table and the idle and spawn frames derived from it.`,
	Args:  cobra.NoArgs,
	Run:   runFrames,
}

func runFrames(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	t := cfg.Frames

	fmt.Println("Frame index table:")
	fmt.Println()
	fmt.Printf("  %-10s  %-9s  %s\n", "Family", "Range", "Frames")
	fmt.Printf("  %-10s  %-9s  %s\n", "------", "-----", "------")
	for _, f := range anim.Families {
		r := t.Range(f)
		fmt.Printf("  %-10s  %-9s  %d\n", f, r, r.Len())
	}

	fmt.Println()
	fmt.Printf("Idle frame:  %d\n", t.IdleFrame())
	fmt.Printf("Spawn frame: %d\n", t.SpawnFrame())
	fmt.Printf("Interval:    %s\n", cfg.Character.AnimationInterval)
}
