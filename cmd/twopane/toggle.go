package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"twopane/internal/naming"
)

// NewToggleCmd creates the toggle command
func NewToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <path>...",
		Short: "Enable or disable entries by renaming them",
		Long: `Flip the enabled/disabled state of each path by adding or removing the
DISABLED_ name prefix. A failed toggle leaves the entry untouched and is
reported; remaining paths are still processed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var failed int
			for _, path := range args {
				newPath, err := naming.Toggle(path)
				if err != nil {
					fmt.Printf("  ✗ %s: %v\n", path, err)
					failed++
					continue
				}
				fmt.Printf("  ✓ %s -> %s\n", path, newPath)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d toggles failed", failed, len(args))
			}
			return nil
		},
	}
}
