package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"twopane/internal/source"
	"twopane/internal/tags"
	"twopane/internal/view"
)

// NewLsCmd creates the ls command, a headless run of the view pipeline.
func NewLsCmd() *cobra.Command {
	var search string
	var disabledOnly bool

	cmd := &cobra.Command{
		Use:   "ls [dir]",
		Short: "Print the sorted, filtered listing of a directory",
		Long: `Print a directory the way the browser would show it: sorted by effective
name, with tags, and optionally narrowed by the same name-or-tag search
the interactive filter uses.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			} else if wd, err := os.Getwd(); err == nil {
				dir = wd
			}

			store, err := tags.Load(cfg.Tags.File)
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: %v\n", err)
			}

			pipeline := view.NewPipeline(source.NewWithConfig(cfg), store)
			if err := pipeline.SetDirectory(dir); err != nil {
				return err
			}
			pipeline.SetSearch(search)

			entries, err := pipeline.Entries()
			if err != nil {
				return err
			}

			for _, e := range entries {
				if disabledOnly && !e.Disabled {
					continue
				}

				state := " "
				if e.Disabled {
					state = "D"
				}
				kind := "f"
				if e.IsDir {
					kind = "d"
				}
				line := fmt.Sprintf("%s%s %-30s %8s", state, kind, e.EffectiveName, humanize.Bytes(uint64(e.Size)))
				if tagSet := store.Get(e.Path); len(tagSet) > 0 {
					line += "  #" + strings.Join(tagSet, " #")
				}
				fmt.Println(line)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "filter by name or tag substring")
	cmd.Flags().BoolVar(&disabledOnly, "disabled-only", false, "show only disabled entries")

	return cmd
}
