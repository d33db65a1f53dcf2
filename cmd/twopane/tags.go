package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"twopane/internal/tags"
)

// NewTagsCmd creates the tags command group
func NewTagsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Inspect and edit the tag store",
	}

	cmd.AddCommand(newTagsListCmd())
	cmd.AddCommand(newTagsAddCmd())
	cmd.AddCommand(newTagsRemoveCmd())
	cmd.AddCommand(newTagsSetCmd())

	return cmd
}

func openStore() (*tags.Store, error) {
	store, err := tags.Load(cfg.Tags.File)
	if err != nil {
		// Corrupt document: warn but keep going with the empty store.
		fmt.Printf("warning: %v\n", err)
	}
	return store, nil
}

func newTagsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [path]",
		Short: "List tags, for one path or the whole store",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}

			if len(args) == 1 {
				for _, tag := range store.Get(args[0]) {
					fmt.Println(tag)
				}
				return nil
			}

			for _, path := range store.Paths() {
				fmt.Printf("%s\t%s\n", path, strings.Join(store.Get(path), ", "))
			}
			return nil
		},
	}
}

func newTagsAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <path> <tag>...",
		Short: "Add tags to a path",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			for _, tag := range args[1:] {
				if err := store.Add(args[0], tag); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newTagsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <path> <tag>...",
		Short: "Remove tags from a path",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			for _, tag := range args[1:] {
				if err := store.Remove(args[0], tag); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newTagsSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <path> [tag]...",
		Short: "Replace a path's tags wholesale; no tags clears the path",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			return store.Set(args[0], args[1:])
		},
	}
}
