package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"twopane/internal/tui"
)

// NewBrowseCmd creates the browse command
func NewBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse [dir]",
		Short: "Start the two-pane browser",
		Long:  `Start the interactive two-pane browser. An optional directory argument overrides the configured start directory for both panes.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(args)
		},
	}
}

func runBrowse(args []string) error {
	if len(args) > 0 {
		cfg.Panes.Left = args[0]
		cfg.Panes.Right = args[0]
	}

	m, err := tui.New(cfg)
	if err != nil {
		return fmt.Errorf("could not start browser: %w", err)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running browser: %w", err)
	}
	return nil
}
