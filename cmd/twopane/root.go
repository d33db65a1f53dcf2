package main

import (
	"github.com/spf13/cobra"

	"twopane/internal/config"
	"twopane/internal/log"
)

var (
	cfgFile string
	debug   bool
	logJSON bool
	cfg     *config.Config
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "twopane",
		Short:   "A two-pane file browser with tags and an enable/disable toggle",
		Long: `Twopane is a two-pane file browser. Entries can be tagged, searched by
name or tag, and enabled or disabled in place via the DISABLED_ naming
convention other tools scanning the same directories understand.

Run without a subcommand to start the browser.`,
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.SetDebug(debug)
			if logJSON {
				log.Configure(log.WithJSON())
			}

			var err error
			if cfgFile != "" {
				cfg, err = config.LoadConfigFile(cfgFile)
			} else {
				cfg, err = config.LoadConfig()
			}
			if err != nil {
				log.LogWithError(err).Warn("could not load config, using defaults")
				cfg = config.New()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(nil)
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/twopane/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "log in JSON format")

	rootCmd.AddCommand(NewBrowseCmd())
	rootCmd.AddCommand(NewLsCmd())
	rootCmd.AddCommand(NewToggleCmd())
	rootCmd.AddCommand(NewTagsCmd())

	return rootCmd
}
