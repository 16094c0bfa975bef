// Package cli implements the widgetlist command line.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/widgetlist/internal/config"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the widgetlist CLI.
// It loads configuration, sets up logging and wires the demo, render and
// config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "widgetlist",
		Short:         "Scrollable list widget playground",
		Long:          "widgetlist: lay out and render virtualized lists of variably sized items in the terminal",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(configPath); err != nil {
				return err
			}
			return setupLogging(cmd)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			cleanupLogging()
			return nil
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $WIDGETLIST_HOME/config.yaml)")
	cmd.AddCommand(NewDemoCmd(), NewRenderCmd(), newConfigCmd())

	return cmd
}

// loadConfig installs the global config. An explicit path must exist and
// parse; the default location is optional.
func loadConfig(path string) error {
	if path == "" {
		config.InitGlobalConfig()
		return nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	config.SetGlobalConfig(cfg)
	return nil
}

const rootCmdExample = `  # Browse the default demo list
  widgetlist demo

  # Browse variable-height cards inside a double border
  widgetlist demo sizes --border double

  # Print a 40x10 frame with item 25 selected
  widgetlist render simple --width 40 --height 10 --select 25

  # Print every demo variant
  widgetlist render --all

  # Create and check the configuration file
  widgetlist config init
  widgetlist config validate`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management commands",
		// Config commands read the file themselves; a missing or broken file is
		// what they are there to fix.
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			config.InitGlobalConfig()
			return setupLogging(cmd)
		},
	}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigValidateCmd())
	return cmd
}
