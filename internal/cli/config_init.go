package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/widgetlist/internal/config"
)

// NewConfigInitCmd creates the config init command for initializing configuration.
// It writes the default configuration to the --config path or to
// $WIDGETLIST_HOME/config.yaml.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates a new configuration file with default values.

The file is written to the path given with --config, or to config.yaml in
$WIDGETLIST_HOME (default ~/.widgetlist).`,
		Example: `  # Create the default configuration
  widgetlist config init

  # Create configuration, overwriting existing
  widgetlist config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := configPathFlag(cmd)
			if err != nil {
				return err
			}
			return initConfig(cmd, path, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")

	return cmd
}

// initConfig saves the default configuration to path.
func initConfig(cmd *cobra.Command, path string, force bool) error {
	if !force {
		_, err := os.Stat(path)
		if err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
		if !os.IsNotExist(err) {
			return fmt.Errorf("cannot access config path %s: %w", path, err)
		}
	}

	cfg := config.Default()
	cfg.SetConfigPath(path)
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	logger.Info().Str("path", path).Msg("configuration initialized")
	fmt.Fprintf(cmd.OutOrStdout(), "Configuration initialized at %s\n", path)
	return nil
}

// configPathFlag returns the --config value or the default config path.
func configPathFlag(cmd *cobra.Command) (string, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return path, nil
	}
	return config.DefaultConfigPath()
}
