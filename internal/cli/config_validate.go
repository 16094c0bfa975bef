package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rshade/widgetlist/internal/config"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate [path]",
		Short: "Validate configuration file",
		Long: `Validates a configuration file for syntax and semantic correctness.

The file is read from the path argument, the --config flag or
$WIDGETLIST_HOME/config.yaml, in that order. This includes:
- YAML syntax
- Version compatibility
- Scroll axis, scroll padding and frame border values
- Logging level
Unknown top-level keys are reported as warnings.`,
		Example: `  # Validate current configuration
  widgetlist config validate

  # Validate another file and show detailed information
  widgetlist config validate ./widgetlist.yaml --verbose`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return runConfigValidate(cmd, args[0], verbose)
			}
			path, err := configPathFlag(cmd)
			if err != nil {
				return err
			}
			return runConfigValidate(cmd, path, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate merges the file over the defaults and validates the result.
func runConfigValidate(cmd *cobra.Command, path string, verbose bool) error {
	out := cmd.OutOrStdout()

	cfg := config.Default()
	unknown, err := config.MergeYAML(cfg, path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err = cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	for _, key := range unknown {
		logger.Warn().Str("path", path).Str("key", key).Msg("unknown config key")
		fmt.Fprintf(out, "Warning: unknown key %q is ignored\n", key)
	}
	if len(unknown) > 0 {
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "Configuration is valid: %s\n", path)

	if verbose {
		printVerboseDetails(out, cfg)
	}

	return nil
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(out io.Writer, cfg *config.Config) {
	logFile := cfg.Logging.File
	if logFile == "" {
		logFile = "(stderr)"
	}
	border := cfg.List.Frame.Border
	if border == "" {
		border = "none"
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Configuration details:")
	fmt.Fprintf(out, "  Version: %s\n", cfg.Version)
	fmt.Fprintf(out, "  Scroll axis: %s\n", cfg.List.Axis)
	fmt.Fprintf(out, "  Scroll padding: %d\n", cfg.List.ScrollPadding)
	fmt.Fprintf(out, "  Infinite scrolling: %t\n", cfg.List.InfiniteScrolling)
	fmt.Fprintf(out, "  Frame border: %s\n", border)
	fmt.Fprintf(out, "  Logging level: %s\n", cfg.Logging.Level)
	fmt.Fprintf(out, "  Log file: %s\n", logFile)
}
