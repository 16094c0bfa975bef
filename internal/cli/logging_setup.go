package cli

import (
	"fmt"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"

	"github.com/rshade/widgetlist/internal/config"
)

// setupLogging configures logging from the config file, environment and the
// --debug flag, then stores a trace-tagged logger in the command context.
func setupLogging(cmd *cobra.Command) error {
	level, file := config.GetLogLevel(), config.GetLogFile()
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		level, file = "debug", ""
	}

	if err := config.InitLogger(level, file); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}

	traceID := ulid.Make().String()
	logger = config.ComponentLogger("cli").With().Str("trace_id", traceID).Logger()
	cmd.SetContext(logger.WithContext(cmd.Context()))

	logger.Debug().Str("command", cmd.Name()).Msg("command started")
	return nil
}

// cleanupLogging closes the log file, if one is open.
func cleanupLogging() {
	config.CloseLogFile()
}
