package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oshokin/alarm-naming/internal/logger"
	"github.com/oshokin/alarm-naming/internal/version"
)

// newRootCommand builds the command tree. Each call returns independent flag state.
func newRootCommand() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:   "alarm-naming",
		Short: "Derive CloudFormation names and dimensions for function alarms.",
		Long: `Derives deterministic logical IDs, alarm names and metric dimensions for
CloudWatch alarms attached to Lambda functions.

Use "render" to turn an alarm configuration into a CloudFormation fragment,
or the individual naming commands to compute a single identifier.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			level, ok := logger.ParseLogLevel(logLevel)
			if !ok {
				return fmt.Errorf("unknown log level %q", logLevel)
			}

			logger.SetLevel(level)

			return nil
		},
	}

	root.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(
		newRenderCommand(),
		newInitCommand(),
		newNormalizeCommand(),
		newAlarmRefCommand(),
		newLogMetricRefCommand(),
		newPatternMetricCommand(),
		newAlarmNameCommand(),
		newDimensionsCommand(),
	)

	version.AttachCobraVersionCommand(root)

	return root
}

// Execute runs the alarm-naming CLI and exits with non-zero status on error.
func Execute() {
	if err := newRootCommand().Execute(); err != nil {
		logger.ErrorKV(context.Background(), "Command failed", "error", err)
		os.Exit(1)
	}
}
