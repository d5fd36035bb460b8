package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/oshokin/alarm-naming/internal/config"
	"github.com/oshokin/alarm-naming/internal/service/render"
)

func newRenderCommand() *cobra.Command {
	options := new(render.Options)

	command := &cobra.Command{
		Use:   "render",
		Short: "Render the alarm configuration into a CloudFormation fragment.",
		Long: `Reads the alarm configuration and writes a Resources fragment containing one
AWS::CloudWatch::Alarm per function alarm and one AWS::Logs::MetricFilter per
pattern alarm.

The output format follows the output file extension (.yaml/.yml or JSON)
unless --format is given. Use "-" to write to standard output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options.Stdout = cmd.OutOrStdout()

			return render.Run(ctx, options)
		},
	}

	command.Flags().StringVarP(&options.ConfigPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	command.Flags().StringVarP(&options.OutputPath, "output", "o", render.StdoutPath, "fragment file, - for stdout")
	command.Flags().StringVarP(&options.Format, "format", "f", "", "output format: json or yaml")
	command.Flags().BoolVar(&options.Verbose, "verbose", false, "log every rendered resource")

	return command
}

// errConfigExists is returned by init instead of overwriting a configuration.
var errConfigExists = errors.New("configuration file already exists")

func newInitCommand() *cobra.Command {
	var configPath string

	command := &cobra.Command{
		Use:   "init",
		Short: "Write an example alarm configuration.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := config.CreateFs(afero.NewOsFs(), configPath, config.Example())
			if errors.Is(err, os.ErrExist) {
				return fmt.Errorf("%w: %s", errConfigExists, configPath)
			}

			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", configPath)

			return nil
		},
	}

	command.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")

	return command
}
