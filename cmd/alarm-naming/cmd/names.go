package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oshokin/alarm-naming/internal/domain/alarm"
	"github.com/oshokin/alarm-naming/internal/naming"
)

// errBadDimension is returned for --dimension values without "=".
var errBadDimension = errors.New("dimension must be NAME=VALUE")

func newNormalizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <fragment>",
		Short: "Print the identifier-safe token of a fragment.",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), naming.Normalize(args[0]))
		},
	}
}

func newAlarmRefCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "alarm-ref <alarm> <prefix>",
		Short: "Print the logical ID of an alarm.",
		Args:  cobra.ExactArgs(2), //nolint:mnd // Alarm and prefix.
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), naming.AlarmReference(args[0], args[1]))
		},
	}
}

func newLogMetricRefCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "log-metric-ref <normalized-name> <alarm>",
		Short: "Print the logical ID of a log metric filter.",
		Args:  cobra.ExactArgs(2), //nolint:mnd // Normalized name and alarm.
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), naming.LogMetricReference(args[0], args[1]))
		},
	}
}

func newPatternMetricCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pattern-metric <metric> <function>",
		Short: "Print the metric name published by a log metric filter.",
		Args:  cobra.ExactArgs(2), //nolint:mnd // Metric and function.
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), naming.PatternMetricName(args[0], args[1]))
		},
	}
}

func newAlarmNameCommand() *cobra.Command {
	var (
		options        naming.NameOptions
		prefixTemplate string
	)

	command := &cobra.Command{
		Use:   "alarm-name",
		Short: "Interpolate an alarm name template.",
		Long: `Substitutes $[functionName], $[functionId], $[metricName] and $[metricId]
in the template and prepends the prefix template with $[stackName] substituted.

Without --prefix-template the prefix is the stack name. An explicit empty
--prefix-template="" disables the prefix. Only the first occurrence of each
placeholder is substituted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("prefix-template") {
				options.PrefixTemplate = &prefixTemplate
			}

			name, err := naming.AlarmName(&options)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), name)

			return nil
		},
	}

	flags := command.Flags()
	flags.StringVarP(&options.Template, "template", "t", "", "alarm name template")
	flags.StringVarP(&prefixTemplate, "prefix-template", "p", "", "prefix template, defaults to $[stackName]")
	flags.StringVar(&options.FunctionName, "function-name", "", "value of $[functionName]")
	flags.StringVar(&options.FunctionLogicalID, "function-id", "", "value of $[functionId]")
	flags.StringVar(&options.MetricName, "metric-name", "", "value of $[metricName]")
	flags.StringVar(&options.MetricID, "metric-id", "", "value of $[metricId]")
	flags.StringVarP(&options.StackName, "stack-name", "s", "", "value of $[stackName]")

	return command
}

func newDimensionsCommand() *cobra.Command {
	var (
		options    naming.DimensionsConfig
		dimensions []string
	)

	command := &cobra.Command{
		Use:   "dimensions",
		Short: "Print the dimension list of a function alarm as JSON.",
		Long: `Builds the dimension list of a function alarm: caller dimensions without
FunctionName, then FunctionName referencing the function, then Resource when a
version logical ID is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, raw := range dimensions {
				name, value, ok := strings.Cut(raw, "=")
				if !ok {
					return fmt.Errorf("%w: %q", errBadDimension, raw)
				}

				options.Dimensions = append(options.Dimensions, alarm.Dimension{Name: name, Value: value})
			}

			result, err := naming.BuildDimensions(&options)
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return fmt.Errorf("encode dimensions: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(data))

			return nil
		},
	}

	flags := command.Flags()
	flags.StringArrayVarP(&dimensions, "dimension", "d", nil, "caller dimension NAME=VALUE, repeatable")
	flags.StringVar(&options.FunctionRef, "function-ref", "", "logical ID of the function")
	flags.StringVar(&options.FunctionVersionLogicalID, "version-logical-id", "", "logical ID of the function version")
	flags.StringVar(&options.FunctionFullName, "function-full-name", "", "deployed function name")
	flags.BoolVar(&options.OmitDefaultDimension, "omit-default-dimension", false, "skip the FunctionName dimension")

	return command
}
