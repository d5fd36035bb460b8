package naming

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const fullTemplate = "$[functionName]-$[functionId]-$[metricName]-$[metricId]"

func nameOptions() *NameOptions {
	return &NameOptions{
		Template:          fullTemplate,
		FunctionName:      "function",
		FunctionLogicalID: "functionId",
		MetricName:        "metric",
		MetricID:          "metricId",
		StackName:         "fooservice-dev",
	}
}

func ptr(s string) *string {
	return &s
}

// TestAlarmName covers default, custom and empty prefix templates.
func TestAlarmName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		prefix *string
		want   string
	}{
		{"default prefix", nil, "fooservice-dev-function-functionId-metric-metricId"},
		{"custom prefix", ptr("notTheStackName"), "notTheStackName-function-functionId-metric-metricId"},
		{"empty prefix", ptr(""), "function-functionId-metric-metricId"},
		{"prefix with stack", ptr("alarms-$[stackName]"), "alarms-fooservice-dev-function-functionId-metric-metricId"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			opts := nameOptions()
			opts.PrefixTemplate = tc.prefix

			got, err := AlarmName(opts)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

// TestAlarmName_FirstOccurrenceOnly documents that repeated placeholders are substituted once.
func TestAlarmName_FirstOccurrenceOnly(t *testing.T) {
	t.Parallel()

	opts := nameOptions()
	opts.Template = "$[metricName]/$[metricName]"
	opts.PrefixTemplate = ptr("$[stackName]$[stackName]")

	got, err := AlarmName(opts)
	require.NoError(t, err)
	require.Equal(t, "fooservice-dev$[stackName]-metric/$[metricName]", got)
}

// TestAlarmName_LiteralValues verifies values are inserted verbatim.
func TestAlarmName_LiteralValues(t *testing.T) {
	t.Parallel()

	opts := nameOptions()
	opts.Template = "$[functionName]"
	opts.FunctionName = "fn-$&-$1"
	opts.PrefixTemplate = ptr("")

	got, err := AlarmName(opts)
	require.NoError(t, err)
	require.Equal(t, "fn-$&-$1", got)
}

// TestAlarmName_ConfigurationErrors covers missing required fields.
func TestAlarmName_ConfigurationErrors(t *testing.T) {
	t.Parallel()

	_, err := AlarmName(nil)
	require.ErrorIs(t, err, ErrConfiguration)

	opts := nameOptions()
	opts.Template = ""
	opts.MetricID = ""

	_, err = AlarmName(opts)
	require.ErrorIs(t, err, ErrConfiguration)
	require.ErrorContains(t, err, "Template")
	require.ErrorContains(t, err, "MetricID")

	// Fields are required even when no template refers to them.
	opts = nameOptions()
	opts.Template = "static"
	opts.PrefixTemplate = ptr("")
	opts.StackName = ""
	opts.FunctionLogicalID = ""

	_, err = AlarmName(opts)
	require.ErrorIs(t, err, ErrConfiguration)
	require.ErrorContains(t, err, "FunctionLogicalID")
	require.ErrorContains(t, err, "StackName")

	opts.StackName = "s"
	opts.FunctionLogicalID = "id"

	got, err := AlarmName(opts)
	require.NoError(t, err)
	require.Equal(t, "static", got)
}
