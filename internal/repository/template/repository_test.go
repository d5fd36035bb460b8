package template

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/alarm-naming/internal/domain/alarm"
)

func sampleFragment() *alarm.Fragment {
	fragment := alarm.NewFragment()
	fragment.Add("HelloFunctionErrorsAlarm", &alarm.Resource{
		Type: alarm.AlarmResourceType,
		Properties: &alarm.AlarmProperties{
			AlarmName:  "fooservice-dev-hello-functionErrors",
			Namespace:  "AWS/Lambda",
			MetricName: "Errors",
			Threshold:  1,
			Dimensions: []alarm.Dimension{
				{Name: "FunctionName", Value: alarm.Ref{LogicalID: "HelloLambdaFunction"}},
			},
		},
	})

	return fragment
}

// TestParseFormat verifies accepted spellings and the unknown format error.
func TestParseFormat(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]Format{"json": FormatJSON, "YAML": FormatYAML, " yml ": FormatYAML} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := ParseFormat("toml")
	require.ErrorIs(t, err, ErrUnknownFormat)

	require.Equal(t, FormatYAML, FormatFromPath("out/alarms.YML"))
	require.Equal(t, FormatJSON, FormatFromPath("alarms.json"))
	require.Equal(t, FormatJSON, FormatFromPath("alarms"))
}

// TestFileRepository_SaveJSON writes JSON into a nested directory.
func TestFileRepository_SaveJSON(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	repo := NewFileRepository(fs, "out/alarms.json", FormatJSON)

	require.NoError(t, repo.Save(context.Background(), sampleFragment()))

	data, err := afero.ReadFile(fs, "out/alarms.json")
	require.NoError(t, err)
	require.JSONEq(t, `{
		"Resources": {
			"HelloFunctionErrorsAlarm": {
				"Type": "AWS::CloudWatch::Alarm",
				"Properties": {
					"AlarmName": "fooservice-dev-hello-functionErrors",
					"Namespace": "AWS/Lambda",
					"MetricName": "Errors",
					"Threshold": 1,
					"Dimensions": [{"Name": "FunctionName", "Value": {"Ref": "HelloLambdaFunction"}}]
				}
			}
		}
	}`, string(data))

	require.Error(t, repo.Save(context.Background(), nil))
}

// TestStreamRepository_SaveYAML writes YAML that decodes to the JSON shape.
func TestStreamRepository_SaveYAML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	repo := NewStreamRepository(&buf, FormatYAML)
	require.NoError(t, repo.Save(context.Background(), sampleFragment()))

	var fromYAML map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &fromYAML))

	data, err := Encode(sampleFragment(), FormatJSON)
	require.NoError(t, err)

	var fromJSON map[string]any
	require.NoError(t, json.Unmarshal(data, &fromJSON))

	yamlAsJSON, err := json.Marshal(fromYAML)
	require.NoError(t, err)
	require.JSONEq(t, string(data), string(yamlAsJSON))

	_, err = Encode(sampleFragment(), Format("xml"))
	require.ErrorIs(t, err, ErrUnknownFormat)
}
