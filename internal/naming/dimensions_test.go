package naming

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/alarm-naming/internal/domain/alarm"
)

// TestBuildDimensions_OverridesFunctionName asserts that caller FunctionName entries are replaced by the default.
func TestBuildDimensions_OverridesFunctionName(t *testing.T) {
	t.Parallel()

	input := []alarm.Dimension{
		{Name: "FunctionName", Value: "overridden"},
		{Name: "Duck", Value: "QUACK"},
	}

	got, err := BuildDimensions(&DimensionsConfig{
		Dimensions:  input,
		FunctionRef: "funcName",
	})
	require.NoError(t, err)
	require.Equal(t, []alarm.Dimension{
		{Name: "Duck", Value: "QUACK"},
		{Name: "FunctionName", Value: alarm.Ref{LogicalID: "funcName"}},
	}, got)

	// Input untouched.
	require.Equal(t, "FunctionName", input[0].Name)
	require.Len(t, input, 2)
}

// TestBuildDimensions_Defaults covers absent and FunctionName-free caller lists.
func TestBuildDimensions_Defaults(t *testing.T) {
	t.Parallel()

	got, err := BuildDimensions(&DimensionsConfig{FunctionRef: "funcName"})
	require.NoError(t, err)
	require.Equal(t, []alarm.Dimension{
		{Name: "FunctionName", Value: alarm.Ref{LogicalID: "funcName"}},
	}, got)

	got, err = BuildDimensions(&DimensionsConfig{
		Dimensions:  []alarm.Dimension{{Name: "Duck", Value: "QUACK"}},
		FunctionRef: "funcName",
	})
	require.NoError(t, err)
	require.Equal(t, []alarm.Dimension{
		{Name: "Duck", Value: "QUACK"},
		{Name: "FunctionName", Value: alarm.Ref{LogicalID: "funcName"}},
	}, got)
}

// TestBuildDimensions_RemovesEveryFunctionName keeps the relative order of the other entries.
func TestBuildDimensions_RemovesEveryFunctionName(t *testing.T) {
	t.Parallel()

	got, err := BuildDimensions(&DimensionsConfig{
		Dimensions: []alarm.Dimension{
			{Name: "A", Value: "1"},
			{Name: "FunctionName", Value: "x"},
			{Name: "B", Value: "2"},
			{Name: "FunctionName", Value: "y"},
			{Name: "A", Value: "3"},
		},
		FunctionRef: "fn",
	})
	require.NoError(t, err)
	require.Equal(t, []alarm.Dimension{
		{Name: "A", Value: "1"},
		{Name: "B", Value: "2"},
		{Name: "A", Value: "3"},
		{Name: "FunctionName", Value: alarm.Ref{LogicalID: "fn"}},
	}, got)
}

// TestBuildDimensions_OmitDefault returns the caller list unchanged.
func TestBuildDimensions_OmitDefault(t *testing.T) {
	t.Parallel()

	input := []alarm.Dimension{{Name: "Duck", Value: "QUACK"}}

	got, err := BuildDimensions(&DimensionsConfig{
		Dimensions:           input,
		FunctionRef:          "funcName",
		OmitDefaultDimension: true,
	})
	require.NoError(t, err)
	require.Equal(t, input, got)

	// Absent list and no function ref are fine when the default is omitted.
	got, err = BuildDimensions(&DimensionsConfig{OmitDefaultDimension: true})
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

// TestBuildDimensions_Resource asserts the Resource dimension is appended last.
func TestBuildDimensions_Resource(t *testing.T) {
	t.Parallel()

	got, err := BuildDimensions(&DimensionsConfig{
		FunctionRef:              "funcRef",
		FunctionVersionLogicalID: "funcVersionLogicalId",
		FunctionFullName:         "funcFullName",
	})
	require.NoError(t, err)
	require.Equal(t, []alarm.Dimension{
		{Name: "FunctionName", Value: alarm.Ref{LogicalID: "funcRef"}},
		{
			Name: "Resource",
			Value: alarm.Join{
				Delimiter: ":",
				Values: []any{
					"funcFullName",
					alarm.GetAtt{LogicalID: "funcVersionLogicalId", Attribute: "Version"},
				},
			},
		},
	}, got)
}

// TestBuildDimensions_ConfigurationErrors covers missing required fields.
func TestBuildDimensions_ConfigurationErrors(t *testing.T) {
	t.Parallel()

	_, err := BuildDimensions(nil)
	require.ErrorIs(t, err, ErrConfiguration)

	_, err = BuildDimensions(&DimensionsConfig{})
	require.ErrorIs(t, err, ErrConfiguration)
	require.ErrorContains(t, err, "FunctionRef")

	_, err = BuildDimensions(&DimensionsConfig{
		FunctionRef:              "funcRef",
		FunctionVersionLogicalID: "funcVersionLogicalId",
	})
	require.ErrorIs(t, err, ErrConfiguration)
	require.ErrorContains(t, err, "FunctionFullName")
}
