package naming

import (
	"github.com/oshokin/alarm-naming/internal/domain/alarm"
)

const (
	// FunctionNameDimension is the reserved dimension injected for every function alarm.
	FunctionNameDimension = "FunctionName"
	// ResourceDimension identifies a specific function version.
	ResourceDimension = "Resource"

	versionAttribute  = "Version"
	resourceDelimiter = ":"
)

// DimensionsConfig describes the dimensions of a single function alarm.
type DimensionsConfig struct {
	// Dimensions are supplied by the caller. Nil means none.
	Dimensions []alarm.Dimension
	// FunctionRef is the logical ID of the function, referenced by the FunctionName dimension.
	FunctionRef string `validate:"required"`
	// FunctionVersionLogicalID enables the Resource dimension when set.
	FunctionVersionLogicalID string
	// OmitDefaultDimension returns Dimensions as is, without FunctionName.
	OmitDefaultDimension bool
	// FunctionFullName is the deployed function name joined with the version in the Resource dimension.
	FunctionFullName string `validate:"required_with=FunctionVersionLogicalID"`
}

// BuildDimensions returns the dimension list of a function alarm.
//
// Caller dimensions named FunctionName are dropped and a single FunctionName
// dimension referencing FunctionRef is appended, followed by the optional
// Resource dimension. The input slice is never modified.
func BuildDimensions(cfg *DimensionsConfig) ([]alarm.Dimension, error) {
	if cfg == nil {
		return nil, errOptionsNotSet
	}

	if cfg.OmitDefaultDimension {
		return alarm.CloneDimensions(cfg.Dimensions), nil
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, validationError(err)
	}

	dimensions := make([]alarm.Dimension, 0, len(cfg.Dimensions)+2)

	for _, dimension := range cfg.Dimensions {
		if dimension.Name == FunctionNameDimension {
			continue
		}

		dimensions = append(dimensions, dimension)
	}

	dimensions = append(dimensions, alarm.Dimension{
		Name:  FunctionNameDimension,
		Value: alarm.Ref{LogicalID: cfg.FunctionRef},
	})

	if cfg.FunctionVersionLogicalID == "" {
		return dimensions, nil
	}

	return append(dimensions, alarm.Dimension{
		Name: ResourceDimension,
		Value: alarm.Join{
			Delimiter: resourceDelimiter,
			Values: []any{
				cfg.FunctionFullName,
				alarm.GetAtt{LogicalID: cfg.FunctionVersionLogicalID, Attribute: versionAttribute},
			},
		},
	}), nil
}
