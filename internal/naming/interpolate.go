package naming

import "strings"

// Placeholders recognized by AlarmName.
const (
	FunctionNamePlaceholder = "$[functionName]"
	FunctionIDPlaceholder   = "$[functionId]"
	MetricNamePlaceholder   = "$[metricName]"
	MetricIDPlaceholder     = "$[metricId]"
	StackNamePlaceholder    = "$[stackName]"

	// DefaultPrefixTemplate is used when NameOptions.PrefixTemplate is nil.
	DefaultPrefixTemplate = StackNamePlaceholder

	prefixSeparator = "-"
)

// NameOptions holds the inputs of AlarmName.
type NameOptions struct {
	// Template is the alarm name template.
	Template string `validate:"required"`
	// PrefixTemplate overrides DefaultPrefixTemplate. A pointer to "" disables the prefix.
	PrefixTemplate *string
	// FunctionName replaces $[functionName].
	FunctionName string `validate:"required"`
	// FunctionLogicalID replaces $[functionId].
	FunctionLogicalID string `validate:"required"`
	// MetricName replaces $[metricName].
	MetricName string `validate:"required"`
	// MetricID replaces $[metricId].
	MetricID string `validate:"required"`
	// StackName replaces $[stackName] in the prefix template.
	StackName string `validate:"required"`
}

// AlarmName interpolates the alarm name template and prepends the interpolated prefix.
//
// Only the first occurrence of each placeholder is substituted, so a template
// repeating $[metricName] keeps the second occurrence verbatim. Every string
// option except PrefixTemplate is required, whether or not the templates refer
// to it.
func AlarmName(opts *NameOptions) (string, error) {
	if opts == nil {
		return "", errOptionsNotSet
	}

	if err := validate.Struct(opts); err != nil {
		return "", validationError(err)
	}

	name := opts.Template
	for _, substitution := range []struct{ placeholder, value string }{
		{FunctionNamePlaceholder, opts.FunctionName},
		{FunctionIDPlaceholder, opts.FunctionLogicalID},
		{MetricNamePlaceholder, opts.MetricName},
		{MetricIDPlaceholder, opts.MetricID},
	} {
		name = strings.Replace(name, substitution.placeholder, substitution.value, 1)
	}

	prefixTemplate := DefaultPrefixTemplate
	if opts.PrefixTemplate != nil {
		prefixTemplate = *opts.PrefixTemplate
	}

	prefix := strings.Replace(prefixTemplate, StackNamePlaceholder, opts.StackName, 1)
	if prefix == "" {
		return name, nil
	}

	return prefix + prefixSeparator + name, nil
}
