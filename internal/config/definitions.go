package config

import (
	"errors"
	"fmt"
	"slices"

	"dario.cat/mergo"
)

const lambdaNamespace = "AWS/Lambda"

// ErrUnknownFunction is returned when resolving alarms of a function that is not configured.
var ErrUnknownFunction = errors.New("unknown function")

// Alarm is an alarm definition resolved for one function.
type Alarm struct {
	Definition

	// Key is the alarm name used in definitions and alarm lists.
	Key string
	// EffectiveNameTemplate is the definition template or the config default.
	EffectiveNameTemplate string
	// EffectivePrefixTemplate is nil when neither the definition nor the config sets one.
	EffectivePrefixTemplate *string
}

// IsPattern reports whether the alarm watches a log metric filter.
func (a *Alarm) IsPattern() bool {
	return a.Pattern != ""
}

// BuiltinDefinitions returns fresh copies of the built-in Lambda alarm definitions.
func BuiltinDefinitions() map[string]*Definition {
	return map[string]*Definition{
		"functionInvocations": {
			Namespace:          lambdaNamespace,
			Metric:             "Invocations",
			Threshold:          100,
			Statistic:          "Sum",
			Period:             60,
			EvaluationPeriods:  1,
			DatapointsToAlarm:  1,
			ComparisonOperator: "GreaterThanOrEqualToThreshold",
			TreatMissingData:   "missing",
		},
		"functionErrors": {
			Namespace:          lambdaNamespace,
			Metric:             "Errors",
			Threshold:          1,
			Statistic:          "Sum",
			Period:             60,
			EvaluationPeriods:  1,
			DatapointsToAlarm:  1,
			ComparisonOperator: "GreaterThanOrEqualToThreshold",
			TreatMissingData:   "missing",
		},
		"functionDuration": {
			Namespace:          lambdaNamespace,
			Metric:             "Duration",
			Threshold:          500,
			Statistic:          "Average",
			Period:             60,
			EvaluationPeriods:  1,
			DatapointsToAlarm:  1,
			ComparisonOperator: "GreaterThanOrEqualToThreshold",
			TreatMissingData:   "missing",
		},
		"functionThrottles": {
			Namespace:          lambdaNamespace,
			Metric:             "Throttles",
			Threshold:          1,
			Statistic:          "Sum",
			Period:             60,
			EvaluationPeriods:  1,
			DatapointsToAlarm:  1,
			ComparisonOperator: "GreaterThanOrEqualToThreshold",
			TreatMissingData:   "missing",
		},
	}
}

// Resolve returns the alarms of a function in declaration order: default
// alarms not disabled by the function, then the function's own alarms.
// Each definition is the built-in one overridden by the config definition
// and then by the function definition.
func (c *Config) Resolve(functionName string) ([]*Alarm, error) {
	fn, ok := c.Functions[functionName]
	if !ok || fn == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFunction, functionName)
	}

	builtins := BuiltinDefinitions()
	keys := alarmKeys(c.DefaultAlarms, fn)
	alarms := make([]*Alarm, 0, len(keys))

	for _, key := range keys {
		var (
			definition Definition
			found      bool
		)

		for _, layer := range []*Definition{builtins[key], c.Definitions[key], fn.Definitions[key]} {
			if layer == nil {
				continue
			}

			found = true

			err := mergo.Merge(&definition, layer, mergo.WithOverride, mergo.WithTransformers(optionalStringTransformer{}))
			if err != nil {
				return nil, fmt.Errorf("merge definition %s: %w", key, err)
			}
		}

		if !found {
			return nil, fmt.Errorf("%w: %s (function %s)", ErrUnknownAlarm, key, functionName)
		}

		resolved := &Alarm{
			Definition:              definition,
			Key:                     key,
			EffectiveNameTemplate:   c.nameTemplate(&definition),
			EffectivePrefixTemplate: c.prefixTemplate(&definition),
		}

		if err := checkAlarm(resolved, fn); err != nil {
			return nil, fmt.Errorf("function %s: %w", functionName, err)
		}

		alarms = append(alarms, resolved)
	}

	return alarms, nil
}

// alarmKeys merges default and function alarm lists without duplicates.
func alarmKeys(defaults []string, fn *Function) []string {
	keys := make([]string, 0, len(defaults)+len(fn.Alarms))

	for _, key := range defaults {
		if !slices.Contains(fn.DisabledAlarms, key) && !slices.Contains(keys, key) {
			keys = append(keys, key)
		}
	}

	for _, key := range fn.Alarms {
		if !slices.Contains(keys, key) {
			keys = append(keys, key)
		}
	}

	return keys
}

func (c *Config) nameTemplate(definition *Definition) string {
	switch {
	case definition.NameTemplate != "":
		return definition.NameTemplate
	case c.NameTemplate != "":
		return c.NameTemplate
	default:
		return DefaultNameTemplate
	}
}

func (c *Config) prefixTemplate(definition *Definition) *string {
	if definition.PrefixTemplate.Set {
		return definition.PrefixTemplate.Ptr()
	}

	return c.PrefixTemplate.Ptr()
}

// checkAlarm validates a merged definition against its function.
func checkAlarm(resolved *Alarm, fn *Function) error {
	if err := validate.Struct(&resolved.Definition); err != nil {
		return fmt.Errorf("%w: alarm %s: %w", ErrInvalid, resolved.Key, err)
	}

	if resolved.Metric == "" {
		return fmt.Errorf("%w: alarm %s has no metric", ErrInvalid, resolved.Key)
	}

	if resolved.Namespace == "" {
		return fmt.Errorf("%w: alarm %s has no namespace", ErrInvalid, resolved.Key)
	}

	if !resolved.IsPattern() {
		return nil
	}

	// The key is used verbatim in the metric filter logical ID.
	if err := validate.Var(resolved.Key, "alphanum"); err != nil {
		return fmt.Errorf("%w: pattern alarm key %q must contain only letters and digits", ErrInvalid, resolved.Key)
	}

	if fn.LogGroupName == "" && fn.LogGroupLogicalID == "" {
		return fmt.Errorf("%w: pattern alarm %s needs log_group_logical_id or log_group_name", ErrInvalid, resolved.Key)
	}

	return nil
}
