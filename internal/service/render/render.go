package render

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/oshokin/alarm-naming/internal/config"
	"github.com/oshokin/alarm-naming/internal/domain/alarm"
	"github.com/oshokin/alarm-naming/internal/logger"
	"github.com/oshokin/alarm-naming/internal/naming"
)

// patternMetricValue is published once per matching log event.
const patternMetricValue = "1"

// Render builds the fragment for every configured function, in function name order.
func Render(ctx context.Context, cfg *config.Config) (*alarm.Fragment, error) {
	fragment := alarm.NewFragment()

	for _, functionName := range slices.Sorted(maps.Keys(cfg.Functions)) {
		if err := renderFunction(ctx, cfg, functionName, fragment); err != nil {
			return nil, fmt.Errorf("render function %s: %w", functionName, err)
		}
	}

	return fragment, nil
}

// renderFunction adds the resources of one function to the fragment.
func renderFunction(ctx context.Context, cfg *config.Config, functionName string, fragment *alarm.Fragment) error {
	alarms, err := cfg.Resolve(functionName)
	if err != nil {
		return err
	}

	if len(alarms) == 0 {
		logger.WarnKV(ctx, "Function has no alarms", "function", functionName)

		return nil
	}

	fn := cfg.Functions[functionName]
	normalizedFunction := naming.Normalize(functionName)

	for _, a := range alarms {
		alarmCtx := logger.WithKV(ctx, "function", functionName, "alarm", a.Key)

		name, err := naming.AlarmName(&naming.NameOptions{
			Template:          a.EffectiveNameTemplate,
			PrefixTemplate:    a.EffectivePrefixTemplate,
			FunctionName:      functionName,
			FunctionLogicalID: fn.LogicalID,
			MetricName:        a.Metric,
			MetricID:          a.Key,
			StackName:         cfg.StackName,
		})
		if err != nil {
			return fmt.Errorf("alarm %s name: %w", a.Key, err)
		}

		properties := alarmProperties(name, a)

		if a.IsPattern() {
			filterID := naming.LogMetricReference(normalizedFunction, a.Key)
			properties.MetricName = naming.PatternMetricName(a.Metric, normalizedFunction)

			fragment.Add(filterID, metricFilter(fn, a, properties.MetricName))
			logger.DebugKV(alarmCtx, "Metric filter rendered", "logical_id", filterID, "metric", properties.MetricName)
		} else {
			properties.Dimensions, err = naming.BuildDimensions(&naming.DimensionsConfig{
				Dimensions:               a.Dimensions,
				FunctionRef:              fn.LogicalID,
				FunctionVersionLogicalID: fn.VersionLogicalID,
				OmitDefaultDimension:     a.OmitDefaultDimension,
				FunctionFullName:         fn.FullName,
			})
			if err != nil {
				return fmt.Errorf("alarm %s dimensions: %w", a.Key, err)
			}
		}

		alarmID := naming.AlarmReference(a.Key, functionName)
		fragment.Add(alarmID, &alarm.Resource{
			Type:       alarm.AlarmResourceType,
			Properties: properties,
		})

		logger.DebugKV(alarmCtx, "Alarm rendered", "logical_id", alarmID, "alarm_name", name)
	}

	return nil
}

func alarmProperties(name string, a *config.Alarm) *alarm.AlarmProperties {
	return &alarm.AlarmProperties{
		AlarmName:               name,
		AlarmDescription:        a.Description,
		Namespace:               a.Namespace,
		MetricName:              a.Metric,
		Threshold:               a.Threshold,
		Statistic:               a.Statistic,
		Period:                  a.Period,
		EvaluationPeriods:       a.EvaluationPeriods,
		DatapointsToAlarm:       a.DatapointsToAlarm,
		ComparisonOperator:      a.ComparisonOperator,
		TreatMissingData:        a.TreatMissingData,
		AlarmActions:            a.AlarmActions,
		OKActions:               a.OKActions,
		InsufficientDataActions: a.InsufficientDataActions,
	}
}

// metricFilter publishes pattern matches of the function log group as metricName.
// A log group logical ID wins over a literal log group name.
func metricFilter(fn *config.Function, a *config.Alarm, metricName string) *alarm.Resource {
	var (
		logGroup  any = fn.LogGroupName
		dependsOn []string
	)

	if fn.LogGroupLogicalID != "" {
		logGroup = alarm.Ref{LogicalID: fn.LogGroupLogicalID}
		dependsOn = []string{fn.LogGroupLogicalID}
	}

	return &alarm.Resource{
		Type:      alarm.MetricFilterResourceType,
		DependsOn: dependsOn,
		Properties: &alarm.MetricFilterProperties{
			FilterPattern: a.Pattern,
			LogGroupName:  logGroup,
			MetricTransformations: []alarm.MetricTransformation{{
				MetricValue:     patternMetricValue,
				MetricNamespace: a.Namespace,
				MetricName:      metricName,
			}},
		},
	}
}
