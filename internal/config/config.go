package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/alarm-naming/internal/domain/alarm"
)

// Config describes the alarms to generate for a stack.
type Config struct {
	// StackName is the deployed stack name, substituted for $[stackName].
	StackName string `yaml:"stack_name" validate:"required"`
	// NameTemplate is the default alarm name template.
	NameTemplate string `yaml:"name_template,omitempty"`
	// PrefixTemplate is the default alarm name prefix template.
	PrefixTemplate OptionalString `yaml:"prefix_template,omitempty"`
	// DefaultAlarms are attached to every function.
	DefaultAlarms []string `yaml:"default_alarms,omitempty"`
	// Definitions are user alarm definitions keyed by alarm name.
	Definitions map[string]*Definition `yaml:"definitions,omitempty" validate:"dive,required"`
	// Functions are the functions to alarm on keyed by function name.
	Functions map[string]*Function `yaml:"functions" validate:"required,min=1,dive,required"`
}

// Definition describes a single CloudWatch alarm.
type Definition struct {
	// Description becomes the AlarmDescription property.
	Description string `yaml:"description,omitempty"`
	// Namespace is the metric namespace, e.g. AWS/Lambda.
	Namespace string `yaml:"namespace,omitempty"`
	// Metric is the metric name, or the base of the pattern metric name when Pattern is set.
	Metric string `yaml:"metric,omitempty"`
	// Threshold is compared against the statistic.
	Threshold float64 `yaml:"threshold,omitempty"`
	// Statistic is the aggregation applied to the metric.
	Statistic string `yaml:"statistic,omitempty" validate:"omitempty,oneof=SampleCount Average Sum Minimum Maximum"`
	// Period is the aggregation period in seconds.
	Period int `yaml:"period,omitempty" validate:"gte=0"`
	// EvaluationPeriods is the number of periods compared to the threshold.
	EvaluationPeriods int `yaml:"evaluation_periods,omitempty" validate:"gte=0"`
	// DatapointsToAlarm is the number of breaching datapoints required, zero to omit.
	DatapointsToAlarm int `yaml:"datapoints_to_alarm,omitempty" validate:"gte=0"`
	// ComparisonOperator is the CloudWatch comparison operator.
	//nolint:lll // Validation tag lists every allowed operator.
	ComparisonOperator string `yaml:"comparison_operator,omitempty" validate:"omitempty,oneof=GreaterThanOrEqualToThreshold GreaterThanThreshold LessThanThreshold LessThanOrEqualToThreshold"`
	// TreatMissingData controls how missing datapoints are evaluated.
	TreatMissingData string `yaml:"treat_missing_data,omitempty" validate:"omitempty,oneof=breaching notBreaching ignore missing"`
	// Pattern turns the alarm into a log metric filter alarm.
	Pattern string `yaml:"pattern,omitempty"`
	// Dimensions are merged with the default FunctionName dimension.
	Dimensions []alarm.Dimension `yaml:"dimensions,omitempty"`
	// OmitDefaultDimension disables the FunctionName dimension.
	OmitDefaultDimension bool `yaml:"omit_default_dimension,omitempty"`
	// NameTemplate overrides Config.NameTemplate for this alarm.
	NameTemplate string `yaml:"name_template,omitempty"`
	// PrefixTemplate overrides Config.PrefixTemplate for this alarm.
	PrefixTemplate OptionalString `yaml:"prefix_template,omitempty"`
	// AlarmActions are notified when the alarm fires.
	AlarmActions []string `yaml:"alarm_actions,omitempty"`
	// OKActions are notified when the alarm recovers.
	OKActions []string `yaml:"ok_actions,omitempty"`
	// InsufficientDataActions are notified when data is missing.
	InsufficientDataActions []string `yaml:"insufficient_data_actions,omitempty"`
}

// Function describes a deployed function and the alarms attached to it.
type Function struct {
	// LogicalID is the logical ID of the function resource.
	LogicalID string `yaml:"logical_id" validate:"required"`
	// FullName is the deployed function name.
	FullName string `yaml:"full_name" validate:"required"`
	// VersionLogicalID adds the Resource dimension when set.
	VersionLogicalID string `yaml:"version_logical_id,omitempty"`
	// LogGroupLogicalID is the log group that pattern alarms filter.
	LogGroupLogicalID string `yaml:"log_group_logical_id,omitempty"`
	// LogGroupName is the deployed log group name used by metric filters.
	LogGroupName string `yaml:"log_group_name,omitempty"`
	// Alarms are attached in addition to Config.DefaultAlarms.
	Alarms []string `yaml:"alarms,omitempty"`
	// DisabledAlarms are removed from the default alarms.
	DisabledAlarms []string `yaml:"disabled_alarms,omitempty"`
	// Definitions override alarm definitions for this function only.
	Definitions map[string]*Definition `yaml:"definitions,omitempty" validate:"dive,required"`
}

const (
	// DefaultConfigFilename is the default filename of the alarm configuration.
	DefaultConfigFilename = "alarm-naming.yaml"

	// DefaultNameTemplate is used when neither the config nor the definition sets a name template.
	DefaultNameTemplate = "$[functionName]-$[metricId]"

	// DefaultFilePermissions is the default file permission for written files.
	DefaultFilePermissions = 0o600
)

var (
	// ErrInvalid is wrapped by every validation failure.
	ErrInvalid = errors.New("invalid configuration")
	// ErrUnknownAlarm is returned when an alarm reference has no definition.
	ErrUnknownAlarm = errors.New("unknown alarm")

	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")

	// validate checks struct tags of configuration types.
	//nolint:gochecknoglobals // Validator caches struct metadata and is safe for concurrent use.
	validate = validator.New(validator.WithRequiredStructEnabled())
)

// LoadFs reads configuration from the provided path on an arbitrary filesystem and validates it.
func LoadFs(fs afero.Fs, path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := afero.ReadFile(fs, filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read configuration: %w", err)
	}

	var cfg Config
	if err = yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}

	if err = Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SaveFs validates and writes the configuration to the provided path on an arbitrary filesystem.
func SaveFs(fs afero.Fs, path string, cfg *Config) error {
	return writeFs(fs, path, cfg, os.O_WRONLY|os.O_CREATE|os.O_TRUNC)
}

// CreateFs is SaveFs that refuses to replace an existing file.
// The returned error then matches os.ErrExist.
func CreateFs(fs afero.Fs, path string, cfg *Config) error {
	return writeFs(fs, path, cfg, os.O_WRONLY|os.O_CREATE|os.O_EXCL)
}

func writeFs(fs afero.Fs, path string, cfg *Config, flag int) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal configuration: %w", err)
	}

	file, err := fs.OpenFile(filepath.Clean(path), flag, DefaultFilePermissions)
	if err != nil {
		return fmt.Errorf("open configuration: %w", err)
	}

	_, err = file.Write(data)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}

	if err != nil {
		return fmt.Errorf("write configuration: %w", err)
	}

	return nil
}

// Validate checks required fields and alarm references, and fills defaults.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	if cfg.NameTemplate == "" {
		cfg.NameTemplate = DefaultNameTemplate
	}

	for _, name := range slices.Sorted(maps.Keys(cfg.Functions)) {
		if _, err := cfg.Resolve(name); err != nil {
			return err
		}
	}

	return nil
}
