package alarm

// CloudFormation resource types emitted for alarms.
const (
	AlarmResourceType        = "AWS::CloudWatch::Alarm"
	MetricFilterResourceType = "AWS::Logs::MetricFilter"
)

// Fragment is the Resources section of a template, merged by the caller into its own document.
type Fragment struct {
	// Resources maps logical IDs to resources.
	Resources map[string]*Resource `json:"Resources" yaml:"Resources"`
}

// NewFragment returns an empty fragment.
func NewFragment() *Fragment {
	return &Fragment{
		Resources: make(map[string]*Resource),
	}
}

// Add stores the resource under logicalID, replacing any previous one.
// Collisions are not detected.
func (f *Fragment) Add(logicalID string, resource *Resource) {
	f.Resources[logicalID] = resource
}

// Resource is a single template resource.
type Resource struct {
	Type       string   `json:"Type"                yaml:"Type"`
	DependsOn  []string `json:"DependsOn,omitempty" yaml:"DependsOn,omitempty"`
	Properties any      `json:"Properties"          yaml:"Properties"`
}

// AlarmProperties are the properties of an AWS::CloudWatch::Alarm.
type AlarmProperties struct {
	AlarmName               string      `json:"AlarmName"                         yaml:"AlarmName"`
	AlarmDescription        string      `json:"AlarmDescription,omitempty"        yaml:"AlarmDescription,omitempty"`
	Namespace               string      `json:"Namespace"                         yaml:"Namespace"`
	MetricName              string      `json:"MetricName"                        yaml:"MetricName"`
	Threshold               float64     `json:"Threshold"                         yaml:"Threshold"`
	Statistic               string      `json:"Statistic,omitempty"               yaml:"Statistic,omitempty"`
	Period                  int         `json:"Period,omitempty"                  yaml:"Period,omitempty"`
	EvaluationPeriods       int         `json:"EvaluationPeriods,omitempty"       yaml:"EvaluationPeriods,omitempty"`
	DatapointsToAlarm       int         `json:"DatapointsToAlarm,omitempty"       yaml:"DatapointsToAlarm,omitempty"`
	ComparisonOperator      string      `json:"ComparisonOperator,omitempty"      yaml:"ComparisonOperator,omitempty"`
	TreatMissingData        string      `json:"TreatMissingData,omitempty"        yaml:"TreatMissingData,omitempty"`
	AlarmActions            []string    `json:"AlarmActions,omitempty"            yaml:"AlarmActions,omitempty"`
	OKActions               []string    `json:"OKActions,omitempty"               yaml:"OKActions,omitempty"`
	InsufficientDataActions []string    `json:"InsufficientDataActions,omitempty" yaml:"InsufficientDataActions,omitempty"`
	Dimensions              []Dimension `json:"Dimensions,omitempty"              yaml:"Dimensions,omitempty"`
}

// MetricFilterProperties are the properties of an AWS::Logs::MetricFilter.
type MetricFilterProperties struct {
	FilterPattern string `json:"FilterPattern" yaml:"FilterPattern"`
	// LogGroupName is a literal name or a Ref to the log group resource.
	LogGroupName          any                    `json:"LogGroupName"          yaml:"LogGroupName"`
	MetricTransformations []MetricTransformation `json:"MetricTransformations" yaml:"MetricTransformations"`
}

// MetricTransformation maps matching log events to a metric.
type MetricTransformation struct {
	MetricValue     string `json:"MetricValue"     yaml:"MetricValue"`
	MetricNamespace string `json:"MetricNamespace" yaml:"MetricNamespace"`
	MetricName      string `json:"MetricName"      yaml:"MetricName"`
}
