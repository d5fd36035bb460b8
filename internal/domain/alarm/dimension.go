package alarm

// Dimension is a single name/value pair attached to an alarm metric.
type Dimension struct {
	// Name is the dimension name, e.g. FunctionName.
	Name string `json:"Name" yaml:"Name"`
	// Value is either a literal or an opaque CloudFormation value (Ref, GetAtt, Join).
	Value any `json:"Value" yaml:"Value"`
}

// CloneDimensions returns a new slice holding the same entries in the same order.
// Values are shared, not deep-copied.
func CloneDimensions(dimensions []Dimension) []Dimension {
	cloned := make([]Dimension, len(dimensions))
	copy(cloned, dimensions)

	return cloned
}
