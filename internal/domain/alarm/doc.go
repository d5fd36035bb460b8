// Package alarm contains core domain types for alarm resource definitions.
//
// It defines Dimension (a metric dimension attached to an alarm) and the
// opaque CloudFormation values (Ref, GetAtt, Join) that dimension values and
// resource properties may carry. The values are arranged by the naming code
// but never interpreted, so each type only knows how to render itself as JSON
// or YAML.
package alarm
