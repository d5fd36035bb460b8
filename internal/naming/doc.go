// Package naming derives CloudFormation identifiers, alarm names and metric
// dimension lists for function alarms.
//
// Every function in this package is pure: the result depends only on the
// arguments, nothing is cached, and calls are safe from any goroutine.
//
// Normalize is the shared leaf. It escapes the two separators that are not
// allowed in logical IDs ("-" becomes "Dash", "_" becomes "Underscore", in
// that order) and upper-cases the first rune. AlarmReference,
// LogMetricReference and PatternMetricName compose those tokens into the
// logical IDs and metric names used by the template. BuildDimensions merges
// caller dimensions with the default FunctionName dimension, and AlarmName
// fills the alarm name template.
//
// Invalid input is reported with errors wrapping ErrConfiguration.
package naming
