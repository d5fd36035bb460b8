// Package render turns an alarm configuration into a CloudFormation fragment.
//
// For every function and each of its resolved alarms it emits an
// AWS::CloudWatch::Alarm, plus an AWS::Logs::MetricFilter for pattern alarms,
// with logical IDs, alarm names and dimensions computed by package naming.
package render
