package naming

const (
	alarmSuffix           = "Alarm"
	logMetricFilterSuffix = "LogMetricFilter"
)

// AlarmReference returns the logical ID of an alarm resource, e.g.
// ("functionErrors", "prefix") -> "PrefixFunctionErrorsAlarm".
func AlarmReference(alarmName, prefix string) string {
	return Normalize(prefix) + Normalize(alarmName) + alarmSuffix
}

// LogMetricReference returns the logical ID of a log metric filter.
// normalizedName must already be normalized; alarmName only gets its first rune upper-cased.
func LogMetricReference(normalizedName, alarmName string) string {
	return normalizedName + UpperFirst(alarmName) + logMetricFilterSuffix
}

// PatternMetricName returns the name of the metric published by a log metric filter.
// functionName is appended verbatim.
func PatternMetricName(metricName, functionName string) string {
	return UpperFirst(metricName) + functionName
}
