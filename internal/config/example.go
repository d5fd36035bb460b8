package config

// Example returns a configuration showing every feature, written by the init command.
func Example() *Config {
	return &Config{
		StackName:     "fooservice-dev",
		NameTemplate:  DefaultNameTemplate,
		DefaultAlarms: []string{"functionErrors", "functionThrottles"},
		Definitions: map[string]*Definition{
			"functionErrors": {
				Threshold:    5,
				AlarmActions: []string{"arn:aws:sns:us-east-1:123456789012:alerts"},
			},
			"bunnyHops": {
				Description:        "Too many bunny hops",
				Namespace:          "Bunny",
				Metric:             "Hops",
				Threshold:          10,
				Statistic:          "Sum",
				Period:             300,
				EvaluationPeriods:  1,
				ComparisonOperator: "GreaterThanThreshold",
				Pattern:            "{$.hops > 10}",
			},
		},
		Functions: map[string]*Function{
			"hello": {
				LogicalID:         "HelloLambdaFunction",
				FullName:          "fooservice-dev-hello",
				LogGroupLogicalID: "HelloLogGroup",
				Alarms:            []string{"bunnyHops"},
			},
		},
	}
}
