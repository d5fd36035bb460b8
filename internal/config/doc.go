// Package config defines the alarm naming configuration and provides helpers
// to load, validate and save it in YAML format.
//
// A Config names the stack, the name and prefix templates, the alarm
// definitions (merged over the built-in Lambda alarms) and the functions the
// alarms are attached to. Files are accessed through an afero filesystem so
// callers and tests can swap the OS filesystem for an in-memory one.
package config
