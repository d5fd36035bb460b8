// Package logger wraps zap with a global sugared logger, context helpers
// (ToContext/FromContext/WithName/WithKV/WithContextLevel) and level utilities.
//
// Output goes to stderr so that commands can print their results on stdout.
// Services receive a context and extract the logger from it.
package logger
