package logger

import "log"

// A LoggerOptFn is a functional option configuring a FieldLogger when constructing a new one.
type LoggerOptFn func(*FieldLogger)

// WithLevel sets the log level FieldLogger uses.
func WithLevel(level LogLevel) func(*FieldLogger) {
	return func(l *FieldLogger) {
		l.ll = level
	}
}

// WithLogger sets the log.Logger FieldLogger uses.
func WithLogger(log *log.Logger) func(*FieldLogger) {
	return func(l *FieldLogger) {
		l.l = log
	}
}
