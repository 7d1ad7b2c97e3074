package core

import "fmt"

// Logger is the diagnostic sink the CLI uses to report scene-load counts,
// render time, and throughput. Kept as an
// interface so tests can swap in a recording logger.
type Logger interface {
	Printf(format string, args ...interface{})
}

// DefaultLogger implements Logger by writing to stdout.
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates the standard stdout Logger.
func NewDefaultLogger() Logger {
	return &DefaultLogger{}
}
