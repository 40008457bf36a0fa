package core

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is returned when scene or camera input violates
// the preconditions the geometry relies on.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// ConfigError wraps ErrInvalidConfiguration with the offending field
func ConfigError(field, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidConfiguration, field, fmt.Sprintf(format, args...))
}

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// DefaultLogger implements Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() Logger {
	return &DefaultLogger{}
}
