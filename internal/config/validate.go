package config

import (
	"errors"
	"fmt"

	"github.com/tessro/dialogcoach/internal/logging"
)

// Validation errors.
var (
	ErrInvalidLogLevel  = errors.New("log_level must be 'debug', 'info', 'warn', or 'error'")
	ErrInvalidDemoCount = errors.New("demo count must be between 0 and 1000")
)

// MaxDemoCount bounds [demo].count.
const MaxDemoCount = 1000

// ValidationError wraps a validation error with context.
type ValidationError struct {
	Field   string
	Value   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s: %s (got %q)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validate checks the config for invalid values. A nil config is valid.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if err := ValidateLogLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Demo.Count != nil {
		if err := ValidateDemoCount(*c.Demo.Count); err != nil {
			return err
		}
	}
	return nil
}

// ValidateLogLevel validates a log level. Empty means the default.
func ValidateLogLevel(level string) error {
	if level == "" || logging.ValidLevel(level) {
		return nil
	}
	return &ValidationError{
		Field:   "log_level",
		Value:   level,
		Message: "must be 'debug', 'info', 'warn', or 'error'",
		Err:     ErrInvalidLogLevel,
	}
}

// ValidateDemoCount validates the number of synthetic employees.
func ValidateDemoCount(n int) error {
	if n < 0 || n > MaxDemoCount {
		return &ValidationError{
			Field:   "demo.count",
			Value:   fmt.Sprintf("%d", n),
			Message: fmt.Sprintf("must be between 0 and %d", MaxDemoCount),
			Err:     ErrInvalidDemoCount,
		}
	}
	return nil
}
