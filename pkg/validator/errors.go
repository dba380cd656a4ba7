package validator

import (
	"errors"
	"fmt"
)

// Configuration errors. They signal a programming mistake in the rule set or
// the registries and abort Validate immediately.
var (
	// ErrUnknownRule is returned when a rule descriptor resolves to a key with no registered predicate.
	ErrUnknownRule = errors.New("validator: unknown rule")

	// ErrMissingMessage is returned when a rule fails and no message is registered for its key.
	ErrMissingMessage = errors.New("validator: missing message for rule")

	// ErrValidationFailed is the error text used by an empty ValidationErrors value.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidConfig is returned by NewFromConfig when the configuration cannot be applied.
	ErrInvalidConfig = errors.New("validator: invalid configuration")
)

// ConfigError identifies the field and rule key that triggered a configuration error.
type ConfigError struct {
	Field string
	Key   string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %q (field %q)", e.Err, e.Key, e.Field)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
