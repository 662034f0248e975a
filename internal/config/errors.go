package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig indicates a setting with an unusable value.
var ErrInvalidConfig = errors.New("invalid configuration")

// ValidationError describes a validation failure for a setting.
type ValidationError struct {
	// Key is the dotted setting path, e.g. "history.max_entries".
	Key string
	// Value is the invalid value.
	Value any
	// Message describes the problem.
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s = %v: %s", e.Key, e.Value, e.Message)
}

// Unwrap lets errors.Is match ErrInvalidConfig.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfig
}
