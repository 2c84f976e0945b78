package services

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration matches every *ConfigurationError via errors.Is.
	ErrConfiguration    = errors.New("configuration error")
	ErrBusinessNotFound = errors.New("business not found")
)

// ConfigurationError reports a missing or broken classifier/resolver table entry.
// It indicates a programming error, never a condition to recover from.
type ConfigurationError struct {
	Code   string
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	msg := fmt.Sprintf("configuration error: %s: %s", e.Code, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}
