package validation

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidField is the sentinel for entity-level setter violations.
// Callers branch on it with errors.Is.
var ErrInvalidField = errors.New("invalid field")

func Fieldf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidField, fmt.Sprintf(format, args...))
}

func RequireNonBlank(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return Fieldf("%s must not be blank", field)
	}
	return nil
}

func RequirePositiveInt(field string, value int) error {
	if value <= 0 {
		return Fieldf("%s must be a positive integer, got %d", field, value)
	}
	return nil
}

func RequireNonNegative(field string, value float64) error {
	if value < 0 {
		return Fieldf("%s must not be negative, got %v", field, value)
	}
	return nil
}
