package kt

import (
	"fmt"
	"strings"
)

const (
	defaultRequireMessage = "requirement failed"
	defaultNilMessage     = "required value was nil"
	defaultCheckMessage   = "check failed"
)

// Require returns ErrInvalidArgument when condition is false.
func Require(condition bool, message ...string) error {
	if condition {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidArgument, messageOr(message, defaultRequireMessage))
}

// RequireNotNil returns value unchanged, or ErrInvalidArgument when it is nil.
func RequireNotNil[T any](value T, message ...string) (T, error) {
	if IsNil(value) {
		return value, fmt.Errorf("%w: %s", ErrInvalidArgument, messageOr(message, defaultNilMessage))
	}
	return value, nil
}

// Check returns ErrIllegalState when condition is false.
func Check(condition bool, message ...string) error {
	if condition {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrIllegalState, messageOr(message, defaultCheckMessage))
}

func Error(message string) error {
	return fmt.Errorf("%w: %s", ErrIllegalState, message)
}

// TODO marks an unfinished code path.
func TODO() error {
	return ErrNotImplemented
}

// Repeat calls block times times with the zero-based iteration index.
func Repeat(times int, block func(i int)) {
	for i := range times {
		block(i)
	}
}

// ArrayOf returns its arguments as a slice.
func ArrayOf[T any](members ...T) []T {
	if members == nil {
		return []T{}
	}
	return members
}

// ArrayOfZeros returns a slice of size zero values of T.
func ArrayOfZeros[T any](size int) []T {
	if size < 0 {
		size = 0
	}
	return make([]T, size)
}

func messageOr(message []string, fallback string) string {
	if len(message) == 0 {
		return fallback
	}
	return strings.Join(message, " ")
}
