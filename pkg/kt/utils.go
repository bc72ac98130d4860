package kt

import (
	"errors"
	"fmt"
	"reflect"
)

// IsNil reports whether i is an untyped nil or a typed nil of a nilable kind
// (pointer, map, slice, chan, func, interface).
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}

	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// PanicError converts a recovered panic value into an error wrapping ErrPanic.
// If the value already is an error it stays reachable through errors.Is/As.
func PanicError(r any) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("%w: %w", ErrPanic, err)
	}
	return fmt.Errorf("%w: %v", ErrPanic, r)
}

// IsPanic reports whether err came from a recovered panic.
func IsPanic(err error) bool {
	return errors.Is(err, ErrPanic)
}
