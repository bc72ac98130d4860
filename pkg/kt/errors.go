package kt

import "errors"

var (
	// ErrInvalidArgument reports malformed input such as a nil initializer or a zero step.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnsupportedKind is returned when a value has no matching range kind.
	ErrUnsupportedKind = errors.New("unsupported kind")
	// ErrOutOfRange is returned by First/Last on an empty sequence.
	ErrOutOfRange = errors.New("out of range")
	// ErrIllegalState is returned by Check and Error.
	ErrIllegalState = errors.New("illegal state")
	// ErrNotImplemented is returned by TODO.
	ErrNotImplemented = errors.New("not implemented yet")
	// ErrPanic wraps a recovered panic value.
	ErrPanic = errors.New("recovered panic")
)
