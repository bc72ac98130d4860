package scope

import (
	"errors"
	"fmt"
	"io"

	"github.com/ib-77/kotlinize/pkg/kt"
)

// Use opens a resource, passes it to block and always closes it. A close
// error is joined with the block error.
func Use[C io.Closer, R any](open func() (C, error), block func(C) (R, error)) (out R, err error) {
	if open == nil || block == nil {
		return out, fmt.Errorf("%w: open and block must not be nil", kt.ErrInvalidArgument)
	}

	res, err := open()
	if err != nil {
		return out, fmt.Errorf("open resource: %w", err)
	}
	if kt.IsNil(res) {
		return out, fmt.Errorf("%w: open returned a nil resource", kt.ErrInvalidArgument)
	}

	defer func() {
		if cerr := res.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("close resource: %w", cerr))
		}
	}()

	return block(res)
}

// Let calls block with v and returns its result.
func Let[T, R any](v T, block func(T) R) R {
	return block(v)
}

// Also calls block with v for its side effect and returns v.
func Also[T any](v T, block func(T)) T {
	block(v)
	return v
}

// Apply configures the value pointed to by v and returns v.
func Apply[T any](v *T, block func(*T)) *T {
	block(v)
	return v
}

// Run calls block and returns its result.
func Run[R any](block func() R) R {
	return block()
}

// TakeIf returns (v, true) when predicate holds, otherwise (zero, false).
func TakeIf[T any](v T, predicate func(T) bool) (T, bool) {
	if predicate(v) {
		return v, true
	}
	var zero T
	return zero, false
}

// TakeUnless returns (v, true) when predicate does not hold.
func TakeUnless[T any](v T, predicate func(T) bool) (T, bool) {
	return TakeIf(v, func(x T) bool { return !predicate(x) })
}
