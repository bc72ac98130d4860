package nullsafe

import (
	"errors"
	"runtime"
	"strings"

	"github.com/ib-77/kotlinize/pkg/kt"
)

// NullAware wraps a possibly-null value.
type NullAware[T any] struct {
	value   T
	present bool
}

func Of[T any](value T) NullAware[T] {
	if kt.IsNil(value) {
		return NullAware[T]{}
	}
	return NullAware[T]{value: value, present: true}
}

func Null[T any]() NullAware[T] {
	return NullAware[T]{}
}

// Value returns the wrapped value, or the zero value when null.
func (n NullAware[T]) Value() T {
	return n.value
}

func (n NullAware[T]) IsNull() bool {
	return !n.present
}

// Apply runs block with the value and returns the value. On null block is
// not called and the zero value is returned.
func (n NullAware[T]) Apply(block kt.Consumer[T]) T {
	if !n.present {
		var zero T
		return zero
	}
	block(n.value)
	return n.value
}

// IfNull returns the value, or the result of block when null.
func (n NullAware[T]) IfNull(block kt.Supplier[T]) T {
	if !n.present {
		return block()
	}
	return n.value
}

func (n NullAware[T]) OrElse(defaultValue T) T {
	if !n.present {
		return defaultValue
	}
	return n.value
}

// TakeIf keeps the value when predicate holds, otherwise returns null.
func (n NullAware[T]) TakeIf(predicate kt.Predicate[T]) NullAware[T] {
	if n.present && predicate(n.value) {
		return n
	}
	return Null[T]()
}

// TakeUnless keeps the value when predicate does not hold.
func (n NullAware[T]) TakeUnless(predicate kt.Predicate[T]) NullAware[T] {
	if n.present && !predicate(n.value) {
		return n
	}
	return Null[T]()
}

// Let maps a non-null value with block. A null input, or a nil block result,
// gives null.
func Let[T, R any](n NullAware[T], block kt.Function[T, R]) NullAware[R] {
	if !n.present {
		return Null[R]()
	}
	return Of(block(n.value))
}

// Safe evaluates supplier and turns a nil dereference panic into null, so a
// chain like a.B.C.D can be read without checking every link. Other panics
// are re-raised.
func Safe[T any](supplier kt.Supplier[T]) (out NullAware[T]) {
	defer func() {
		if r := recover(); r != nil {
			if !isNilDereference(r) {
				panic(r)
			}
			out = Null[T]()
		}
	}()
	return Of(supplier())
}

// SafeOr is Safe followed by OrElse.
func SafeOr[T any](supplier kt.Supplier[T], defaultValue T) T {
	return Safe(supplier).OrElse(defaultValue)
}

func isNilDereference(r any) bool {
	err, ok := r.(error)
	if !ok {
		return false
	}
	var re runtime.Error
	if !errors.As(err, &re) {
		return false
	}
	return strings.Contains(re.Error(), "nil pointer dereference") ||
		strings.Contains(re.Error(), "nil map")
}
