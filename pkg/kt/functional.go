package kt

// Supplier produces a value on demand.
type Supplier[T any] func() T

// ThrowingSupplier produces a value or fails.
type ThrowingSupplier[T any] func() (T, error)

// Consumer accepts a value for its side effect.
type Consumer[T any] func(T)

// Predicate tests a value.
type Predicate[T any] func(T) bool

// Function maps A to R.
type Function[A, R any] func(A) R

// BiFunction maps (A, B) to R. Property delegates receive (old, new).
type BiFunction[A, B, R any] func(A, B) R

// Not negates p.
func (p Predicate[T]) Not() Predicate[T] {
	return func(v T) bool {
		return !p(v)
	}
}
