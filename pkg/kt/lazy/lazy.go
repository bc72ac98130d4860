package lazy

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/ib-77/kotlinize/pkg/kt"
)

const uninitializedText = "Lazy value not initialized yet."

// Lazy holds a value produced by an initializer on first access.
// A Lazy must not be copied after first use.
type Lazy[T any] struct {
	initializer kt.ThrowingSupplier[T]

	mu          sync.Mutex
	initialized atomic.Bool
	value       T
}

// New returns a Lazy that will compute its value with initializer.
// The initializer is not called here.
func New[T any](initializer kt.ThrowingSupplier[T]) (*Lazy[T], error) {
	if initializer == nil {
		return nil, fmt.Errorf("%w: initializer must not be nil", kt.ErrInvalidArgument)
	}
	return &Lazy[T]{initializer: initializer}, nil
}

// Of is New for initializers that cannot fail.
func Of[T any](initializer kt.Supplier[T]) (*Lazy[T], error) {
	if initializer == nil {
		return nil, fmt.Errorf("%w: initializer must not be nil", kt.ErrInvalidArgument)
	}
	return New(func() (T, error) {
		return initializer(), nil
	})
}

// Must is like New but panics on a nil initializer.
func Must[T any](initializer kt.ThrowingSupplier[T]) *Lazy[T] {
	l, err := New(initializer)
	if err != nil {
		panic(err)
	}
	return l
}

// Value returns the cached value, running the initializer first if the value
// has not been computed yet. Concurrent callers that miss the fast path wait
// for the one running the initializer and then read its result.
//
// An initializer error is returned as is and leaves the Lazy uninitialized.
func (l *Lazy[T]) Value() (T, error) {
	if l.initialized.Load() {
		return l.value, nil
	}
	return l.slowValue()
}

func (l *Lazy[T]) slowValue() (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.initialized.Load() {
		return l.value, nil
	}

	computed, err := l.initializer()
	if err != nil {
		var zero T
		return zero, err
	}

	l.value = computed
	// value must be written before the flag is published
	l.initialized.Store(true)
	return l.value, nil
}

// MustValue is like Value but panics when the initializer fails.
func (l *Lazy[T]) MustValue() T {
	v, err := l.Value()
	if err != nil {
		panic(err)
	}
	return v
}

// IsInitialized reports whether the value has been computed. It may report
// false while another goroutine is still inside the initializer.
func (l *Lazy[T]) IsInitialized() bool {
	return l.initialized.Load()
}

func (l *Lazy[T]) String() string {
	if !l.initialized.Load() {
		return uninitializedText
	}
	return fmt.Sprintf("%v", l.value)
}

// Memoize wraps fn so that it runs at most once per successful call.
func Memoize[T any](fn kt.ThrowingSupplier[T]) func() (T, error) {
	l := Must(fn)
	return l.Value
}
