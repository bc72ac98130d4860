package delegates

import (
	"fmt"

	"github.com/ib-77/kotlinize/pkg/kt"
)

// Observable holds a value and calls onChange after every assignment.
type Observable[T any] struct {
	value    T
	onChange func(old, new T)
}

// NewObservable returns an Observable starting at initial.
func NewObservable[T any](initial T, onChange func(old, new T)) (*Observable[T], error) {
	if onChange == nil {
		return nil, fmt.Errorf("%w: callback cannot be nil", kt.ErrInvalidArgument)
	}
	return &Observable[T]{value: initial, onChange: onChange}, nil
}

func (o *Observable[T]) Value() T {
	return o.value
}

// Set stores v and then reports (old, v) to the callback.
func (o *Observable[T]) Set(v T) {
	old := o.value
	o.value = v
	o.onChange(old, v)
}

// Vetoable holds a value and lets a callback reject assignments.
type Vetoable[T any] struct {
	value    T
	onChange kt.BiFunction[T, T, bool]
}

// NewVetoable returns a Vetoable starting at initial.
func NewVetoable[T any](initial T, onChange kt.BiFunction[T, T, bool]) (*Vetoable[T], error) {
	if onChange == nil {
		return nil, fmt.Errorf("%w: callback cannot be nil", kt.ErrInvalidArgument)
	}
	return &Vetoable[T]{value: initial, onChange: onChange}, nil
}

func (v *Vetoable[T]) Value() T {
	return v.value
}

// Set asks the callback with (old, next) before storing next. It reports
// whether the assignment was accepted.
func (v *Vetoable[T]) Set(next T) bool {
	if !v.onChange(v.value, next) {
		return false
	}
	v.value = next
	return true
}
