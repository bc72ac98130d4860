package result

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/kotlinize/pkg/kt"
)

type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	isSuccess bool
}

func Success[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		err:       nil,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Failure builds a failed result. A nil err is replaced by kt.ErrIllegalState
// so that a failure always carries an error.
func Failure[T any](err error) Result[T] {
	if err == nil {
		err = fmt.Errorf("%w: failure without error", kt.ErrIllegalState)
	}
	return Result[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// From converts a (value, error) pair.
func From[T any](v T, err error) Result[T] {
	if err != nil {
		return Failure[T](err)
	}
	return Success(v)
}

// RunCatching calls block and captures its error, or a panic wrapped in
// kt.ErrPanic, as a failure.
func RunCatching[T any](block func() (T, error)) (r Result[T]) {
	defer func() {
		if rec := recover(); rec != nil {
			r = Failure[T](kt.PanicError(rec))
		}
	}()
	return From(block())
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

// Get returns the value or the failure error (Kotlin's getOrThrow).
func (r Result[T]) Get() (T, error) {
	if !r.isSuccess {
		var zero T
		return zero, r.err
	}
	return r.value, nil
}

// GetOrZero returns the value, or the zero value on failure.
func (r Result[T]) GetOrZero() T {
	return r.value
}

func (r Result[T]) GetOrDefault(defaultValue T) T {
	if !r.isSuccess {
		return defaultValue
	}
	return r.value
}

func (r Result[T]) GetOrElse(onFailure func(err error) T) T {
	if !r.isSuccess {
		return onFailure(r.err)
	}
	return r.value
}

// Err returns the failure error, or nil on success.
func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) OnSuccess(action func(v T)) Result[T] {
	if r.isSuccess {
		action(r.value)
	}
	return r
}

func (r Result[T]) OnFailure(action func(err error)) Result[T] {
	if !r.isSuccess {
		action(r.err)
	}
	return r
}

// Recover maps a failure to a success value. A success is returned as is.
func (r Result[T]) Recover(transform func(err error) T) Result[T] {
	if r.isSuccess {
		return r
	}
	return Success(transform(r.err))
}

// RecoverCatching is Recover for transforms that can fail themselves.
func (r Result[T]) RecoverCatching(transform func(err error) (T, error)) Result[T] {
	if r.isSuccess {
		return r
	}
	return RunCatching(func() (T, error) {
		return transform(r.err)
	})
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

// IsEmpty reports a zero Result that was never built by a constructor.
func (r Result[T]) IsEmpty() bool {
	return r.err == nil && !r.isSuccess
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

func (r Result[T]) String() string {
	if r.isSuccess {
		return fmt.Sprintf("Success(%v)", r.value)
	}
	return fmt.Sprintf("Failure(%v)", r.err)
}
