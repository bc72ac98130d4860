package result

// Map transforms a successful value. Failures pass through with their error.
func Map[In, Out any](input Result[In], transform func(v In) Out) Result[Out] {
	if input.IsSuccess() {
		return Success(transform(input.value))
	}
	return failFrom[In, Out](input)
}

// MapCatching is Map for transforms that can fail or panic.
func MapCatching[In, Out any](input Result[In], transform func(v In) (Out, error)) Result[Out] {
	if input.IsSuccess() {
		return RunCatching(func() (Out, error) {
			return transform(input.value)
		})
	}
	return failFrom[In, Out](input)
}

// FlatMap switches to the Result produced by onSuccess.
func FlatMap[In, Out any](input Result[In], onSuccess func(v In) Result[Out]) Result[Out] {
	if input.IsSuccess() {
		return onSuccess(input.value)
	}
	return failFrom[In, Out](input)
}

// Fold reduces the result to a value via the matching handler.
func Fold[In, Out any](input Result[In], onSuccess func(v In) Out, onFailure func(err error) Out) Out {
	if input.IsSuccess() {
		return onSuccess(input.value)
	}
	return onFailure(input.err)
}

// failFrom re-types a failure and keeps its identity.
func failFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}
